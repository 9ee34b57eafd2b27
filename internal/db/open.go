package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/repository/memstore"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var (
	ErrDatabaseURLNotSet  = errors.New("DATABASE_URL not set")
	ErrDatabaseNameNotSet = errors.New("DATABASE_NAME not set")
	ErrUnsupportedScheme  = errors.New("unsupported DATABASE_URL scheme")
)

// Backend picks the store implementation from the URL scheme. Empty if unknown.
func Backend(databaseURL string) string {
	scheme, _, ok := strings.Cut(databaseURL, "://")
	if !ok {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo
	case "postgres", "postgresql":
		return BackendPostgres
	case "memory":
		return BackendMemory
	}
	return ""
}

// Open connects to the configured store once. Any failure leaves the process
// running with an unavailable database rather than exiting.
func Open(ctx context.Context, cfg *config.Config) *repository.Database {
	if !cfg.DatabaseConfigured() {
		reason := ErrDatabaseNameNotSet
		if cfg.DatabaseURL == "" {
			reason = ErrDatabaseURLNotSet
		}
		logger.Log.WithField("reason", reason).Warn("[DB] ⚠️  Store not configured, database unavailable")
		return repository.Unavailable(reason)
	}

	store, err := openStore(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		logger.Log.WithError(err).Error("[DB] ❌ Failed to connect, database unavailable")
		return repository.Unavailable(err)
	}
	return repository.Connected(store)
}

func openStore(ctx context.Context, databaseURL, databaseName string) (repository.DocumentStore, error) {
	switch Backend(databaseURL) {
	case BackendMongo:
		return NewMongoStore(ctx, databaseURL, databaseName)

	case BackendPostgres:
		pgURL, err := withDatabase(databaseURL, databaseName)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("[DB] 🔄 Running database migrations...")
		if err := RunMigrations(pgURL); err != nil {
			return nil, err
		}
		return NewPostgresStore(ctx, pgURL)

	case BackendMemory:
		logger.Log.Warn("[DB] ⚠️  Using in-memory store, data is lost on restart")
		return memstore.New(databaseName), nil
	}
	return nil, ErrUnsupportedScheme
}

// withDatabase points a Postgres URL at databaseName so DATABASE_NAME wins over the URL path.
func withDatabase(databaseURL, databaseName string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}
	u.Path = "/" + databaseName
	return u.String(), nil
}
