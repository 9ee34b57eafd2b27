// internal/db/postgres.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps every collection in one JSONB table created by the embedded migrations.
type PostgresStore struct {
	Pool *pgxpool.Pool
	now  func() time.Time
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("[DB] ✅ Connected to PostgreSQL")
	return &PostgresStore{Pool: pool, now: time.Now}, nil
}

func (s *PostgresStore) CreateDocument(ctx context.Context, collection string, doc repository.Document) (string, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return "", err
	}
	repository.StampTimestamps(doc, s.now())

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	query := `
		INSERT INTO documents (collection, body)
		VALUES ($1, $2::jsonb)
		RETURNING id::text
	`
	var id string
	if err := s.Pool.QueryRow(ctx, query, collection, string(body)).Scan(&id); err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *PostgresStore) GetDocuments(ctx context.Context, collection string, filter repository.Filter) ([]repository.Document, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return nil, err
	}
	containment, err := filterJSON(filter)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id::text, body
		FROM documents
		WHERE collection = $1 AND body @> $2::jsonb
		ORDER BY inserted_at
	`
	rows, err := s.Pool.Query(ctx, query, collection, containment)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]repository.Document, 0)
	for rows.Next() {
		var id string
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}
		doc := repository.Document{}
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", id, err)
		}
		doc[repository.IDField] = id
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *PostgresStore) CountDocuments(ctx context.Context, collection string, filter repository.Filter) (int64, error) {
	if err := repository.CheckCollection(collection); err != nil {
		return 0, err
	}
	containment, err := filterJSON(filter)
	if err != nil {
		return 0, err
	}

	query := `SELECT COUNT(*) FROM documents WHERE collection = $1 AND body @> $2::jsonb`
	var n int64
	if err := s.Pool.QueryRow(ctx, query, collection, containment).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (s *PostgresStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.Pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PostgresStore) Name() string {
	return s.Pool.Config().ConnConfig.Database
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.Pool.Ping(ctx)
}

func (s *PostgresStore) Close(ctx context.Context) error {
	if s.Pool != nil {
		s.Pool.Close()
		logger.Log.Info("[DB] PostgreSQL connection closed")
	}
	return nil
}

// filterJSON renders an equality filter as a JSONB containment operand.
func filterJSON(filter repository.Filter) (string, error) {
	if len(filter) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("encode filter: %w", err)
	}
	return string(b), nil
}
