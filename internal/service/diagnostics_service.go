package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
)

// ============================================
// Diagnostics Service
// ============================================

const (
	statusRunning         = "✅ Running"
	statusSet             = "✅ Set"
	statusNotSet          = "❌ Not Set"
	statusNotAvailable    = "❌ Not Available"
	statusWorking         = "✅ Connected & Working"
	statusConnectedError  = "⚠️  Connected but Error: "
	statusError           = "❌ Error: "
	statusDisabled        = "⚪ Disabled"
	statusConfigured      = "✅ Configured"
	statusCacheConnected  = "✅ Connected"
	connectionConnected   = "Connected"
	connectionUnavailable = "Not Connected"

	maxReportedCollections = 10
	maxReportedErrorLength = 50
)

type DiagnosticsService interface {
	// Report never fails: every problem is rendered into the returned strings.
	Report(ctx context.Context) *models.DiagnosticsResponse
	Health(ctx context.Context) *models.HealthResponse
}

type DiagnosticsDeps struct {
	Config       *config.Config
	Database     *repository.Database
	CacheProbe   Pinger
	Clients      ClientCounter
	EmailEnabled bool
}

type diagnosticsService struct {
	deps *DiagnosticsDeps
}

func NewDiagnosticsService(deps *DiagnosticsDeps) DiagnosticsService {
	return &diagnosticsService{deps: deps}
}

func (s *diagnosticsService) Report(ctx context.Context) (report *models.DiagnosticsResponse) {
	report = &models.DiagnosticsResponse{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		DatabaseURL:      setStatus(s.deps.Config.DatabaseURL),
		DatabaseName:     setStatus(s.deps.Config.DatabaseName),
		ConnectionStatus: connectionUnavailable,
		Collections:      []string{},
		Cache:            statusDisabled,
		Email:            statusDisabled,
	}

	defer func() {
		if r := recover(); r != nil {
			report.Database = statusError + truncate(fmt.Sprint(r), maxReportedErrorLength)
		}
	}()

	if s.deps.EmailEnabled {
		report.Email = statusConfigured
	}
	if s.deps.CacheProbe != nil {
		if err := s.deps.CacheProbe.Ping(ctx); err != nil {
			report.Cache = statusError + truncate(err.Error(), maxReportedErrorLength)
		} else {
			report.Cache = statusCacheConnected
		}
	}

	store, err := s.deps.Database.Store()
	if err != nil {
		return report
	}
	report.ConnectionStatus = connectionConnected

	names, err := store.ListCollections(ctx)
	if err != nil {
		report.Database = statusConnectedError + truncate(err.Error(), maxReportedErrorLength)
		return report
	}

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = statusWorking
	return report
}

func (s *diagnosticsService) Health(ctx context.Context) *models.HealthResponse {
	health := &models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "unavailable",
		Cache:     "disabled",
		WebSocket: "disabled",
		Email:     "disabled",
	}

	if store, err := s.deps.Database.Store(); err == nil {
		if err := store.Ping(ctx); err != nil {
			health.Database = "error"
			health.Status = "degraded"
		} else {
			health.Database = "connected"
		}
	}

	if s.deps.CacheProbe != nil {
		if err := s.deps.CacheProbe.Ping(ctx); err != nil {
			health.Cache = "error"
		} else {
			health.Cache = "connected"
		}
	}

	if s.deps.Clients != nil {
		health.WebSocket = "active"
		health.WSClients = s.deps.Clients.GetConnectedClientsCount()
	}
	if s.deps.EmailEnabled {
		health.Email = "configured"
	}
	return health
}

func setStatus(value string) string {
	if value == "" {
		return statusNotSet
	}
	return statusSet
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
