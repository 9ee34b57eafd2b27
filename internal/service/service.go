package service

import (
	"context"
	"errors"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
)

var (
	ErrStoreUnavailable   = repository.ErrUnavailable
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAdminDisabled      = errors.New("admin access is not configured")
)

// Cache is the read-through cache used for list endpoints. Implemented by db.RedisDB.
type Cache interface {
	GetCache(ctx context.Context, key string, dest any) error
	SetCache(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateCache(ctx context.Context, pattern string) error
}

// InquiryNotifier is told about every stored inquiry. Implemented by notification.Service.
type InquiryNotifier interface {
	InquiryReceived(ctx context.Context, inquiry *repository.Inquiry)
}

// Pinger reports the health of an optional dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ClientCounter reports live websocket connections.
type ClientCounter interface {
	GetConnectedClientsCount() int
}

// ============================================
// Services Container
// ============================================

type Services struct {
	Project     ProjectService
	Testimonial TestimonialService
	Inquiry     InquiryService
	Diagnostics DiagnosticsService
	Auth        AuthService
}

// ServiceDeps contains all dependencies needed to create services.
// Cache, Notifier, CacheProbe and Clients may be nil; leave them unset rather than
// assigning a typed nil pointer.
type ServiceDeps struct {
	Config       *config.Config
	Database     *repository.Database
	Repos        *repository.Repositories
	Cache        Cache
	Notifier     InquiryNotifier
	CacheProbe   Pinger
	Clients      ClientCounter
	EmailEnabled bool
}

func NewServices(deps *ServiceDeps) *Services {
	seeder := newSeeder(deps.Cache)

	return &Services{
		Project:     NewProjectService(deps.Database, deps.Repos.ProjectRepo, deps.Cache, deps.Config.CacheTTL, seeder),
		Testimonial: NewTestimonialService(deps.Database, deps.Repos.TestimonialRepo, deps.Cache, deps.Config.CacheTTL, seeder),
		Inquiry:     NewInquiryService(deps.Repos.InquiryRepo, deps.Notifier),
		Diagnostics: NewDiagnosticsService(&DiagnosticsDeps{
			Config:       deps.Config,
			Database:     deps.Database,
			CacheProbe:   deps.CacheProbe,
			Clients:      deps.Clients,
			EmailEnabled: deps.EmailEnabled,
		}),
		Auth: NewAuthService(deps.Config),
	}
}
