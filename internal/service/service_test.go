package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/repository/memstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeCache is a map-backed Cache that round-trips values through JSON like Redis does.
type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	ttls        map[string]time.Duration
	invalidated []string
}

var errFakeMiss = errors.New("miss")

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

// expire drops key as if its TTL had run out.
func (c *fakeCache) expire(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *fakeCache) GetCache(ctx context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return errFakeMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *fakeCache) SetCache(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) InvalidateCache(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}

type recordingNotifier struct {
	got chan *repository.Inquiry
}

func (n *recordingNotifier) InquiryReceived(ctx context.Context, inquiry *repository.Inquiry) {
	n.got <- inquiry
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

type stubClients int

func (c stubClients) GetConnectedClientsCount() int { return int(c) }

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:  "memory://",
		DatabaseName: "portfolio",
		CacheTTL:     time.Minute,
		JWTExpiry:    1,
	}
}

func newTestServices(t *testing.T, cache Cache) (*Services, *memstore.Store) {
	t.Helper()
	store := memstore.New("test")
	database := repository.Connected(store)
	services := NewServices(&ServiceDeps{
		Config:   testConfig(),
		Database: database,
		Repos:    repository.NewRepositories(database),
		Cache:    cache,
	})
	return services, store
}

// ============================================
// Projects
// ============================================

func TestProjectListSeedsEmptyCollection(t *testing.T) {
	services, store := newTestServices(t, nil)
	ctx := context.Background()

	projects, err := services.Project.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, projects, 6)
	assert.Equal(t, 6, store.Inserts())

	for _, p := range projects {
		assert.NotEmpty(t, p.ID)
	}

	// second read does not seed again
	projects, err = services.Project.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, projects, 6)
	assert.Equal(t, 6, store.Inserts())
}

func TestProjectListFiltersByNiche(t *testing.T) {
	services, _ := newTestServices(t, nil)
	ctx := context.Background()

	projects, err := services.Project.List(ctx, models.NicheRealEstate)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, models.NicheRealEstate, p.Niche)
	}

	projects, err = services.Project.List(ctx, "Weddings")
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectListConcurrentFirstReadsSeedOnce(t *testing.T) {
	services, store := newTestServices(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := services.Project.List(context.Background(), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 6, store.Inserts())
}

func TestProjectListUnavailableStore(t *testing.T) {
	database := repository.Unavailable(errors.New("DATABASE_URL not set"))
	svc := NewProjectService(database, repository.NewProjectRepository(database), nil, time.Minute, nil)

	projects, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestProjectListReadFailure(t *testing.T) {
	services, store := newTestServices(t, nil)
	store.FailReads(errors.New("connection reset"))

	_, err := services.Project.List(context.Background(), "")
	assert.Error(t, err)
}

func TestProjectListUsesCache(t *testing.T) {
	cache := newFakeCache()
	services, store := newTestServices(t, cache)
	ctx := context.Background()

	first, err := services.Project.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, "projects:*")
	assert.Contains(t, cache.entries, "projects:all")

	// reads are served from the cache while the store is failing
	store.FailReads(errors.New("down"))
	second, err := services.Project.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[0].Title, second[0].Title)
}

func TestProjectListHidesExternalInsertsUntilExpiry(t *testing.T) {
	cache := newFakeCache()
	services, store := newTestServices(t, cache)
	ctx := context.Background()

	first, err := services.Project.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, first, 6)
	assert.Equal(t, time.Minute, cache.ttls["projects:all"])

	_, err = store.CreateDocument(ctx, repository.CollectionProject, repository.Document{
		"title": "Imported", "niche": models.NicheRealEstate, "description": "added by hand",
	})
	require.NoError(t, err)

	cached, err := services.Project.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, cached, 6)

	cache.expire("projects:all")
	fresh, err := services.Project.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, fresh, 7)
}

func TestProjectsCacheKey(t *testing.T) {
	assert.Equal(t, "projects:all", projectsCacheKey(""))
	assert.Equal(t, "projects:niche:Real Estate", projectsCacheKey(models.NicheRealEstate))
}

// ============================================
// Testimonials
// ============================================

func TestTestimonialListSeedsOnce(t *testing.T) {
	services, store := newTestServices(t, nil)
	ctx := context.Background()

	testimonials, err := services.Testimonial.List(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 4)

	testimonials, err = services.Testimonial.List(ctx)
	require.NoError(t, err)
	assert.Len(t, testimonials, 4)
	assert.Equal(t, 4, store.Inserts())
}

func TestTestimonialListUnavailableStore(t *testing.T) {
	database := repository.Unavailable(errors.New("no store"))
	svc := NewTestimonialService(database, repository.NewTestimonialRepository(database), nil, time.Minute, nil)

	testimonials, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, testimonials)
	assert.Empty(t, testimonials)
}

func TestSeedingStopsOnInsertFailure(t *testing.T) {
	services, store := newTestServices(t, nil)
	store.FailCreates(errors.New("disk full"))

	_, err := services.Testimonial.List(context.Background())
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 0, store.Inserts())
}

// ============================================
// Inquiries
// ============================================

func TestInquiryCreateStoresAndNotifies(t *testing.T) {
	store := memstore.New("test")
	database := repository.Connected(store)
	notifier := &recordingNotifier{got: make(chan *repository.Inquiry, 1)}
	svc := NewInquiryService(repository.NewInquiryRepository(database), notifier)

	company := "Acme"
	req := inquiryRequest("Ana", "ana@example.com", models.NicheUIAnimation)
	req.Company = &company

	inquiry, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, inquiry.ID)
	assert.True(t, inquiry.Consent)

	select {
	case notified := <-notifier.got:
		assert.Equal(t, inquiry.ID, notified.ID)
		assert.Equal(t, "Acme", *notified.Company)
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}

	stored, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Ana", stored[0].Name)
}

func TestInquiryCreateRespectsExplicitConsent(t *testing.T) {
	services, _ := newTestServices(t, nil)
	req := inquiryRequest("Bo", "bo@example.com", "Weddings")
	req.Consent = models.ConsentFlag{Value: false, Set: true}

	inquiry, err := services.Inquiry.Create(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, inquiry.Consent)
}

func TestInquiryCreateUnavailableStore(t *testing.T) {
	database := repository.Unavailable(errors.New("no store"))
	svc := NewInquiryService(repository.NewInquiryRepository(database), nil)

	_, err := svc.Create(context.Background(), inquiryRequest("Ana", "ana@example.com", "Real Estate"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestInquiryCreateInsertFailure(t *testing.T) {
	services, store := newTestServices(t, nil)
	store.FailCreates(errors.New("write concern failed"))

	_, err := services.Inquiry.Create(context.Background(), inquiryRequest("Ana", "ana@example.com", "Real Estate"))
	assert.EqualError(t, err, "write concern failed")
}

func TestInquiryListSince(t *testing.T) {
	services, _ := newTestServices(t, nil)
	ctx := context.Background()

	_, err := services.Inquiry.Create(ctx, inquiryRequest("Ana", "ana@example.com", "Real Estate"))
	require.NoError(t, err)

	recent, err := services.Inquiry.ListSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	future, err := services.Inquiry.ListSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, future)
}

// ============================================
// Diagnostics
// ============================================

func TestDiagnosticsReportUnavailable(t *testing.T) {
	svc := NewDiagnosticsService(&DiagnosticsDeps{
		Config:   &config.Config{},
		Database: repository.Unavailable(errors.New("DATABASE_URL not set")),
	})

	report := svc.Report(context.Background())
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "❌ Not Available", report.Database)
	assert.Equal(t, "❌ Not Set", report.DatabaseURL)
	assert.Equal(t, "❌ Not Set", report.DatabaseName)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.NotNil(t, report.Collections)
	assert.Empty(t, report.Collections)
	assert.Equal(t, "⚪ Disabled", report.Cache)
	assert.Equal(t, "⚪ Disabled", report.Email)
}

func TestDiagnosticsReportConnected(t *testing.T) {
	store := crowdedStore{Store: memstore.New("test")}
	ctx := context.Background()

	svc := NewDiagnosticsService(&DiagnosticsDeps{
		Config:       testConfig(),
		Database:     repository.Connected(store),
		CacheProbe:   stubPinger{},
		EmailEnabled: true,
	})

	report := svc.Report(ctx)
	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, "✅ Set", report.DatabaseURL)
	assert.Equal(t, "✅ Set", report.DatabaseName)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Len(t, report.Collections, 10)
	assert.Equal(t, "✅ Connected", report.Cache)
	assert.Equal(t, "✅ Configured", report.Email)
}

func TestDiagnosticsReportTruncatesErrors(t *testing.T) {
	store := memstore.New("test")
	store.FailReads(errors.New(strings.Repeat("e", 80)))

	svc := NewDiagnosticsService(&DiagnosticsDeps{
		Config:     testConfig(),
		Database:   repository.Connected(store),
		CacheProbe: stubPinger{err: errors.New("dial tcp: refused")},
	})

	report := svc.Report(context.Background())
	assert.Equal(t, "⚠️  Connected but Error: "+strings.Repeat("e", 50), report.Database)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Equal(t, "❌ Error: dial tcp: refused", report.Cache)
}

func TestDiagnosticsHealth(t *testing.T) {
	svc := NewDiagnosticsService(&DiagnosticsDeps{
		Config:   testConfig(),
		Database: repository.Connected(memstore.New("test")),
		Clients:  stubClients(3),
	})

	health := svc.Health(context.Background())
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)
	assert.Equal(t, "disabled", health.Cache)
	assert.Equal(t, "active", health.WebSocket)
	assert.Equal(t, 3, health.WSClients)
	assert.Equal(t, "disabled", health.Email)
	assert.False(t, health.Timestamp.IsZero())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "✅✅", truncate("✅✅✅", 2))
}

// ============================================
// Auth
// ============================================

func adminConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := testConfig()
	cfg.JWTSecret = "test-secret"
	cfg.AdminEmail = "owner@example.com"
	cfg.AdminPasswordHash = string(hash)
	return cfg
}

func TestAuthLoginAndValidate(t *testing.T) {
	svc := NewAuthService(adminConfig(t))

	token, expiresAt, err := svc.Login(context.Background(), "Owner@Example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	subject, err := svc.GetSubjectFromToken(parsed)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", subject)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(adminConfig(t))

	_, _, err := svc.Login(context.Background(), "owner@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "someone@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthDisabledWithoutConfig(t *testing.T) {
	svc := NewAuthService(testConfig())

	_, _, err := svc.Login(context.Background(), "owner@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrAdminDisabled)

	_, err = svc.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrAdminDisabled)
}

func TestAuthValidateRejectsNonAdminAndExpired(t *testing.T) {
	cfg := adminConfig(t)
	svc := NewAuthService(cfg)

	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
		require.NoError(t, err)
		return s
	}

	_, err := svc.ValidateToken(sign(jwt.MapClaims{
		"sub": "x", "role": "viewer", "exp": time.Now().Add(time.Hour).Unix(),
	}))
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.ValidateToken(sign(jwt.MapClaims{
		"sub": "x", "role": AdminRole, "exp": time.Now().Add(-time.Hour).Unix(),
	}))
	assert.Error(t, err)

	_, err = svc.ValidateToken(sign(jwt.MapClaims{"sub": "x", "role": AdminRole}))
	assert.Error(t, err)
}

func inquiryRequest(name, email, projectType string) *models.CreateInquiryRequest {
	return &models.CreateInquiryRequest{Name: &name, Email: &email, ProjectType: &projectType}
}

// crowdedStore reports more collections than the diagnostics listing shows.
type crowdedStore struct {
	*memstore.Store
}

func (crowdedStore) ListCollections(ctx context.Context) ([]string, error) {
	names := make([]string, 12)
	for i := range names {
		names[i] = "c" + strings.Repeat("x", i)
	}
	return names, nil
}
