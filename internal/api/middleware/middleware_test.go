package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Marga-Ghale/portfolio-api/internal/api/middleware"
	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestRequestLoggerFields(t *testing.T) {
	hook := logtest.NewLocal(logger.Log)
	defer hook.Reset()

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger())
	r.GET("/projects", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/projects?niche=Real+Estate", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, http.MethodGet, entry.Data["http_method"])
	assert.Equal(t, "/projects?niche=Real+Estate", entry.Data["uri"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status_code"])
	assert.IsType(t, int64(0), entry.Data["latency_ms"])
	assert.Contains(t, entry.Data, "client_ip")
	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDGenerated(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestAdminAuthMiddlewareSetsSubject(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	auth := service.NewAuthService(&config.Config{
		JWTSecret:         "test-secret",
		JWTExpiry:         1,
		AdminEmail:        "owner@example.com",
		AdminPasswordHash: string(hash),
	})

	r := gin.New()
	r.GET("/admin/whoami", middleware.AdminAuthMiddleware(auth), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetAdminSubject(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := auth.Login(context.Background(), "owner@example.com", "s3cret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner@example.com", w.Body.String())
}
