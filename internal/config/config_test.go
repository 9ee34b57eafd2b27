package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_NAME", "REDIS_URL", "CACHE_TTL_SECONDS", "CORS_ORIGINS", "JWT_SECRET"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 300*time.Second, cfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.DatabaseConfigured())
	assert.False(t, cfg.AdminEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "portfolio")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("SMTP_USE_TLS", "yes")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")

	cfg := Load()

	assert.Equal(t, "9001", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.DatabaseConfigured())
	assert.True(t, cfg.AdminEnabled())
	assert.True(t, cfg.SMTPUseTLS)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	assert.Equal(t, 587, Load().SMTPPort)
}
