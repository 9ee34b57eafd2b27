// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// Document store
	DatabaseURL  string
	DatabaseName string

	// Cache
	RedisURL string
	CacheTTL time.Duration

	// Admin access
	JWTSecret         string
	JWTExpiry         int
	AdminEmail        string
	AdminPasswordHash string

	// Email configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPUseTLS   bool
	NotifyEmail  string

	DigestSchedule string
	CORSOrigins    []string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// No defaults here: a missing URL or name leaves the store unavailable
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", ""),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,

		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTExpiry:         getEnvInt("JWT_EXPIRY", 24),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		// Email configuration
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@mohamadjamalo.com"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Mohamad Jamalo Portfolio"),
		SMTPUseTLS:   getEnvBool("SMTP_USE_TLS", false),
		NotifyEmail:  getEnv("NOTIFY_EMAIL", ""),

		DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 9 * * *"),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

// DatabaseConfigured reports whether both store settings are present.
func (c *Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}

// AdminEnabled reports whether the admin routes can be served.
func (c *Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
