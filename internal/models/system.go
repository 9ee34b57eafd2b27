package models

import "time"

// ============================================
// Diagnostics DTOs
// ============================================

// DiagnosticsResponse is the body of GET /test. Values are human-readable status strings.
type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Cache            string   `json:"cache"`
	Email            string   `json:"email"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	WebSocket string    `json:"websocket"`
	WSClients int       `json:"ws_clients"`
	Email     string    `json:"email"`
}

// ============================================
// Admin DTOs
// ============================================

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
