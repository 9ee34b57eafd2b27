package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ============================================
// Auth Service
// ============================================

const AdminRole = "admin"

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	ValidateToken(token string) (*jwt.Token, error)
	GetSubjectFromToken(token *jwt.Token) (string, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

// Login checks the single configured admin account and issues an access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if !s.cfg.AdminEnabled() {
		return "", time.Time{}, ErrAdminDisabled
	}

	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.AdminEmail) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	expiresAt := now.Add(time.Hour * time.Duration(s.cfg.JWTExpiry))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  s.cfg.AdminEmail,
		"role": AdminRole,
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	if s.cfg.JWTSecret == "" {
		return nil, ErrAdminDisabled
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != AdminRole {
		return nil, ErrUnauthorized
	}
	return token, nil
}

func (s *authService) GetSubjectFromToken(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthorized
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrUnauthorized
	}
	return subject, nil
}
