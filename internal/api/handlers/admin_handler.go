package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/api/middleware"
	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
)

// ============================================
// Admin Handler
// ============================================

type AdminHandler struct {
	authService    service.AuthService
	inquiryService service.InquiryService
}

func NewAdminHandler(authService service.AuthService, inquiryService service.InquiryService) *AdminHandler {
	return &AdminHandler{authService: authService, inquiryService: inquiryService}
}

// Login - Exchange the admin credentials for a bearer token
// POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			logger.Log.WithField("email", req.Email).Warn("[Admin] Invalid login attempt")
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid email or password"})
		case errors.Is(err, service.ErrAdminDisabled):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
		default:
			logger.Log.WithError(err).Error("[Admin] ❌ Login failed")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.UTC(),
	})
}

// ListInquiries - Stored inquiries, optionally only those created since ?since=<RFC3339>
// GET /admin/inquiries
func (h *AdminHandler) ListInquiries(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		inquiries []*repository.Inquiry
		err       error
	)
	if raw := c.Query("since"); raw != "" {
		since, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: []models.ValidationIssue{{
				Loc:  []string{"query", "since"},
				Msg:  "Input should be a valid datetime",
				Type: "datetime_parsing",
			}}})
			return
		}
		inquiries, err = h.inquiryService.ListSince(ctx, since)
	} else {
		inquiries, err = h.inquiryService.List(ctx)
	}

	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Detail: "Database not available"})
			return
		}
		logger.Log.WithError(err).Error("[Admin] ❌ Failed to list inquiries")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
		return
	}

	logger.Log.WithFields(map[string]any{
		"admin":     middleware.GetAdminSubject(c),
		"inquiries": len(inquiries),
	}).Info("[Admin] Inquiries listed")

	response := make([]models.InquiryResponse, len(inquiries))
	for i, inq := range inquiries {
		response[i] = toInquiryResponse(inq)
	}

	c.JSON(http.StatusOK, response)
}
