package middleware

import (
	"net/http"
	"strings"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
)

const adminSubjectKey = "adminSubject"

// AdminAuthMiddleware validates the admin bearer token and stores its subject in the context
func AdminAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Log.Warnf("❌ [Auth] Missing Authorization header - Path: %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Authorization header required"})
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Log.Warnf("❌ [Auth] Invalid header format - Path: %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid authorization header format"})
			return
		}

		token, err := authService.ValidateToken(parts[1])
		if err != nil || !token.Valid {
			logger.Log.Warnf("❌ [Auth] Invalid token - Path: %s, Error: %v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid or expired token"})
			return
		}

		subject, err := authService.GetSubjectFromToken(token)
		if err != nil {
			logger.Log.Warnf("❌ [Auth] Failed to extract subject - Path: %s, Error: %v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Detail: "Invalid token claims"})
			return
		}

		c.Set(adminSubjectKey, subject)
		c.Next()
	}
}

// GetAdminSubject returns the authenticated admin, or "" outside the admin group
func GetAdminSubject(c *gin.Context) string {
	return c.GetString(adminSubjectKey)
}
