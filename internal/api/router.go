// Package api assembles the HTTP surface of the portfolio backend.
package api

import (
	"slices"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/api/handlers"
	"github.com/Marga-Ghale/portfolio-api/internal/api/middleware"
	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/Marga-Ghale/portfolio-api/internal/socket"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	Config   *config.Config
	Services *service.Services
	// WSHandler serves the admin live feed; nil leaves /admin/ws unrouted.
	WSHandler *socket.Handler
}

func NewRouter(deps *RouterDeps) *gin.Engine {
	handlers.RegisterJSONTagNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(corsConfig(deps.Config.CORSOrigins)))

	h := handlers.NewHandlers(deps.Services)

	// ============================================
	// Public routes
	// ============================================
	r.GET("/", h.System.Root)
	r.GET("/api/hello", h.System.Hello)
	r.GET("/test", h.System.Test)
	r.GET("/schema", h.System.Schema)
	r.GET("/health", h.System.Health)

	r.GET("/projects", h.Project.List)
	r.GET("/testimonials", h.Testimonial.List)
	r.POST("/inquiries", h.Inquiry.Create)

	// ============================================
	// Admin routes (only when an admin account is configured)
	// ============================================
	if deps.Config.AdminEnabled() {
		admin := r.Group("/admin")
		{
			admin.POST("/login", h.Admin.Login)

			if deps.WSHandler != nil {
				// The websocket handler authenticates its own token so browsers can pass ?token=
				admin.GET("/ws", deps.WSHandler.HandleWebSocket)
			}

			protected := admin.Group("")
			protected.Use(middleware.AdminAuthMiddleware(deps.Services.Auth))
			{
				protected.GET("/inquiries", h.Admin.ListInquiries)
			}
		}
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
