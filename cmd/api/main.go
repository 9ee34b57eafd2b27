// main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/api"
	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/cron"
	"github.com/Marga-Ghale/portfolio-api/internal/db"
	"github.com/Marga-Ghale/portfolio-api/internal/email"
	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/notification"
	"github.com/Marga-Ghale/portfolio-api/internal/repository"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/Marga-Ghale/portfolio-api/internal/socket"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	envErr := godotenv.Load()

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.IsProduction())
	log := logger.Log

	if envErr != nil {
		log.Info("No .env file found, using environment variables")
	}

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Connect the document store (degrades to unavailable)
	// ============================================
	ctx := context.Background()

	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	database := db.Open(connectCtx, cfg)
	cancelConnect()

	if store, err := database.Store(); err == nil {
		log.Infof("✅ Connected to %s document store", store.Name())
	} else {
		log.WithField("reason", database.Reason()).Warn("⚠️  Running without a database")
	}

	repos := repository.NewRepositories(database)
	log.Info("📦 Repositories initialized")

	// ============================================
	// Initialize Redis (optional)
	// ============================================
	var redisDB *db.RedisDB
	if cfg.RedisURL != "" {
		var err error
		redisDB, err = db.NewRedisDB(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("⚠️ Failed to connect to Redis (continuing without cache)")
			redisDB = nil
		} else {
			defer redisDB.Close()
			log.Info("⚡ Redis cache enabled")
		}
	}

	// ============================================
	// Initialize Email Service (optional)
	// ============================================
	var emailSvc *email.Service
	if cfg.SMTPHost != "" {
		emailSvc = email.NewService(&email.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
			FromName: cfg.SMTPFromName,
			UseTLS:   cfg.SMTPUseTLS,
		})
		log.Info("📧 Email service initialized")
	} else {
		log.Warn("⚠️  Email not configured (SMTP_HOST not set)")
	}

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	defer hub.Stop()

	// ============================================
	// Initialize Notification Service
	// ============================================
	notificationSvc := notification.NewService(emailSvc, cfg.NotifyEmail)
	notificationSvc.SetBroadcaster(socket.NewBroadcaster(hub))

	// ============================================
	// Initialize All Services
	// ============================================
	deps := &service.ServiceDeps{
		Config:       cfg,
		Database:     database,
		Repos:        repos,
		Notifier:     notificationSvc,
		Clients:      hub,
		EmailEnabled: emailSvc.Enabled(),
	}
	if redisDB != nil {
		deps.Cache = redisDB
		deps.CacheProbe = redisDB
	}
	services := service.NewServices(deps)
	log.Info("✨ All services initialized")

	var wsHandler *socket.Handler
	if cfg.AdminEnabled() {
		wsHandler = socket.NewHandler(hub, services.Auth)
		log.Info("🔌 WebSocket hub initialized")
	}

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	scheduler := cron.NewScheduler(&cron.SchedulerDeps{
		InquiryService: services.Inquiry,
		Database:       database,
		Digest:         emailSvc,
		NotifyTo:       cfg.NotifyEmail,
		DigestSchedule: cfg.DigestSchedule,
	})
	if err := scheduler.Start(); err != nil {
		log.WithError(err).Fatal("❌ Failed to start scheduler")
	}
	defer scheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := api.NewRouter(&api.RouterDeps{
		Config:    cfg,
		Services:  services,
		WSHandler: wsHandler,
	})

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Infof("🚀 Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	if err := database.Close(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to close document store")
	}

	log.Info("Server exited")
}
