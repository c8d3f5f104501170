package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brightbooks/internal/config"
	"brightbooks/internal/content"
	"brightbooks/internal/database"
	"brightbooks/internal/leads"
	"brightbooks/internal/services"
	"brightbooks/internal/transport"
	"brightbooks/internal/util"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 15 * time.Second
	writeTimeout    = 15 * time.Second
	idleTimeout     = 60 * time.Second

	defaultDownloadSecret = "dev-download-secret-change-in-production"
)

func main() {
	log.SetPrefix("[API] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate critical configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	log.Printf("Starting %s v%s", cfg.App.Name, cfg.App.Version)
	log.Printf("Environment: debug=%v, port=%s, host=%s, email=%s", cfg.App.Debug, cfg.App.Port, cfg.App.Host, cfg.Email.Provider)

	// Initialize database
	log.Println("Initializing database connection...")
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	db := database.GetDB()
	defer func() {
		log.Println("Closing database connections...")
		if sqlDB, err := db.DB(); err == nil {
			if closeErr := sqlDB.Close(); closeErr != nil {
				log.Printf("Error closing database: %v", closeErr)
			}
		}
	}()

	defaults, err := content.LoadDefaults()
	if err != nil {
		log.Fatalf("Failed to load default content: %v", err)
	}

	// Create service instances
	log.Println("Initializing services...")
	pipeline := leads.NewPipeline(db, leads.PoliciesFromConfig(&cfg.Forms))
	emailSvc := services.NewEmailService(&cfg.Email, &cfg.SES)
	contentSvc := services.NewContentService(content.NewStore(db, defaults, cfg.Content.StaticFallback))
	waitlistSvc := services.NewWaitlistService(pipeline)
	signer := util.NewDownloadSigner(cfg.Downloads.SecretKey, time.Duration(cfg.Downloads.ExpiryMinutes)*time.Minute)

	handler := transport.NewHandler(&transport.Services{
		Health:             services.NewHealthService(db, cfg.App.Name, cfg.App.Version),
		Contact:            services.NewContactService(pipeline, emailSvc),
		Newsletter:         services.NewNewsletterService(pipeline),
		Waitlist:           waitlistSvc,
		ServiceRequests:    services.NewServiceRequestService(pipeline, emailSvc),
		TechnicalInquiries: services.NewTechnicalInquiryService(pipeline, emailSvc),
		Content:            contentSvc,
		Templates:          services.NewTemplateDownloadService(contentSvc, waitlistSvc, signer, cfg.App.BaseURL),
	}, cfg)

	// Create HTTP server with timeouts
	addr := fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
		ErrorLog:     log.New(os.Stderr, "[HTTP] ", log.LstdFlags),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server failed to start: %v", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Error during graceful shutdown: %v", err)
		if err == context.DeadlineExceeded {
			log.Println("Shutdown timeout exceeded, forcing close...")
			httpServer.Close()
		}
	}

	log.Println("Server shutdown complete")
}

// validateConfig validates critical configuration values
func validateConfig(cfg *config.Config) error {
	if !cfg.App.Debug && cfg.Downloads.SecretKey == defaultDownloadSecret {
		return fmt.Errorf("DOWNLOAD_TOKEN_SECRET must be changed from default value")
	}
	if cfg.Email.Enabled && cfg.Email.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL must be set when EMAIL_ENABLED is true")
	}
	return nil
}
