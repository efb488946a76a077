package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rice-shop/internal/auth"
	"rice-shop/internal/config"
	"rice-shop/internal/database"
	"rice-shop/internal/handler"
	"rice-shop/internal/mail"
	"rice-shop/internal/ratelimit"
	"rice-shop/internal/repository"
	"rice-shop/internal/router"
	"rice-shop/internal/service"
	"rice-shop/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting rice-shop API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	otpRepo := repository.NewOtpRepository(pool, logger)
	adminRepo := repository.NewAdminRepository(pool, logger)
	prefRepo := repository.NewPreferenceRepository(pool, logger)

	// Initialize product image storage with S3 and local fallback
	var imageStore storage.ImageStore
	uploadDir := cfg.Upload.Dir
	if cfg.S3.Enabled {
		s3Store, err := storage.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 image store, falling back to local storage")
		} else {
			imageStore = s3Store
			uploadDir = ""
		}
	}
	if imageStore == nil {
		localStore, err := storage.NewLocalStore(cfg.Upload.Dir, cfg.Upload.PublicPath, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize image storage: %w", err)
		}
		imageStore = localStore
		logger.Info().Str("dir", cfg.Upload.Dir).Msg("using local file system for product images")
	}

	// Initialize OTP resend rate limiter
	var limiter ratelimit.Limiter
	if cfg.Redis.Enabled {
		limiter, err = ratelimit.NewRedisLimiter(
			ctx,
			cfg.Redis.Addr,
			cfg.Redis.ResendLimit,
			time.Duration(cfg.Redis.ResendWindow)*time.Second,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize rate limiter: %w", err)
		}
	} else {
		limiter = ratelimit.NewNoopLimiter()
		logger.Info().Msg("OTP resend rate limiting disabled (Redis disabled)")
	}
	defer limiter.Close()

	// Initialize outbound mail
	mailer := mail.NewSMTPMailer(cfg.SMTP, logger)
	dispatcher := mail.NewDispatcher(mailer, prefRepo, cfg.SMTP.ShopOwnerEmail, logger)

	// Initialize admin session tokens
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiry)*time.Hour)

	// Initialize services
	productService := service.NewProductService(productRepo, imageStore, logger)
	orderService := service.NewOrderService(orderRepo, otpRepo, productRepo, dispatcher, limiter, logger)
	adminService := service.NewAdminService(adminRepo, tokens, logger)
	analyticsService := service.NewAnalyticsService(orderRepo, productRepo, logger)
	preferenceService := service.NewPreferenceService(prefRepo, logger)

	// Initialize HTTP handlers
	maxUploadBytes := int64(cfg.Upload.MaxSizeMB) << 20
	routes := router.Config{
		Products:         handler.NewProductHandler(productService, logger),
		Orders:           handler.NewOrderHandler(orderService, logger),
		Admins:           handler.NewAdminHandler(adminService, logger),
		Analytics:        handler.NewAnalyticsHandler(analyticsService, logger),
		Preferences:      handler.NewPreferenceHandler(preferenceService, logger),
		Uploads:          handler.NewUploadHandler(imageStore, maxUploadBytes, logger),
		Tokens:           tokens,
		DB:               pool,
		UploadDir:        uploadDir,
		UploadPublicPath: cfg.Upload.PublicPath,
		Logger:           logger,
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.New(routes),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
