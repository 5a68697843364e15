package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course-order-export/internal/application"
	"course-order-export/internal/config"
	apiinfra "course-order-export/internal/infrastructure/api"
	"course-order-export/internal/infrastructure/repository"
	shopifyinfra "course-order-export/internal/infrastructure/shopify"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

func main() {
	// Initialize logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("⚠️  Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("level", cfg.LogLevel).Msg("Unknown LOG_LEVEL, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	// Connect token store
	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, closeStore, err := repository.OpenTokenStore(startCtx, cfg.Store, logger)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("Failed to open token store")
	}
	defer closeStore()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize Shopify adapter
	shopifyClient := shopifyinfra.NewClient(
		cfg.Shopify,
		cfg.Export,
		cfg.AppURL,
		logger,
		shopifyinfra.WithMetrics(shopifyinfra.NewMetrics(registry)),
	)

	// Initialize application services
	authService := application.NewAuthService(shopifyClient, store, cfg.Shopify.VerifyCallbackHMAC, logger)
	exportService := application.NewExportService(shopifyClient, store, logger)

	router := apiinfra.NewRouter(apiinfra.RouterConfig{
		Auth:        authService,
		Export:      exportService,
		AppURL:      cfg.AppURL,
		Gatherer:    registry,
		Metrics:     apiinfra.NewHTTPMetrics(registry),
		SwaggerPath: "./docs/swagger.json",
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("tokenStore", cfg.Store.Backend).Msg("Starting API server")
		logger.Info().Msg("Swagger documentation available at http://localhost:" + cfg.Port + "/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
