package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cyberguard-lab/internal/api"
	"cyberguard-lab/internal/api/handlers"
	"cyberguard-lab/internal/config"
	"cyberguard-lab/internal/domain/services"
	"cyberguard-lab/internal/infrastructure/cache"
	"cyberguard-lab/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting CyberGuard Lab")

	if cfg.Auth.APIKey == "" {
		log.Warn().Msg("no API key configured, ingestion endpoints will reject all requests")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis backs verdict caching and rate limiting; the engine itself is
	// in-memory, so a missing cache only disables those extras.
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			redisCache = nil
		}
	}
	defer func() {
		if redisCache != nil {
			redisCache.Close()
		}
	}()

	// Initialize services
	classifier := services.NewIntentClassifier(nil, log)
	extractor := services.NewEntityExtractor(log)
	advisor := services.NewAdvisor(nil, log)
	replies := services.NewReplyGenerator(services.NewResponseBank(), advisor, nil, log)
	links := services.NewLinkReputation(log)
	phones := services.NewPhoneReputation(log)
	handleRep := services.NewHandleReputation(log)
	fraudClassifier := services.NewFraudClassifier(nil, log)
	voice := services.NewVoiceAnalyzer(log)

	// Initialize handlers
	h := handlers.NewHandlers(handlers.Dependencies{
		Classifier:      classifier,
		Extractor:       extractor,
		Replies:         replies,
		Links:           links,
		Phones:          phones,
		Handles:         handleRep,
		FraudClassifier: fraudClassifier,
		Advisor:         advisor,
		Voice:           voice,
		Cache:           redisCache,
		CacheCfg:        cfg.Cache,
		Logger:          log,
	})

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
