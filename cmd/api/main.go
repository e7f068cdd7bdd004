package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"luna-assistant/config"
	_ "luna-assistant/docs" // Swagger docs
	"luna-assistant/internal/analytics"
	"luna-assistant/internal/assistant/cache"
	"luna-assistant/internal/assistant/capability"
	"luna-assistant/internal/assistant/classifier"
	"luna-assistant/internal/assistant/resolver"
	"luna-assistant/internal/assistant/usecase"
	"luna-assistant/internal/httpserver"
	"luna-assistant/pkg/datemath"
	"luna-assistant/pkg/log"
)

// @title       Luna Local Assistant Engine API
// @description Local intent recognition and execution for the Luna productivity assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Luna local assistant engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Engine components
	dateMathParser, dtErr := datemath.NewParser(cfg.Assistant.DefaultTimezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.DefaultTimezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	registry := capability.NewDefaultRegistry(dateMathParser)
	logger.Infof(ctx, "Registered capabilities: %v", registry.Names())

	responseCache := cache.New(cfg.Cache.Size, cfg.Cache.TTL)
	intentClassifier := classifier.New()
	contextResolver := resolver.New(logger, cfg.Assistant.DefaultTimezone, cfg.Assistant.DefaultLanguage)
	tracker := analytics.NewInMemoryTracker(logger, cfg.Analytics.Capacity)

	assistantUC := usecase.New(logger, intentClassifier, contextResolver, registry, responseCache, tracker, usecase.Config{
		ThresholdHandle:   cfg.Assistant.ThresholdHandle,
		ThresholdFallback: cfg.Assistant.ThresholdFallback,
		CacheTTL:          cfg.Cache.TTL,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		AssistantUC:     assistantUC,
		Tracker:         tracker,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
