package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobradar/internal/api/routes"
	"jobradar/internal/cache"
	"jobradar/internal/config"
	"jobradar/internal/logging"
	"jobradar/internal/match"
	"jobradar/internal/providers"
	"jobradar/internal/search"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting JobRadar aggregator")

	// Optional provider-response cache
	searchCache, err := cache.NewSearchCache(cfg)
	if err != nil {
		logger.Warn("Cache unavailable, continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
		searchCache = nil
	}
	if searchCache != nil {
		defer searchCache.Close()
		logger.Info("Provider response cache enabled", map[string]interface{}{
			"ttl": cfg.Cache.TTL.String(),
		})
	}

	// Provider registry and search service
	registry := providers.NewRegistry(cfg)
	svc := search.NewService(cfg, registry, searchCache)

	enabled := registry.Enabled()
	logger.Info("Provider registry initialized", map[string]interface{}{
		"registered": len(registry.All()),
		"enabled":    len(enabled),
	})

	// Match scorer
	matcher := match.NewMatcher()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, svc, matcher)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{
				"error": err.Error(),
			})
		}

		logging.CloseGlobalLogging()
		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
