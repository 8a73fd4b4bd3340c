package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/soap-scribe-server/internal/api"
	"github.com/soap-scribe-server/internal/config"
	"github.com/soap-scribe-server/internal/service"
	"github.com/soap-scribe-server/pkg/provider"
)

func main() {
	// Load .env if present; deployments set real environment variables.
	_ = godotenv.Load()

	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := config.NewLogger(&cfg.Logging)
	logger.Infof("Starting Clinical SOAP Scribe API on %s:%d", cfg.Server.Host, cfg.Server.Port)

	// Wire the pipeline: provider gateway, template registry, scribe service.
	gateway := provider.NewOpenAIGateway(cfg.Provider, logger)
	registry := service.NewTemplateRegistry()
	scribe := service.NewScribeService(logger, gateway, registry)

	// Create server
	server := api.NewServer(cfg, logger, scribe)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}
