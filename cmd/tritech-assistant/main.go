package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tritech-assistant/internal/api"
	"tritech-assistant/internal/api/handlers"
	"tritech-assistant/internal/knowledge"
	"tritech-assistant/internal/repository"
	"tritech-assistant/internal/service"
	"tritech-assistant/pkg/config"
	"tritech-assistant/pkg/logger"
	"tritech-assistant/pkg/postgres"
	"tritech-assistant/pkg/ratelimit"

	"go.uber.org/zap"
)

// @title TriTech Assistant API
// @version 1.0
// @description Query retrieval and escalation-routing service for the TriTech Premium Pro Enterprise knowledge base

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting TriTech Assistant service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Knowledge store: compiled-in topics plus the ingested entries
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	staticProvider := knowledge.NewStaticProvider(knowledge.DefaultTopics())
	dynamicProvider := knowledge.NewDynamicProvider(knowledgeRepo, appLogger)
	if err := dynamicProvider.Reload(ctx); err != nil {
		appLogger.Warn("Initial knowledge reload failed, starting with static topics only", zap.Error(err))
	}
	store := knowledge.NewStore(appLogger, staticProvider, dynamicProvider)

	// Query pipeline
	gateway := service.NewAnthropicGateway(cfg.Anthropic, appLogger)
	if !gateway.Configured() {
		appLogger.Warn("Anthropic API key not configured, running in local-only mode")
	}
	router := service.NewRouter(&cfg.Router, service.DefaultEscalationRules(), appLogger)
	composer := service.NewComposer()
	queryService := service.NewQueryService(store, router, gateway, composer, cfg.Anthropic.AllowFallback, appLogger)

	limiter := ratelimit.New(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(queryService, appLogger)
	healthHandler := handlers.NewHealthHandler(gateway, dynamicProvider)
	adminHandler := handlers.NewAdminHandler(dynamicProvider, appLogger)

	// Setup router
	app := api.SetupRouter(chatHandler, healthHandler, adminHandler, limiter, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
