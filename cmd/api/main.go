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

	"github.com/vindlokaal/businessprofiles/backend/internal/adapters/cache"
	"github.com/vindlokaal/businessprofiles/backend/internal/adapters/database"
	"github.com/vindlokaal/businessprofiles/backend/internal/adapters/search"
	"github.com/vindlokaal/businessprofiles/backend/internal/api/handlers"
	"github.com/vindlokaal/businessprofiles/backend/internal/api/routes"
	"github.com/vindlokaal/businessprofiles/backend/internal/application/services"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/providers"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/repositories"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/postgres"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/redis"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/typesense"
	"github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/observability"
	"github.com/vindlokaal/businessprofiles/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - audits just run uncached
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
	} else {
		log.Println("Typesense client initialized successfully")
	}

	// Initialize adapters
	businessAdapter := database.NewBusinessAdapter(pgClient)
	snapshotAdapter := database.NewScoreSnapshotAdapter(pgClient)

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var searchRepo repositories.BusinessSearchRepository
	if typesenseClient != nil {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		searchRepo = adapter
	}

	// Initialize services
	auditService := services.NewAuditService(businessAdapter, snapshotAdapter, cfg.Audit.HistoryLimit)
	auditService.SetMetrics(metrics)
	if searchRepo != nil {
		auditService.SetSearchRepository(searchRepo)
		log.Println("Search index score propagation enabled")
	}

	// Initialize handlers
	businessHandler := handlers.NewBusinessHandler(businessAdapter)
	auditHandler := handlers.NewAuditHandler(auditService, cacheProvider, cfg.Audit.CacheTTLSeconds)
	auditHandler.SetMetrics(metrics)

	// Set up router
	router := routes.NewRouter(businessHandler, auditHandler, metrics)
	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
