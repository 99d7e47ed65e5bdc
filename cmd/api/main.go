// backend-go/cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsuite/invopt/backend-go/internal/api"
	"github.com/opsuite/invopt/backend-go/internal/cache"
	"github.com/opsuite/invopt/backend-go/internal/config"
	"github.com/opsuite/invopt/backend-go/internal/repository"
	"github.com/opsuite/invopt/backend-go/internal/repository/memory"
	"github.com/opsuite/invopt/backend-go/internal/repository/postgres"
	"github.com/opsuite/invopt/backend-go/internal/service"
	"github.com/opsuite/invopt/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var (
		safetyStocks    repository.SafetyStockRepository
		reorderPoints   repository.ReorderPointRepository
		classifications repository.ClassificationRepository
		policies        repository.PolicyRepository
	)

	switch cfg.Database.Driver {
	case "memory":
		// Demo mode: run the engine without Postgres.
		logger.Log.Info().Msg("Using in-memory store")
		safetyStocks = memory.NewSafetyStockRepository()
		reorderPoints = memory.NewReorderPointRepository()
		classifications = memory.NewClassificationRepository()
		policies = memory.NewPolicyRepository()
	default:
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer db.Close()
		safetyStocks = postgres.NewSafetyStockRepository(db.DB)
		reorderPoints = postgres.NewReorderPointRepository(db.DB)
		classifications = postgres.NewClassificationRepository(db.DB)
		policies = postgres.NewPolicyRepository(db.DB)
	}

	classificationCache, err := cache.NewClassificationCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		classificationCache = cache.NewNoopClassificationCache()
	}

	optimization := service.NewOptimizationService(
		safetyStocks, reorderPoints, classifications, policies,
		classificationCache, cfg.Engine,
	)

	router := api.NewRouter(optimization, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
