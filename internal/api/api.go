// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/opsuite/invopt/backend-go/internal/api/handlers"
	"github.com/opsuite/invopt/backend-go/internal/api/middleware"
	"github.com/opsuite/invopt/backend-go/internal/service"
)

func NewRouter(optimization *service.OptimizationService, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiGroup := router.Group("/api/v1/optimization")

	if optimization != nil {
		safetyStockHandler := handlers.NewSafetyStockHandler(optimization)
		safetyStockGroup := apiGroup.Group("/safety_stock")
		{
			safetyStockGroup.GET("", safetyStockHandler.List)
			safetyStockGroup.GET("/:id", safetyStockHandler.GetByID)
			safetyStockGroup.POST("/calculate", safetyStockHandler.Calculate)
			safetyStockGroup.PUT("/:id", safetyStockHandler.Update)
		}

		reorderPointHandler := handlers.NewReorderPointHandler(optimization)
		reorderGroup := apiGroup.Group("/reorder_points")
		{
			reorderGroup.GET("", reorderPointHandler.List)
			reorderGroup.GET("/:id", reorderPointHandler.GetByID)
			reorderGroup.POST("/calculate", reorderPointHandler.Calculate)
			reorderGroup.PUT("/:id", reorderPointHandler.Update)
		}

		classificationHandler := handlers.NewClassificationHandler(optimization)
		classificationGroup := apiGroup.Group("/classifications")
		{
			classificationGroup.GET("", classificationHandler.List)
			classificationGroup.GET("/summary", classificationHandler.Summary)
			classificationGroup.GET("/:id", classificationHandler.GetByID)
			classificationGroup.POST("/classify", classificationHandler.Classify)
			classificationGroup.PUT("/:id", classificationHandler.Update)
		}

		policyHandler := handlers.NewPolicyHandler(optimization)
		policyGroup := apiGroup.Group("/policies")
		{
			policyGroup.GET("", policyHandler.List)
			policyGroup.GET("/:id", policyHandler.GetByID)
			policyGroup.POST("", policyHandler.Assign)
			policyGroup.PUT("/:id", policyHandler.Update)
		}

		bulkGroup := apiGroup.Group("/bulk")
		{
			bulkGroup.POST("/safety_stock", policyHandler.BulkCalculateSafetyStock)
			bulkGroup.POST("/reorder_points", policyHandler.BulkCalculateReorderPoints)
			bulkGroup.POST("/classifications", policyHandler.BulkClassifyInventory)
			bulkGroup.POST("/policies", policyHandler.BulkAssign)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
