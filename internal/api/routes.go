package api

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ftr-labs/fliphq/internal/api/handlers"
	"github.com/ftr-labs/fliphq/internal/catalog"
	"github.com/ftr-labs/fliphq/internal/services"
)

func SetupRouter(
	cat *catalog.Catalog,
	valuationService *services.ValuationService,
	tokenService *services.TokenService,
	inventoryService *services.InventoryService,
	scanService *services.ScanService,
	assistantService *services.AssistantService,
	snapshotService *services.SnapshotService,
	devMode bool,
) *gin.Engine {
	router := gin.Default()
	router.Use(metricsMiddleware())

	// CORS configuration - allow origins from environment or use defaults
	config := cors.DefaultConfig()
	if corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS"); corsOrigins != "" {
		config.AllowOrigins = strings.Split(corsOrigins, ",")
	} else {
		config.AllowOrigins = []string{"http://localhost:8081", "http://localhost:19006"}
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false
	router.Use(cors.New(config))

	// Initialize handlers
	valuationHandler := handlers.NewValuationHandler(valuationService, cat)
	tokenHandler := handlers.NewTokenHandler(tokenService, devMode)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	scanHandler := handlers.NewScanHandler(scanService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)

	// API routes
	api := router.Group("/api")
	{
		// Valuation and catalog routes
		valuation := api.Group("/valuation")
		{
			valuation.POST("/estimate", valuationHandler.Estimate)
		}

		catalogRoutes := api.Group("/catalog")
		{
			catalogRoutes.GET("", valuationHandler.GetCatalog)
			catalogRoutes.GET("/platforms", valuationHandler.GetPlatforms)
			catalogRoutes.GET("/toolkits", valuationHandler.GetToolkits)
		}

		// Token ledger routes
		tokens := api.Group("/tokens")
		{
			tokens.GET("", tokenHandler.GetTokens)
			tokens.GET("/bundles", tokenHandler.GetBundles)
			tokens.POST("/purchase", tokenHandler.Purchase)
			tokens.POST("/set", tokenHandler.SetTokens)
		}

		// Inventory routes
		items := api.Group("/items")
		{
			items.GET("", inventoryHandler.ListItems)
			items.POST("", inventoryHandler.LogItem)
			items.PUT("/:id/status", inventoryHandler.UpdateStatus)
			items.DELETE("/:id", inventoryHandler.DeleteItem)
			items.GET("/stats", inventoryHandler.GetStats)
			items.POST("/clear", inventoryHandler.ClearAll)
		}

		// Scan and saved spot routes
		scan := api.Group("/scan")
		{
			scan.POST("", scanHandler.Scan)
			scan.GET("/cached", scanHandler.Cached)
		}

		spots := api.Group("/spots")
		{
			spots.GET("", inventoryHandler.ListSpots)
			spots.POST("", inventoryHandler.SaveSpot)
			spots.DELETE("/:id", inventoryHandler.RemoveSpot)
		}

		// Assistant routes
		assistant := api.Group("/assistant")
		{
			assistant.POST("/chat", assistantHandler.Chat)
		}

		// Snapshot routes
		snapshots := api.Group("/snapshots")
		{
			snapshots.GET("", snapshotHandler.GetHistory)
			snapshots.POST("", snapshotHandler.TakeSnapshot)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
