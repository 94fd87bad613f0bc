package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ftr-labs/fliphq/internal/api"
	"github.com/ftr-labs/fliphq/internal/catalog"
	"github.com/ftr-labs/fliphq/internal/database"
	"github.com/ftr-labs/fliphq/internal/services"
)

func main() {
	// Database path
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./fliphq.db"
	}

	// Initialize database
	if err := database.Initialize(dbPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	db := database.GetDB()

	// Static valuation reference tables
	cat := catalog.Default()

	// Initialize services
	valuationService := services.NewValuationService(cat)
	tokenService := services.NewTokenService(db)
	inventoryService := services.NewInventoryService(db, valuationService)
	assistantService := services.NewAssistantService(tokenService, cat)
	snapshotService := services.NewSnapshotService(db, inventoryService)

	// Seed the wallet so a fresh install starts with free tokens
	if count, seeded, err := tokenService.Initialize(); err != nil {
		log.Fatalf("Failed to initialize token wallet: %v", err)
	} else if seeded {
		log.Printf("Token wallet seeded with %d free tokens", count)
	}

	// Spot directory backing the scan flow (local dataset)
	dataDir := os.Getenv("SPOTS_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	spotDirectory, err := services.NewSpotDirectory(dataDir)
	if err != nil {
		log.Fatalf("Failed to initialize spot directory: %v", err)
	}
	log.Printf("Loaded %d spots into the directory", spotDirectory.Count())

	scanService := services.NewScanService(tokenService, spotDirectory)

	// Dev mode exposes the token override endpoint
	devMode := os.Getenv("DEV_MODE") == "true"
	if devMode {
		log.Println("DEV_MODE enabled: token override endpoint is live")
	}

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start snapshot worker in background
	go snapshotService.Start(ctx)

	// Setup router
	router := api.SetupRouter(cat, valuationService, tokenService, inventoryService, scanService, assistantService, snapshotService, devMode)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel the context to stop the snapshot worker
	cancel()

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
