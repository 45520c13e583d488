package main

import (
	"fmt"
	"log"
	"os"

	"github.com/productlens/backend/config"
	httpDelivery "github.com/productlens/backend/internal/delivery/http"
	"github.com/productlens/backend/internal/infrastructure/openfoodfacts"
	"github.com/productlens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ProductLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Open Food Facts: %s (timeout: %s)", cfg.OpenFoodFacts.BaseURL, cfg.OpenFoodFacts.Timeout)

	// Make sure the upload directory exists before accepting uploads
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %q: %v", cfg.Upload.Dir, err)
	}

	// Initialize infrastructure dependencies
	offClient := openfoodfacts.NewClient(
		cfg.OpenFoodFacts.BaseURL,
		cfg.OpenFoodFacts.UserAgent,
		cfg.OpenFoodFacts.Timeout,
		cfg.RateLimit.UpstreamPerMinute,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		offClient.SetDebug(true)
		log.Printf("Open Food Facts client debug mode enabled")
	}

	// Initialize usecase layer
	validator := usecase.NewBarcodeValidator(cfg.Barcode.AcceptedLengths)
	lookupService := usecase.NewLookupService(validator, offClient)

	log.Printf("Accepted barcode lengths: %v", cfg.Barcode.AcceptedLengths)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(lookupService, cfg.Upload)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
