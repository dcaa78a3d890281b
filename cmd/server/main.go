package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ciphersql/studio/api"
	dbfs "github.com/ciphersql/studio/db"
	"github.com/ciphersql/studio/internal/config"
	"github.com/ciphersql/studio/internal/db"
	"github.com/ciphersql/studio/pkg/hint"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	// optional .env for local development; missing file is fine
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting studio server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}

	// Apply schema and rebuild the assignment catalog plus sandbox tables
	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}
	if err := db.Seed(ctx, database, dbfs.SeedFiles); err != nil {
		log.Fatalf("Failed to seed DB: %v", err)
	}

	// Hint provider is optional; without a configured model the /api/hint
	// endpoint answers with a static disabled message.
	var provider *hint.Provider
	var hintClient *hint.Client
	if cfg.Hint.Enabled() {
		hintClient, err = hint.NewDefaultClient(cfg.Hint)
		if err != nil {
			log.Fatalf("Failed to create hint client: %v", err)
		}
		provider = hint.NewProvider(hintClient, cfg.Hint.Model)
		log.Printf("Hint provider enabled (model %s)", cfg.Hint.Model)
	} else {
		log.Println("Hint provider disabled (no base URL/model configured)")
	}

	handler := api.SetupRoutes(cfg, version, buildTime, database, provider)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if hintClient != nil {
		if err := hintClient.Close(); err != nil {
			log.Printf("Error closing hint client: %v", err)
		}
	}

	// Close database connection
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
