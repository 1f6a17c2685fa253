package main

import (
	"flag"
	"log"
	"net/http"

	httpapi "ubertool-rental-billing/internal/api/http"
	"ubertool-rental-billing/internal/billing"
	"ubertool-rental-billing/internal/config"
	"ubertool-rental-billing/internal/logger"
	"ubertool-rental-billing/internal/repository"
	"ubertool-rental-billing/internal/repository/memory"
	"ubertool-rental-billing/internal/repository/postgres"
	"ubertool-rental-billing/internal/service"

	"github.com/gorilla/mux"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting tool rental billing server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "catalog_source", cfg.Catalog.Source)

	// Initialize catalog
	var toolRepo repository.ToolRepository
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
		db, err := postgres.Open(cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		logger.Info("Database connection established")
		toolRepo = postgres.NewStore(db).ToolRepository
	default:
		tools, err := cfg.Catalog.SeedTools()
		if err != nil {
			log.Fatalf("Invalid catalog seed: %v", err)
		}
		if len(tools) == 0 {
			tools = memory.DefaultTools
		}
		logger.Info("Using in-memory catalog", "tools", len(tools))
		toolRepo = memory.NewToolRepository(tools)
	}

	// Initialize services
	checkoutSvc := service.NewCheckoutService(toolRepo, billing.NewEngine())

	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, checkoutSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
