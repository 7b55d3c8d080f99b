package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "library-backend/internal/api/http"
	"library-backend/internal/config"
	"library-backend/internal/jobs"
	"library-backend/internal/logger"
	"library-backend/internal/repository/postgres"
	"library-backend/internal/scheduler"
	"library-backend/internal/security"
	"library-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting library backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	catalogSvc := service.NewCatalogService(store.BookRepository, store.CopyRepository)
	borrowingSvc := service.NewBorrowingService(
		store.LoanRepository,
		store.CopyRepository,
		store.BookRepository,
		store.UserRepository,
	)

	// Initialize scheduled jobs
	jobRunner := jobs.NewJobRunner(store.CopyRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(authSvc, catalogSvc, borrowingSvc, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
