package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/npatil9/expense_tracker_app/internal/core/services"
	"github.com/npatil9/expense_tracker_app/internal/handlers"
	"github.com/npatil9/expense_tracker_app/internal/middleware"
	"github.com/npatil9/expense_tracker_app/internal/platform/config"
	"github.com/npatil9/expense_tracker_app/internal/repositories/database/sqlite"
	"github.com/npatil9/expense_tracker_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Expense Tracker API
// @version 1.0
// @description Backend for a personal expense tracker: expense CRUD, reports and currency conversion.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Run database migrations before opening the application connection.
	logger.Info("Running database migrations...")
	if err := sqlite.RunMigrations(cfg.SQLitePath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")

	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Database connection established.", slog.String("path", cfg.SQLitePath))

	repos := sqlite.NewRepositoryProvider(db)
	svcContainer := services.NewServiceContainer(cfg, repos)

	// One-shot rate fetch in the background; the API serves fallback rates
	// until it completes.
	go svcContainer.Rates.Refresh(context.Background())

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
