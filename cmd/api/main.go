package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/config"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/database"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/handler"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/router"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting orca-cafe POS server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply schema and first-run seed
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if cfg.Seed.DefaultAccounts {
		if err := database.SeedDefaultAccounts(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to seed default accounts: %w", err)
		}
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	ingredientRepo := repository.NewIngredientRepository(pool, logger)
	recipeRepo := repository.NewRecipeRepository(pool, logger)
	transactionRepo := repository.NewTransactionRepository(pool, logger)
	employeeRepo := repository.NewEmployeeRepository(pool, logger)
	attendanceRepo := repository.NewAttendanceRepository(pool, logger)
	expenseRepo := repository.NewExpenseRepository(pool, logger)
	reportRepo := repository.NewReportRepository(pool, logger)

	// Initialize services
	saleService := service.NewSaleService(transactionRepo, logger)
	catalogService := service.NewCatalogService(productRepo, recipeRepo, ingredientRepo, logger)
	inventoryService := service.NewInventoryService(ingredientRepo, logger)
	employeeService := service.NewEmployeeService(employeeRepo, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, logger)
	expenseService := service.NewExpenseService(expenseRepo, logger)
	reportService := service.NewReportService(reportRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Sale:       handler.NewSaleHandler(saleService, employeeService, logger),
		Product:    handler.NewProductHandler(catalogService, logger),
		Ingredient: handler.NewIngredientHandler(inventoryService, logger),
		Employee:   handler.NewEmployeeHandler(employeeService, logger),
		Attendance: handler.NewAttendanceHandler(attendanceService, logger),
		Expense:    handler.NewExpenseHandler(expenseService, logger),
		Report:     handler.NewReportHandler(reportService, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
