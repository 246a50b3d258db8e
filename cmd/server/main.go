package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/codezxmax/finanzas/internal/adapter/http"
	"github.com/codezxmax/finanzas/internal/adapter/http/handler"
	fileRepo "github.com/codezxmax/finanzas/internal/adapter/repository/file"
	"github.com/codezxmax/finanzas/internal/infrastructure/config"
	"github.com/codezxmax/finanzas/internal/infrastructure/logger"
	"github.com/codezxmax/finanzas/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Initialize snapshot store and ledger
	store := fileRepo.NewSnapshotStore(cfg.DataDir, cfg.LegacyDataDir, appLogger)
	idGen := fileRepo.NewULIDGenerator()

	ledgerUC, err := usecase.NewLedgerUseCase(ctx, store, idGen)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize ledger")
	}
	queryUC := usecase.NewQueryUseCase(ledgerUC)

	appLogger.Info().Str("snapshot", store.Path()).Msg("ledger loaded")

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(ledgerUC)
	transactionHandler := handler.NewTransactionHandler(ledgerUC, queryUC)
	summaryHandler := handler.NewSummaryHandler(queryUC)
	exportHandler := handler.NewExportHandler(ledgerUC, queryUC)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(store)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		TransactionHandler: transactionHandler,
		SummaryHandler:     summaryHandler,
		ExportHandler:      exportHandler,
		LedgerHandler:      ledgerHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
