package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledgerline/transfer-service/internal/application/services"
	"github.com/ledgerline/transfer-service/internal/config"
	"github.com/ledgerline/transfer-service/internal/domain"
	"github.com/ledgerline/transfer-service/internal/infrastructure/persistence"
	"github.com/ledgerline/transfer-service/internal/infrastructure/persistence/memory"
	"github.com/ledgerline/transfer-service/internal/infrastructure/persistence/postgres"
	"github.com/ledgerline/transfer-service/internal/interfaces/rest/handlers"
	"github.com/ledgerline/transfer-service/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger(cfg.Primary.Env)
	slog.SetDefault(logger)

	logger.Info("starting transfer service",
		"port", cfg.Server.Port,
		"repository_backend", cfg.Repository.Backend,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	var accountRepo domain.AccountRepository
	var db *persistence.DB
	switch cfg.Repository.Backend {
	case "postgres":
		db, err = persistence.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		accountRepo = postgres.NewAccountRepository(db)
	default:
		accountRepo = memory.NewSeededAccountRepository()
	}

	transferService := services.NewTransferService(accountRepo, logger)
	queryService := services.NewQueryService(accountRepo)

	h := handlers.NewHandlers(transferService, queryService, logger)

	mux := http.NewServeMux()
	h.Register(mux)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
