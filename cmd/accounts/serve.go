package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/account-service/internal/config"
	"github.com/benx421/account-service/internal/db"
	"github.com/benx421/account-service/internal/handlers"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

// setup loads configuration and installs the default logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func logBanner(logger *slog.Logger) {
	const rule = "**********************************************************************"
	logger.Info(rule)
	logger.Info("**********  A C C O U N T   S E R V I C E   R U N N I N G  ***********")
	logger.Info(rule)
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logBanner(logger)
	logger.Info("starting accounts api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"database", cfg.Database.Redacted(),
	)

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(cfg.Database.URL(), logger); err != nil {
			logger.Error("Cannot continue", "error", err)
			return databaseInitError(err)
		}
	}

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("Cannot continue", "error", err)
		return databaseInitError(err)
	}
	defer database.Close()

	logger.Info("Service initialized!")

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handlers.NewRouter(database, cfg, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-quit:
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}
