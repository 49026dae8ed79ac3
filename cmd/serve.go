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

	"github.com/spf13/cobra"

	"campaign-tracker/internal/adapter/apiclient"
	"campaign-tracker/internal/adapter/http"
	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/config"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web frontend",
		RunE:  runServe,
	}
}

// runServe loads configuration, wires the API client into the page
// controller and serves the web frontend until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewLogger(os.Stdout)

	api := apiclient.New(cfg.API.BaseURL())
	list := usecase.NewCampaignList(api, logger)
	handler := httpadapter.NewHandler(list, logger, httpadapter.WithMetrics(cfg.HTTP.MetricsEnabled))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("api_url", cfg.API.BaseURL()),
			slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return nil
	}
	logger.Info("server gracefully stopped")
	return nil
}
