// Command server exposes the weather reports over HTTP. Reports are rebuilt
// from the configured CSV file on every request, so updating the file is
// enough to refresh the output.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/tidewater-labs/weather-report-service/internal/adapter/http"
	"github.com/tidewater-labs/weather-report-service/internal/config"
	"github.com/tidewater-labs/weather-report-service/internal/observability"
	"github.com/tidewater-labs/weather-report-service/internal/report"
	"github.com/tidewater-labs/weather-report-service/internal/source"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	src := source.NewFileSource(cfg.CSVPath, logger, metrics)
	svc := report.NewService(src, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	logger.Info("serving weather reports", "csv_path", cfg.CSVPath)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
