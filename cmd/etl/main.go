package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/refet-weather-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/refet-weather-etl/internal/adapter/kafka"
	"github.com/couchcryptid/refet-weather-etl/internal/config"
	"github.com/couchcryptid/refet-weather-etl/internal/observability"
	"github.com/couchcryptid/refet-weather-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)

	// Dedup of redelivered payloads is enabled by DEDUP_CACHE_SIZE > 0.
	var transformer pipeline.Transformer = pipeline.NewTransformer(logger)
	if cfg.DedupCacheSize > 0 {
		dedup, err := pipeline.NewDedupTransformer(transformer, cfg.DedupCacheSize)
		if err != nil {
			logger.Error("failed to create dedup cache", "error", err)
			os.Exit(1)
		}
		transformer = dedup
		logger.Info("payload dedup enabled", "cache_size", cfg.DedupCacheSize)
	}

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize,
		pipeline.WithWorkers(cfg.NormalizeWorkers))

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		logger.Warn("pipeline did not stop before shutdown timeout")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
