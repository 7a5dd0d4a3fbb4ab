// Command reliefd serves relief-flow study evaluation over HTTP and, when
// Kafka is enabled, consumes study requests from a topic and publishes
// results to another.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/relief-calc/internal/adapter/cache"
	httpadapter "github.com/couchcryptid/relief-calc/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/relief-calc/internal/adapter/kafka"
	"github.com/couchcryptid/relief-calc/internal/config"
	"github.com/couchcryptid/relief-calc/internal/observability"
	"github.com/couchcryptid/relief-calc/internal/pipeline"
	"github.com/couchcryptid/relief-calc/internal/properties"
	"github.com/couchcryptid/relief-calc/internal/study"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// alwaysReady reports ready when no pipeline is running.
type alwaysReady struct{}

func (alwaysReady) CheckReadiness(context.Context) error { return nil }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	store := properties.Default()

	var evaluator study.Evaluator = study.NewEngine(store)
	if cfg.ResultCacheSize > 0 {
		evaluator = cache.NewCachedEvaluator(evaluator, cfg.ResultCacheSize, metrics)
		logger.Info("result cache enabled", "cache_size", cfg.ResultCacheSize)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		ready  sharedobs.ReadinessChecker = alwaysReady{}
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		transformer := pipeline.NewTransformer(evaluator, metrics, logger)
		p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)
		ready = p

		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
	} else {
		logger.Info("kafka pipeline disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, ready, evaluator, store, metrics, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
