package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/aviation-weather-bot/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/aviation-weather-bot/internal/adapter/kafka"
	"github.com/couchcryptid/aviation-weather-bot/internal/adapter/line"
	"github.com/couchcryptid/aviation-weather-bot/internal/adapter/noaa"
	"github.com/couchcryptid/aviation-weather-bot/internal/bot"
	"github.com/couchcryptid/aviation-weather-bot/internal/config"
	"github.com/couchcryptid/aviation-weather-bot/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	fetcher := noaa.NewClient(cfg.NOAABaseURL, cfg.NOAATimeout, logger, metrics)
	replier := line.NewClient(cfg.LineAccessToken, cfg.LineAPIBaseURL, cfg.LineTimeout, logger)

	// Query-log publishing is feature-flagged via QUERYLOG_ENABLED.
	var querylog bot.QueryLogger
	var querylogWriter *kafkaadapter.Writer
	if cfg.QueryLogEnabled {
		querylogWriter = kafkaadapter.NewWriter(cfg, logger)
		querylog = querylogWriter
		metrics.QueryLogEnabled.Set(1)
		logger.Info("query-log publishing enabled", "topic", cfg.QueryLogTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("query-log publishing disabled")
	}

	handler := bot.New(fetcher, replier, querylog, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, cfg.LineChannelSecret, handler, handler, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
	if querylogWriter != nil {
		if err := querylogWriter.Close(); err != nil {
			logger.Error("query-log writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
