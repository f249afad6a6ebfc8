package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"example.com/clubsignup/internal/config"
	"example.com/clubsignup/internal/consumer"
	"example.com/clubsignup/internal/logging"
	httptransport "example.com/clubsignup/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New("club-signup-audit", "info", "json")
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New("club-signup-audit", cfg.LogLevel, cfg.LogFormat)

	if !cfg.EventsEnabled() {
		logger.Fatal().Msg("KAFKA_BROKERS must be set for the audit consumer")
	}
	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("consumer exited with error")
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:         cfg.KafkaBrokers,
		GroupID:         cfg.ConsumerGroup,
		Topic:           cfg.RosterTopic,
		MinBytes:        1,
		MaxBytes:        10e6,
		CommitInterval:  time.Second,
		ReadLagInterval: -1,
	})
	defer reader.Close()

	handler := consumer.NewAuditHandler(logger)
	proc := consumer.NewProcessor(reader, handler, consumer.WithLogger(logger))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsSrv := httptransport.NewServer(httptransport.ServerConfig{
		Address:     cfg.HTTPAddress,
		ReadTimeout: cfg.ReadTimeout,
	}, mux)

	logger.Info().Str("topic", cfg.RosterTopic).Str("group", cfg.ConsumerGroup).Msg("consumer started")
	return httptransport.Serve(ctx, metricsSrv, cfg.ShutdownTimeout, logger, proc.Run)
}
