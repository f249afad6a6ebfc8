package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"example.com/clubsignup/internal/api"
	"example.com/clubsignup/internal/config"
	"example.com/clubsignup/internal/domain"
	"example.com/clubsignup/internal/events"
	"example.com/clubsignup/internal/logging"
	"example.com/clubsignup/internal/observability"
	"example.com/clubsignup/internal/persistence/memory"
	"example.com/clubsignup/internal/seed"
	httptransport "example.com/clubsignup/internal/transport/http"
	"example.com/clubsignup/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New("club-signup-api", "info", "json")
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New("club-signup-api", cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("api exited with error")
	}
}

func run(cfg config.Config, logger zerolog.Logger) error {
	activities, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	repo, err := memory.NewRepository(activities)
	if err != nil {
		return err
	}
	for _, activity := range activities {
		observability.SetRosterSize(activity.Name, len(activity.Participants))
	}
	logger.Info().Int("activities", len(activities)).Str("seed_file", cfg.SeedFile).Msg("activity table seeded")

	publisher, closePublisher := buildPublisher(cfg, logger)
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Error().Err(err).Msg("closing roster publisher")
		}
	}()

	service := domain.NewService(repo, publisher, domain.WithLogger(logger))

	mux := http.NewServeMux()
	api.NewHandler(service).RegisterRoutes(mux)
	web.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, httptransport.Chain(mux,
		httptransport.RequestID(),
		httptransport.AccessLog(logger),
		httptransport.CORS(cfg.CORSOrigin),
	))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return httptransport.Serve(ctx, server, cfg.ShutdownTimeout, logger)
}

func buildPublisher(cfg config.Config, logger zerolog.Logger) (events.Publisher, func() error) {
	if !cfg.EventsEnabled() {
		logger.Info().Msg("KAFKA_BROKERS not set, roster events disabled")
		return events.NoopPublisher{}, func() error { return nil }
	}
	logger.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.RosterTopic).Msg("publishing roster events")
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.RosterTopic)
	return publisher, publisher.Close
}
