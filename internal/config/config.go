// Package config centralises configuration parsing for the club signup service.
package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
)

// Config captures runtime configuration values for the club signup service.
type Config struct {
	HTTPAddress     string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	CORSOrigin      string        `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// SeedFile overrides the embedded activity table when set.
	SeedFile string `env:"SEED_FILE"`

	// KafkaBrokers is empty when roster events are disabled.
	KafkaBrokers  []string `env:"KAFKA_BROKERS" envSeparator:","`
	RosterTopic   string   `env:"ROSTER_TOPIC" envDefault:"roster_events"`
	ConsumerGroup string   `env:"CONSUMER_GROUP_ID" envDefault:"club-signup-audit"`
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.KafkaBrokers = splitAndTrim(cfg.KafkaBrokers)

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
		cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	default:
		return Config{}, fmt.Errorf("unsupported LOG_FORMAT %q", cfg.LogFormat)
	}
	return cfg, nil
}

// EventsEnabled reports whether roster events should be published to Kafka.
func (c Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func splitAndTrim(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
