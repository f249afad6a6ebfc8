package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTPAddress)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "roster_events", cfg.RosterTopic)
	require.Empty(t, cfg.KafkaBrokers)
	require.False(t, cfg.EventsEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("SEED_FILE", "/etc/clubs.hcl")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.HTTPAddress)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.True(t, cfg.EventsEnabled())
	require.Equal(t, 3*time.Second, cfg.WriteTimeout)
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, "/etc/clubs.hcl", cfg.SeedFile)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("duration", func(t *testing.T) {
		t.Setenv("READ_TIMEOUT", "soon")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load()
		require.Error(t, err)
	})
}
