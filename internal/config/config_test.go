package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConnStr = "Endpoint=sb://txns.servicebus.windows.net/;SharedAccessKeyName=send;SharedAccessKey=c2VjcmV0"

// setRequiredEnv - хелпер: обязательные переменные окружения
func setRequiredEnv(t *testing.T) {
	t.Setenv("EVENT_HUB_CONN_STR", testConnStr)
	t.Setenv("EVENT_HUB_NAME", "transactions")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testConnStr, cfg.EventHub.ConnectionString)
	assert.Equal(t, "transactions", cfg.EventHub.Name)
	assert.True(t, cfg.EventHub.TLS)
	assert.Equal(t, 1048576, cfg.EventHub.MaxBatchBytes)

	assert.Equal(t, 5, cfg.Stream.MinBatch)
	assert.Equal(t, 15, cfg.Stream.MaxBatch)
	assert.Equal(t, 500*time.Millisecond, cfg.Stream.MinPause)
	assert.Equal(t, time.Second, cfg.Stream.MaxPause)
	assert.Equal(t, 0.06, cfg.Stream.FraudRate)
	assert.Equal(t, 3, cfg.Stream.MaxRetries)

	assert.Equal(t, "8081", cfg.HTTP.Port)
	assert.Empty(t, cfg.Postgres.URL)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KAFKA_BROKERS", "localhost:9092,localhost:9093")
	t.Setenv("KAFKA_TLS", "false")
	t.Setenv("BATCH_MIN", "1")
	t.Setenv("BATCH_MAX", "3")
	t.Setenv("PAUSE_MIN", "10ms")
	t.Setenv("PAUSE_MAX", "20ms")
	t.Setenv("RANDOM_SEED", "2024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.EventHub.Brokers)
	assert.False(t, cfg.EventHub.TLS)
	assert.Equal(t, 1, cfg.Stream.MinBatch)
	assert.Equal(t, 3, cfg.Stream.MaxBatch)
	assert.Equal(t, 10*time.Millisecond, cfg.Stream.MinPause)
	assert.Equal(t, 20*time.Millisecond, cfg.Stream.MaxPause)
	assert.Equal(t, int64(2024), cfg.Stream.Seed)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("EVENT_HUB_CONN_STR", "")
	t.Setenv("EVENT_HUB_NAME", "transactions")

	_, err := Load()
	assert.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "ConnectionString")
}

func TestLoad_MissingHubName(t *testing.T) {
	t.Setenv("EVENT_HUB_CONN_STR", testConnStr)
	t.Setenv("EVENT_HUB_NAME", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoad_InvalidRanges(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"батч", "BATCH_MAX", "2"},
		{"пауза", "PAUSE_MAX", "100ms"},
		{"доля фрода", "FRAUD_RATE", "1.5"},
		{"уровень логов", "LOG_LEVEL", "verbose"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestLoad_MalformedValue(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BATCH_MIN", "пять")

	_, err := Load()
	assert.ErrorIs(t, err, ErrConfig)
}
