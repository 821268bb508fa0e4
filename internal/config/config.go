package config

import (
	"errors"
	"fmt"
	"time"
	"txstream/internal/validator"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrConfig - фатальная ошибка конфигурации, процесс не стартует.
var ErrConfig = errors.New("ошибка конфигурации")

// EventHubConfig содержит настройки подключения к Event Hub (Kafka-эндпоинт).
type EventHubConfig struct {
	ConnectionString string   `env:"EVENT_HUB_CONN_STR" validate:"required"`
	Name             string   `env:"EVENT_HUB_NAME" validate:"required"`
	Brokers          []string `env:"KAFKA_BROKERS"` // Переопределение брокеров, например для локальной Kafka
	TLS              bool     `env:"KAFKA_TLS" env-default:"true"`
	MaxBatchBytes    int      `env:"MAX_BATCH_BYTES" env-default:"1048576" validate:"gt=0"`
}

// StreamConfig задает темп и размер батчей.
type StreamConfig struct {
	MinBatch     int           `env:"BATCH_MIN" env-default:"5" validate:"gte=1"`
	MaxBatch     int           `env:"BATCH_MAX" env-default:"15" validate:"gtefield=MinBatch"`
	MinPause     time.Duration `env:"PAUSE_MIN" env-default:"500ms"`
	MaxPause     time.Duration `env:"PAUSE_MAX" env-default:"1s" validate:"gtefield=MinPause"`
	FraudRate    float64       `env:"FRAUD_RATE" env-default:"0.06" validate:"gte=0,lte=1"`
	MaxRetries   int           `env:"SEND_MAX_RETRIES" env-default:"3" validate:"gte=0"`
	RetryBackoff time.Duration `env:"SEND_RETRY_BACKOFF" env-default:"1s"`
	Seed         int64         `env:"RANDOM_SEED" env-default:"0"` // 0 - криптографический seed
}

// Config содержит всю конфигурацию приложения.
type Config struct {
	EventHub EventHubConfig
	Stream   StreamConfig

	HTTP struct {
		Port    string `env:"HTTP_PORT" env-default:"8081"`
		Enabled bool   `env:"HTTP_ENABLED" env-default:"true"`
	}
	Postgres struct {
		URL            string `env:"POSTGRES_URL"` // Пустой URL отключает журнал батчей
		MigrationsPath string `env:"POSTGRES_MIGRATIONS" env-default:"./internal/database/migrations"`
	}
	Tracing struct {
		Enabled   bool   `env:"TRACING_ENABLED" env-default:"false"`
		JaegerURL string `env:"JAEGER_URL" env-default:"http://jaeger:14268/api/traces"`
	}
	Log struct {
		Level string `env:"LOG_LEVEL" env-default:"info" validate:"oneof=trace debug info warn warning error"`
	}
}

// Load читает .env (если есть) и переменные окружения и проверяет результат.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Предупреждение: не удалось загрузить файл .env. Используются только переменные окружения.")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%w: не удалось прочитать переменные окружения: %v", ErrConfig, err)
	}
	if err := validator.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return &cfg, nil
}
