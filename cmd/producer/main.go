package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	"txstream/internal/api"
	"txstream/internal/cache"
	"txstream/internal/catalog"
	"txstream/internal/config"
	"txstream/internal/database"
	"txstream/internal/generator"
	"txstream/internal/kafka"
	"txstream/internal/locale"
	"txstream/internal/metrics"
	"txstream/internal/stream"
	"txstream/internal/tracing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
)

const serviceName = "txstream-producer"

func main() {
	if err := run(); err != nil {
		logrus.Errorf("Продюсер остановлен с ошибкой: %v", err)
		os.Exit(1)
	}
}

// run собирает зависимости и запускает стриминг. Все defer выполняются до выхода из процесса.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg.Log.Level)

	// Инициализация трассировки
	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.InitTracerProvider(serviceName, cfg.Tracing.JaegerURL)
		if err != nil {
			logrus.Warnf("Трассировка отключена: %v", err)
		} else {
			defer shutdownTracing()
		}
	}
	metrics.Init()

	// Журнал батчей не обязателен: без него стриминг продолжается
	var journal database.Journal
	if cfg.Postgres.URL != "" {
		j, err := database.New(cfg.Postgres.URL, cfg.Postgres.MigrationsPath)
		if err != nil {
			logrus.Errorf("Журнал батчей недоступен: %v", err)
		} else {
			journal = j
			defer journal.Close()
		}
	}

	producer, err := kafka.NewProducer(cfg.EventHub)
	if err != nil {
		return err
	}
	defer func() {
		if err := producer.Close(); err != nil {
			logrus.Errorf("Ошибка закрытия продюсера: %v", err)
		}
	}()

	// Единый источник случайности; seed 0 - криптографический
	faker := gofakeit.New(cfg.Stream.Seed)
	locales := cache.NewLocaleCache(func(tag string) *locale.Faker {
		return locale.New(tag, faker)
	})
	gen := generator.New(catalog.Default(), locales, faker, generator.WithFraudRate(cfg.Stream.FraudRate))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск HTTP-сервера
	if cfg.HTTP.Enabled {
		server := api.NewServer(cfg.HTTP.Port, gen, journal)
		go func() {
			if err := server.Run(); err != nil {
				logrus.Errorf("Ошибка HTTP-сервера: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logrus.Errorf("Ошибка остановки HTTP-сервера: %v", err)
			}
		}()
	}

	streamer := stream.New(producer, gen, faker, cfg.Stream, stream.WithJournal(journal))
	return streamer.Run(ctx)
}

// setupLogger настраивает формат и уровень логов.
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Неизвестный уровень логов %q, используется info", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
