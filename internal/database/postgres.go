package database

import (
	"context"
	"errors"
	"fmt"
	"txstream/internal/metrics"
	"txstream/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=postgres.go -destination=./mocks/journal_mock.go -package=mocks Journal

// Journal определяет интерфейс журнала отправленных батчей.
type Journal interface {
	SaveBatch(ctx context.Context, record *model.BatchRecord) error
	RecentBatches(ctx context.Context, limit int) ([]model.BatchRecord, error)
	Close() error
}

// postgresJournal хранит журнал батчей в PostgreSQL.
type postgresJournal struct {
	db     *sqlx.DB
	tracer trace.Tracer // Для трассировки
}

// New создает подключение к БД, применяет миграции и возвращает
// экземпляр, реализующий интерфейс Journal.
func New(dbURL, migrationsPath string) (Journal, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	if err := runMigrations(dbURL, migrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresJournal{
		db:     db,
		tracer: otel.Tracer("postgres-journal"),
	}, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	logrus.Info("Поиск и применение миграций...")

	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}
	if dirty {
		logrus.Warnf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	logrus.Infof("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// SaveBatch записывает батч в журнал. Повторная запись того же батча игнорируется.
func (j *postgresJournal) SaveBatch(ctx context.Context, record *model.BatchRecord) error {
	ctx, span := j.tracer.Start(ctx, "Journal.SaveBatch")
	defer span.End()

	query := `INSERT INTO batches (batch_id, size, fraud_count, attempts, sent_at) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (batch_id) DO NOTHING`
	if _, err := j.db.ExecContext(ctx, query, record.BatchID, record.Size, record.FraudCount, record.Attempts, record.SentAt); err != nil {
		metrics.JournalErrors.WithLabelValues("save_batch").Inc()
		return fmt.Errorf("ошибка сохранения батча: %w", err)
	}
	return nil
}

// RecentBatches возвращает последние записи журнала, новые первыми.
func (j *postgresJournal) RecentBatches(ctx context.Context, limit int) ([]model.BatchRecord, error) {
	ctx, span := j.tracer.Start(ctx, "Journal.RecentBatches")
	defer span.End()

	records := []model.BatchRecord{}
	query := `SELECT batch_id, size, fraud_count, attempts, sent_at FROM batches ORDER BY sent_at DESC LIMIT $1`
	if err := j.db.SelectContext(ctx, &records, query, limit); err != nil {
		metrics.JournalErrors.WithLabelValues("recent_batches").Inc()
		return nil, fmt.Errorf("не удалось получить журнал батчей: %w", err)
	}
	return records, nil
}

// Close закрывает соединение с БД.
func (j *postgresJournal) Close() error {
	return j.db.Close()
}
