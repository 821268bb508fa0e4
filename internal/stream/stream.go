package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"txstream/internal/config"
	"txstream/internal/database"
	"txstream/internal/kafka"
	"txstream/internal/metrics"
	"txstream/internal/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrTransmission - батч не удалось доставить в брокер.
var ErrTransmission = errors.New("ошибка передачи батча")

// Source синтезирует транзакции.
type Source interface {
	Generate(ctx context.Context) model.Transaction
}

// Streamer собирает батчи транзакций и отправляет их с паузой между батчами.
type Streamer struct {
	producer kafka.Producer
	source   Source
	faker    *gofakeit.Faker
	cfg      config.StreamConfig
	journal  database.Journal // nil - журнал отключен
	out      io.Writer
	now      func() time.Time
	tracer   trace.Tracer // Для трассировки
}

// Option настраивает Streamer.
type Option func(*Streamer)

// WithJournal включает запись отправленных батчей в журнал.
func WithJournal(j database.Journal) Option {
	return func(s *Streamer) {
		s.journal = j
	}
}

// WithOutput задает, куда печатаются строки статуса.
func WithOutput(w io.Writer) Option {
	return func(s *Streamer) {
		s.out = w
	}
}

// WithClock подменяет источник текущего времени для строки статуса и журнала.
func WithClock(now func() time.Time) Option {
	return func(s *Streamer) {
		s.now = now
	}
}

// New создает стример. Продюсер остается во владении вызывающего.
func New(producer kafka.Producer, source Source, faker *gofakeit.Faker, cfg config.StreamConfig, opts ...Option) *Streamer {
	s := &Streamer{
		producer: producer,
		source:   source,
		faker:    faker,
		cfg:      cfg,
		out:      os.Stdout,
		now:      time.Now,
		tracer:   otel.Tracer("stream"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run отправляет батчи до отмены ctx или фатальной ошибки отправки.
// Отмена ctx не является ошибкой: недособранный батч отбрасывается, возвращается nil.
func (s *Streamer) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "🚀 Отправка транзакций в Azure Event Hub...")

	for {
		// (a) Проверка перед сборкой батча
		if ctx.Err() != nil {
			return s.stopped()
		}

		batch, fraud, ok := s.buildBatch(ctx)
		if !ok {
			return s.stopped()
		}

		attempts, err := s.sendBatch(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				return s.stopped()
			}
			return err
		}

		s.report(ctx, batch, fraud, attempts)

		// Проверка перед паузой
		if ctx.Err() != nil {
			return s.stopped()
		}
		if !sleep(ctx, s.pauseDuration()) {
			return s.stopped()
		}
	}
}

// buildBatch наполняет новый батч. ok == false, если сборку прервала отмена ctx.
func (s *Streamer) buildBatch(ctx context.Context) (batch *kafka.Batch, fraud int, ok bool) {
	batch = s.producer.NewBatch()
	n := s.batchSize()

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return nil, 0, false
		}

		txn := s.source.Generate(ctx)
		data, err := json.Marshal(txn)
		if err != nil {
			logrus.Errorf("Ошибка сериализации транзакции %s: %v", txn.TransactionID, err)
			continue
		}

		if err := batch.Add(data); err != nil {
			if errors.Is(err, kafka.ErrBatchFull) {
				logrus.Warnf("Батч %s заполнен на %d из %d транзакций", batch.ID(), batch.Len(), n)
				break
			}
			logrus.Errorf("Не удалось добавить транзакцию в батч %s: %v", batch.ID(), err)
			continue
		}
		if txn.IsFraud {
			fraud++
		}
	}
	return batch, fraud, true
}

// sendBatch отправляет батч, повторяя временные ошибки с линейной задержкой.
// Повторно отправляется тот же батч. Возвращает число затраченных попыток.
func (s *Streamer) sendBatch(ctx context.Context, batch *kafka.Batch) (int, error) {
	ctx, span := s.tracer.Start(ctx, "Stream.sendBatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("batch.id", batch.ID()),
		attribute.Int("batch.size", batch.Len()),
	)

	timer := prometheus.NewTimer(metrics.BatchSendDuration)
	defer timer.ObserveDuration()

	var err error
	for attempt := 1; ; attempt++ {
		err = s.producer.SendBatch(ctx, batch)
		if err == nil {
			metrics.BatchesSent.WithLabelValues("success").Inc()
			span.SetAttributes(attribute.Int("batch.attempts", attempt))
			return attempt, nil
		}
		if ctx.Err() != nil {
			return attempt, ctx.Err()
		}
		if !kafka.IsTransient(err) || attempt > s.cfg.MaxRetries {
			break
		}

		metrics.BatchSendRetries.Inc()
		logrus.Warnf("Временная ошибка отправки батча %s (попытка %d из %d): %v", batch.ID(), attempt, s.cfg.MaxRetries+1, err)
		if !sleep(ctx, s.cfg.RetryBackoff*time.Duration(attempt)) {
			return attempt, ctx.Err()
		}
	}

	metrics.BatchesSent.WithLabelValues("failed").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return 0, fmt.Errorf("%w: %w", ErrTransmission, err)
}

// report печатает строку статуса и пишет батч в журнал.
func (s *Streamer) report(ctx context.Context, batch *kafka.Batch, fraud, attempts int) {
	sentAt := s.now().UTC()
	fmt.Fprintf(s.out, "✅ Батч отправлен в %s UTC (%d транзакций, из них фрод: %d)\n", sentAt.Format("15:04:05"), batch.Len(), fraud)
	metrics.BatchSize.Observe(float64(batch.Len()))

	if s.journal == nil {
		return
	}
	record := &model.BatchRecord{
		BatchID:    batch.ID(),
		Size:       batch.Len(),
		FraudCount: fraud,
		Attempts:   attempts,
		SentAt:     sentAt,
	}
	if err := s.journal.SaveBatch(ctx, record); err != nil {
		logrus.Errorf("Не удалось записать батч %s в журнал: %v", batch.ID(), err)
	}
}

// stopped печатает уведомление об остановке.
func (s *Streamer) stopped() error {
	fmt.Fprintln(s.out, "\n⛔ Стриминг остановлен пользователем")
	return nil
}

// batchSize выбирает размер батча из [MinBatch, MaxBatch].
func (s *Streamer) batchSize() int {
	if s.cfg.MaxBatch <= s.cfg.MinBatch {
		return s.cfg.MinBatch
	}
	return s.faker.Number(s.cfg.MinBatch, s.cfg.MaxBatch)
}

// pauseDuration выбирает паузу из [MinPause, MaxPause].
func (s *Streamer) pauseDuration() time.Duration {
	if s.cfg.MaxPause <= s.cfg.MinPause {
		return s.cfg.MinPause
	}
	return time.Duration(s.faker.Float64Range(float64(s.cfg.MinPause), float64(s.cfg.MaxPause)))
}

// sleep ждет d или отмены ctx. Возвращает false, если ctx отменен.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
