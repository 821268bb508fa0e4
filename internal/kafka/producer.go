package kafka

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"
	"time"
	"txstream/internal/config"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=producer.go -destination=./mocks/producer_mock.go -package=mocks Producer

// Producer - клиент брокера: создает батчи, отправляет их и освобождает соединение.
type Producer interface {
	NewBatch() *Batch
	SendBatch(ctx context.Context, batch *Batch) error
	Close() error
}

// messageWriter - часть kafka.Writer, которой пользуется продюсер.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// eventHubProducer отправляет батчи в Event Hub через Kafka-протокол.
type eventHubProducer struct {
	writer        messageWriter
	maxBatchBytes int
	tracer        trace.Tracer // Для трассировки

	closeOnce sync.Once
	closeErr  error
}

// NewProducer проверяет параметры подключения и создает продюсер.
// Ошибка параметров фатальна: повторять ее бессмысленно.
func NewProducer(cfg config.EventHubConfig) (Producer, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: не задано имя Event Hub", ErrInvalidConnectionString)
	}
	cs, err := ParseConnectionString(cfg.ConnectionString)
	if err != nil {
		return nil, err
	}
	if cs.EntityPath != "" && cs.EntityPath != cfg.Name {
		return nil, fmt.Errorf("%w: EntityPath %q не совпадает с именем Event Hub %q", ErrInvalidConnectionString, cs.EntityPath, cfg.Name)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cs.BrokerAddr()),
		Topic:        cfg.Name,
		Balancer:     &kafka.Hash{}, // Ключ - ID батча, весь батч уходит в одну партицию
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  1, // Повторы выполняет стример
		BatchTimeout: 10 * time.Millisecond,
		BatchBytes:   int64(cfg.MaxBatchBytes),
		Transport: &kafka.Transport{
			SASL: plain.Mechanism{
				Username: "$ConnectionString",
				Password: cfg.ConnectionString,
			},
			TLS: &tls.Config{MinVersion: tls.VersionTLS12},
		},
	}

	// Локальная Kafka: без SASL, TLS по настройке
	if len(cfg.Brokers) > 0 {
		writer.Addr = kafka.TCP(cfg.Brokers...)
		transport := &kafka.Transport{}
		if cfg.TLS {
			transport.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		writer.Transport = transport
	}

	logrus.Infof("Продюсер Event Hub создан: namespace=%s, hub=%s", cs.Namespace, cfg.Name)

	return &eventHubProducer{
		writer:        writer,
		maxBatchBytes: cfg.MaxBatchBytes,
		tracer:        otel.Tracer("eventhub-producer"),
	}, nil
}

// NewBatch возвращает пустой батч с лимитом продюсера.
func (p *eventHubProducer) NewBatch() *Batch {
	return NewBatch(p.maxBatchBytes)
}

// SendBatch отправляет батч целиком. После первой попытки батч запечатан,
// поэтому повторная отправка того же батча безопасна.
func (p *eventHubProducer) SendBatch(ctx context.Context, batch *Batch) error {
	ctx, span := p.tracer.Start(ctx, "Producer.SendBatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("batch.id", batch.ID()),
		attribute.Int("batch.size", batch.Len()),
	)

	batch.seal()
	if batch.Len() == 0 {
		return nil
	}

	if err := p.writer.WriteMessages(ctx, batch.messages...); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return fmt.Errorf("ошибка отправки батча %s: %w", batch.ID(), err)
	}
	return nil
}

// Close освобождает соединение. Повторные вызовы возвращают результат первого.
func (p *eventHubProducer) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.writer.Close()
		if p.closeErr != nil {
			logrus.Errorf("Ошибка закрытия Kafka writer: %v", p.closeErr)
		}
	})
	return p.closeErr
}
