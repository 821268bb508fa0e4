package kafka

import (
	"context"
	"errors"
	"testing"
	"txstream/internal/config"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

// fakeWriter запоминает отправленные сообщения вместо сети
type fakeWriter struct {
	writes [][]kafka.Message
	err    error
	closed int
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.writes = append(w.writes, msgs)
	return w.err
}

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

func newTestProducer(w messageWriter) *eventHubProducer {
	return &eventHubProducer{
		writer:        w,
		maxBatchBytes: DefaultMaxBatchBytes,
		tracer:        otel.Tracer("test-tracer"),
	}
}

func TestNewProducer_Valid(t *testing.T) {
	p, err := NewProducer(config.EventHubConfig{
		ConnectionString: testConnStr,
		Name:             "transactions",
		MaxBatchBytes:    DefaultMaxBatchBytes,
	})
	require.NoError(t, err)

	ehp := p.(*eventHubProducer)
	w := ehp.writer.(*kafka.Writer)
	assert.Equal(t, "transactions", w.Topic)
	assert.Equal(t, "txns.servicebus.windows.net:9093", w.Addr.String())

	transport := w.Transport.(*kafka.Transport)
	assert.NotNil(t, transport.SASL)
	assert.NotNil(t, transport.TLS)

	assert.NoError(t, p.Close())
}

func TestNewProducer_BrokerOverride(t *testing.T) {
	p, err := NewProducer(config.EventHubConfig{
		ConnectionString: testConnStr,
		Name:             "transactions",
		Brokers:          []string{"localhost:9092"},
		TLS:              false,
		MaxBatchBytes:    DefaultMaxBatchBytes,
	})
	require.NoError(t, err)

	w := p.(*eventHubProducer).writer.(*kafka.Writer)
	assert.Equal(t, "localhost:9092", w.Addr.String())
	transport := w.Transport.(*kafka.Transport)
	assert.Nil(t, transport.SASL)
	assert.Nil(t, transport.TLS)
}

func TestNewProducer_ConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.EventHubConfig
	}{
		{"нет имени", config.EventHubConfig{ConnectionString: testConnStr}},
		{"битая строка", config.EventHubConfig{ConnectionString: "not-a-connection-string", Name: "transactions"}},
		{"чужой EntityPath", config.EventHubConfig{ConnectionString: testConnStr + ";EntityPath=other", Name: "transactions"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProducer(tc.cfg)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrInvalidConnectionString)
		})
	}
}

func TestProducer_SendBatch(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)

	batch := p.NewBatch()
	require.NoError(t, batch.Add([]byte("a")))
	require.NoError(t, batch.Add([]byte("b")))

	require.NoError(t, p.SendBatch(context.Background(), batch))
	require.Len(t, w.writes, 1)
	assert.Len(t, w.writes[0], 2)

	// Отправленный батч запечатан
	assert.ErrorIs(t, batch.Add([]byte("c")), ErrBatchSealed)

	// Повторная отправка того же батча отправляет те же сообщения
	require.NoError(t, p.SendBatch(context.Background(), batch))
	assert.Equal(t, w.writes[0], w.writes[1])
}

func TestProducer_SendEmptyBatch(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)

	assert.NoError(t, p.SendBatch(context.Background(), p.NewBatch()))
	assert.Empty(t, w.writes)
}

func TestProducer_SendBatchError(t *testing.T) {
	w := &fakeWriter{err: kafka.LeaderNotAvailable}
	p := newTestProducer(w)

	batch := p.NewBatch()
	require.NoError(t, batch.Add([]byte("a")))

	err := p.SendBatch(context.Background(), batch)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, kafka.LeaderNotAvailable))
	assert.True(t, IsTransient(err))
}

func TestProducer_CloseOnce(t *testing.T) {
	w := &fakeWriter{}
	p := newTestProducer(w)

	assert.NoError(t, p.Close())
	assert.NoError(t, p.Close())
	assert.Equal(t, 1, w.closed)
}
