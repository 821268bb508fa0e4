package kafka

import (
	"errors"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrBatchFull - сообщение не помещается в лимит батча.
	ErrBatchFull = errors.New("батч заполнен")
	// ErrBatchSealed - батч уже отправлялся и не может меняться.
	ErrBatchSealed = errors.New("батч уже отправлен")
)

// DefaultMaxBatchBytes - лимит размера батча Event Hubs (1 МиБ).
const DefaultMaxBatchBytes = 1 << 20

var jsonHeader = kafka.Header{Key: "content-type", Value: []byte("application/json")}

// Batch - атомарная группа сообщений для одной отправки.
// Все сообщения несут ID батча как ключ и попадают в одну партицию.
type Batch struct {
	id       string
	messages []kafka.Message
	size     int
	maxBytes int
	sealed   bool
}

// NewBatch создает пустой батч с лимитом maxBytes.
func NewBatch(maxBytes int) *Batch {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBatchBytes
	}
	return &Batch{
		id:       uuid.New().String(),
		maxBytes: maxBytes,
	}
}

// Add добавляет сообщение в батч.
func (b *Batch) Add(value []byte) error {
	if b.sealed {
		return ErrBatchSealed
	}
	n := len(b.id) + len(value)
	if b.size+n > b.maxBytes {
		return ErrBatchFull
	}
	b.messages = append(b.messages, kafka.Message{
		Key:     []byte(b.id),
		Value:   value,
		Headers: []kafka.Header{jsonHeader},
	})
	b.size += n
	return nil
}

// ID возвращает идентификатор батча.
func (b *Batch) ID() string { return b.id }

// Len возвращает количество сообщений.
func (b *Batch) Len() int { return len(b.messages) }

// Bytes возвращает учтенный размер батча.
func (b *Batch) Bytes() int { return b.size }

// Messages возвращает копию сообщений батча.
func (b *Batch) Messages() []kafka.Message {
	out := make([]kafka.Message, len(b.messages))
	copy(out, b.messages)
	return out
}

func (b *Batch) seal() { b.sealed = true }
