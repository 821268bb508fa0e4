package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_Add(t *testing.T) {
	b := NewBatch(DefaultMaxBatchBytes)
	assertions := assert.New(t)

	assertions.NoError(b.Add([]byte(`{"n":1}`)))
	assertions.NoError(b.Add([]byte(`{"n":2}`)))

	assertions.Equal(2, b.Len())
	msgs := b.Messages()
	require.Len(t, msgs, 2)
	// Ключ всех сообщений - ID батча
	assertions.Equal(b.ID(), string(msgs[0].Key))
	assertions.Equal(b.ID(), string(msgs[1].Key))
	assertions.Equal(`{"n":2}`, string(msgs[1].Value))
	assertions.Equal("content-type", msgs[0].Headers[0].Key)
}

func TestBatch_Full(t *testing.T) {
	b := NewBatch(100)

	value := make([]byte, 100-len(b.ID()))
	assert.NoError(t, b.Add(value))
	assert.ErrorIs(t, b.Add([]byte("x")), ErrBatchFull)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 100, b.Bytes())
}

func TestBatch_SealedAfterSend(t *testing.T) {
	b := NewBatch(DefaultMaxBatchBytes)
	require.NoError(t, b.Add([]byte("a")))

	b.seal()
	assert.ErrorIs(t, b.Add([]byte("b")), ErrBatchSealed)
	assert.Equal(t, 1, b.Len())
}

func TestBatch_DefaultLimit(t *testing.T) {
	b := NewBatch(0)
	assert.Equal(t, DefaultMaxBatchBytes, b.maxBytes)
}

func TestBatch_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, NewBatch(0).ID(), NewBatch(0).ID())
}

func TestBatch_MessagesIsCopy(t *testing.T) {
	b := NewBatch(0)
	require.NoError(t, b.Add([]byte("a")))

	msgs := b.Messages()
	msgs[0].Value = []byte("changed")
	assert.Equal(t, "a", string(b.Messages()[0].Value))
}
