package database

import (
	"context"
	"errors"
	"testing"
	"time"
	"txstream/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
)

// helperTestRecord - запись журнала для тестов
var helperTestRecord = model.BatchRecord{
	BatchID:    "b563feb7-b2b8-4b6f-807c-9b63a11e81b9",
	Size:       12,
	FraudCount: 1,
	Attempts:   2,
	SentAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
}

// setupJournalWithMock настраивает postgresJournal с моком sqlx.DB
func setupJournalWithMock(t *testing.T) (Journal, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("не удалось создать sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(db, "postgres")

	journal := &postgresJournal{
		db:     sqlxDB,
		tracer: otel.Tracer("postgres-journal-test"),
	}
	return journal, mock
}

func TestPostgresJournal_Close(t *testing.T) {
	journal, mock := setupJournalWithMock(t)

	mock.ExpectClose()

	err := journal.Close()
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_Close_Error(t *testing.T) {
	journal, mock := setupJournalWithMock(t)
	mockErr := errors.New("close error")

	mock.ExpectClose().WillReturnError(mockErr)

	err := journal.Close()
	assert.Error(t, err)
	assert.Equal(t, mockErr, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_SaveBatch_Success(t *testing.T) {
	journal, mock := setupJournalWithMock(t)
	record := helperTestRecord

	mock.ExpectExec(`INSERT INTO batches`).
		WithArgs(record.BatchID, record.Size, record.FraudCount, record.Attempts, record.SentAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := journal.SaveBatch(context.Background(), &record)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_SaveBatch_Error(t *testing.T) {
	journal, mock := setupJournalWithMock(t)
	record := helperTestRecord
	mockErr := errors.New("insert error")

	mock.ExpectExec(`INSERT INTO batches`).WillReturnError(mockErr)

	err := journal.SaveBatch(context.Background(), &record)
	assert.Error(t, err)
	assert.ErrorIs(t, err, mockErr)
	assert.Contains(t, err.Error(), "ошибка сохранения батча")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_RecentBatches_Success(t *testing.T) {
	journal, mock := setupJournalWithMock(t)
	record := helperTestRecord

	rows := sqlmock.NewRows([]string{"batch_id", "size", "fraud_count", "attempts", "sent_at"}).
		AddRow(record.BatchID, record.Size, record.FraudCount, record.Attempts, record.SentAt).
		AddRow("0f0e7c4a-4c1d-4a53-9a55-6f2f3c1d9e11", 5, 0, 1, record.SentAt.Add(-time.Second))

	mock.ExpectQuery(`SELECT batch_id, size, fraud_count, attempts, sent_at FROM batches`).
		WithArgs(2).
		WillReturnRows(rows)

	records, err := journal.RecentBatches(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, record, records[0])
	assert.Equal(t, 5, records[1].Size)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_RecentBatches_Empty(t *testing.T) {
	journal, mock := setupJournalWithMock(t)

	mock.ExpectQuery(`SELECT batch_id`).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"batch_id", "size", "fraud_count", "attempts", "sent_at"}))

	records, err := journal.RecentBatches(context.Background(), 20)
	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresJournal_RecentBatches_Error(t *testing.T) {
	journal, mock := setupJournalWithMock(t)

	mock.ExpectQuery(`SELECT batch_id`).WillReturnError(errors.New("query error"))

	records, err := journal.RecentBatches(context.Background(), 20)
	assert.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "не удалось получить журнал батчей")
	assert.NoError(t, mock.ExpectationsWereMet())
}
