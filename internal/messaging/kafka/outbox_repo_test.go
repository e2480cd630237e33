package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxCreateInsertsPendingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)
	event := OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "time_entry_batch",
		AggregateID:   uuid.NewString(),
		EventType:     "time_entry_batch_created",
		Topic:         "labor.time_entry.batch.v1",
		Payload:       []byte(`{"created":3}`),
		Status:        OutboxStatusPending,
	}

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			event.ID, event.RequestID, event.AggregateType,
			event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxCreateRejectsInvalidEvent(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	err = repo.Create(context.Background(), OutboxEvent{
		ID:     uuid.NewString(),
		Topic:  "labor.time_entry.batch.v1",
		Status: OutboxStatusPending,
	})
	assert.EqualError(t, err, "outbox payload is required")
}

func TestOutboxListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "coalesce",
	}).AddRow(
		uuid.NewString(), "employee", uuid.NewString(), "employee_created",
		"labor.employee.lifecycle.v1", []byte(`{}`), OutboxStatusPending, 0, now,
	)

	mock.ExpectQuery("SELECT").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "employee_created", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxMarkFailedBumpsRetry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)
	id := uuid.NewString()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
