package postgres

import (
	"context"
	"testing"
	"time"

	"condo-settlement/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookRepo_CreateAndUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookRepo(mock)
	now := time.Now().UTC()
	d := &domain.WebhookDelivery{
		ID:            uuid.New(),
		TransactionID: 21,
		Event:         domain.EventSettlementCompleted,
		URL:           "https://hooks.example.com",
		Payload:       `{"event":"settlement.completed"}`,
		Status:        domain.WebhookStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO webhook_deliveries").
		WithArgs(d.ID, d.TransactionID, d.Event, d.URL, d.Payload,
			d.HTTPStatus, d.Attempt, d.Status, d.LastError, d.CreatedAt, d.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, repo.Create(context.Background(), d))

	status := 200
	d.HTTPStatus = &status
	d.Attempt = 1
	d.Status = domain.WebhookStatusDelivered

	mock.ExpectExec("UPDATE webhook_deliveries").
		WithArgs(&status, 1, domain.WebhookStatusDelivered, d.LastError, pgxmock.AnyArg(), d.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.Update(context.Background(), d))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWebhookRepo_ListByTransactionID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWebhookRepo(mock)
	now := time.Now().UTC()
	id := uuid.New()
	status := 500
	lastErr := "upstream down"

	mock.ExpectQuery("SELECT .+ FROM webhook_deliveries").
		WithArgs(int64(21)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "transaction_id", "event", "url", "payload",
			"http_status", "attempt", "status", "last_error", "created_at", "updated_at"}).
			AddRow(id, int64(21), domain.EventSettlementFailed, "https://hooks.example.com", "{}",
				&status, 3, domain.WebhookStatusFailed, &lastErr, now, now))

	got, err := repo.ListByTransactionID(context.Background(), 21)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.WebhookStatusFailed, got[0].Status)
	assert.Equal(t, 500, *got[0].HTTPStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
