package postgres

import (
	"context"
	"testing"
	"time"

	"condo-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	due := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM receipts WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "number", "concept", "amount", "due_date", "status", "paid_at", "domicile_id"}).
			AddRow(int64(5), "R-2026-005", domain.ConceptElectricity, int64(10000), due, domain.ReceiptStatusPending, (*time.Time)(nil), int64(2)))

	r, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "R-2026-005", r.Number)
	assert.Equal(t, int64(10000), r.Amount)
	assert.Nil(t, r.PaidAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM receipts WHERE id").
		WithArgs(int64(5)).
		WillReturnError(pgx.ErrNoRows)

	r, err := repo.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, r)
}

func TestReceiptRepo_MarkPaid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	paidAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE receipts SET status = 'paid'").
		WithArgs(paidAt, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.MarkPaid(context.Background(), tx, 5, paidAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReceiptRepo_MarkPaid_AlreadyPaid(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReceiptRepo(mock)
	paidAt := time.Now().UTC()

	mock.ExpectExec("UPDATE receipts SET status = 'paid'").
		WithArgs(paidAt, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.MarkPaid(context.Background(), nil, 5, paidAt)
	assert.ErrorIs(t, err, domain.ErrReceiptAlreadyPaid)
}
