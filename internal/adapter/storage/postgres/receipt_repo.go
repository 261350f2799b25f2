package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"condo-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ReceiptRepo implements ports.ReceiptRepository.
type ReceiptRepo struct {
	pool Pool
}

// NewReceiptRepo creates a new ReceiptRepo.
func NewReceiptRepo(pool Pool) *ReceiptRepo {
	return &ReceiptRepo{pool: pool}
}

// GetByID fetches a receipt by id. Returns nil, nil when absent.
func (r *ReceiptRepo) GetByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	query := `SELECT id, number, concept, amount, due_date, status, paid_at, domicile_id
		FROM receipts WHERE id = $1`

	rc := &domain.Receipt{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rc.ID, &rc.Number, &rc.Concept, &rc.Amount, &rc.DueDate,
		&rc.Status, &rc.PaidAt, &rc.DomicileID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt by id: %w", err)
	}
	return rc, nil
}

// MarkPaid moves the receipt to paid. It refuses to touch a receipt that is
// already paid (or missing) and reports domain.ErrReceiptAlreadyPaid.
func (r *ReceiptRepo) MarkPaid(ctx context.Context, tx pgx.Tx, id int64, paidAt time.Time) error {
	query := `UPDATE receipts SET status = 'paid', paid_at = $1 WHERE id = $2 AND status <> 'paid'`

	tag, err := pick(r.pool, tx).Exec(ctx, query, paidAt, id)
	if err != nil {
		return fmt.Errorf("mark receipt paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReceiptAlreadyPaid
	}
	return nil
}
