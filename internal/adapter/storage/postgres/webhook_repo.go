package postgres

import (
	"context"
	"fmt"
	"time"

	"condo-settlement/internal/core/domain"
)

// WebhookRepo implements ports.WebhookRepository.
type WebhookRepo struct {
	pool Pool
}

// NewWebhookRepo creates a new WebhookRepo.
func NewWebhookRepo(pool Pool) *WebhookRepo {
	return &WebhookRepo{pool: pool}
}

// Create inserts a webhook delivery attempt.
func (r *WebhookRepo) Create(ctx context.Context, d *domain.WebhookDelivery) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO webhook_deliveries
		 (id, transaction_id, event, url, payload, http_status, attempt, status, last_error, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID, d.TransactionID, d.Event, d.URL, d.Payload,
		d.HTTPStatus, d.Attempt, d.Status, d.LastError, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook delivery: %w", err)
	}
	return nil
}

// Update records the outcome of a delivery attempt.
func (r *WebhookRepo) Update(ctx context.Context, d *domain.WebhookDelivery) error {
	d.UpdatedAt = time.Now()
	_, err := r.pool.Exec(ctx,
		`UPDATE webhook_deliveries
		 SET http_status = $1, attempt = $2, status = $3, last_error = $4, updated_at = $5
		 WHERE id = $6`,
		d.HTTPStatus, d.Attempt, d.Status, d.LastError, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update webhook delivery: %w", err)
	}
	return nil
}

// ListByTransactionID returns the deliveries of a transaction, newest first.
func (r *WebhookRepo) ListByTransactionID(ctx context.Context, txID int64) ([]domain.WebhookDelivery, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, transaction_id, event, url, payload, http_status, attempt, status, last_error, created_at, updated_at
		 FROM webhook_deliveries
		 WHERE transaction_id = $1
		 ORDER BY created_at DESC`, txID)
	if err != nil {
		return nil, fmt.Errorf("list webhook deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.WebhookDelivery
	for rows.Next() {
		var d domain.WebhookDelivery
		if err := rows.Scan(
			&d.ID, &d.TransactionID, &d.Event, &d.URL, &d.Payload,
			&d.HTTPStatus, &d.Attempt, &d.Status, &d.LastError, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}
