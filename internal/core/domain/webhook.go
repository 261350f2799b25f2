package domain

import (
	"time"

	"github.com/google/uuid"
)

// WebhookStatus represents the delivery state of a webhook.
type WebhookStatus string

const (
	WebhookStatusPending   WebhookStatus = "PENDING"
	WebhookStatusDelivered WebhookStatus = "DELIVERED"
	WebhookStatusFailed    WebhookStatus = "FAILED"
)

// WebhookEvent names a settlement outcome pushed to subscribers.
type WebhookEvent string

const (
	EventSettlementCompleted WebhookEvent = "settlement.completed"
	EventSettlementFailed    WebhookEvent = "settlement.failed"
)

// EventFor picks the event matching a transaction's status.
func EventFor(status TransactionStatus) WebhookEvent {
	if status == TransactionStatusCompleted {
		return EventSettlementCompleted
	}
	return EventSettlementFailed
}

// WebhookDelivery records each delivery attempt.
type WebhookDelivery struct {
	ID            uuid.UUID     `json:"id"`
	TransactionID int64         `json:"transaction_id"`
	Event         WebhookEvent  `json:"event"`
	URL           string        `json:"url"`
	Payload       string        `json:"payload"` // JSON string
	HTTPStatus    *int          `json:"http_status"`
	Attempt       int           `json:"attempt"`
	Status        WebhookStatus `json:"status"`
	LastError     *string       `json:"last_error"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
