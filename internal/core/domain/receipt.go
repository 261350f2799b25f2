package domain

import (
	"fmt"
	"time"
)

// ReceiptStatus is the billing state of a receipt.
type ReceiptStatus string

const (
	ReceiptStatusPending ReceiptStatus = "pending"
	ReceiptStatusPaid    ReceiptStatus = "paid"
	ReceiptStatusOverdue ReceiptStatus = "overdue"
)

// ReceiptConcept is the utility a receipt bills.
type ReceiptConcept string

const (
	ConceptElectricity ReceiptConcept = "electricity"
	ConceptWater       ReceiptConcept = "water"
)

// Receipt is owned by billing. Settlement is the only writer of the paid transition.
type Receipt struct {
	ID         int64          `json:"id"`
	Number     string         `json:"number"`
	Concept    ReceiptConcept `json:"concept"`
	Amount     int64          `json:"amount"`
	DueDate    time.Time      `json:"due_date"`
	Status     ReceiptStatus  `json:"status"`
	PaidAt     *time.Time     `json:"paid_at,omitempty"`
	DomicileID int64          `json:"domicile_id"`
}

func (r *Receipt) IsPaid() bool {
	return r.Status == ReceiptStatusPaid
}

// PaymentDescription is the text attached to the incoming payment on the
// treasurer's side.
func (r *Receipt) PaymentDescription() string {
	return fmt.Sprintf("Payment for %s - Receipt %s", r.Concept, r.Number)
}
