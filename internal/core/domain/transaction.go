package domain

import (
	"strconv"
	"strings"
	"time"
)

// TransactionStatus is the lifecycle state of a payment transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	// TransactionStatusCancelled is reserved for an administrative flow; nothing sets it.
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted,
		TransactionStatusFailed, TransactionStatusCancelled:
		return true
	}
	return false
}

// PaymentTransaction records one settlement attempt for a receipt.
type PaymentTransaction struct {
	ID                 int64               `json:"id"`
	ReceiptID          int64               `json:"receipt_id"`
	SenderWalletID     int64               `json:"sender_wallet_id"`
	ReceiverWalletID   int64               `json:"receiver_wallet_id"`
	Amount             int64               `json:"amount"` // minor units
	AssetCode          string              `json:"asset_code"`
	AssetScale         int                 `json:"asset_scale"`
	PaymentPointer     string              `json:"payment_pointer"` // receiver address at creation time
	ExternalTransferID *string             `json:"external_transfer_id,omitempty"`
	Status             TransactionStatus   `json:"status"`
	Metadata           TransactionMetadata `json:"metadata"`
	Description        string              `json:"description"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// IsTerminal reports whether the settlement flow is finished with this row.
// Reconciliation can still flip completed and failed.
func (t *PaymentTransaction) IsTerminal() bool {
	return t.Status != TransactionStatusPending
}

// Applied reports whether balances and the receipt were already updated for this row.
func (t *PaymentTransaction) Applied() bool {
	return t.Metadata.AppliedAt != nil
}

// TransactionMetadata is keyed by the furthest stage that succeeded. Ids of
// external resources created along the way are kept even on failure so an
// operator can find orphaned reservations and quotes.
type TransactionMetadata struct {
	Stage             Stage           `json:"stage"`
	IncomingPaymentID string          `json:"incomingPaymentId,omitempty"`
	QuoteID           string          `json:"quoteId,omitempty"`
	ProcessedAt       *time.Time      `json:"processedAt,omitempty"`
	AppliedAt         *time.Time      `json:"appliedAt,omitempty"`
	Failure           *StageFailure   `json:"failure,omitempty"`
	Reconciliation    *Reconciliation `json:"reconciliation,omitempty"`
}

// StageFailure describes why an attempt stopped.
type StageFailure struct {
	Stage    Stage     `json:"stage"`
	Code     ErrorCode `json:"code"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failedAt"`
}

// Reconciliation is the last status check against the payment network.
type Reconciliation struct {
	ObservedState  string            `json:"observedState"`
	PreviousStatus TransactionStatus `json:"previousStatus"`
	Diverged       bool              `json:"diverged"`
	CheckedAt      time.Time         `json:"checkedAt"`
}

// FormatAmount renders minor units as a decimal string, e.g. 10000 at scale 2 is "100.00".
func FormatAmount(minor int64, scale int) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	s := strconv.FormatInt(minor, 10)
	if scale > 0 {
		if len(s) <= scale {
			s = strings.Repeat("0", scale-len(s)+1) + s
		}
		s = s[:len(s)-scale] + "." + s[len(s)-scale:]
	}
	if neg {
		return "-" + s
	}
	return s
}
