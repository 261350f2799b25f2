package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionLogin            AuditAction = "LOGIN"
	AuditActionRegisterWallet   AuditAction = "REGISTER_WALLET"
	AuditActionSettlePayment    AuditAction = "SETTLE_PAYMENT"
	AuditActionPayReceipt       AuditAction = "PAY_RECEIPT"
	AuditActionCheckStatus      AuditAction = "CHECK_STATUS"
	AuditActionAdjustBalance    AuditAction = "ADJUST_BALANCE"
	AuditActionDeactivateWallet AuditAction = "DEACTIVATE_WALLET"
)

// AuditLog records a single audited action.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       *int64      `json:"user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
