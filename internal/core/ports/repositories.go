package ports

import (
	"context"
	"time"

	"condo-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// Methods taking a pgx.Tx run inside the caller's transaction. Where the
// comment says so, a nil tx runs the statement on the pool.

// UserRepository reads users owned by the billing subsystem.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListActiveByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// WalletRepository defines persistence operations for wallets.
type WalletRepository interface {
	// Create returns domain.ErrWalletExists or domain.ErrWalletAddressTaken on constraint violations.
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id int64) (*domain.Wallet, error)
	GetActiveByUserID(ctx context.Context, userID int64) (*domain.Wallet, error)
	// AdjustBalance adds delta in SQL and returns the new balance.
	AdjustBalance(ctx context.Context, tx pgx.Tx, walletID int64, delta int64) (int64, error)
	Deactivate(ctx context.Context, walletID int64) error
}

// TransactionRepository defines persistence operations for payment transactions.
type TransactionRepository interface {
	// Create inserts a pending row. domain.ErrSettlementInFlight when the
	// receipt already has a pending or completed transaction.
	Create(ctx context.Context, txn *domain.PaymentTransaction) error
	GetByID(ctx context.Context, id int64) (*domain.PaymentTransaction, error)
	// RecordProgress stores metadata and, when set, the external transfer id
	// of a row that is still pending.
	RecordProgress(ctx context.Context, id int64, externalTransferID *string, meta domain.TransactionMetadata) error
	// Transition is a compare-and-set on status. domain.ErrStaleTransition
	// when the row is no longer in t.From. Nil tx runs on the pool.
	Transition(ctx context.Context, tx pgx.Tx, t StatusTransition) error
	List(ctx context.Context, params TransactionListParams) ([]domain.PaymentTransaction, int64, error)
	Summary(ctx context.Context, walletID int64) (*WalletSummary, error)
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]domain.PaymentTransaction, error)
}

// StatusTransition moves a transaction from one status to another.
type StatusTransition struct {
	ID                 int64
	From               domain.TransactionStatus
	To                 domain.TransactionStatus
	ExternalTransferID *string // nil keeps the stored value
	Metadata           domain.TransactionMetadata
}

// TransactionListParams holds filter + pagination for listing a wallet's transactions.
type TransactionListParams struct {
	WalletID int64
	Status   *domain.TransactionStatus
	Page     int
	PageSize int
}

// WalletSummary aggregates a wallet's transactions.
type WalletSummary struct {
	WalletID      int64 `json:"wallet_id"`
	Total         int64 `json:"total"`
	Pending       int64 `json:"pending"`
	Completed     int64 `json:"completed"`
	Failed        int64 `json:"failed"`
	SentTotal     int64 `json:"sent_total"`     // completed, as sender
	ReceivedTotal int64 `json:"received_total"` // completed, as receiver
}

// ReceiptRepository reads receipts and records their payment.
type ReceiptRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Receipt, error)
	// MarkPaid returns domain.ErrReceiptAlreadyPaid if the receipt is already paid.
	MarkPaid(ctx context.Context, tx pgx.Tx, id int64, paidAt time.Time) error
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// WebhookRepository persists webhook delivery attempts.
type WebhookRepository interface {
	Create(ctx context.Context, delivery *domain.WebhookDelivery) error
	Update(ctx context.Context, delivery *domain.WebhookDelivery) error
	ListByTransactionID(ctx context.Context, txID int64) ([]domain.WebhookDelivery, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
