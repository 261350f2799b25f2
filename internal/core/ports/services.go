package ports

import (
	"context"
	"time"

	"condo-settlement/internal/core/domain"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID int64, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID int64
	Role   domain.Role
}

// SettlementLock is a short lease keyed by receipt id.
type SettlementLock interface {
	// Acquire returns the lease token, or domain.ErrLockHeld when another
	// attempt owns the lease.
	Acquire(ctx context.Context, receiptID int64, ttl time.Duration) (string, error)
	// Release drops the lease only if token still owns it.
	Release(ctx context.Context, receiptID int64, token string) error
}

// AddressCache caches wallet address documents published by the network.
type AddressCache interface {
	Get(ctx context.Context, address string) (*domain.WalletAddressInfo, error) // nil on miss
	Set(ctx context.Context, address string, info *domain.WalletAddressInfo, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// WalletRegistry owns wallet records and the local balance estimate.
type WalletRegistry interface {
	RegisterWallet(ctx context.Context, req RegisterWalletRequest) (*domain.Wallet, error)
	ValidateAddress(ctx context.Context, address string) (*AddressValidation, error)
	GetWallet(ctx context.Context, walletID int64) (*domain.Wallet, error)
	// GetWalletForUser returns nil, nil when the user has no active wallet.
	GetWalletForUser(ctx context.Context, userID int64) (*domain.Wallet, error)
	GetTreasurerWallet(ctx context.Context) (*domain.Wallet, error)
	AdjustBalance(ctx context.Context, walletID int64, delta int64) (int64, error)
	DeactivateWallet(ctx context.Context, walletID int64) error
}

// RegisterWalletRequest holds validated input for wallet registration.
type RegisterWalletRequest struct {
	UserID        int64
	WalletAddress string
	PublicKey     string
	AccessToken   *string // optional grant token, sealed before storage
}

// AddressValidation is the result of checking an address against the network.
type AddressValidation struct {
	IsValid    bool                      `json:"isValid"`
	WalletInfo *domain.WalletAddressInfo `json:"walletInfo,omitempty"`
}

// SettlementService drives a receipt payment through the payment network.
// Failures are reported in the result, never as a Go error.
type SettlementService interface {
	SettlePayment(ctx context.Context, req SettleRequest) *domain.SettlementResult
	PayReceipt(ctx context.Context, req PayReceiptRequest) *domain.SettlementResult
	CheckStatus(ctx context.Context, transactionID int64) (*StatusCheck, error)
}

// SettleRequest holds the parties and amount of one settlement.
type SettleRequest struct {
	ReceiptID   int64
	PayerUserID int64
	PayeeUserID int64
	Amount      int64
	Description string
	AssetCode   string // empty uses the configured asset
	AssetScale  int
}

// PayReceiptRequest settles a receipt to the treasurer.
type PayReceiptRequest struct {
	ReceiptID     int64
	PayerUserID   int64
	WalletAddress *string // when set must match the payer's active wallet
}

// StatusCheck is the outcome of reconciling one transaction with the network.
type StatusCheck struct {
	Success      bool                       `json:"success"`
	LocalStatus  domain.TransactionStatus   `json:"localStatus"`
	GatewayState string                     `json:"gatewayState"`
	Changed      bool                       `json:"changed"`
	Transaction  *domain.PaymentTransaction `json:"transaction"`
}

// LedgerService is read access to transaction history.
type LedgerService interface {
	ListTransactions(ctx context.Context, params TransactionListParams) ([]domain.PaymentTransaction, int64, error)
	GetTransaction(ctx context.Context, id int64) (*domain.PaymentTransaction, error)
	Summary(ctx context.Context, walletID int64) (*WalletSummary, error)
}

// AuthService defines authentication business logic.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
}

// LoginResult carries the issued token.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// WebhookService pushes settlement outcomes to the configured endpoint.
type WebhookService interface {
	NotifySettlement(ctx context.Context, txn *domain.PaymentTransaction) error
}
