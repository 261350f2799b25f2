package dto

import (
	"time"

	"condo-settlement/internal/core/domain"
)

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,max=128" sanitize:"-"`
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token  string       `json:"token"`
	Expiry int64        `json:"expiry"` // Unix timestamp
	User   UserResponse `json:"user"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ToUserResponse converts a domain.User into its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

// SettleRequest is the request body for POST /settlements. Without a payee
// the receipt is paid to the treasurer at its billed amount.
type SettleRequest struct {
	ReceiptID   int64  `json:"receiptId" binding:"required,gt=0"`
	PayerUserID int64  `json:"payerUserId" binding:"required,gt=0"`
	PayeeUserID int64  `json:"payeeUserId,omitempty" binding:"omitempty,gt=0"`
	Amount      int64  `json:"amount,omitempty" binding:"required_with=PayeeUserID,omitempty,gt=0"`
	Description string `json:"description,omitempty" binding:"max=255"`
}

// PayReceiptRequest is the request body for PUT /receipts/:id/pay.
type PayReceiptRequest struct {
	UserID     int64   `json:"userId" binding:"required,gt=0"`
	WalletCode *string `json:"walletCode,omitempty" binding:"omitempty,wallet_url" sanitize:"trim"`
}

// RegisterWalletRequest is the request body for POST /wallets.
type RegisterWalletRequest struct {
	UserID        int64   `json:"userId" binding:"required,gt=0"`
	WalletAddress string  `json:"walletAddress" binding:"required,max=512,wallet_url" sanitize:"trim"`
	PublicKey     string  `json:"publicKey" binding:"required,max=2048" sanitize:"trim"`
	AccessToken   *string `json:"accessToken,omitempty" binding:"omitempty,max=4096" sanitize:"-"`
}

// ValidateWalletRequest is the request body for POST /wallets/validate.
type ValidateWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required,max=512" sanitize:"trim"`
}

// AdjustBalanceRequest is the request body for POST /wallets/:walletId/balance-adjustments.
type AdjustBalanceRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

type BalanceResponse struct {
	WalletID int64 `json:"walletId"`
	Balance  int64 `json:"balance"`
}

// WalletResponse never carries the sealed grant token.
type WalletResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	WalletAddress string `json:"walletAddress"`
	PublicKey     string `json:"publicKey"`
	Balance       int64  `json:"balance"`
	IsActive      bool   `json:"isActive"`
	HasGrant      bool   `json:"hasGrant"`
	CreatedAt     string `json:"createdAt"`
}

// ToWalletResponse converts a domain.Wallet into its API representation.
// The sealed grant token is only reported as present or absent.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:            w.ID,
		UserID:        w.UserID,
		WalletAddress: w.WalletAddress,
		PublicKey:     w.PublicKey,
		Balance:       w.Balance,
		IsActive:      w.IsActive,
		HasGrant:      w.AccessTokenEnc != nil && *w.AccessTokenEnc != "",
		CreatedAt:     w.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// TransactionQuery binds GET /transactions and GET /wallets/:walletId/transactions.
type TransactionQuery struct {
	WalletID int64  `form:"walletId" binding:"omitempty,gt=0"`
	Status   string `form:"status" binding:"omitempty,oneof=pending completed failed cancelled"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

// TransactionResponse renders a payment transaction with its amount
// formatted at the asset scale.
type TransactionResponse struct {
	ID                 int64                      `json:"id"`
	ReceiptID          int64                      `json:"receiptId"`
	SenderWalletID     int64                      `json:"senderWalletId"`
	ReceiverWalletID   int64                      `json:"receiverWalletId"`
	Amount             int64                      `json:"amount"`
	AmountFormatted    string                     `json:"amountFormatted"`
	AssetCode          string                     `json:"assetCode"`
	AssetScale         int                        `json:"assetScale"`
	PaymentPointer     string                     `json:"paymentPointer"`
	ExternalTransferID *string                    `json:"externalTransferId,omitempty"`
	Status             string                     `json:"status"`
	Description        string                     `json:"description,omitempty"`
	Metadata           domain.TransactionMetadata `json:"metadata"`
	CreatedAt          string                     `json:"createdAt"`
	UpdatedAt          string                     `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.PaymentTransaction into its API representation.
func ToTransactionResponse(t *domain.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                 t.ID,
		ReceiptID:          t.ReceiptID,
		SenderWalletID:     t.SenderWalletID,
		ReceiverWalletID:   t.ReceiverWalletID,
		Amount:             t.Amount,
		AmountFormatted:    domain.FormatAmount(t.Amount, t.AssetScale),
		AssetCode:          t.AssetCode,
		AssetScale:         t.AssetScale,
		PaymentPointer:     t.PaymentPointer,
		ExternalTransferID: t.ExternalTransferID,
		Status:             string(t.Status),
		Description:        t.Description,
		Metadata:           t.Metadata,
		CreatedAt:          t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ToTransactionResponses converts a page of transactions.
func ToTransactionResponses(txns []domain.PaymentTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, ToTransactionResponse(&txns[i]))
	}
	return out
}
