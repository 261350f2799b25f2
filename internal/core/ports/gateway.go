package ports

import (
	"context"

	"condo-settlement/internal/core/domain"
)

// PaymentGateway is the contract settlement needs from the payment network.
// Each call may fail independently; nothing is rolled back by the gateway.
// An empty AccessToken means the gateway's configured default grant.
type PaymentGateway interface {
	ValidateAddress(ctx context.Context, address string) (bool, error)
	// GetAddressInfo returns nil, nil when the address is unknown.
	GetAddressInfo(ctx context.Context, address string) (*domain.WalletAddressInfo, error)
	ReserveIncoming(ctx context.Context, req ReserveRequest) (*IncomingReservation, error)
	QuoteTransfer(ctx context.Context, req QuoteRequest) (*Quote, error)
	ExecuteTransfer(ctx context.Context, req ExecuteRequest) (*OutgoingTransfer, error)
	GetTransferStatus(ctx context.Context, transferID, address, accessToken string) (*TransferStatus, error)
}

// ReserveRequest asks the receiver's side to accept an amount.
type ReserveRequest struct {
	ReceiverAddress string
	Amount          int64
	AssetCode       string
	AssetScale      int
	Description     string
	AccessToken     string
}

type IncomingReservation struct {
	ID            string
	WalletAddress string
	Amount        int64
	Completed     bool
}

// QuoteRequest prices a transfer from the sender against a reservation.
type QuoteRequest struct {
	SenderAddress string
	ReservationID string
	Amount        int64
	AssetCode     string
	AssetScale    int
	AccessToken   string
}

type Quote struct {
	ID            string
	DebitAmount   int64
	ReceiveAmount int64
}

// ExecuteRequest commits funds against a quote.
type ExecuteRequest struct {
	SenderAddress string
	QuoteID       string
	AccessToken   string
}

type OutgoingTransfer struct {
	ID     string
	State  string
	Failed bool
}

// Transfer states reported by the gateway. Only TransferStateCompleted maps
// to a completed local transaction.
const (
	TransferStatePending   = "PENDING"
	TransferStateCompleted = "COMPLETED"
	TransferStateFailed    = "FAILED"
)

type TransferStatus struct {
	ID         string
	State      string
	SentAmount int64
}
