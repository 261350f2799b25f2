package domain

import "errors"

// Sentinel errors returned by repositories when a constraint or a
// compare-and-set rejects a write.
var (
	ErrWalletExists       = errors.New("user already has an active wallet")
	ErrWalletAddressTaken = errors.New("wallet address already registered")
	ErrSettlementInFlight = errors.New("receipt already has a pending or completed transaction")
	ErrStaleTransition    = errors.New("transaction status changed concurrently")
	ErrReceiptAlreadyPaid = errors.New("receipt already paid")
	ErrLockHeld           = errors.New("settlement lease held by another attempt")
)
