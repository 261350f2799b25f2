package service

import (
	"context"
	"fmt"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
	"condo-settlement/pkg/apperror"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ledgerService implements ports.LedgerService. It only reads.
type ledgerService struct {
	txRepo     ports.TransactionRepository
	walletRepo ports.WalletRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(txRepo ports.TransactionRepository, walletRepo ports.WalletRepository) ports.LedgerService {
	return &ledgerService{
		txRepo:     txRepo,
		walletRepo: walletRepo,
	}
}

// ListTransactions returns a page of the transactions where the wallet is
// sender or receiver, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, params ports.TransactionListParams) ([]domain.PaymentTransaction, int64, error) {
	if params.WalletID <= 0 {
		return nil, 0, apperror.Validation("walletId is required")
	}
	if params.Status != nil && !params.Status.Valid() {
		return nil, 0, apperror.Validation(fmt.Sprintf("invalid status %q", *params.Status))
	}
	if params.Page < 1 {
		params.Page = 1
	}
	switch {
	case params.PageSize < 1:
		params.PageSize = defaultPageSize
	case params.PageSize > maxPageSize:
		params.PageSize = maxPageSize
	}

	txns, total, err := s.txRepo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return txns, total, nil
}

// GetTransaction fetches one transaction or TXN_001.
func (s *ledgerService) GetTransaction(ctx context.Context, id int64) (*domain.PaymentTransaction, error) {
	txn, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if txn == nil {
		return nil, apperror.ErrTransactionNotFound()
	}
	return txn, nil
}

// Summary aggregates a wallet's transactions by status.
func (s *ledgerService) Summary(ctx context.Context, walletID int64) (*ports.WalletSummary, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrWalletNotFound()
	}

	summary, err := s.txRepo.Summary(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return summary, nil
}
