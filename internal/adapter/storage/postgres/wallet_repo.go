package postgres

import (
	"context"
	"errors"
	"fmt"

	"condo-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, user_id, wallet_address, public_key, access_token_enc, balance, is_active, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts an active wallet and fills in its id and timestamps.
// The partial unique index on active wallets is the final word on
// one-active-wallet-per-user.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (user_id, wallet_address, public_key, access_token_enc, balance, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		w.UserID, w.WalletAddress, w.PublicKey, w.AccessTokenEnc, w.Balance, w.IsActive,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if name, ok := uniqueViolation(err); ok {
			switch name {
			case constraintActiveWallet:
				return domain.ErrWalletExists
			case constraintWalletAddress:
				return domain.ErrWalletAddressTaken
			}
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by id, active or not. Returns nil, nil when absent.
func (r *WalletRepo) GetByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	return scanWallet(r.pool.QueryRow(ctx, query, id))
}

// GetActiveByUserID returns nil, nil when the user has no active wallet.
func (r *WalletRepo) GetActiveByUserID(ctx context.Context, userID int64) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 AND is_active`
	return scanWallet(r.pool.QueryRow(ctx, query, userID))
}

// AdjustBalance applies delta with a single UPDATE so concurrent settlements
// crediting the same wallet never lose an update. Nil tx runs on the pool.
func (r *WalletRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, walletID int64, delta int64) (int64, error) {
	query := `UPDATE wallets SET balance = balance + $1, updated_at = now() WHERE id = $2 RETURNING balance`

	var balance int64
	err := pick(r.pool, tx).QueryRow(ctx, query, delta, walletID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("adjust balance: wallet %d not found", walletID)
		}
		return 0, fmt.Errorf("adjust balance: %w", err)
	}
	return balance, nil
}

// Deactivate clears the active flag. Deactivating an inactive wallet is a no-op.
func (r *WalletRepo) Deactivate(ctx context.Context, walletID int64) error {
	query := `UPDATE wallets SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`

	if _, err := r.pool.Exec(ctx, query, walletID); err != nil {
		return fmt.Errorf("deactivate wallet: %w", err)
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.WalletAddress, &w.PublicKey, &w.AccessTokenEnc,
		&w.Balance, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan wallet: %w", err)
	}
	return w, nil
}
