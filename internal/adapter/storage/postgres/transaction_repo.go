package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, receipt_id, sender_wallet_id, receiver_wallet_id, amount, asset_code, asset_scale,
		payment_pointer, external_transfer_id, status, metadata, description, created_at, updated_at`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts the pending row that records settlement intent.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.PaymentTransaction) error {
	meta, err := json.Marshal(t.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `INSERT INTO payment_transactions (receipt_id, sender_wallet_id, receiver_wallet_id, amount,
		asset_code, asset_scale, payment_pointer, status, metadata, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err = r.pool.QueryRow(ctx, query,
		t.ReceiptID, t.SenderWalletID, t.ReceiverWalletID, t.Amount,
		t.AssetCode, t.AssetScale, t.PaymentPointer, t.Status, meta, t.Description,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if name, ok := uniqueViolation(err); ok && name == constraintReceiptActiveTxn {
			return domain.ErrSettlementInFlight
		}
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

// GetByID fetches a payment transaction by id. Returns nil, nil when absent.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE id = $1`

	t, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment transaction: %w", err)
	}
	return t, nil
}

// RecordProgress saves the stage reached by an attempt that is still pending.
func (r *TransactionRepo) RecordProgress(ctx context.Context, id int64, externalTransferID *string, meta domain.TransactionMetadata) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `UPDATE payment_transactions
		SET metadata = $1, external_transfer_id = COALESCE($2, external_transfer_id), updated_at = now()
		WHERE id = $3 AND status = 'pending'`

	tag, err := r.pool.Exec(ctx, query, raw, externalTransferID, id)
	if err != nil {
		return fmt.Errorf("record progress: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStaleTransition
	}
	return nil
}

// Transition is a compare-and-set on status; the metadata is replaced
// wholesale. Nil tx runs on the pool.
func (r *TransactionRepo) Transition(ctx context.Context, tx pgx.Tx, t ports.StatusTransition) error {
	raw, err := json.Marshal(t.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `UPDATE payment_transactions
		SET status = $1, external_transfer_id = COALESCE($2, external_transfer_id), metadata = $3, updated_at = now()
		WHERE id = $4 AND status = $5`

	tag, err := pick(r.pool, tx).Exec(ctx, query, t.To, t.ExternalTransferID, raw, t.ID, t.From)
	if err != nil {
		if name, ok := uniqueViolation(err); ok && name == constraintReceiptActiveTxn {
			return domain.ErrSettlementInFlight
		}
		return fmt.Errorf("transition payment transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStaleTransition
	}
	return nil
}

// List returns the wallet's transactions as sender or receiver, newest first.
func (r *TransactionRepo) List(ctx context.Context, params ports.TransactionListParams) ([]domain.PaymentTransaction, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	conditions = append(conditions, fmt.Sprintf("(sender_wallet_id = $%d OR receiver_wallet_id = $%d)", argIdx, argIdx))
	args = append(args, params.WalletID)
	argIdx++

	if params.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *params.Status)
		argIdx++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payment_transactions %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count payment transactions: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	dataQuery := fmt.Sprintf(`SELECT %s FROM payment_transactions %s
		ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, transactionColumns, where, argIdx, argIdx+1)
	args = append(args, params.PageSize, offset)

	txns, err := r.query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// Summary aggregates counts per status and completed volume in each direction.
func (r *TransactionRepo) Summary(ctx context.Context, walletID int64) (*ports.WalletSummary, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE status = 'pending') AS pending,
		COUNT(*) FILTER (WHERE status = 'completed') AS completed,
		COUNT(*) FILTER (WHERE status = 'failed') AS failed,
		COALESCE(SUM(amount) FILTER (WHERE status = 'completed' AND sender_wallet_id = $1), 0) AS sent,
		COALESCE(SUM(amount) FILTER (WHERE status = 'completed' AND receiver_wallet_id = $1), 0) AS received
		FROM payment_transactions WHERE sender_wallet_id = $1 OR receiver_wallet_id = $1`

	s := &ports.WalletSummary{WalletID: walletID}
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&s.Total, &s.Pending, &s.Completed, &s.Failed, &s.SentTotal, &s.ReceivedTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("wallet summary: %w", err)
	}
	return s, nil
}

// ListStalePending returns pending rows not touched since olderThan, oldest first.
func (r *TransactionRepo) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]domain.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions
		WHERE status = 'pending' AND updated_at < $1 ORDER BY updated_at LIMIT $2`
	return r.query(ctx, query, olderThan, limit)
}

func (r *TransactionRepo) query(ctx context.Context, query string, args ...any) ([]domain.PaymentTransaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payment transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.PaymentTransaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment transaction row: %w", err)
		}
		txns = append(txns, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment transaction rows: %w", err)
	}
	return txns, nil
}

func scanTransaction(row pgx.Row) (*domain.PaymentTransaction, error) {
	t := &domain.PaymentTransaction{}
	var meta []byte
	err := row.Scan(
		&t.ID, &t.ReceiptID, &t.SenderWalletID, &t.ReceiverWalletID, &t.Amount,
		&t.AssetCode, &t.AssetScale, &t.PaymentPointer, &t.ExternalTransferID,
		&t.Status, &meta, &t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &t.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata of transaction %d: %w", t.ID, err)
		}
	}
	return t, nil
}
