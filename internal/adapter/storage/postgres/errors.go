package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation = "23505"

	constraintActiveWallet     = "uq_wallets_active_user"
	constraintWalletAddress    = "uq_wallets_address"
	constraintReceiptActiveTxn = "uq_payment_tx_receipt_active"
)

// uniqueViolation reports the constraint name when err is a unique violation.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
