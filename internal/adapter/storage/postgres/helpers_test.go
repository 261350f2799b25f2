package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
)

func strPtr(s string) *string { return &s }

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: constraint}
}
