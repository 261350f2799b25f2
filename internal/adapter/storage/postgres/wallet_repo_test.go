package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo-settlement/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(userID int64) *domain.Wallet {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Wallet{
		ID:            7,
		UserID:        userID,
		WalletAddress: "https://ilp.example.com/alice",
		PublicKey:     "pk-alice",
		Balance:       25000,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func walletCols() []string {
	return []string{"id", "user_id", "wallet_address", "public_key", "access_token_enc",
		"balance", "is_active", "created_at", "updated_at"}
}

func walletRow(w *domain.Wallet) *pgxmock.Rows {
	return pgxmock.NewRows(walletCols()).AddRow(
		w.ID, w.UserID, w.WalletAddress, w.PublicKey, w.AccessTokenEnc,
		w.Balance, w.IsActive, w.CreatedAt, w.UpdatedAt,
	)
}

func TestWalletRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := &domain.Wallet{UserID: 3, WalletAddress: "https://ilp.example.com/bob", PublicKey: "pk", IsActive: true}
	now := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("INSERT INTO wallets").
		WithArgs(w.UserID, w.WalletAddress, w.PublicKey, w.AccessTokenEnc, int64(0), true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	err = repo.Create(context.Background(), w)
	require.NoError(t, err)
	assert.Equal(t, int64(11), w.ID)
	assert.Equal(t, now, w.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Create_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"second active wallet", constraintActiveWallet, domain.ErrWalletExists},
		{"address taken", constraintWalletAddress, domain.ErrWalletAddressTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewWalletRepo(mock)
			w := &domain.Wallet{UserID: 3, WalletAddress: "https://ilp.example.com/bob", PublicKey: "pk", IsActive: true}

			mock.ExpectQuery("INSERT INTO wallets").
				WithArgs(w.UserID, w.WalletAddress, w.PublicKey, w.AccessTokenEnc, int64(0), true).
				WillReturnError(uniqueErr(tt.constraint))

			err = repo.Create(context.Background(), w)
			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWalletRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)
	w := newTestWallet(3)
	w.AccessTokenEnc = strPtr("sealed")

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE id").
		WithArgs(w.ID).
		WillReturnRows(walletRow(w))

	got, err := repo.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, w.WalletAddress, got.WalletAddress)
	assert.Equal(t, int64(25000), got.Balance)
	require.NotNil(t, got.AccessTokenEnc)
	assert.Equal(t, "sealed", *got.AccessTokenEnc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_GetActiveByUserID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wallets WHERE user_id").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetActiveByUserID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_AdjustBalance_InTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE wallets SET balance = balance").
		WithArgs(int64(-10000), int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(15000)))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	balance, err := repo.AdjustBalance(context.Background(), tx, 7, -10000)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_AdjustBalance_NoTxUsesPool(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("UPDATE wallets SET balance = balance").
		WithArgs(int64(500), int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(500)))

	balance, err := repo.AdjustBalance(context.Background(), nil, 7, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_AdjustBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectQuery("UPDATE wallets SET balance = balance").
		WithArgs(int64(1), int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.AdjustBalance(context.Background(), nil, 404, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Deactivate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectExec("UPDATE wallets SET is_active = FALSE").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Deactivate(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepo_Deactivate_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepo(mock)

	mock.ExpectExec("UPDATE wallets SET is_active = FALSE").
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	err = repo.Deactivate(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivate wallet")
}
