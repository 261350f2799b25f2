package handler

import (
	"context"
	"fmt"
	"strconv"

	"condo-settlement/internal/adapter/http/middleware"
	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
	"condo-settlement/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func idParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}

// privileged reports whether the caller sees every wallet.
func privileged(c *gin.Context) bool {
	role, _ := middleware.RoleFrom(c)
	return role == domain.RoleAdmin || role == domain.RoleTreasurer
}

// authorizeWallet loads a wallet the caller is allowed to read: its own,
// or any wallet for admins and the treasurer.
func authorizeWallet(ctx context.Context, c *gin.Context, wallets ports.WalletRegistry, walletID int64) (*domain.Wallet, error) {
	wallet, err := wallets.GetWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if privileged(c) || middleware.ActingFor(c, wallet.UserID) {
		return wallet, nil
	}
	return nil, apperror.ErrForbidden()
}

// authorizeTransaction allows the parties of a transaction and privileged callers.
func authorizeTransaction(ctx context.Context, c *gin.Context, wallets ports.WalletRegistry, txn *domain.PaymentTransaction) error {
	if privileged(c) {
		return nil
	}
	for _, walletID := range []int64{txn.SenderWalletID, txn.ReceiverWalletID} {
		wallet, err := wallets.GetWallet(ctx, walletID)
		if err != nil {
			continue
		}
		if middleware.ActingFor(c, wallet.UserID) {
			return nil
		}
	}
	return apperror.ErrForbidden()
}
