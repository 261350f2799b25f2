package handler

import (
	"condo-settlement/internal/adapter/http/dto"
	"condo-settlement/internal/adapter/http/middleware"
	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
	"condo-settlement/pkg/apperror"
	"condo-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet registry endpoints.
type WalletHandler struct {
	wallets ports.WalletRegistry
	ledger  ports.LedgerService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets ports.WalletRegistry, ledger ports.LedgerService) *WalletHandler {
	return &WalletHandler{wallets: wallets, ledger: ledger}
}

// Register handles POST /api/v1/wallets.
func (h *WalletHandler) Register(c *gin.Context) {
	var req dto.RegisterWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if !middleware.ActingFor(c, req.UserID) {
		response.Error(c, apperror.ErrForbidden())
		return
	}

	wallet, err := h.wallets.RegisterWallet(c.Request.Context(), ports.RegisterWalletRequest{
		UserID:        req.UserID,
		WalletAddress: req.WalletAddress,
		PublicKey:     req.PublicKey,
		AccessToken:   req.AccessToken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetResourceID(c, wallet.ID)
	response.Created(c, dto.ToWalletResponse(wallet))
}

// Validate handles POST /api/v1/wallets/validate.
func (h *WalletHandler) Validate(c *gin.Context) {
	var req dto.ValidateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.wallets.ValidateAddress(c.Request.Context(), req.WalletAddress)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Treasurer handles GET /api/v1/wallets/treasurer.
func (h *WalletHandler) Treasurer(c *gin.Context) {
	wallet, err := h.wallets.GetTreasurerWallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToWalletResponse(wallet))
}

// ForUser handles GET /api/v1/wallets/user/:userId.
func (h *WalletHandler) ForUser(c *gin.Context) {
	userID, err := idParam(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if !privileged(c) && !middleware.ActingFor(c, userID) {
		response.Error(c, apperror.ErrForbidden())
		return
	}

	wallet, err := h.wallets.GetWalletForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if wallet == nil {
		response.Error(c, apperror.ErrWalletNotFound())
		return
	}
	response.OK(c, dto.ToWalletResponse(wallet))
}

// Transactions handles GET /api/v1/wallets/:walletId/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	walletID, err := idParam(c, "walletId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var q dto.TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	q.WalletID = walletID
	listTransactions(c, h.wallets, h.ledger, q)
}

// Summary handles GET /api/v1/wallets/:walletId/summary.
func (h *WalletHandler) Summary(c *gin.Context) {
	walletID, err := idParam(c, "walletId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if _, err := authorizeWallet(c.Request.Context(), c, h.wallets, walletID); err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.ledger.Summary(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// AdjustBalance handles POST /api/v1/wallets/:walletId/balance-adjustments.
func (h *WalletHandler) AdjustBalance(c *gin.Context) {
	walletID, err := idParam(c, "walletId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.wallets.AdjustBalance(c.Request.Context(), walletID, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{WalletID: walletID, Balance: balance})
}

// Deactivate handles POST /api/v1/wallets/:walletId/deactivate.
func (h *WalletHandler) Deactivate(c *gin.Context) {
	walletID, err := idParam(c, "walletId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.wallets.DeactivateWallet(c.Request.Context(), walletID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"walletId": walletID, "isActive": false})
}

func listTransactions(c *gin.Context, wallets ports.WalletRegistry, ledger ports.LedgerService, q dto.TransactionQuery) {
	if q.WalletID == 0 {
		response.Error(c, apperror.Validation("walletId is required"))
		return
	}
	if _, err := authorizeWallet(c.Request.Context(), c, wallets, q.WalletID); err != nil {
		response.Error(c, err)
		return
	}

	params := ports.TransactionListParams{WalletID: q.WalletID, Page: q.Page, PageSize: q.PageSize}
	if q.Status != "" {
		status := domain.TransactionStatus(q.Status)
		params.Status = &status
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}

	txns, total, err := ledger.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, dto.ToTransactionResponses(txns), params.Page, params.PageSize, total)
}
