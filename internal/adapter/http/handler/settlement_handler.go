package handler

import (
	"net/http"

	"condo-settlement/internal/adapter/http/dto"
	"condo-settlement/internal/adapter/http/middleware"
	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports"
	"condo-settlement/pkg/apperror"
	"condo-settlement/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles settlement and transaction endpoints.
type SettlementHandler struct {
	settlement ports.SettlementService
	ledger     ports.LedgerService
	wallets    ports.WalletRegistry
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlement ports.SettlementService, ledger ports.LedgerService, wallets ports.WalletRegistry) *SettlementHandler {
	return &SettlementHandler{settlement: settlement, ledger: ledger, wallets: wallets}
}

// SettlementStatus maps a settlement outcome to its HTTP status.
func SettlementStatus(res *domain.SettlementResult) int {
	if res.Success {
		return http.StatusCreated
	}
	switch res.ErrorCode {
	case domain.CodeSenderWalletNotFound, domain.CodeReceiverWalletNotFound, domain.CodeReceiptNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidRequest, domain.CodeWalletAddressMismatch:
		return http.StatusBadRequest
	case domain.CodeReceiptAlreadyPaid, domain.CodeSettlementInProgress:
		return http.StatusConflict
	case domain.CodeReservationFailed, domain.CodeQuoteFailed, domain.CodeTransferFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Settle handles POST /api/v1/settlements. With a payee and amount it runs
// SettlePayment, which only accepts the treasurer and the billed amount;
// otherwise it pays the receipt to the treasurer.
func (h *SettlementHandler) Settle(c *gin.Context) {
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if !middleware.ActingFor(c, req.PayerUserID) {
		response.Error(c, apperror.ErrForbidden())
		return
	}

	var res *domain.SettlementResult
	if req.PayeeUserID != 0 {
		res = h.settlement.SettlePayment(c.Request.Context(), ports.SettleRequest{
			ReceiptID:   req.ReceiptID,
			PayerUserID: req.PayerUserID,
			PayeeUserID: req.PayeeUserID,
			Amount:      req.Amount,
			Description: req.Description,
		})
	} else {
		res = h.settlement.PayReceipt(c.Request.Context(), ports.PayReceiptRequest{
			ReceiptID:   req.ReceiptID,
			PayerUserID: req.PayerUserID,
		})
	}
	if res.TransactionID != nil {
		middleware.SetResourceID(c, *res.TransactionID)
	}
	response.Result(c, SettlementStatus(res), res)
}

// PayReceipt handles PUT /api/v1/receipts/:id/pay.
func (h *SettlementHandler) PayReceipt(c *gin.Context) {
	receiptID, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.PayReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if !middleware.ActingFor(c, req.UserID) {
		response.Error(c, apperror.ErrForbidden())
		return
	}

	res := h.settlement.PayReceipt(c.Request.Context(), ports.PayReceiptRequest{
		ReceiptID:     receiptID,
		PayerUserID:   req.UserID,
		WalletAddress: req.WalletCode,
	})
	response.Result(c, SettlementStatus(res), res)
}

// ListTransactions handles GET /api/v1/transactions?walletId=.
func (h *SettlementHandler) ListTransactions(c *gin.Context) {
	var q dto.TransactionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	listTransactions(c, h.wallets, h.ledger, q)
}

// GetTransaction handles GET /api/v1/transactions/:id.
func (h *SettlementHandler) GetTransaction(c *gin.Context) {
	txn, ok := h.visibleTransaction(c)
	if !ok {
		return
	}
	response.OK(c, dto.ToTransactionResponse(txn))
}

// CheckStatus handles GET /api/v1/transactions/:id/status.
func (h *SettlementHandler) CheckStatus(c *gin.Context) {
	txn, ok := h.visibleTransaction(c)
	if !ok {
		return
	}

	check, err := h.settlement.CheckStatus(c.Request.Context(), txn.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"success":      check.Success,
		"localStatus":  check.LocalStatus,
		"gatewayState": check.GatewayState,
		"changed":      check.Changed,
		"transaction":  dto.ToTransactionResponse(check.Transaction),
	})
}

func (h *SettlementHandler) visibleTransaction(c *gin.Context) (*domain.PaymentTransaction, bool) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	txn, err := h.ledger.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	if err := authorizeTransaction(c.Request.Context(), c, h.wallets, txn); err != nil {
		response.Error(c, err)
		return nil, false
	}
	return txn, true
}
