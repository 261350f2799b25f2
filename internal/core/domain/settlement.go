package domain

// Stage is a step of the settlement protocol.
type Stage string

const (
	StageIntent  Stage = "intent"
	StageReserve Stage = "reserve"
	StageQuote   Stage = "quote"
	StageExecute Stage = "execute"
	StageCommit  Stage = "commit"
)

// ErrorCode classifies a failed settlement for callers.
type ErrorCode string

const (
	// precondition
	CodeInvalidRequest         ErrorCode = "InvalidRequest"
	CodeSenderWalletNotFound   ErrorCode = "SenderWalletNotFound"
	CodeReceiverWalletNotFound ErrorCode = "ReceiverWalletNotFound"
	CodeReceiptNotFound        ErrorCode = "ReceiptNotFound"
	CodeReceiptAlreadyPaid     ErrorCode = "ReceiptAlreadyPaid"
	CodeWalletAddressMismatch  ErrorCode = "WalletAddressMismatch"

	// configuration
	CodeTreasurerNotConfigured  ErrorCode = "TreasurerNotConfigured"
	CodeTreasurerWalletNotFound ErrorCode = "TreasurerWalletNotFound"

	// conflict
	CodeSettlementInProgress ErrorCode = "SettlementInProgress"

	// external stage
	CodeReservationFailed ErrorCode = "ReservationFailed"
	CodeQuoteFailed       ErrorCode = "QuoteFailed"
	CodeTransferFailed    ErrorCode = "TransferFailed"

	// internal
	CodeCommitFailed ErrorCode = "CommitFailed"
	CodeInternal     ErrorCode = "Internal"

	// CodeAbandoned marks a pending row the reconciler gave up on because no
	// external transfer was ever created for it.
	CodeAbandoned ErrorCode = "Abandoned"
)

// SettlementResult is the outcome of one settlement attempt. Failures are
// values, not Go errors.
type SettlementResult struct {
	Success            bool      `json:"success"`
	TransactionID      *int64    `json:"transactionId,omitempty"`
	ExternalTransferID string    `json:"externalTransferId,omitempty"`
	Stage              Stage     `json:"stage,omitempty"`
	ErrorCode          ErrorCode `json:"error,omitempty"`
	Message            string    `json:"message,omitempty"`
}

// Failed builds an unsuccessful result.
func Failed(stage Stage, code ErrorCode, message string) *SettlementResult {
	return &SettlementResult{Stage: stage, ErrorCode: code, Message: message}
}

// WithTransaction attaches the local transaction id to the result.
func (r *SettlementResult) WithTransaction(id int64) *SettlementResult {
	r.TransactionID = &id
	return r
}
