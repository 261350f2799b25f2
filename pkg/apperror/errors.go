package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrUserInactive() *AppError {
	return New("AUTH_004", "User account is deactivated", http.StatusForbidden)
}

func ErrForbidden() *AppError {
	return New("AUTH_005", "Not allowed to act on this resource", http.StatusForbidden)
}

// ---- Users (USR) ----

func ErrUserNotFound() *AppError {
	return New("USR_001", "User not found", http.StatusNotFound)
}

// ---- Wallets (WAL) ----

func ErrWalletNotFound() *AppError {
	return New("WAL_001", "Wallet not found", http.StatusNotFound)
}

func ErrInvalidWalletAddress() *AppError {
	return New("WAL_002", "Wallet address failed validation against the payment network", http.StatusBadRequest)
}

func ErrWalletAlreadyExists() *AppError {
	return New("WAL_003", "User already has an active wallet", http.StatusConflict)
}

func ErrWalletAddressTaken() *AppError {
	return New("WAL_004", "Wallet address is already registered", http.StatusConflict)
}

// ---- Transactions (TXN) ----

func ErrTransactionNotFound() *AppError {
	return New("TXN_001", "Transaction not found", http.StatusNotFound)
}

func ErrNoExternalTransfer() *AppError {
	return New("TXN_002", "Transaction has no external transfer to reconcile", http.StatusConflict)
}

func ErrTransitionConflict(err error) *AppError {
	return Wrap("TXN_003", "Transaction was updated concurrently", http.StatusConflict, err)
}

// ---- Receipts (RCP) ----

func ErrReceiptNotFound() *AppError {
	return New("RCP_001", "Receipt not found", http.StatusNotFound)
}

// ---- Payment gateway (GW) ----

func ErrGatewayUnavailable(err error) *AppError {
	return Wrap("GW_001", "Payment network request failed", http.StatusBadGateway, err)
}

// ---- Configuration (CFG) ----

func ErrTreasurerNotConfigured() *AppError {
	return New("CFG_001", "No active treasurer is configured", http.StatusInternalServerError)
}

func ErrTreasurerWalletMissing() *AppError {
	return New("CFG_002", "Treasurer has no active wallet", http.StatusInternalServerError)
}

func ErrTreasurerAmbiguous() *AppError {
	return New("CFG_003", "More than one active treasurer is configured", http.StatusInternalServerError)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a REQ_001 request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
