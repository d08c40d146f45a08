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

// ---- Webhook Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrUnknownProvider(provider string) *AppError {
	return New("SEC_002", fmt.Sprintf("Unknown webhook provider: %s", provider), http.StatusNotFound)
}

// ---- KYC Reconciliation (KYC) ----

func ErrMalformedPayload(reason string) *AppError {
	return New("KYC_001", fmt.Sprintf("Malformed webhook payload: %s", reason), http.StatusBadRequest)
}

func ErrMissingApplicantID() *AppError {
	return New("KYC_002", "Webhook payload missing applicantId", http.StatusBadRequest)
}

func ErrUnknownEventType(eventType string) *AppError {
	return New("KYC_003", fmt.Sprintf("Unsupported event type: %s", eventType), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("KYC_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Provisioning (PRV) ----

func ErrWalletProvider(err error) *AppError {
	return Wrap("PRV_001", "Wallet provider request failed", http.StatusBadGateway, err)
}

func ErrDIDConflict() *AppError {
	return New("PRV_002", "Issuer already has a DID", http.StatusConflict)
}

// ---- Admin Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Insufficient role for this operation", http.StatusForbidden)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrProviderTimeout(err error) *AppError {
	return Wrap("SYS_002", "External provider timed out", http.StatusGatewayTimeout, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a KYC_001-style validation error.
func Validation(message string) *AppError {
	return New("KYC_001", message, http.StatusBadRequest)
}
