package domain

import (
	"context"
	"errors"
)

// Gateway dispatches a canonical method to the matching adapter or a
// provider-less settlement path.
type Gateway interface {
	ProcessPayment(ctx context.Context, method Method, req PaymentRequest) *PaymentResponse
	ExecutePayment(ctx context.Context, method Method, paymentID string) *PaymentResponse
	VerifyPayment(ctx context.Context, method Method, reference string) *PaymentResponse
	AvailableMethods() []Method
}

var (
	ErrInvalidConfig           = errors.New("invalid_config")
	ErrUnknownMethod           = errors.New("unknown_method")
	ErrMethodNotConfigured     = errors.New("method_not_configured")
	ErrExecuteUnsupported      = errors.New("execute_unsupported")
	ErrVerificationUnsupported = errors.New("verification_unsupported")
	ErrInvalidAmount           = errors.New("invalid_amount")
	ErrMissingOrderID          = errors.New("missing_order_id")
	ErrPaymentInProgress       = errors.New("payment_in_progress")
)
