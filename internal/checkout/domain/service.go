package domain

import "context"

// CustomerInfo is the optional shopper profile attached to a checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// InitiateInput is what the checkout UI sends. Method is a human-facing
// label ("bKash", "Cash on Delivery", ...), not a canonical token.
type InitiateInput struct {
	OrderID     string
	Method      string
	Amount      float64
	Customer    *CustomerInfo
	Description string
}

// InitiateResult carries one canonical PaymentURL; the HTTP layer
// surfaces it under both payment_url and redirect_url for legacy
// consumers, always with the same value.
type InitiateResult struct {
	Success    bool
	PaymentID  string
	PaymentURL string
	Error      string
}

// Service is the stable entry point consumed by the checkout UI.
type Service interface {
	InitiatePayment(ctx context.Context, input InitiateInput) *InitiateResult
	VerifyPayment(ctx context.Context, paymentID, method string) bool
}
