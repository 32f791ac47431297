package domain

import "context"

// Adapter wraps one provider's remote-call sequence behind the uniform
// contract. Implementations never let a transport or backend fault
// escape: every path resolves to a PaymentResponse with Success set.
type Adapter interface {
	Method() Method

	// Create issues the provider's initiation call. On success the
	// response carries the redirect PaymentURL and the provider
	// payment/transaction id.
	Create(ctx context.Context, req PaymentRequest) *PaymentResponse
}

// Executor is the optional second phase of a two-phase wallet: a payment
// created earlier is completed by a separate execute call.
type Executor interface {
	Execute(ctx context.Context, paymentID string) *PaymentResponse
}

// Verifier is the optional out-of-band confirmation some providers
// require because their redirect status alone is untrustworthy.
type Verifier interface {
	Verify(ctx context.Context, reference string) *PaymentResponse
}

// Validator is the card gateway's boolean confirmation; backend errors
// collapse to false.
type Validator interface {
	Validate(ctx context.Context, referenceID string) bool
}
