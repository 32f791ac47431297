package domain

// Method is a canonical payment method token. Display labels used by the
// checkout UI are translated to these at the facade boundary.
type Method string

const (
	MethodBkash          Method = "bkash"
	MethodNagad          Method = "nagad"
	MethodCard           Method = "card"
	MethodStoreCredit    Method = "store_credit"
	MethodCashOnDelivery Method = "cash_on_delivery"
)

// ParseMethod accepts only canonical tokens.
func ParseMethod(s string) (Method, bool) {
	switch Method(s) {
	case MethodBkash, MethodNagad, MethodCard, MethodStoreCredit, MethodCashOnDelivery:
		return Method(s), true
	}
	return "", false
}

// ProviderBacked reports whether the method settles through an external
// provider. Store credit and cash-on-delivery settle without one.
func (m Method) ProviderBacked() bool {
	switch m {
	case MethodBkash, MethodNagad, MethodCard:
		return true
	}
	return false
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// PaymentRequest describes one checkout attempt. OrderID is the
// idempotency key the remote backend keys duplicate-charge prevention on.
type PaymentRequest struct {
	Amount          float64 `json:"amount"`
	OrderID         string  `json:"order_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address,omitempty"`
	Description     string  `json:"description,omitempty"`
}

func (r PaymentRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.OrderID == "" {
		return ErrMissingOrderID
	}
	return nil
}

// PaymentResponse is the uniform result shape every operation returns.
// Success is always set; failures carry a human-readable Error instead
// of propagating the underlying fault.
type PaymentResponse struct {
	Success       bool   `json:"success"`
	PaymentURL    string `json:"payment_url,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Failure builds the failed PaymentResponse for a user-visible reason.
func Failure(reason string) *PaymentResponse {
	return &PaymentResponse{Success: false, Error: reason}
}
