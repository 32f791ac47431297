package service

import (
	"context"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	checkoutdomain "github.com/bazarlabs/paygate/internal/checkout/domain"
	paymentdomain "github.com/bazarlabs/paygate/internal/payment/domain"
)

// methodLabels maps the display labels the storefront has historically
// sent to canonical methods. Lookups are case-insensitive; the table is
// the only place legacy naming exists.
var methodLabels = map[string]paymentdomain.Method{
	"bkash":            paymentdomain.MethodBkash,
	"nagad":            paymentdomain.MethodNagad,
	"card":             paymentdomain.MethodCard,
	"credit card":      paymentdomain.MethodCard,
	"debit card":       paymentdomain.MethodCard,
	"sslcommerz":       paymentdomain.MethodCard,
	"store credit":     paymentdomain.MethodStoreCredit,
	"store_credit":     paymentdomain.MethodStoreCredit,
	"cod":              paymentdomain.MethodCashOnDelivery,
	"cash on delivery": paymentdomain.MethodCashOnDelivery,
	"cash_on_delivery": paymentdomain.MethodCashOnDelivery,
}

// Guest defaults keep checkout working when the shopper has no profile.
const (
	guestName  = "Guest Customer"
	guestEmail = "guest@example.com"
	guestPhone = "01700000000"
)

type Params struct {
	fx.In

	Gateway paymentdomain.Gateway
	Logger  *zap.Logger
}

type Service struct {
	gateway paymentdomain.Gateway
	log     *zap.Logger
}

func New(p Params) checkoutdomain.Service {
	return &Service{
		gateway: p.Gateway,
		log:     p.Logger.Named("checkout"),
	}
}

func (s *Service) InitiatePayment(ctx context.Context, input checkoutdomain.InitiateInput) *checkoutdomain.InitiateResult {
	method, ok := translateLabel(input.Method)
	if !ok {
		return &checkoutdomain.InitiateResult{
			Success: false,
			Error:   "unsupported payment method: " + input.Method,
		}
	}

	customer := input.Customer
	if customer == nil {
		customer = &checkoutdomain.CustomerInfo{
			Name:  guestName,
			Email: guestEmail,
			Phone: guestPhone,
		}
	}

	resp := s.gateway.ProcessPayment(ctx, method, paymentdomain.PaymentRequest{
		Amount:          input.Amount,
		OrderID:         input.OrderID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Description:     input.Description,
	})

	s.log.Info("payment initiated",
		zap.String("order_id", input.OrderID),
		zap.String("method", string(method)),
		zap.Bool("success", resp.Success))

	return &checkoutdomain.InitiateResult{
		Success:    resp.Success,
		PaymentID:  resp.TransactionID,
		PaymentURL: resp.PaymentURL,
		Error:      resp.Error,
	}
}

// VerifyPayment returns the backend's verdict for the verify-capable
// provider. Every other method is assumed successful rather than failed
// closed — a known gap kept for compatibility with current behavior.
func (s *Service) VerifyPayment(ctx context.Context, paymentID, method string) bool {
	canonical, ok := translateLabel(method)
	if ok && canonical == paymentdomain.MethodNagad {
		resp := s.gateway.VerifyPayment(ctx, canonical, paymentID)
		return resp.Success
	}
	return true
}

func translateLabel(label string) (paymentdomain.Method, bool) {
	method, ok := methodLabels[strings.ToLower(strings.TrimSpace(label))]
	return method, ok
}
