package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	checkoutdomain "github.com/bazarlabs/paygate/internal/checkout/domain"
	paymentdomain "github.com/bazarlabs/paygate/internal/payment/domain"
)

// recordingGateway captures what the facade forwards.
type recordingGateway struct {
	processMethod paymentdomain.Method
	processReq    paymentdomain.PaymentRequest
	processResp   *paymentdomain.PaymentResponse

	verifyMethod paymentdomain.Method
	verifyRef    string
	verifyCalls  int
	verifyResp   *paymentdomain.PaymentResponse
}

func (g *recordingGateway) ProcessPayment(_ context.Context, method paymentdomain.Method, req paymentdomain.PaymentRequest) *paymentdomain.PaymentResponse {
	g.processMethod = method
	g.processReq = req
	if g.processResp != nil {
		return g.processResp
	}
	return &paymentdomain.PaymentResponse{Success: true}
}

func (g *recordingGateway) ExecutePayment(context.Context, paymentdomain.Method, string) *paymentdomain.PaymentResponse {
	return paymentdomain.Failure("not under test")
}

func (g *recordingGateway) VerifyPayment(_ context.Context, method paymentdomain.Method, reference string) *paymentdomain.PaymentResponse {
	g.verifyCalls++
	g.verifyMethod = method
	g.verifyRef = reference
	if g.verifyResp != nil {
		return g.verifyResp
	}
	return &paymentdomain.PaymentResponse{Success: true}
}

func (g *recordingGateway) AvailableMethods() []paymentdomain.Method { return nil }

func newFacade(gw paymentdomain.Gateway) checkoutdomain.Service {
	return New(Params{Gateway: gw, Logger: zap.NewNop()})
}

func TestInitiatePaymentTranslatesLabels(t *testing.T) {
	cases := []struct {
		label string
		want  paymentdomain.Method
	}{
		{"bkash", paymentdomain.MethodBkash},
		{"bKash", paymentdomain.MethodBkash},
		{"Nagad", paymentdomain.MethodNagad},
		{"card", paymentdomain.MethodCard},
		{"Credit Card", paymentdomain.MethodCard},
		{"DEBIT CARD", paymentdomain.MethodCard},
		{"SSLCommerz", paymentdomain.MethodCard},
		{"Store Credit", paymentdomain.MethodStoreCredit},
		{"store_credit", paymentdomain.MethodStoreCredit},
		{"COD", paymentdomain.MethodCashOnDelivery},
		{"Cash on Delivery", paymentdomain.MethodCashOnDelivery},
		{" cash_on_delivery ", paymentdomain.MethodCashOnDelivery},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			gw := &recordingGateway{}
			facade := newFacade(gw)

			result := facade.InitiatePayment(context.Background(), checkoutdomain.InitiateInput{
				OrderID: "ORD-1",
				Method:  tc.label,
				Amount:  10,
			})

			assert.True(t, result.Success)
			assert.Equal(t, tc.want, gw.processMethod)
		})
	}
}

func TestInitiatePaymentUnsupportedLabel(t *testing.T) {
	gw := &recordingGateway{}
	facade := newFacade(gw)

	result := facade.InitiatePayment(context.Background(), checkoutdomain.InitiateInput{
		OrderID: "ORD-1",
		Method:  "paypal",
		Amount:  10,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "paypal")
	assert.Empty(t, gw.processMethod)
}

func TestInitiatePaymentGuestDefaults(t *testing.T) {
	gw := &recordingGateway{}
	facade := newFacade(gw)

	facade.InitiatePayment(context.Background(), checkoutdomain.InitiateInput{
		OrderID: "ORD-1",
		Method:  "bkash",
		Amount:  10,
	})

	assert.Equal(t, "Guest Customer", gw.processReq.CustomerName)
	assert.Equal(t, "guest@example.com", gw.processReq.CustomerEmail)
	assert.Equal(t, "01700000000", gw.processReq.CustomerPhone)
}

func TestInitiatePaymentForwardsCustomer(t *testing.T) {
	gw := &recordingGateway{}
	facade := newFacade(gw)

	facade.InitiatePayment(context.Background(), checkoutdomain.InitiateInput{
		OrderID: "ORD-1",
		Method:  "card",
		Amount:  10,
		Customer: &checkoutdomain.CustomerInfo{
			Name:    "Karim",
			Email:   "karim@example.com",
			Phone:   "01922222222",
			Address: "Chattogram",
		},
	})

	assert.Equal(t, "Karim", gw.processReq.CustomerName)
	assert.Equal(t, "karim@example.com", gw.processReq.CustomerEmail)
	assert.Equal(t, "01922222222", gw.processReq.CustomerPhone)
	assert.Equal(t, "Chattogram", gw.processReq.CustomerAddress)
}

func TestInitiatePaymentSurfacesGatewayFailure(t *testing.T) {
	gw := &recordingGateway{processResp: paymentdomain.Failure("bkash payments are not configured")}
	facade := newFacade(gw)

	result := facade.InitiatePayment(context.Background(), checkoutdomain.InitiateInput{
		OrderID: "ORD-1",
		Method:  "bkash",
		Amount:  10,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "bkash payments are not configured", result.Error)
}

func TestVerifyPayment(t *testing.T) {
	t.Run("nagad delegates to the gateway", func(t *testing.T) {
		gw := &recordingGateway{verifyResp: paymentdomain.Failure("unconfirmed")}
		facade := newFacade(gw)

		ok := facade.VerifyPayment(context.Background(), "REF1", "Nagad")

		assert.False(t, ok)
		assert.Equal(t, 1, gw.verifyCalls)
		assert.Equal(t, paymentdomain.MethodNagad, gw.verifyMethod)
		assert.Equal(t, "REF1", gw.verifyRef)
	})

	t.Run("other methods are assumed successful", func(t *testing.T) {
		for _, label := range []string{"bkash", "card", "COD", "store credit", "unknown"} {
			gw := &recordingGateway{}
			facade := newFacade(gw)

			assert.True(t, facade.VerifyPayment(context.Background(), "REF1", label))
			assert.Zero(t, gw.verifyCalls)
		}
	})
}
