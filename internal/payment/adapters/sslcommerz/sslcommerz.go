package sslcommerz

import (
	"context"

	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/backend"
	"github.com/bazarlabs/paygate/internal/payment/adapters"
	"github.com/bazarlabs/paygate/internal/payment/domain"
)

// Factory creates SSLCommerz card-gateway adapters.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Method() domain.Method {
	return domain.MethodCard
}

func (f *Factory) New(deps adapters.Deps) (domain.Adapter, error) {
	if !deps.Config.SSLCommerz.Configured() {
		return nil, domain.ErrInvalidConfig
	}
	return &Adapter{
		backend: deps.Backend,
		log:     deps.Logger.Named("payment.sslcommerz"),
	}, nil
}

// Adapter implements the single initiate+validate card flow.
type Adapter struct {
	backend backend.Client
	log     *zap.Logger
}

func (a *Adapter) Method() domain.Method {
	return domain.MethodCard
}

func (a *Adapter) Create(ctx context.Context, req domain.PaymentRequest) *domain.PaymentResponse {
	res, err := a.backend.InitiateCardPayment(ctx, backend.CardPaymentInput{
		Amount:          req.Amount,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Reference:       req.OrderID,
	})
	if err != nil {
		a.log.Error("initiate failed", zap.String("order_id", req.OrderID), zap.Error(err))
		return domain.Failure("card payment could not be initiated")
	}
	if !res.Success {
		return domain.Failure("card gateway rejected the payment")
	}

	return &domain.PaymentResponse{
		Success:       true,
		PaymentURL:    res.PaymentURL,
		TransactionID: res.TransactionID,
	}
}

// Validate collapses every backend error to false; the card gateway
// offers a boolean confirmation only.
func (a *Adapter) Validate(ctx context.Context, referenceID string) bool {
	ok, err := a.backend.ValidateCardPayment(ctx, referenceID)
	if err != nil {
		a.log.Error("validate failed", zap.String("reference_id", referenceID), zap.Error(err))
		return false
	}
	return ok
}
