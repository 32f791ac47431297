package bkash

import (
	"context"

	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/backend"
	"github.com/bazarlabs/paygate/internal/payment/adapters"
	"github.com/bazarlabs/paygate/internal/payment/domain"
)

// Factory creates bKash adapters.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Method() domain.Method {
	return domain.MethodBkash
}

func (f *Factory) New(deps adapters.Deps) (domain.Adapter, error) {
	if !deps.Config.Bkash.Configured() {
		return nil, domain.ErrInvalidConfig
	}
	return &Adapter{
		backend: deps.Backend,
		log:     deps.Logger.Named("payment.bkash"),
	}, nil
}

// Adapter implements the two-phase bKash flow: Create opens the payment
// and hands back the hosted redirect, Execute completes it afterwards.
type Adapter struct {
	backend backend.Client
	log     *zap.Logger
}

func (a *Adapter) Method() domain.Method {
	return domain.MethodBkash
}

func (a *Adapter) Create(ctx context.Context, req domain.PaymentRequest) *domain.PaymentResponse {
	res, err := a.backend.CreatePayment(ctx, backend.CreatePaymentInput{
		Amount:    req.Amount,
		Method:    string(domain.MethodBkash),
		Reference: req.OrderID,
	})
	if err != nil {
		a.log.Error("create failed", zap.String("order_id", req.OrderID), zap.Error(err))
		return domain.Failure("bKash payment could not be initiated")
	}

	return &domain.PaymentResponse{
		Success:       true,
		PaymentURL:    res.RedirectURL,
		TransactionID: res.PaymentID,
	}
}

func (a *Adapter) Execute(ctx context.Context, paymentID string) *domain.PaymentResponse {
	res, err := a.backend.ExecutePayment(ctx, paymentID, string(domain.MethodBkash))
	if err != nil {
		a.log.Error("execute failed", zap.String("payment_id", paymentID), zap.Error(err))
		return domain.Failure("bKash payment could not be completed")
	}
	if !res.Success {
		return &domain.PaymentResponse{
			Success: false,
			Message: res.Message,
			Error:   "bKash payment was not completed",
		}
	}

	return &domain.PaymentResponse{
		Success:       true,
		TransactionID: res.TrxID,
		Message:       res.Message,
	}
}
