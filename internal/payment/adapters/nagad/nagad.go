package nagad

import (
	"context"

	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/backend"
	"github.com/bazarlabs/paygate/internal/payment/adapters"
	"github.com/bazarlabs/paygate/internal/payment/domain"
)

// Factory creates Nagad adapters.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Method() domain.Method {
	return domain.MethodNagad
}

func (f *Factory) New(deps adapters.Deps) (domain.Adapter, error) {
	if !deps.Config.Nagad.Configured() {
		return nil, domain.ErrInvalidConfig
	}
	return &Adapter{
		backend: deps.Backend,
		log:     deps.Logger.Named("payment.nagad"),
	}, nil
}

// Adapter implements the Nagad flow. The redirect Nagad issues back to
// the storefront is client-controllable, so Verify asks the backend to
// confirm the payment out-of-band before it is trusted.
type Adapter struct {
	backend backend.Client
	log     *zap.Logger
}

func (a *Adapter) Method() domain.Method {
	return domain.MethodNagad
}

func (a *Adapter) Create(ctx context.Context, req domain.PaymentRequest) *domain.PaymentResponse {
	res, err := a.backend.CreatePayment(ctx, backend.CreatePaymentInput{
		Amount:    req.Amount,
		Method:    string(domain.MethodNagad),
		Reference: req.OrderID,
	})
	if err != nil {
		a.log.Error("create failed", zap.String("order_id", req.OrderID), zap.Error(err))
		return domain.Failure("Nagad payment could not be initiated")
	}

	return &domain.PaymentResponse{
		Success:       true,
		PaymentURL:    res.RedirectURL,
		TransactionID: res.PaymentID,
	}
}

func (a *Adapter) Verify(ctx context.Context, reference string) *domain.PaymentResponse {
	res, err := a.backend.VerifyNagadPayment(ctx, reference)
	if err != nil {
		a.log.Error("verify failed", zap.String("payment_ref_id", reference), zap.Error(err))
		return domain.Failure("Nagad payment could not be verified")
	}
	if !res.Success {
		return domain.Failure("Nagad reported the payment as unconfirmed")
	}

	return &domain.PaymentResponse{
		Success:       true,
		TransactionID: res.TransactionID,
	}
}
