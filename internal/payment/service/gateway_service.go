package service

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/observability"
	"github.com/bazarlabs/paygate/internal/payment/adapters"
	"github.com/bazarlabs/paygate/internal/payment/domain"
)

type Params struct {
	fx.In

	Registry *adapters.Registry
	GenID    *snowflake.Node
	Logger   *zap.Logger
	Metrics  *observability.Metrics
}

// Service routes canonical methods to their adapters. Store credit and
// cash-on-delivery settle synthetically without touching the network.
type Service struct {
	registry *adapters.Registry
	genID    *snowflake.Node
	log      *zap.Logger
	metrics  *observability.Metrics
}

func NewService(p Params) domain.Gateway {
	return &Service{
		registry: p.Registry,
		genID:    p.GenID,
		log:      p.Logger.Named("payment.gateway"),
		metrics:  p.Metrics,
	}
}

func (s *Service) ProcessPayment(ctx context.Context, method domain.Method, req domain.PaymentRequest) *domain.PaymentResponse {
	if _, ok := domain.ParseMethod(string(method)); !ok {
		s.count(method, "invalid")
		return domain.Failure("unknown payment method")
	}

	if err := req.Validate(); err != nil {
		s.count(method, "invalid")
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			return domain.Failure("payment amount must be positive")
		case errors.Is(err, domain.ErrMissingOrderID):
			return domain.Failure("order reference is required")
		default:
			return domain.Failure("invalid payment request")
		}
	}

	switch method {
	case domain.MethodStoreCredit:
		s.count(method, "success")
		return &domain.PaymentResponse{
			Success:       true,
			TransactionID: "SC-" + s.genID.Generate().String(),
			Message:       "settled against store credit",
		}
	case domain.MethodCashOnDelivery:
		s.count(method, "success")
		return &domain.PaymentResponse{
			Success:       true,
			TransactionID: "COD-" + s.genID.Generate().String(),
			Message:       "payable on delivery",
		}
	}

	adapter, ok := s.registry.Get(method)
	if !ok {
		s.log.Warn("payment method not configured", zap.String("method", string(method)))
		s.count(method, "not_configured")
		return domain.Failure(string(method) + " payments are not configured")
	}

	resp := adapter.Create(ctx, req)
	s.count(method, outcome(resp))
	return resp
}

func (s *Service) ExecutePayment(ctx context.Context, method domain.Method, paymentID string) *domain.PaymentResponse {
	adapter, ok := s.registry.Get(method)
	if !ok {
		return domain.Failure(string(method) + " payments are not configured")
	}

	executor, ok := adapter.(domain.Executor)
	if !ok {
		return domain.Failure("execute is not supported for " + string(method))
	}
	return executor.Execute(ctx, paymentID)
}

// VerifyPayment delegates only when the adapter exposes a standalone
// verification path. The asymmetry across providers is deliberate and
// surfaced here as an explicit capability check.
func (s *Service) VerifyPayment(ctx context.Context, method domain.Method, reference string) *domain.PaymentResponse {
	adapter, ok := s.registry.Get(method)
	if !ok {
		return domain.Failure(string(method) + " payments are not configured")
	}

	verifier, ok := adapter.(domain.Verifier)
	if !ok {
		return domain.Failure("verification is not supported for this method")
	}

	resp := verifier.Verify(ctx, reference)
	s.metrics.Verifications.WithLabelValues(string(method), outcome(resp)).Inc()
	return resp
}

func (s *Service) AvailableMethods() []domain.Method {
	methods := s.registry.Configured()
	return append(methods, domain.MethodStoreCredit, domain.MethodCashOnDelivery)
}

func (s *Service) count(method domain.Method, outcome string) {
	s.metrics.PaymentsInitiated.WithLabelValues(string(method), outcome).Inc()
}

func outcome(resp *domain.PaymentResponse) string {
	if resp != nil && resp.Success {
		return "success"
	}
	return "failed"
}
