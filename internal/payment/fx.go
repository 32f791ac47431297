package payment

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/backend"
	"github.com/bazarlabs/paygate/internal/config"
	"github.com/bazarlabs/paygate/internal/payment/adapters"
	"github.com/bazarlabs/paygate/internal/payment/adapters/bkash"
	"github.com/bazarlabs/paygate/internal/payment/adapters/nagad"
	"github.com/bazarlabs/paygate/internal/payment/adapters/sslcommerz"
	"github.com/bazarlabs/paygate/internal/payment/callback"
	paymentservice "github.com/bazarlabs/paygate/internal/payment/service"
)

var Module = fx.Module("payment.service",
	fx.Provide(func(cfg config.Config, client backend.Client, log *zap.Logger) *adapters.Registry {
		return adapters.NewRegistry(
			adapters.Deps{Config: cfg, Backend: client, Logger: log},
			bkash.NewFactory(),
			nagad.NewFactory(),
			sslcommerz.NewFactory(),
		)
	}),
	fx.Provide(paymentservice.NewService),
	fx.Provide(callback.NewResolver),
)
