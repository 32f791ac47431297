package checkout

import (
	"go.uber.org/fx"

	"github.com/bazarlabs/paygate/internal/checkout/service"
)

var Module = fx.Module("checkout.service",
	fx.Provide(service.New),
)
