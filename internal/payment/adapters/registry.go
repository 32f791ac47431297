package adapters

import (
	"errors"

	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/backend"
	"github.com/bazarlabs/paygate/internal/config"
	"github.com/bazarlabs/paygate/internal/payment/domain"
)

// Deps is everything a provider factory needs to build its adapter.
type Deps struct {
	Config  config.Config
	Backend backend.Client
	Logger  *zap.Logger
}

// Factory builds one provider's adapter. New returns
// domain.ErrInvalidConfig when the provider's credentials are absent;
// the registry then simply omits that adapter.
type Factory interface {
	Method() domain.Method
	New(deps Deps) (domain.Adapter, error)
}

// Registry holds the adapters whose providers are configured. It is
// built once at startup and read-only afterwards.
type Registry struct {
	adapters map[domain.Method]domain.Adapter
	order    []domain.Method
}

func NewRegistry(deps Deps, factories ...Factory) *Registry {
	r := &Registry{adapters: make(map[domain.Method]domain.Adapter)}
	for _, f := range factories {
		adapter, err := f.New(deps)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidConfig) {
				deps.Logger.Info("payment provider not configured",
					zap.String("method", string(f.Method())))
				continue
			}
			deps.Logger.Error("payment adapter construction failed",
				zap.String("method", string(f.Method())), zap.Error(err))
			continue
		}
		r.adapters[f.Method()] = adapter
		r.order = append(r.order, f.Method())
	}
	return r
}

func (r *Registry) Get(method domain.Method) (domain.Adapter, bool) {
	adapter, ok := r.adapters[method]
	return adapter, ok
}

// Configured returns the provider-backed methods in registration order.
func (r *Registry) Configured() []domain.Method {
	out := make([]domain.Method, len(r.order))
	copy(out, r.order)
	return out
}
