package callback

import (
	"context"
	"net/url"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/config"
	"github.com/bazarlabs/paygate/internal/observability"
	"github.com/bazarlabs/paygate/internal/payment/domain"
)

// State is a resolver state. A resolution starts in Verifying and ends
// in exactly one terminal state that drives a one-time navigation.
type State string

const (
	StateVerifying State = "verifying"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateErrored   State = "errored"
	StateIgnored   State = "ignored"
)

// Reason is the machine-readable failure annotation carried to the
// failure target.
type Reason string

const (
	ReasonFailed             Reason = "failed"
	ReasonVerificationFailed Reason = "verification_failed"
	ReasonInvalidCallback    Reason = "invalid_callback"
	ReasonError              Reason = "error"
)

// Redirect parameter names and expected status literals per provider.
// The two wallets disagree on casing; both literals are exact.
const (
	paramStatus       = "status"
	paramPaymentRefID = "payment_ref_id"

	nagadStatusSuccess = "Success"
	bkashStatusSuccess = "success"
)

// Callback is one provider redirect: the method token from the return
// path plus the raw, untrusted query parameters.
type Callback struct {
	Method string
	Params url.Values
}

// Outcome is the navigation a resolved callback produces.
type Outcome struct {
	State    State
	Reason   Reason
	Location string
}

type ResolverParams struct {
	fx.In

	Gateway domain.Gateway
	Cfg     config.Config
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// Resolver turns a provider redirect into a trusted outcome. The Nagad
// redirect status is client-controllable, so success there is only
// declared after a backend-mediated verification; the bKash redirect is
// trusted on its status alone, matching current provider behavior.
type Resolver struct {
	gateway domain.Gateway
	targets config.RedirectConfig
	log     *zap.Logger
	metrics *observability.Metrics
}

func NewResolver(p ResolverParams) *Resolver {
	return &Resolver{
		gateway: p.Gateway,
		targets: p.Cfg.Redirect,
		log:     p.Logger.Named("payment.callback"),
		metrics: p.Metrics,
	}
}

// Resolve consumes one redirect and returns the navigation outcome. It
// never panics: any unexpected fault during resolution lands in the
// Errored terminal state with a generic failure navigation. A cancelled
// context suppresses the outcome entirely — the caller must not
// navigate — and returns the cancellation error instead.
func (r *Resolver) Resolve(ctx context.Context, cb Callback) (out Outcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("callback resolution panicked",
				zap.String("method", cb.Method), zap.Any("panic", rec))
			out = r.terminal(cb.Method, Outcome{
				State:    StateErrored,
				Reason:   ReasonError,
				Location: withQuery(r.targets.FailureURL, "reason", string(ReasonError)),
			})
			err = nil
		}
	}()

	switch cb.Method {
	case string(domain.MethodNagad):
		return r.resolveNagad(ctx, cb)
	case string(domain.MethodBkash):
		return r.resolveBkash(cb)
	default:
		// Unknown tokens are not an error; the shopper just goes home.
		r.log.Info("unrecognized callback method", zap.String("method", cb.Method))
		return r.terminal(cb.Method, Outcome{
			State:    StateIgnored,
			Location: r.targets.HomeURL,
		}), nil
	}
}

func (r *Resolver) resolveNagad(ctx context.Context, cb Callback) (Outcome, error) {
	// The status check strictly precedes verification: a redirect that
	// already signals failure never reaches the backend.
	if cb.Params.Get(paramStatus) != nagadStatusSuccess {
		return r.terminal(cb.Method, Outcome{
			State:    StateFailed,
			Reason:   ReasonFailed,
			Location: withQuery(r.targets.FailureURL, "reason", string(ReasonFailed)),
		}), nil
	}

	ref := cb.Params.Get(paramPaymentRefID)
	if ref == "" {
		return r.terminal(cb.Method, Outcome{
			State:    StateFailed,
			Reason:   ReasonInvalidCallback,
			Location: withQuery(r.targets.FailureURL, "reason", string(ReasonInvalidCallback)),
		}), nil
	}

	resp := r.gateway.VerifyPayment(ctx, domain.MethodNagad, ref)

	if ctx.Err() != nil {
		// The hosting view is gone; navigating now would be stale.
		return Outcome{}, ctx.Err()
	}

	if !resp.Success {
		return r.terminal(cb.Method, Outcome{
			State:    StateFailed,
			Reason:   ReasonVerificationFailed,
			Location: withQuery(r.targets.FailureURL, "reason", string(ReasonVerificationFailed)),
		}), nil
	}

	return r.terminal(cb.Method, Outcome{
		State:    StateSucceeded,
		Location: withQuery(r.targets.SuccessURL, paramPaymentRefID, ref),
	}), nil
}

func (r *Resolver) resolveBkash(cb Callback) (Outcome, error) {
	if cb.Params.Get(paramStatus) == bkashStatusSuccess {
		return r.terminal(cb.Method, Outcome{
			State:    StateSucceeded,
			Location: r.targets.SuccessURL,
		}), nil
	}
	return r.terminal(cb.Method, Outcome{
		State:    StateFailed,
		Reason:   ReasonFailed,
		Location: withQuery(r.targets.FailureURL, "reason", string(ReasonFailed)),
	}), nil
}

func (r *Resolver) terminal(method string, out Outcome) Outcome {
	r.metrics.CallbacksResolved.WithLabelValues(method, string(out.State)).Inc()
	return out
}

func withQuery(target, key, value string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
