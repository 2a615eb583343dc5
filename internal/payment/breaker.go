package payment

import (
	"context"
	"errors"
	"time"

	"socialpod/internal/middleware"
	"socialpod/internal/observability"

	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerSettings tunes the circuit around a Provider.
type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// DefaultBreakerSettings opens after five consecutive failures for 30s.
var DefaultBreakerSettings = BreakerSettings{
	FailureThreshold: 5,
	OpenTimeout:      30 * time.Second,
}

// BreakerProvider wraps a Provider with a circuit breaker.
type BreakerProvider struct {
	next Provider
	cb   *gobreaker.CircuitBreaker[*Intent]
}

// WithBreaker wraps next in a circuit breaker configured by s.
func WithBreaker(next Provider, s BreakerSettings) *BreakerProvider {
	cb := gobreaker.NewCircuitBreaker[*Intent](gobreaker.Settings{
		Name:        "payment-provider",
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			middleware.Logger.Warn("circuit breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return &BreakerProvider{next: next, cb: cb}
}

// CreateIntent forwards to the wrapped provider unless the circuit is open.
func (b *BreakerProvider) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	intent, err := b.cb.Execute(func() (*Intent, error) {
		return b.next.CreateIntent(ctx, req)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		observability.PaymentIntentsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrUnavailable
	case err != nil:
		observability.PaymentIntentsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.PaymentIntentsTotal.WithLabelValues("success").Inc()
	return intent, nil
}

// State reports the breaker state, for readiness output.
func (b *BreakerProvider) State() string {
	return b.cb.State().String()
}
