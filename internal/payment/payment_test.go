package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

func TestAmountFromPrice(t *testing.T) {
	assert.Equal(t, int64(1000), AmountFromPrice(10))
	assert.Equal(t, int64(1250), AmountFromPrice(12.5))
	assert.Equal(t, int64(1), AmountFromPrice(0.019))
}

func newStripeTestProvider(t *testing.T, handler http.HandlerFunc) *StripeProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeProvider("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
}

func TestStripeProvider_CreateIntent(t *testing.T) {
	p := newStripeTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[0]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc"}`))
	})

	intent, err := p.CreateIntent(context.Background(), IntentRequest{Amount: 1999, Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
}

func TestStripeProvider_Error(t *testing.T) {
	p := newStripeTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`))
	})

	_, err := p.CreateIntent(context.Background(), IntentRequest{Amount: 1, Currency: "usd"})
	require.Error(t, err)
	var stripeErr *stripe.Error
	assert.True(t, errors.As(err, &stripeErr))
}

type flakyProvider struct {
	calls atomic.Int32
	err   error
}

func (f *flakyProvider) CreateIntent(context.Context, IntentRequest) (*Intent, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &Intent{ID: "pi_ok", ClientSecret: "secret"}, nil
}

func TestBreakerProvider_OpensAfterConsecutiveFailures(t *testing.T) {
	next := &flakyProvider{err: errors.New("provider down")}
	b := WithBreaker(next, BreakerSettings{FailureThreshold: 3, OpenTimeout: time.Hour})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := b.CreateIntent(ctx, IntentRequest{Amount: 100, Currency: "usd"})
		assert.EqualError(t, err, "provider down")
	}
	assert.Equal(t, "open", b.State())

	_, err := b.CreateIntent(ctx, IntentRequest{Amount: 100, Currency: "usd"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(3), next.calls.Load())
}

func TestBreakerProvider_PassesThrough(t *testing.T) {
	b := WithBreaker(&flakyProvider{}, DefaultBreakerSettings)
	intent, err := b.CreateIntent(context.Background(), IntentRequest{Amount: 100, Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "secret", intent.ClientSecret)
	assert.Equal(t, "closed", b.State())
}
