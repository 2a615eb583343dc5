package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"socialpod/internal/models"
	"socialpod/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPaymentProvider is a mock of the payment.Provider interface
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

func TestCreatePaymentIntent(t *testing.T) {
	provider := new(MockPaymentProvider)
	provider.On("CreateIntent", mock.Anything, payment.IntentRequest{Amount: 1234, Currency: "usd"}).
		Return(&payment.Intent{ID: "pi_1", ClientSecret: "pi_1_secret_abc"}, nil).Once()
	ts := setupTestServer(t, withPayments(provider))

	resp, body := ts.do(t, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 12.345}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "pi_1_secret_abc", decode[map[string]string](t, body)["clientSecret"])
	provider.AssertExpectations(t)
}

func TestCreatePaymentIntent_Errors(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		ts := setupTestServer(t, withPayments(new(MockPaymentProvider)))
		resp, _ := ts.do(t, http.MethodPost, "/create-payment-intent", map[string]float64{"price": -1}, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		provider.On("CreateIntent", mock.Anything, mock.Anything).Return(nil, errors.New("stripe: card_declined"))
		ts := setupTestServer(t, withPayments(provider))

		resp, body := ts.do(t, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 5}, "")
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		errResp := decode[models.ErrorResponse](t, body)
		assert.Equal(t, models.CodePayment, errResp.Code)
		assert.NotContains(t, errResp.Error, "card_declined")
	})

	t.Run("circuit open", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		provider.On("CreateIntent", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
		breaker := payment.WithBreaker(provider, payment.BreakerSettings{FailureThreshold: 1, OpenTimeout: time.Minute})
		ts := setupTestServer(t, withPayments(breaker))

		resp, _ := ts.do(t, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 5}, "")
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		resp, body := ts.do(t, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 5}, "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, models.CodeUnavailable, decode[models.ErrorResponse](t, body).Code)
		provider.AssertNumberOfCalls(t, "CreateIntent", 1)

		_, body = ts.do(t, http.MethodGet, "/health/ready", nil, "")
		checks := decode[map[string]any](t, body)["checks"].(map[string]any)
		assert.Equal(t, "open", checks["payments"])
	})

	t.Run("not configured", func(t *testing.T) {
		ts := setupTestServer(t)
		resp, body := ts.do(t, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 5}, "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, models.CodeUnavailable, decode[models.ErrorResponse](t, body).Code)
	})
}

func TestPaymentSuccess(t *testing.T) {
	ts := setupTestServer(t)
	seedUser(t, ts, "a@x.com", "Ada")
	seedUser(t, ts, "b@x.com", "Bob")
	token := tokenFor(t, "a@x.com")

	resp, body := ts.do(t, http.MethodPost, "/payment-success", map[string]string{"email": "b@x.com"}, token)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, models.CodeForbidden, decode[models.ErrorResponse](t, body).Code)

	other, err := ts.store.Users.GetByEmail(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.BadgeNone, other.Badge)

	resp, body = ts.do(t, http.MethodPost, "/payment-success", map[string]string{"email": "a@x.com"}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.EqualValues(t, 1, decode[models.UpdateResult](t, body).ModifiedCount)

	resp, body = ts.do(t, http.MethodGet, "/user/badge/a@x.com", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.BadgeGold, decode[models.BadgeView](t, body).Badge)
}
