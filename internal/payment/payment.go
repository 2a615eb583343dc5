// Package payment creates payment intents with an external provider.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrUnavailable is returned while the provider circuit is open.
var ErrUnavailable = errors.New("payment provider unavailable")

// IntentRequest describes a charge in minor currency units.
type IntentRequest struct {
	Amount   int64
	Currency string
}

// Intent is a created payment intent.
type Intent struct {
	ID           string
	ClientSecret string
}

// Provider creates payment intents.
type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// AmountFromPrice converts a price in major units to minor units, truncating
// any fraction of a cent.
func AmountFromPrice(price float64) int64 {
	return int64(price * 100)
}

// StripeProvider creates card payment intents through the Stripe API.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider returns a provider authenticated with secretKey. backends
// may be nil to use Stripe's default endpoints.
func NewStripeProvider(secretKey string, backends *stripe.Backends) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeProvider{api: api}
}

// CreateIntent creates a card payment intent for req.
func (p *StripeProvider) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(req.Amount),
		Currency:           stripe.String(req.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
