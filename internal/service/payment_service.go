package service

import (
	"context"
	"errors"
	"strings"

	"socialpod/internal/middleware"
	"socialpod/internal/models"
	"socialpod/internal/observability"
	"socialpod/internal/payment"
	"socialpod/internal/repository"
	"socialpod/internal/validation"
)

type PaymentService struct {
	provider payment.Provider
	users    repository.UserRepository
	currency string
}

type PaymentIntentInput struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type PaymentSuccessInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ClientSecret is the response of a created payment intent.
type ClientSecret struct {
	ClientSecret string `json:"clientSecret"`
}

func NewPaymentService(provider payment.Provider, users repository.UserRepository, currency string) *PaymentService {
	if currency == "" {
		currency = "usd"
	}
	return &PaymentService{provider: provider, users: users, currency: currency}
}

// CreateIntent charges price, in major units, by card.
func (s *PaymentService) CreateIntent(ctx context.Context, in PaymentIntentInput) (*ClientSecret, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	amount := payment.AmountFromPrice(in.Price)
	if amount <= 0 {
		return nil, models.NewValidationError("price must be at least 0.01")
	}
	if s.provider == nil {
		return nil, models.NewUnavailableError("Payments are not configured", nil)
	}

	ctx, span := observability.StartServiceSpan(ctx, "PaymentService", "CreateIntent")
	intent, err := s.provider.CreateIntent(ctx, payment.IntentRequest{Amount: amount, Currency: s.currency})
	observability.EndSpan(span, err)
	if errors.Is(err, payment.ErrUnavailable) {
		return nil, models.NewUnavailableError("Payment provider unavailable", err)
	}
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "payment intent failed", "amount", amount, "error", err)
		return nil, models.NewPaymentError(err)
	}
	return &ClientSecret{ClientSecret: intent.ClientSecret}, nil
}

// MarkPaid awards the Gold badge to caller. The body email must name the caller.
func (s *PaymentService) MarkPaid(ctx context.Context, caller string, in PaymentSuccessInput) (*models.UpdateResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !strings.EqualFold(in.Email, caller) {
		return nil, models.NewForbiddenError("forbidden access")
	}
	res, err := s.users.SetBadge(ctx, caller, models.BadgeGold)
	if err != nil {
		return nil, storeError(err)
	}
	return &res, nil
}
