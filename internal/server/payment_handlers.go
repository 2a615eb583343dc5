package server

import (
	"socialpod/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePaymentIntent handles POST /create-payment-intent
// @Summary Create a card payment intent
// @Description The price is in major units and is truncated to whole cents
// @Tags payments
// @Accept json
// @Produce json
// @Param request body service.PaymentIntentInput true "Price"
// @Success 200 {object} service.ClientSecret
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /create-payment-intent [post]
func (s *Server) CreatePaymentIntent(c *fiber.Ctx) error {
	var req service.PaymentIntentInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	out, err := s.paymentService.CreateIntent(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PaymentSuccess handles POST /payment-success
// @Summary Award the Gold badge after payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.PaymentSuccessInput true "Caller email"
// @Success 200 {object} models.UpdateResult
// @Failure 403 {object} models.ErrorResponse
// @Router /payment-success [post]
func (s *Server) PaymentSuccess(c *fiber.Ctx) error {
	var req service.PaymentSuccessInput
	if err := parseBody(c, &req); err != nil {
		return respondError(c, err)
	}

	res, err := s.paymentService.MarkPaid(c.UserContext(), callerEmail(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}
