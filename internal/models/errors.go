package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes returned in the "code" field of error responses.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodePayment      = "PAYMENT_ERROR"
	CodeUnavailable  = "SERVICE_UNAVAILABLE"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Details any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewPaymentError(err error) *AppError {
	return &AppError{
		Code:    CodePayment,
		Message: "Payment provider error",
		Err:     err,
	}
}

func NewUnavailableError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUnavailable,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// HTTPStatus maps an error to the status code it is reported with.
// Errors that are not an *AppError or *fiber.Error are internal.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return fiber.StatusNotFound
		case CodeValidation:
			return fiber.StatusBadRequest
		case CodeUnauthorized:
			return fiber.StatusUnauthorized
		case CodeForbidden:
			return fiber.StatusForbidden
		case CodePayment:
			return fiber.StatusBadGateway
		case CodeUnavailable:
			return fiber.StatusServiceUnavailable
		}
		return fiber.StatusInternalServerError
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

// RespondWithError creates a standardized error response. The cause of an
// internal or upstream error is never written to the client.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		response = ErrorResponse{
			Error:   appErr.Message,
			Code:    appErr.Code,
			Details: appErr.Details,
		}
	case errors.As(err, &fiberErr):
		response = ErrorResponse{Error: fiberErr.Message}
	case status >= fiber.StatusInternalServerError:
		response = ErrorResponse{Error: "Internal server error", Code: CodeInternal}
	default:
		response = ErrorResponse{Error: err.Error()}
	}

	return c.Status(status).JSON(response)
}
