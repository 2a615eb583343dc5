package server

import (
	"net/url"
	"strconv"
	"strings"

	"socialpod/internal/middleware"
	"socialpod/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// respondError writes err with the status it maps to. Causes of 5xx errors
// are logged here and never reach the client.
func respondError(c *fiber.Ctx, err error) error {
	status := models.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			"path", c.Path(), "error", err)
	}
	return models.RespondWithError(c, status, err)
}

// parseBody decodes the JSON body into dst.
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}

// parsePage reads the page and size query parameters. page defaults to 0 and
// size to defaultPageSize; size is capped at maxPageSize.
func parsePage(c *fiber.Ctx) (page, size int, err error) {
	page, err = queryInt(c, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err = queryInt(c, "size", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if size == 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size, nil
}

func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, models.NewValidationError(name + " must be a non-negative integer")
	}
	return n, nil
}

// pathParam returns the unescaped route parameter, so emails and titles
// may be sent percent-encoded.
func pathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// callerEmail is the email AuthRequired decoded from the token.
func callerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

// requireCaller rejects requests where email does not name the caller.
func requireCaller(c *fiber.Ctx, email string) error {
	if !strings.EqualFold(strings.TrimSpace(email), callerEmail(c)) {
		return models.NewForbiddenError("forbidden access")
	}
	return nil
}

// orEmpty keeps list responses as [] rather than null.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
