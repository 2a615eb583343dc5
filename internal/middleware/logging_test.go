package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialpod/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxHandler_AddsContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&ctxHandler{slog.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = WithUserEmail(ctx, "a@x.io")
	logger.InfoContext(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"user_email":"a@x.io"`)
}

func TestContextMiddleware_PropagatesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ContextMiddleware())
	app.Use(StructuredLogger())

	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got, _ = c.UserContext().Value(RequestIDKey).(string)
		return c.SendString("ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "fixed-id")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "fixed-id", got)
}

func TestStructuredLogger_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger
	Logger = slog.New(&ctxHandler{slog.NewJSONHandler(&buf, nil)})
	t.Cleanup(func() { Logger = prev })

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, models.HTTPStatus(err), err)
		},
	})
	app.Use(StructuredLogger())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error {
		return models.NewValidationError("page is out of range")
	})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("store down") })

	cases := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok", http.StatusOK, `"level":"INFO"`},
		{"/missing", http.StatusNotFound, `"level":"WARN"`},
		{"/bad", http.StatusBadRequest, `"level":"WARN"`},
		{"/boom", http.StatusInternalServerError, `"level":"ERROR"`},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			buf.Reset()
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			out := buf.String()
			assert.Contains(t, out, tc.level)
			assert.Contains(t, out, fmt.Sprintf(`"status":%d`, tc.status))
		})
	}
}
