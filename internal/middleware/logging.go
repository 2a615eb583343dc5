// Package middleware provides request-scoped Fiber middleware: logging, rate limiting, metrics and tracing.
package middleware

import (
	"context"
	"log/slog"
	"os"
	"time"

	"socialpod/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Logger is the global structured logger instance used throughout the application.
var Logger *slog.Logger

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserEmailKey contextKey = "user_email"
	TraceIDKey   contextKey = "trace_id"
)

// ctxHandler is a slog.Handler that adds context values to the log record.
type ctxHandler struct {
	slog.Handler
}

// Handle adds context values to the record before passing it to the underlying handler.
func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	if rid, ok := ctx.Value(RequestIDKey).(string); ok {
		r.AddAttrs(slog.String("request_id", rid))
	}
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		r.AddAttrs(slog.String("user_email", email))
	}
	if tid, ok := ctx.Value(TraceIDKey).(string); ok {
		r.AddAttrs(slog.String("trace_id", tid))
	}
	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the context-aware wrapper around derived handlers.
func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the context-aware wrapper around derived handlers.
func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{h.Handler.WithGroup(name)}
}

func init() {
	var handler slog.Handler
	level := slog.LevelInfo

	if os.Getenv("APP_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		// Pretty text output for local development
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	Logger = slog.New(&ctxHandler{handler})
}

// ContextMiddleware injects the request ID and trace ID from Fiber locals into the request context.
// The authenticated email is added by the auth guard once the token is verified.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if rid, ok := c.Locals("requestid").(string); ok {
			ctx = context.WithValue(ctx, RequestIDKey, rid)
		}
		if tid, ok := c.Locals("traceID").(string); ok {
			ctx = context.WithValue(ctx, TraceIDKey, tid)
		}

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// WithUserEmail returns ctx carrying the authenticated email for log records.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, UserEmailKey, email)
}

// StructuredLogger returns a Fiber middleware for logging requests using slog.
// Server errors log at error level, client errors at warn.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := ResponseStatus(c, err)
		fields := []any{
			slog.Int("status", status),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Get("User-Agent")),
		}
		if err != nil {
			fields = append(fields, slog.String("error", err.Error()))
		}

		// UserContext carries request id, email and trace id for ctxHandler
		ctx := c.UserContext()
		switch {
		case status >= fiber.StatusInternalServerError:
			Logger.ErrorContext(ctx, "request failed", fields...)
		case status >= fiber.StatusBadRequest:
			Logger.WarnContext(ctx, "request rejected", fields...)
		default:
			Logger.InfoContext(ctx, "request processed", fields...)
		}

		return err
	}
}

// ResponseStatus is the status the client will see. A returned error is
// rendered later by the app's ErrorHandler, so its code wins over the status
// currently on the response.
func ResponseStatus(c *fiber.Ctx, err error) int {
	if err != nil {
		return models.HTTPStatus(err)
	}
	return c.Response().StatusCode()
}
