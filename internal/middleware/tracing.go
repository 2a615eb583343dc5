package middleware

import (
	"fmt"

	"socialpod/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware starts a server span per request. The span is renamed to
// the matched route once routing is done, so "/post/:id" is one span name
// rather than one per post.
func TracingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Continue a trace started by the caller, if any
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), propagation.HeaderCarrier(c.GetReqHeaders()))

		ctx, span := observability.Tracer.Start(ctx, c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.target", c.OriginalURL()),
				attribute.String("client.address", c.IP()),
				attribute.String("user_agent.original", c.Get(fiber.HeaderUserAgent)),
			),
		)
		defer span.End()

		traceID := span.SpanContext().TraceID().String()
		// ContextMiddleware copies this into the logging context
		c.Locals("traceID", traceID)
		c.Locals("spanID", span.SpanContext().SpanID().String())
		if requestID := c.Locals("requestid"); requestID != nil {
			span.SetAttributes(attribute.String("request.id", fmt.Sprintf("%v", requestID)))
		}
		c.Set("X-Trace-ID", traceID)
		c.SetUserContext(ctx)

		err := c.Next()

		if route := c.Route(); route != nil && route.Path != "" && route.Path != "/" {
			span.SetName(c.Method() + " " + route.Path)
			span.SetAttributes(attribute.String("http.route", route.Path))
		}

		status := ResponseStatus(c, err)
		span.SetAttributes(attribute.Int("http.status_code", status))
		if err != nil {
			span.RecordError(err)
		}
		if status >= fiber.StatusInternalServerError {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		}

		// Set by AuthRequired after the token is verified
		if email, ok := c.Locals("email").(string); ok && email != "" {
			span.SetAttributes(attribute.String("user.email", email))
		}

		return err
	}
}
