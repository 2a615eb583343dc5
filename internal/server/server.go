// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	_ "socialpod/docs" // swagger docs
	"socialpod/internal/auth"
	"socialpod/internal/bootstrap"
	"socialpod/internal/cache"
	"socialpod/internal/config"
	"socialpod/internal/featureflags"
	"socialpod/internal/middleware"
	"socialpod/internal/models"
	"socialpod/internal/observability"
	"socialpod/internal/payment"
	"socialpod/internal/repository"
	"socialpod/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
)

// Deps are the long-lived clients a Server is built on.
type Deps struct {
	Store *repository.Store
	Redis *redis.Client
	// Payments may be nil, in which case payment intents report 503.
	Payments payment.Provider
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          *repository.Store
	redis          *redis.Client
	cache          *cache.Cache
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	signer         *auth.Signer
	rateLimiter    *middleware.RateLimiter
	featureFlags   *featureflags.Manager
	payments       payment.Provider
	tracerShutdown func(context.Context) error

	userService    *service.UserService
	postService    *service.PostService
	commentService *service.CommentService
	catalogService *service.CatalogService
	statsService   *service.StatsService
	paymentService *service.PaymentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{})
	if err != nil {
		return nil, err
	}

	shutdownTracer, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "socialpod-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	s, err := NewServerWithDeps(cfg, Deps{
		Store:    rt.Store,
		Redis:    rt.Redis,
		Payments: newPaymentProvider(cfg),
	})
	if err != nil {
		return nil, err
	}
	s.tracerShutdown = shutdownTracer
	return s, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store and Redis.
func NewServerWithDeps(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Store == nil {
		return nil, errors.New("server requires a store")
	}

	flags := featureflags.NewManager(cfg.FeatureFlags)
	c := cache.New(deps.Redis)

	s := &Server{
		config:         cfg,
		store:          deps.Store,
		redis:          deps.Redis,
		cache:          c,
		promMiddleware: middleware.InitMetrics("socialpod-api"),
		signer:         auth.NewSigner(cfg.JWTSecret),
		rateLimiter:    middleware.NewRateLimiter(deps.Redis, cfg.RateLimitEnabled()),
		featureFlags:   flags,
		payments:       deps.Payments,
	}

	s.userService = service.NewUserService(deps.Store.Users)
	s.postService = service.NewPostService(deps.Store.Posts, c, flags)
	s.commentService = service.NewCommentService(deps.Store.Comments)
	s.catalogService = service.NewCatalogService(deps.Store.Tags, deps.Store.Announcements, c)
	s.statsService = service.NewStatsService(deps.Store.Users, deps.Store.Posts, deps.Store.Comments)
	s.paymentService = service.NewPaymentService(deps.Payments, deps.Store.Users, cfg.PaymentCurrency)

	return s, nil
}

func newPaymentProvider(cfg *config.Config) payment.Provider {
	if cfg.StripeSecretKey == "" {
		middleware.Logger.Warn("STRIPE_SECRET_KEY not set, payment intents are disabled")
		return nil
	}
	return payment.WithBreaker(payment.NewStripeProvider(cfg.StripeSecretKey, nil), payment.DefaultBreakerSettings)
}

// NewApp returns a Fiber app with the JSON codec and error handler every
// route relies on.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "SocialPod API",
		BodyLimit:    1024 * 1024,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})
}

// errorHandler renders errors returned from handlers and unmatched routes.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code == fiber.StatusNotFound {
		err = &models.AppError{Code: models.CodeNotFound, Message: fiberErr.Message}
	}

	status := models.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request error", "error", err)
	}
	return models.RespondWithError(c, status, err)
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Tracing runs before the context middleware so the trace id reaches logs
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and Trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	app.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "SocialPod Backend Metrics Dashboard",
	}))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	authRequired := s.AuthRequired()
	adminRequired := s.AdminRequired()

	// Auth
	app.Post("/jwt", s.rateLimiter.Limit("jwt", 20, time.Minute), s.IssueToken)

	// Users
	app.Post("/users", s.CreateUser)
	app.Get("/users", authRequired, adminRequired, s.GetUsers)
	app.Patch("/users/admin/:id", authRequired, adminRequired, s.SetAdmin)
	app.Get("/users/admin/:email", authRequired, s.CheckAdmin)
	app.Get("/user/badge/:email", authRequired, s.GetBadge)

	// Announcements and tags
	app.Post("/announcement", authRequired, adminRequired, s.CreateAnnouncement)
	app.Get("/getAnnouncements", s.GetAnnouncements)
	app.Post("/tags", authRequired, adminRequired, s.CreateTag)
	app.Get("/tags", s.GetTags)

	// Admin
	app.Get("/admin-stats", authRequired, adminRequired, s.GetAdminStats)
	app.Get("/admin/feature-flags", authRequired, adminRequired, s.GetFeatureFlags)

	// Posts
	app.Post("/newPost", s.rateLimiter.Limit("create_post", 30, time.Minute), s.CreatePost)
	app.Get("/post", s.GetPosts)
	app.Get("/postCount", s.CountPosts)
	app.Get("/post/:id", s.GetPost)
	app.Patch("/post/:id", s.VotePost)
	app.Get("/myPost/:email", s.GetPostsByAuthor)
	app.Delete("/deletePost/:id", s.DeletePost)

	// Comments
	app.Post("/comments", s.rateLimiter.Limit("create_comment", 30, time.Minute), s.CreateComment)
	app.Get("/comments", s.GetComments)
	app.Get("/comments/:title", s.GetCommentsByTitle)
	app.Get("/getComments/:postId", s.GetCommentsByPost)

	// Payments
	app.Post("/create-payment-intent",
		s.rateLimiter.LimitWithPolicy("payment_intent", 10, time.Minute, middleware.FailClosed),
		s.CreatePaymentIntent)
	app.Post("/payment-success", authRequired, s.PaymentSuccess)

	app.Get("/", s.Root)
}

// Root handles GET /
func (s *Server) Root(c *fiber.Ctx) error {
	return c.SendString("hey there")
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	storeStatus := "healthy"
	if err := s.store.Ping(ctx); err != nil {
		storeStatus = "unhealthy"
	}

	// The cache degrades to pass-through without Redis, so it does not gate readiness.
	redisStatus := "healthy"
	if err := s.cache.Ping(ctx); errors.Is(err, cache.ErrDisabled) {
		redisStatus = "unavailable"
	} else if err != nil {
		redisStatus = "unhealthy"
	}

	checks := fiber.Map{
		"store": storeStatus,
		"redis": redisStatus,
	}
	if b, ok := s.payments.(*payment.BreakerProvider); ok {
		checks["payments"] = b.State()
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if storeStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overallStatus,
		"backend": s.store.Backend,
		"checks":  checks,
		"time":    time.Now(),
	})
}

// AuthRequired returns the authentication middleware
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("unauthorized access"))
		}

		claims, err := s.signer.Verify(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrMissingSecret) {
				middleware.Logger.ErrorContext(c.UserContext(), "token verification without a secret")
			}
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("unauthorized access"))
		}

		// Store the email in context and sync it to UserContext for logs and spans
		c.Locals("email", claims.Email)
		c.SetUserContext(middleware.WithUserEmail(c.UserContext(), claims.Email))

		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that the email is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := s.userService.IsAdmin(c.UserContext(), callerEmail(c))
		if err != nil {
			return respondError(c, err)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("forbidden access"))
		}

		return c.Next()
	}
}

// Start builds the app and listens on the configured port.
func (s *Server) Start() error {
	app := NewApp()
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("Server starting", "port", s.config.Port, "store", s.store.Backend)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Shutdown the HTTP server
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", "error", err)
		}
	}

	// Close store connection
	if err := s.store.Close(ctx); err != nil {
		middleware.Logger.Error("error closing store", "error", err)
	}

	// Close Redis connection
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.Error("error closing redis", "error", err)
		}
	}

	if s.tracerShutdown != nil {
		if err := s.tracerShutdown(ctx); err != nil {
			middleware.Logger.Error("error shutting down tracer", "error", err)
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
