package server

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialpod/internal/auth"
	"socialpod/internal/config"
	"socialpod/internal/database"
	"socialpod/internal/payment"
	"socialpod/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

const testSecret = "test-secret-key-12345678901234567890123456789012"

type testServer struct {
	app   *fiber.App
	srv   *Server
	store *repository.Store
	mr    *miniredis.Miniredis
}

type testOption func(*config.Config, *Deps)

func withFeatureFlags(raw string) testOption {
	return func(cfg *config.Config, _ *Deps) { cfg.FeatureFlags = raw }
}

func withPayments(p payment.Provider) testOption {
	return func(_ *config.Config, d *Deps) { d.Payments = p }
}

func withoutRedis() testOption {
	return func(_ *config.Config, d *Deps) { d.Redis = nil }
}

// setupTestServer wires a Server to an in-memory sqlite store and miniredis.
func setupTestServer(t *testing.T, opts ...testOption) *testServer {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = sqlDB.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Env:             "test",
		Port:            "0",
		JWTSecret:       testSecret,
		PaymentCurrency: "usd",
	}
	store := repository.NewGormStore(db)
	deps := Deps{Store: store, Redis: rdb}
	for _, opt := range opts {
		opt(cfg, &deps)
	}

	srv, err := NewServerWithDeps(cfg, deps)
	require.NoError(t, err)

	app := NewApp()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	return &testServer{app: app, srv: srv, store: store, mr: mr}
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.NewSigner(testSecret).Issue(auth.Identity{Email: email})
	require.NoError(t, err)
	return token
}

// do sends a request with an optional JSON body and bearer token and
// returns the response and its body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}
