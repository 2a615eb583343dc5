// Package bootstrap connects the runtime dependencies shared by every command.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"socialpod/internal/cache"
	"socialpod/internal/config"
	"socialpod/internal/database"
	"socialpod/internal/middleware"
	"socialpod/internal/repository"
	"socialpod/internal/repository/mongostore"
	"socialpod/internal/service"

	"github.com/redis/go-redis/v9"
)

// Options control runtime initialization behavior.
type Options struct {
	// SkipBootstrapAdmin leaves BOOTSTRAP_ADMIN_EMAIL untouched.
	SkipBootstrapAdmin bool
}

// Runtime holds the long-lived clients built once at startup.
type Runtime struct {
	Store *repository.Store
	Redis *redis.Client
}

// Close releases the store and Redis connections.
func (r *Runtime) Close(ctx context.Context) {
	if r == nil {
		return
	}
	if err := r.Store.Close(ctx); err != nil {
		middleware.Logger.Error("error closing store", "error", err)
	}
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			middleware.Logger.Error("error closing redis", "error", err)
		}
	}
}

// InitRuntime connects the configured store and Redis and ensures the
// bootstrap admin exists. Redis is optional; the client is nil when it is
// unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store connection failed: %w", err)
	}

	rt := &Runtime{Store: store, Redis: cache.Connect(cfg.RedisURL)}

	if !opts.SkipBootstrapAdmin {
		if err := ensureBootstrapAdmin(ctx, cfg, store); err != nil {
			rt.Close(ctx)
			return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
		}
	}
	return rt, nil
}

// OpenStore connects the backend named by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return mongostore.New(client, db), nil
	case config.StorePostgres, config.StoreSQLite:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func ensureBootstrapAdmin(ctx context.Context, cfg *config.Config, store *repository.Store) error {
	email := strings.TrimSpace(strings.ToLower(cfg.BootstrapAdminEmail))
	if email == "" {
		return nil
	}
	name, _, _ := strings.Cut(email, "@")
	if err := service.NewUserService(store.Users).EnsureAdmin(ctx, email, name); err != nil {
		return err
	}
	middleware.Logger.Info("bootstrap admin ensured", "email", email)
	return nil
}
