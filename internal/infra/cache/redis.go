// Package cache provides the Redis-backed product cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const slugKeyPrefix = "product:slug:"

// productCache implements the domain's ProductCache interface on Redis.
type productCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Params holds dependencies for the product cache, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewProductCache builds the Redis-backed cache. When the cache is disabled
// by configuration it returns nil and catalog lookups go straight to the
// database.
func NewProductCache(params Params) (service.ProductCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Product cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &productCache{client: client, ttl: cfg.TTL}, nil
}

// GetBySlug returns the cached product for a slug, or ErrCacheMiss.
func (c *productCache) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	payload, err := c.client.Get(ctx, slugKeyPrefix+slug).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to read product from cache")
	}

	var product entity.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		// A corrupt entry behaves like a miss so the caller refreshes it.
		return nil, service.ErrCacheMiss
	}

	return &product, nil
}

// SetBySlug caches a product under its slug with the configured TTL.
func (c *productCache) SetBySlug(ctx context.Context, product *entity.Product) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return errors.Wrap(err, "failed to encode product for cache")
	}

	if err := c.client.Set(ctx, slugKeyPrefix+product.Slug, payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write product to cache")
	}

	return nil
}

// InvalidateSlug drops a cached product, typically after a write.
func (c *productCache) InvalidateSlug(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, slugKeyPrefix+slug).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cached product")
	}

	return nil
}
