package service

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCacheMiss is returned when the requested product is not cached.
var ErrCacheMiss = errors.New("cache miss")

// ProductCache is a read-through cache for product detail lookups.
// Implementations may be absent entirely; callers must treat the cache as
// an optimization, never as the source of truth.
type ProductCache interface {
	// GetBySlug returns the cached product for a slug, or ErrCacheMiss.
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// SetBySlug caches a product under its slug with the configured TTL.
	SetBySlug(ctx context.Context, product *entity.Product) error

	// InvalidateSlug drops a cached product, typically after a write.
	InvalidateSlug(ctx context.Context, slug string) error
}
