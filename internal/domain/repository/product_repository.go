package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateProduct is returned when a product with the same slug already exists.
var ErrDuplicateProduct = errors.New("product already exists")

// ErrInsufficientStock is returned when a conditional stock decrement affects no rows.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductFilters narrows and orders a catalog listing. Zero values mean
// "no constraint" for the corresponding field.
type ProductFilters struct {
	Category string
	Search   string // Case-insensitive substring match on title or description.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string // One of "price", "rating", "createdAt"; defaults to "createdAt".
	SortDir  string // "asc" or "desc"; defaults to "desc".
	Page     int
	PageSize int
}

// ProductPage is a single page of a catalog listing together with the
// total match count before pagination.
type ProductPage struct {
	Products []*entity.Product
	Total    int64
	Page     int
	PageSize int
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single product by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindByIDs retrieves the products matching the given IDs. Missing IDs are
	// simply absent from the result; callers decide whether that is an error.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindByIDsForUpdate behaves like FindByIDs but takes row-level write locks,
	// so concurrent checkouts of the same products serialize. Only meaningful
	// inside a transaction.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// List returns a filtered, sorted, paginated page of the catalog.
	List(ctx context.Context, filters ProductFilters) (*ProductPage, error)

	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product entity in the storage.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts quantity from the product's stock,
	// failing with ErrInsufficientStock when the remaining stock is too low.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// UpdateRating overwrites the product's denormalized rating aggregate.
	UpdateRating(ctx context.Context, id uuid.UUID, avg float64, count int) error
}
