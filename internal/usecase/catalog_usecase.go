package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// ListProductsInput narrows and pages a catalog listing. Empty fields fall
// back to the configured defaults.
type ListProductsInput struct {
	Category string           `query:"category"`
	Search   string           `query:"search"`
	MinPrice *decimal.Decimal `query:"minPrice"`
	MaxPrice *decimal.Decimal `query:"maxPrice"`
	SortBy   string           `query:"sortBy" validate:"omitempty,oneof=price rating createdAt"`
	SortDir  string           `query:"sortDir" validate:"omitempty,oneof=asc desc"`
	Page     int              `query:"page" validate:"omitempty,min=1"`
	PageSize int              `query:"pageSize" validate:"omitempty,min=1"`
}

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description"`
	Images      []string        `json:"images" validate:"omitempty,dive,url"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	Category    string          `json:"category" validate:"required,max=100"`
}

// UpdateProductInput carries a partial product update. Nil fields are left
// untouched; a new title recomputes the slug.
type UpdateProductInput struct {
	Title       *string          `json:"title" validate:"omitempty,max=200"`
	Description *string          `json:"description"`
	Images      []string         `json:"images" validate:"omitempty,dive,url"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
}

// --- Output DTOs ---

// ProductPageOutput is one page of the catalog with pagination metadata.
type ProductPageOutput struct {
	Products   []*entity.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// CatalogUsecase defines the interface for product catalog operations.
// Listing and detail lookups are public; writes require the admin role.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPageOutput, error)
	GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// Filters converts the listing input into repository-level filters.
func (in *ListProductsInput) Filters() repository.ProductFilters {
	return repository.ProductFilters{
		Category: in.Category,
		Search:   in.Search,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		SortBy:   in.SortBy,
		SortDir:  in.SortDir,
		Page:     in.Page,
		PageSize: in.PageSize,
	}
}
