package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo     repository.ProductRepository
	cache           service.ProductCache
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Cache       service.ProductCache `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageSize, maxPageSize := 10, 100
	if params.Config != nil && params.Config.Catalog != nil {
		defaultPageSize = params.Config.Catalog.DefaultPageSize
		maxPageSize = params.Config.Catalog.MaxPageSize
	}

	return &catalogService{
		productRepo:     params.ProductRepo,
		cache:           params.Cache,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns a filtered, sorted page of the catalog.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPageOutput, error) {
	filters := input.Filters()
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = srv.defaultPageSize
	}
	if filters.PageSize > srv.maxPageSize {
		filters.PageSize = srv.maxPageSize
	}

	page, err := srv.productRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	totalPages := int((page.Total + int64(page.PageSize) - 1) / int64(page.PageSize))

	return &usecase.ProductPageOutput{
		Products:   page.Products,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetProductBySlug resolves a product detail lookup, reading through the
// cache when one is configured.
func (srv *catalogService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	if srv.cache != nil {
		cached, err := srv.cache.GetBySlug(ctx, slug)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, service.ErrCacheMiss) {
			// A broken cache must not take down product pages.
			srv.log(ctx).Warn("Product cache read failed", slog.String("slug", slug), slog.Any("error", err))
		}
	}

	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	if srv.cache != nil {
		if err := srv.cache.SetBySlug(ctx, product); err != nil {
			srv.log(ctx).Warn("Product cache write failed", slog.String("slug", slug), slog.Any("error", err))
		}
	}

	return product, nil
}

// CreateProduct adds a product to the catalog, deriving its slug from the title.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Title:       input.Title,
		Slug:        util.Slugify(input.Title),
		Description: input.Description,
		Images:      input.Images,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateProduct) {
			return nil, errors.Wrap(domainerrors.ErrProductSlugConflict, "product creation failed")
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

// UpdateProduct applies a partial update. A title change recomputes the slug,
// and any change invalidates the cached detail entry.
func (srv *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	staleSlug := product.Slug

	if input.Title != nil {
		product.Title = *input.Title
		product.Slug = util.Slugify(*input.Title)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Category != nil {
		product.Category = *input.Category
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateProduct) {
			return nil, errors.Wrap(domainerrors.ErrProductSlugConflict, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.invalidateCache(ctx, staleSlug, product.Slug)

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (srv *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product deletion failed")
		}

		return errors.Wrap(err, "failed to find product by id")
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.invalidateCache(ctx, product.Slug, "")
	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func (srv *catalogService) invalidateCache(ctx context.Context, slugs ...string) {
	if srv.cache == nil {
		return
	}

	for _, slug := range slugs {
		if slug == "" {
			continue
		}
		if err := srv.cache.InvalidateSlug(ctx, slug); err != nil {
			srv.log(ctx).Warn("Product cache invalidation failed", slog.String("slug", slug), slog.Any("error", err))
		}
	}
}
