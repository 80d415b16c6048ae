package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
	cache       *mockSvc.MockProductCache
}

func createTestCatalogService(t *testing.T, withCache bool) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	var cache *mockSvc.MockProductCache
	params := CatalogServiceParams{
		ProductRepo: productRepo,
		Config:      &config.Config{Catalog: &config.CatalogConfig{DefaultPageSize: 10, MaxPageSize: 50}},
		Logger:      newDiscardLogger(),
	}
	if withCache {
		cache = mockSvc.NewMockProductCache(t)
		params.Cache = cache
	}

	return catalogServiceFixtures{
		service:     NewCatalogService(params),
		productRepo: productRepo,
		cache:       cache,
	}
}

func TestCatalogService_ListProducts_ClampsPagination(t *testing.T) {
	fx := createTestCatalogService(t, false)

	ctx := context.Background()

	// Page 0 becomes 1; an oversized page size is clamped to the maximum.
	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilters{Page: 1, PageSize: 50}).
		Return(&repository.ProductPage{Products: nil, Total: 120, Page: 1, PageSize: 50}, nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Page: 0, PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 50, output.PageSize)
	assert.Equal(t, int64(120), output.Total)
	assert.Equal(t, 3, output.TotalPages)
}

func TestCatalogService_ListProducts_DefaultPageSize(t *testing.T) {
	fx := createTestCatalogService(t, false)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilters{Category: "books", Page: 1, PageSize: 10}).
		Return(&repository.ProductPage{Total: 7, Page: 1, PageSize: 10}, nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Category: "books"})

	require.NoError(t, err)
	assert.Equal(t, 1, output.TotalPages)
}

func TestCatalogService_ListProducts_AppliesPriceBounds(t *testing.T) {
	fx := createTestCatalogService(t, false)

	ctx := context.Background()
	minPrice := decimal.RequireFromString("150")
	maxPrice := decimal.RequireFromString("250")

	fx.productRepo.EXPECT().
		List(ctx, repository.ProductFilters{
			Search:   "camera",
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
			Page:     1,
			PageSize: 10,
		}).
		Return(&repository.ProductPage{Total: 2, Page: 1, PageSize: 10}, nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Search:   "camera",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), output.Total)
}

func TestCatalogService_GetProductBySlug_CacheHit(t *testing.T) {
	fx := createTestCatalogService(t, true)

	ctx := context.Background()
	cached := &entity.Product{ID: uuid.New(), Slug: "clean-code"}

	// The repository is never consulted on a cache hit.
	fx.cache.EXPECT().GetBySlug(ctx, "clean-code").Return(cached, nil)

	product, err := fx.service.GetProductBySlug(ctx, "clean-code")

	require.NoError(t, err)
	assert.Equal(t, cached, product)
}

func TestCatalogService_GetProductBySlug_CacheMissReadsThrough(t *testing.T) {
	fx := createTestCatalogService(t, true)

	ctx := context.Background()
	stored := &entity.Product{ID: uuid.New(), Slug: "clean-code"}

	fx.cache.EXPECT().GetBySlug(ctx, "clean-code").Return(nil, service.ErrCacheMiss)
	fx.productRepo.EXPECT().FindBySlug(ctx, "clean-code").Return(stored, nil)
	fx.cache.EXPECT().SetBySlug(ctx, stored).Return(nil)

	product, err := fx.service.GetProductBySlug(ctx, "clean-code")

	require.NoError(t, err)
	assert.Equal(t, stored, product)
}

func TestCatalogService_GetProductBySlug_BrokenCacheFallsThrough(t *testing.T) {
	fx := createTestCatalogService(t, true)

	ctx := context.Background()
	stored := &entity.Product{ID: uuid.New(), Slug: "clean-code"}

	// A failing cache degrades to a plain repository read.
	fx.cache.EXPECT().GetBySlug(ctx, "clean-code").Return(nil, errors.New("connection refused"))
	fx.productRepo.EXPECT().FindBySlug(ctx, "clean-code").Return(stored, nil)
	fx.cache.EXPECT().SetBySlug(ctx, stored).Return(errors.New("connection refused"))

	product, err := fx.service.GetProductBySlug(ctx, "clean-code")

	require.NoError(t, err)
	assert.Equal(t, stored, product)
}

func TestCatalogService_GetProductBySlug_NotFound(t *testing.T) {
	fx := createTestCatalogService(t, false)

	ctx := context.Background()

	fx.productRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProductBySlug(ctx, "missing")

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CreateProduct_DerivesSlug(t *testing.T) {
	fx := createTestCatalogService(t, false)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Title:    "The Go Programming Language",
		Price:    decimal.RequireFromString("39.99"),
		Stock:    5,
		Category: "books",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "the-go-programming-language", product.Slug)
	assert.Equal(t, input.Title, product.Title)
}

func TestCatalogService_CreateProduct_SlugConflict(t *testing.T) {
	fx := createTestCatalogService(t, false)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		Title:    "Clean Code",
		Price:    decimal.RequireFromString("29.99"),
		Category: "books",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateProduct)

	product, err := fx.service.CreateProduct(ctx, input)

	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductSlugConflict))
}

func TestCatalogService_UpdateProduct_TitleChangeRefreshesSlug(t *testing.T) {
	fx := createTestCatalogService(t, true)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, Title: "Old Title", Slug: "old-title"}
	newTitle := "New Title"

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)
	fx.productRepo.EXPECT().Update(ctx, stored).Return(nil)
	// Both the stale and the fresh detail entries are dropped.
	fx.cache.EXPECT().InvalidateSlug(ctx, "old-title").Return(nil)
	fx.cache.EXPECT().InvalidateSlug(ctx, "new-title").Return(nil)

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, "new-title", product.Slug)
	assert.Equal(t, newTitle, product.Title)
}

func TestCatalogService_DeleteProduct_InvalidatesCache(t *testing.T) {
	fx := createTestCatalogService(t, true)

	ctx := context.Background()
	productID := uuid.New()
	stored := &entity.Product{ID: productID, Slug: "old-title"}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(stored, nil)
	fx.productRepo.EXPECT().Delete(ctx, productID).Return(nil)
	fx.cache.EXPECT().InvalidateSlug(ctx, "old-title").Return(nil)

	err := fx.service.DeleteProduct(ctx, productID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t, false)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
