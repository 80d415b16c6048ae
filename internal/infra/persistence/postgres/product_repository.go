package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the sortable listing columns. Anything else falls
// back to creation time so request input never reaches the ORDER BY clause.
var sortColumns = map[string]string{
	"price":     "price",
	"rating":    "rating_avg",
	"createdAt": "created_at",
}

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindBySlug retrieves a single product by its URL slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by slug")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products matching the given IDs.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	return repo.findByIDs(ctx, repo.db, ids)
}

// FindByIDsForUpdate retrieves the products matching the given IDs while
// holding row-level write locks, so concurrent checkouts serialize.
func (repo *productRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	return repo.findByIDs(ctx, repo.db.Clauses(clause.Locking{Strength: "UPDATE"}), ids)
}

func (repo *productRepository) findByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// List returns a filtered, sorted, paginated page of the catalog.
func (repo *productRepository) List(ctx context.Context, filters repository.ProductFilters) (*repository.ProductPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	column, ok := sortColumns[filters.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filters.SortDir == "asc" {
		direction = "ASC"
	}

	var productMs []model.ProductModel
	err := query.
		Order(column + " " + direction).
		Offset((filters.Page - 1) * filters.PageSize).
		Limit(filters.PageSize).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return &repository.ProductPage{
		Products: products,
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	}, nil
}

// Create persists a new product entity to the database.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product entity in the database.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Save(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product by ID.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically subtracts quantity from the product's stock. The
// WHERE guard makes overselling impossible even outside a row lock: when the
// remaining stock is too low, no row matches and RowsAffected stays zero.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// UpdateRating overwrites the product's denormalized rating aggregate.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, avg float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_avg":   avg,
			"rating_count": count,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Images:      data.Images,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		RatingAvg:   data.RatingAvg,
		RatingCount: data.RatingCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Images:      data.Images,
		Price:       data.Price,
		Stock:       data.Stock,
		Category:    data.Category,
		RatingAvg:   data.RatingAvg,
		RatingCount: data.RatingCount,
	}
}
