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
)

// reviewRepository implements the domain's ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// FindByID retrieves a single review by ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).Preload("User").First(&reviewM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByProduct retrieves all reviews for a product, newest first.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var reviewMs []model.ReviewModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for i := range reviewMs {
		reviews = append(reviews, toReviewDomain(&reviewMs[i]))
	}

	return reviews, nil
}

// FindByUserAndProduct retrieves the review a user left on a product, if any.
func (repo *reviewRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		First(&reviewM, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user and product")
	}

	return toReviewDomain(&reviewM), nil
}

// Create persists a new review entity to the database.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update modifies an existing review entity in the database.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Save(reviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Delete removes a review by ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ReviewModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// AggregateRating recomputes the average rating and review count for a
// product. A product without reviews aggregates to zero, not NULL.
func (repo *reviewRepository) AggregateRating(ctx context.Context, productID uuid.UUID) (*repository.RatingAggregate, error) {
	var agg repository.RatingAggregate
	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&agg).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate product ratings")
	}

	return &agg, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.User != nil {
		review.UserName = data.User.Name
	}

	return review
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Rating:    data.Rating,
		Comment:   data.Comment,
	}
}
