package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ErrDuplicateReview is returned when a user already reviewed the product.
var ErrDuplicateReview = errors.New("review already exists")

// RatingAggregate is the result of recomputing a product's review statistics.
type RatingAggregate struct {
	Average float64
	Count   int
}

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProduct retrieves all reviews for a product, newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// FindByUserAndProduct retrieves the review a user left on a product, if any.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error)

	// Create persists a new review entity to the storage.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review entity in the storage.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// AggregateRating recomputes the average rating and review count for a product.
	AggregateRating(ctx context.Context, productID uuid.UUID) (*RatingAggregate, error)
}
