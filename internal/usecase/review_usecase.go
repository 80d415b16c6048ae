package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to review a product.
type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=500"`
}

// UpdateReviewInput carries a partial review update. Nil fields are left untouched.
type UpdateReviewInput struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

// ReviewUsecase defines the interface for product review operations.
// Every write recomputes the product's rating aggregate in the same
// transaction, so the denormalized average never drifts.
type ReviewUsecase interface {
	// ListReviews returns a product's reviews, newest first.
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// CreateReview adds a review, rejecting a second review from the same user.
	CreateReview(ctx context.Context, userID, productID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// UpdateReview modifies the caller's own review.
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes the caller's own review.
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}
