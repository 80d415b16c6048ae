package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListReviews returns a product's reviews, newest first.
func (srv *reviewService) ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// CreateReview adds a review and recomputes the product's rating aggregate in
// the same transaction, so the denormalized average never drifts.
func (srv *reviewService) CreateReview(ctx context.Context, userID, productID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	var created *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		if _, err := productRepo.FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "review creation failed")
			}

			return errors.Wrap(err, "failed to find product")
		}

		if _, err := reviewRepo.FindByUserAndProduct(ctx, userID, productID); err == nil {
			return errors.Wrap(domainerrors.ErrReviewExists, "review creation rejected")
		} else if !errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(err, "failed to check existing review")
		}

		review := &entity.Review{
			UserID:    userID,
			ProductID: productID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return errors.Wrap(domainerrors.ErrReviewExists, "review creation rejected")
			}

			return errors.Wrap(err, "failed to create review")
		}

		if err := srv.recomputeRating(ctx, repoFactory, productID); err != nil {
			return err
		}

		created = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.log(ctx).Info("Review created", slog.Any("reviewID", created.ID), slog.Any("productID", productID))

	return created, nil
}

// UpdateReview modifies the caller's own review and recomputes the aggregate.
func (srv *reviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := srv.loadOwnReview(ctx, reviewRepo, userID, reviewID)
		if err != nil {
			return err
		}

		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Comment != nil {
			review.Comment = *input.Comment
		}

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		if err := srv.recomputeRating(ctx, repoFactory, review.ProductID); err != nil {
			return err
		}

		updated = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	return updated, nil
}

// DeleteReview removes the caller's own review and recomputes the aggregate.
func (srv *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := srv.loadOwnReview(ctx, reviewRepo, userID, reviewID)
		if err != nil {
			return err
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return srv.recomputeRating(ctx, repoFactory, review.ProductID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	srv.log(ctx).Info("Review deleted", slog.Any("reviewID", reviewID))

	return nil
}

// loadOwnReview fetches a review and enforces ownership. A review belonging
// to someone else is reported as missing, not forbidden.
func (srv *reviewService) loadOwnReview(ctx context.Context, reviewRepo repository.ReviewRepository, userID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	if review.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review does not belong to caller")
	}

	return review, nil
}

// recomputeRating refreshes the product's denormalized rating aggregate,
// rounding the average to one decimal place.
func (srv *reviewService) recomputeRating(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID) error {
	agg, err := repoFactory.NewReviewRepository().AggregateRating(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to aggregate ratings")
	}

	avg := math.Round(agg.Average*10) / 10

	if err := repoFactory.NewProductRepository().UpdateRating(ctx, productID, avg, agg.Count); err != nil {
		return errors.Wrap(err, "failed to update product rating")
	}

	return nil
}
