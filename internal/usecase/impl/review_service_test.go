package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service   usecase.ReviewUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: mockRepo.NewMockReviewRepository(t),
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:   service,
		txManager: txManager,
	}
}

func TestReviewService_CreateReview_RecomputesRoundedRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txReviewRepo := mockRepo.NewMockReviewRepository(t)

	txProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	txReviewRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(nil, repository.ErrReviewNotFound)
	txReviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			review.ID = uuid.New()
		}).
		Return(nil)
	// 4.25 rounds half up to 4.3 on the denormalized product column.
	txReviewRepo.EXPECT().
		AggregateRating(ctx, productID).
		Return(&repository.RatingAggregate{Average: 4.25, Count: 4}, nil)
	txProductRepo.EXPECT().
		UpdateRating(ctx, productID, 4.3, 4).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, nil, txReviewRepo))

	review, err := fx.service.CreateReview(ctx, userID, productID, &usecase.CreateReviewInput{
		Rating:  5,
		Comment: "Great read",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, productID, review.ProductID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_OnePerUserPerProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txReviewRepo := mockRepo.NewMockReviewRepository(t)

	txProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	txReviewRepo.EXPECT().
		FindByUserAndProduct(ctx, userID, productID).
		Return(&entity.Review{ID: uuid.New(), UserID: userID, ProductID: productID}, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, nil, txReviewRepo))

	review, err := fx.service.CreateReview(ctx, userID, productID, &usecase.CreateReviewInput{Rating: 4})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewExists))
}

func TestReviewService_CreateReview_ProductMissing(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, nil, mockRepo.NewMockReviewRepository(t)))

	review, err := fx.service.CreateReview(ctx, uuid.New(), productID, &usecase.CreateReviewInput{Rating: 4})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestReviewService_UpdateReview_OwnershipEnforced(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	txReviewRepo := mockRepo.NewMockReviewRepository(t)
	txReviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: uuid.New()}, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, nil, txReviewRepo))

	// Someone else's review reads as missing, not forbidden.
	rating := 1
	review, err := fx.service.UpdateReview(ctx, uuid.New(), reviewID, &usecase.UpdateReviewInput{Rating: &rating})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_DeleteReview_RecomputesRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	reviewID := uuid.New()

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txReviewRepo := mockRepo.NewMockReviewRepository(t)

	txReviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, UserID: userID, ProductID: productID}, nil)
	txReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)
	// Deleting the only review zeroes the aggregate.
	txReviewRepo.EXPECT().
		AggregateRating(ctx, productID).
		Return(&repository.RatingAggregate{Average: 0, Count: 0}, nil)
	txProductRepo.EXPECT().UpdateRating(ctx, productID, 0.0, 0).Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, nil, txReviewRepo))

	err := fx.service.DeleteReview(ctx, userID, reviewID)

	require.NoError(t, err)
}
