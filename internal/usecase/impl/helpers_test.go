package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction wires a transaction manager mock to run the transactional
// closure against the given factory and propagate its error, mirroring what
// the real manager does around commit and rollback.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// newFactory builds a repository factory mock handing out the given
// transaction-scoped repositories. Nil repositories are not registered, so an
// unexpected factory call fails the test.
func newFactory(t *testing.T, userRepo *mockRepo.MockUserRepository, productRepo *mockRepo.MockProductRepository, orderRepo *mockRepo.MockOrderRepository, reviewRepo *mockRepo.MockReviewRepository) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	if userRepo != nil {
		factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	}
	if productRepo != nil {
		factory.EXPECT().NewProductRepository().Return(productRepo).Maybe()
	}
	if orderRepo != nil {
		factory.EXPECT().NewOrderRepository().Return(orderRepo).Maybe()
	}
	if reviewRepo != nil {
		factory.EXPECT().NewReviewRepository().Return(reviewRepo).Maybe()
	}

	return factory
}
