package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T, strictTransitions bool) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Config:    &config.Config{Orders: &config.OrdersConfig{StrictStatusTransitions: strictTransitions}},
		Logger:    newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func testProduct(title string, price string, stock int) *entity.Product {
	return &entity.Product{
		ID:    uuid.New(),
		Title: title,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
}

func checkoutInput(items ...usecase.OrderItemInput) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		Items: items,
		ShippingAddress: entity.ShippingAddress{
			Street:  "1 Main St",
			City:    "Springfield",
			State:   "IL",
			ZipCode: "62701",
			Country: "US",
		},
		PaymentMethod: entity.PaymentMethodStripe,
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	book := testProduct("Book", "19.99", 10)
	mug := testProduct("Mug", "7.50", 3)
	input := checkoutInput(
		usecase.OrderItemInput{ProductID: book.ID, Quantity: 2},
		usecase.OrderItemInput{ProductID: mug.ID, Quantity: 1},
	)

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)

	txProductRepo.EXPECT().
		FindByIDsForUpdate(ctx, []uuid.UUID{book.ID, mug.ID}).
		Return([]*entity.Product{book, mug}, nil)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(ctx context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)
	txProductRepo.EXPECT().DecrementStock(ctx, book.ID, 2).Return(nil)
	txProductRepo.EXPECT().DecrementStock(ctx, mug.ID, 1).Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, txOrderRepo, nil))

	order, err := fx.service.CreateOrder(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.Payment.Status)
	assert.Equal(t, entity.PaymentMethodStripe, order.Payment.Method)
	// 2 x 19.99 + 1 x 7.50, priced from the catalog at checkout time.
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("47.48")),
		"unexpected total %s", order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(book.Price))
	assert.True(t, order.Items[1].Price.Equal(mug.Price))
	// Line items come back with their products populated, not just IDs.
	require.NotNil(t, order.Items[0].Product)
	assert.Equal(t, book.Title, order.Items[0].Product.Title)
	require.NotNil(t, order.Items[1].Product)
	assert.Equal(t, mug.Title, order.Items[1].Product.Title)
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	book := testProduct("Book", "19.99", 10)
	ghostID := uuid.New()
	input := checkoutInput(
		usecase.OrderItemInput{ProductID: book.ID, Quantity: 1},
		usecase.OrderItemInput{ProductID: ghostID, Quantity: 1},
	)

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txProductRepo.EXPECT().
		FindByIDsForUpdate(ctx, []uuid.UUID{book.ID, ghostID}).
		Return([]*entity.Product{book}, nil)

	// No order is created and no stock is touched.
	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, mockRepo.NewMockOrderRepository(t), nil))

	order, err := fx.service.CreateOrder(ctx, uuid.New(), input)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	mug := testProduct("Mug", "7.50", 1)
	input := checkoutInput(usecase.OrderItemInput{ProductID: mug.ID, Quantity: 2})

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txProductRepo.EXPECT().
		FindByIDsForUpdate(ctx, []uuid.UUID{mug.ID}).
		Return([]*entity.Product{mug}, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, mockRepo.NewMockOrderRepository(t), nil))

	order, err := fx.service.CreateOrder(ctx, uuid.New(), input)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_CreateOrder_DecrementLosesRace(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	mug := testProduct("Mug", "7.50", 2)
	input := checkoutInput(usecase.OrderItemInput{ProductID: mug.ID, Quantity: 2})

	txProductRepo := mockRepo.NewMockProductRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)

	txProductRepo.EXPECT().
		FindByIDsForUpdate(ctx, []uuid.UUID{mug.ID}).
		Return([]*entity.Product{mug}, nil)
	txOrderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	// The guarded UPDATE affects no rows, so the whole transaction rolls back.
	txProductRepo.EXPECT().
		DecrementStock(ctx, mug.ID, 2).
		Return(repository.ErrInsufficientStock)

	expectTransaction(fx.txManager, newFactory(t, nil, txProductRepo, txOrderRepo, nil))

	order, err := fx.service.CreateOrder(ctx, uuid.New(), input)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestOrderService_GetOrder_OwnershipEnforced(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	// The scoped lookup misses because the order belongs to someone else;
	// the caller cannot tell that apart from a missing order.
	fx.orderRepo.EXPECT().
		FindByIDForUser(ctx, orderID, userID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, userID, orderID, false)

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_GetOrder_AdminBypassesOwnership(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(stored, nil)

	order, err := fx.service.GetOrder(ctx, uuid.New(), orderID, true)

	require.NoError(t, err)
	assert.Equal(t, stored, order)
}

func TestOrderService_UpdateOrderStatus_DefaultAllowsAnyStatus(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusPending).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusPending})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_UpdateOrderStatus_StrictRejectsBackwardMove(t *testing.T) {
	fx := createTestOrderService(t, true)

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusPending})

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderStatusInvalid))
}

func TestOrderService_UpdateOrderStatus_StrictAllowsForwardMove(t *testing.T) {
	fx := createTestOrderService(t, true)

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusProcessing}, nil)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusShipped).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	order, err := fx.service.UpdateOrderStatus(ctx, orderID, &usecase.UpdateOrderStatusInput{Status: entity.OrderStatusShipped})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderService_UpdatePaymentStatus_MarksPaid(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Payment: entity.Payment{Method: entity.PaymentMethodStripe, Status: entity.PaymentStatusPending}}, nil)
	txOrderRepo.EXPECT().
		UpdatePayment(ctx, orderID, entity.Payment{
			Method:        entity.PaymentMethodStripe,
			Status:        entity.PaymentStatusPaid,
			TransactionID: "pi_admin",
		}).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	order, err := fx.service.UpdatePaymentStatus(ctx, orderID, &usecase.UpdatePaymentStatusInput{
		Status:        entity.PaymentStatusPaid,
		TransactionID: "pi_admin",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, order.Payment.Status)
	assert.Equal(t, "pi_admin", order.Payment.TransactionID)
}

func TestOrderService_UpdatePaymentStatus_ReplayIsNoOp(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	// Already paid with the same transaction; nothing is written.
	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Payment: entity.Payment{
			Method:        entity.PaymentMethodStripe,
			Status:        entity.PaymentStatusPaid,
			TransactionID: "pi_admin",
		}}, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	order, err := fx.service.UpdatePaymentStatus(ctx, orderID, &usecase.UpdatePaymentStatusInput{
		Status:        entity.PaymentStatusPaid,
		TransactionID: "pi_admin",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, order.Payment.Status)
	assert.Equal(t, "pi_admin", order.Payment.TransactionID)
}

func TestOrderService_UpdatePaymentStatus_RejectsSettledRegression(t *testing.T) {
	fx := createTestOrderService(t, false)

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Payment: entity.Payment{
			Method: entity.PaymentMethodStripe,
			Status: entity.PaymentStatusPaid,
		}}, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	order, err := fx.service.UpdatePaymentStatus(ctx, orderID, &usecase.UpdatePaymentStatusInput{Status: entity.PaymentStatusFailed})

	assert.Nil(t, order)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentStatusInvalid))
}
