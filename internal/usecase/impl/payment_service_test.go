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

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	service := NewPaymentService(PaymentServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Config:    &config.Config{Stripe: &config.StripeConfig{Currency: "usd"}},
		Logger:    newDiscardLogger(),
	})

	return paymentServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		gateway:   gateway,
	}
}

func stripeOrder(total string, paymentStatus entity.PaymentStatus) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Status:      entity.OrderStatusPending,
		TotalAmount: decimal.RequireFromString(total),
		Payment: entity.Payment{
			Method: entity.PaymentMethodStripe,
			Status: paymentStatus,
		},
	}
}

func TestPaymentService_CreateIntent_ConvertsToMinorUnits(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPending)

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, order.ID, order.UserID).Return(order, nil)
	fx.gateway.EXPECT().
		CreateIntent(ctx, int64(4999), "usd", order.ID.String()).
		Return(&service.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil)

	output, err := fx.service.CreateIntent(ctx, order.UserID, false, &usecase.CreateIntentInput{OrderID: order.ID})

	require.NoError(t, err)
	assert.Equal(t, "pi_123", output.PaymentIntentID)
	assert.Equal(t, "pi_123_secret", output.ClientSecret)
}

func TestPaymentService_CreateIntent_AlreadyPaid(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPaid)

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, order.ID, order.UserID).Return(order, nil)

	output, err := fx.service.CreateIntent(ctx, order.UserID, false, &usecase.CreateIntentInput{OrderID: order.ID})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentNotPending))
}

func TestPaymentService_CreateIntent_NonCardMethod(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPending)
	order.Payment.Method = entity.PaymentMethodCash

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, order.ID, order.UserID).Return(order, nil)

	output, err := fx.service.CreateIntent(ctx, order.UserID, false, &usecase.CreateIntentInput{OrderID: order.ID})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedPaymentMethod))
}

func TestPaymentService_ConfirmPayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPending)

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, order.ID, order.UserID).Return(order, nil)
	fx.gateway.EXPECT().
		GetIntent(ctx, "pi_123").
		Return(&service.PaymentIntent{ID: "pi_123", Status: service.IntentStatusSucceeded, OrderID: order.ID.String()}, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrderRepo.EXPECT().
		UpdatePayment(ctx, order.ID, entity.Payment{
			Method:        entity.PaymentMethodStripe,
			Status:        entity.PaymentStatusPaid,
			TransactionID: "pi_123",
		}).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	output, err := fx.service.ConfirmPayment(ctx, order.UserID, false, &usecase.ConfirmPaymentInput{
		OrderID:         order.ID,
		PaymentIntentID: "pi_123",
	})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, service.IntentStatusSucceeded, output.Status)
}

func TestPaymentService_ConfirmPayment_IntentNotSettled(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPending)

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, order.ID, order.UserID).Return(order, nil)
	fx.gateway.EXPECT().
		GetIntent(ctx, "pi_123").
		Return(&service.PaymentIntent{ID: "pi_123", Status: "requires_payment_method", OrderID: order.ID.String()}, nil)

	// Not an error: the charge may still settle through the webhook later.
	output, err := fx.service.ConfirmPayment(ctx, order.UserID, false, &usecase.ConfirmPaymentInput{
		OrderID:         order.ID,
		PaymentIntentID: "pi_123",
	})

	require.NoError(t, err)
	assert.False(t, output.Success)
	assert.Equal(t, "requires_payment_method", output.Status)
}

func TestPaymentService_ConfirmPayment_IntentBelongsToAnotherOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPending)

	fx.orderRepo.EXPECT().FindByIDForUser(ctx, order.ID, order.UserID).Return(order, nil)
	fx.gateway.EXPECT().
		GetIntent(ctx, "pi_123").
		Return(&service.PaymentIntent{ID: "pi_123", Status: service.IntentStatusSucceeded, OrderID: uuid.NewString()}, nil)

	output, err := fx.service.ConfirmPayment(ctx, order.UserID, false, &usecase.ConfirmPaymentInput{
		OrderID:         order.ID,
		PaymentIntentID: "pi_123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPaymentService_HandlePaymentEvent_MarksOrderPaid(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPending)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrderRepo.EXPECT().
		UpdatePayment(ctx, order.ID, entity.Payment{
			Method:        entity.PaymentMethodStripe,
			Status:        entity.PaymentStatusPaid,
			TransactionID: "pi_123",
		}).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	err := fx.service.HandlePaymentEvent(ctx, &service.PaymentEvent{
		Type:     service.EventPaymentSucceeded,
		IntentID: "pi_123",
		OrderID:  order.ID.String(),
	})

	require.NoError(t, err)
}

func TestPaymentService_HandlePaymentEvent_UnknownOrderDropped(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	// The event is acknowledged so the gateway stops retrying it.
	err := fx.service.HandlePaymentEvent(ctx, &service.PaymentEvent{
		Type:     service.EventPaymentSucceeded,
		IntentID: "pi_123",
		OrderID:  orderID.String(),
	})

	require.NoError(t, err)
}

func TestPaymentService_HandlePaymentEvent_ConflictingEventDropped(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusFailed)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	// A success event arriving after the failure settled loses the race; the
	// settled state stands and no update is written.
	err := fx.service.HandlePaymentEvent(ctx, &service.PaymentEvent{
		Type:     service.EventPaymentSucceeded,
		IntentID: "pi_123",
		OrderID:  order.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, order.Payment.Status)
}

func TestPaymentService_HandlePaymentEvent_RedeliveryIsIdempotent(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPaid)
	order.Payment.TransactionID = "pi_123"

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	// Same terminal status again: no write, no error.
	err := fx.service.HandlePaymentEvent(ctx, &service.PaymentEvent{
		Type:     service.EventPaymentSucceeded,
		IntentID: "pi_123",
		OrderID:  order.ID.String(),
	})

	require.NoError(t, err)
}

func TestPaymentService_HandlePaymentEvent_IgnoredEventType(t *testing.T) {
	fx := createTestPaymentService(t)

	err := fx.service.HandlePaymentEvent(context.Background(), &service.PaymentEvent{
		Type:     service.EventIgnored,
		IntentID: "pi_123",
	})

	require.NoError(t, err)
}

func TestPaymentService_HandlePaymentEvent_UnparsableOrderID(t *testing.T) {
	fx := createTestPaymentService(t)

	err := fx.service.HandlePaymentEvent(context.Background(), &service.PaymentEvent{
		Type:     service.EventPaymentFailed,
		IntentID: "pi_123",
		OrderID:  "not-a-uuid",
	})

	require.NoError(t, err)
}

func TestPaymentService_Refund_FullAmount(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPaid)
	order.Payment.TransactionID = "pi_123"

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().
		CreateRefund(ctx, "pi_123", (*int64)(nil)).
		Return(&service.Refund{ID: "re_456"}, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrderRepo.EXPECT().
		UpdatePayment(ctx, order.ID, entity.Payment{
			Method:        entity.PaymentMethodStripe,
			Status:        entity.PaymentStatusRefunded,
			TransactionID: "pi_123",
		}).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	output, err := fx.service.Refund(ctx, &usecase.RefundInput{OrderID: order.ID})

	require.NoError(t, err)
	assert.Equal(t, "re_456", output.RefundID)
}

func TestPaymentService_Refund_PartialAmount(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPaid)
	order.Payment.TransactionID = "pi_123"
	amount := decimal.RequireFromString("10.00")

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().
		CreateRefund(ctx, "pi_123", mock.MatchedBy(func(minor *int64) bool {
			return minor != nil && *minor == 1000
		})).
		Return(&service.Refund{ID: "re_456"}, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	txOrderRepo.EXPECT().
		UpdatePayment(ctx, order.ID, mock.AnythingOfType("entity.Payment")).
		Return(nil)

	expectTransaction(fx.txManager, newFactory(t, nil, nil, txOrderRepo, nil))

	output, err := fx.service.Refund(ctx, &usecase.RefundInput{OrderID: order.ID, Amount: &amount})

	require.NoError(t, err)
	assert.Equal(t, "re_456", output.RefundID)
}

func TestPaymentService_Refund_RejectsUnpaidOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := stripeOrder("49.99", entity.PaymentStatusPending)

	fx.orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	output, err := fx.service.Refund(ctx, &usecase.RefundInput{OrderID: order.ID})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentStatusInvalid))
}

func TestPaymentService_ListPaymentMethods(t *testing.T) {
	fx := createTestPaymentService(t)

	methods := fx.service.ListPaymentMethods(context.Background())

	require.Len(t, methods, 3)
	assert.Equal(t, string(entity.PaymentMethodStripe), methods[0].ID)
	assert.True(t, methods[0].Enabled)
	assert.False(t, methods[1].Enabled)
	assert.False(t, methods[2].Enabled)
}
