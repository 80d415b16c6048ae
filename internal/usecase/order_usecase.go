package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is a single line of a checkout request.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items           []OrderItemInput       `json:"items" validate:"required,min=1,dive"`
	ShippingAddress entity.ShippingAddress `json:"shippingAddress" validate:"required"`
	PaymentMethod   entity.PaymentMethod   `json:"paymentMethod" validate:"required,oneof=stripe iyzico cash"`
}

// UpdateOrderStatusInput carries an admin's fulfillment status change.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// UpdatePaymentStatusInput carries an admin's payment status override.
type UpdatePaymentStatusInput struct {
	Status        entity.PaymentStatus `json:"status" validate:"required,oneof=pending paid failed refunded"`
	TransactionID string               `json:"transactionId" validate:"omitempty,max=255"`
}

// OrderUsecase defines the interface for order lifecycle operations.
// Customers see only their own orders; admins see all of them.
type OrderUsecase interface {
	// CreateOrder validates stock, prices the order from the current catalog,
	// persists it and decrements stock, all within a single transaction.
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder returns an order, enforcing ownership unless isAdmin is set.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID, isAdmin bool) (*entity.Order, error)

	// ListUserOrders returns the calling user's orders, newest first.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListAllOrders returns every order in the system, newest first.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus applies an admin's fulfillment status change.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// UpdatePaymentStatus applies an admin's payment status change through the
	// same transition rules as the confirmation and webhook writers, so a
	// replay with the same transaction ID is a no-op.
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, input *UpdatePaymentStatusInput) (*entity.Order, error)
}
