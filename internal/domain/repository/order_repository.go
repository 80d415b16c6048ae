package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves a single order with its items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUser retrieves an order only when it belongs to the given user.
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves all orders placed by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindAll retrieves every order in the system, newest first.
	FindAll(ctx context.Context) ([]*entity.Order, error)

	// Create persists a new order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus overwrites the order's fulfillment status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdatePayment overwrites the order's embedded payment record.
	UpdatePayment(ctx context.Context, id uuid.UUID, payment entity.Payment) error
}
