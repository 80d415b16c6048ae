package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the order status enum.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// orderStatusTransitions is the strict fulfilment flow:
// pending -> processing -> shipped -> delivered, with cancellation possible
// from pending or processing. Only consulted when the strict policy is on;
// the default admin override accepts any enum member.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionOrderStatus reports whether the strict policy allows from -> to.
// A same-status update is always allowed as a no-op.
func CanTransitionOrderStatus(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range orderStatusTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// PaymentMethod identifies how the customer pays for an order.
type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodIyzico PaymentMethod = "iyzico"
	PaymentMethodCash   PaymentMethod = "cash"
)

// ValidPaymentMethod reports whether m is a member of the payment method enum.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodStripe, PaymentMethodIyzico, PaymentMethodCash:
		return true
	}

	return false
}

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// ValidPaymentStatus reports whether s is a member of the payment status enum.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}

	return false
}

// ErrPaymentTransitionInvalid is returned by Payment.ApplyTransition when the
// requested transition would move the payment backwards out of a settled state.
var ErrPaymentTransitionInvalid = errors.New("invalid payment status transition")

// Payment is the payment sub-record of an order.
type Payment struct {
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId,omitempty"` // External gateway transaction/intent id.
}

// ApplyTransition advances the payment to target, recording transactionID when
// one is supplied. It is the single state machine behind the client confirm
// path, the webhook reconciliation path, and the admin override, so the two
// racing writers converge deterministically:
//
//	pending -> paid | failed
//	paid    -> refunded
//
// A transition to the current status is an idempotent no-op (changed=false),
// which makes webhook redelivery and confirm/webhook races safe. Any other
// transition returns ErrPaymentTransitionInvalid: the first writer to reach a
// settled state wins and a late conflicting writer is rejected rather than
// silently applied last-writer-wins.
func (p *Payment) ApplyTransition(target PaymentStatus, transactionID string) (changed bool, err error) {
	if !ValidPaymentStatus(target) {
		return false, errors.Wrapf(ErrPaymentTransitionInvalid, "unknown payment status %q", target)
	}

	if p.Status == target {
		return false, nil
	}

	allowed := false
	switch p.Status {
	case PaymentStatusPending:
		allowed = target == PaymentStatusPaid || target == PaymentStatusFailed
	case PaymentStatusPaid:
		allowed = target == PaymentStatusRefunded
	}
	if !allowed {
		return false, errors.Wrapf(ErrPaymentTransitionInvalid, "%s -> %s", p.Status, target)
	}

	p.Status = target
	if transactionID != "" {
		p.TransactionID = transactionID
	}

	return true, nil
}

// ShippingAddress is the destination captured on the order; every field is required.
type ShippingAddress struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// OrderItem is one line of an order. Price is the unit price captured at order
// creation and is never re-read from the live product.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Product   *Product        `json:"product,omitempty"` // Populated line item, when loaded.
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order is a durable record of a purchase. Orders are never deleted; they are
// retained for audit. TotalAmount equals the sum of captured line prices times
// quantities and is immutable after creation.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Payment         Payment         `json:"payment"`
	Status          OrderStatus     `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
