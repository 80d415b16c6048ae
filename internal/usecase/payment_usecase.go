package usecase

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateIntentInput identifies the order to start a gateway payment for.
type CreateIntentInput struct {
	OrderID uuid.UUID `json:"orderId" validate:"required"`
}

// ConfirmPaymentInput carries the client-side confirmation of a gateway intent.
type ConfirmPaymentInput struct {
	OrderID         uuid.UUID `json:"orderId" validate:"required"`
	PaymentIntentID string    `json:"paymentIntentId" validate:"required"`
}

// RefundInput requests a refund for a paid order. A nil amount refunds in full.
type RefundInput struct {
	OrderID uuid.UUID        `json:"orderId" validate:"required"`
	Amount  *decimal.Decimal `json:"amount"`
}

// --- Output DTOs ---

// CreateIntentOutput returns the gateway handle the client needs to collect payment.
type CreateIntentOutput struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// ConfirmPaymentOutput reports whether the gateway considers the charge settled.
type ConfirmPaymentOutput struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// RefundOutput returns the gateway-side refund handle.
type RefundOutput struct {
	RefundID string `json:"refundId"`
}

// PaymentMethodInfo describes one payment method offered at checkout.
type PaymentMethodInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// PaymentUsecase defines the interface for payment operations. Terminal
// payment states are reached at most once per order; a confirmation and a
// webhook racing for the same order converge to whichever lands first.
type PaymentUsecase interface {
	// CreateIntent registers a pending charge with the gateway for an order
	// whose payment is still pending.
	CreateIntent(ctx context.Context, userID uuid.UUID, isAdmin bool, input *CreateIntentInput) (*CreateIntentOutput, error)

	// ConfirmPayment checks the intent's gateway status and, when succeeded,
	// marks the order paid. A not-yet-succeeded intent is not an error.
	ConfirmPayment(ctx context.Context, userID uuid.UUID, isAdmin bool, input *ConfirmPaymentInput) (*ConfirmPaymentOutput, error)

	// Refund refunds a paid order through the gateway and marks it refunded.
	Refund(ctx context.Context, input *RefundInput) (*RefundOutput, error)

	// HandlePaymentEvent applies a verified webhook event to the matching
	// order. Events for unknown orders are dropped.
	HandlePaymentEvent(ctx context.Context, event *service.PaymentEvent) error

	// ListPaymentMethods returns the methods offered at checkout.
	ListPaymentMethods(ctx context.Context) []PaymentMethodInfo
}
