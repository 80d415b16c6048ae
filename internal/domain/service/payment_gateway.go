package service

import "context"

// PaymentIntent status values reported by the gateway.
const (
	// IntentStatusSucceeded is the gateway's terminal success status.
	IntentStatusSucceeded = "succeeded"
)

// PaymentEvent types produced by webhook verification.
const (
	// EventPaymentSucceeded signals a confirmed charge for an order.
	EventPaymentSucceeded = "payment.succeeded"
	// EventPaymentFailed signals a declined or abandoned charge.
	EventPaymentFailed = "payment.failed"
	// EventIgnored is any gateway event the store does not act on.
	EventIgnored = "ignored"
)

// PaymentIntent is the gateway-side record of an attempted charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64 // Minor units (e.g. cents).
	Currency     string
	Status       string
	OrderID      string // Order ID attached as gateway metadata.
}

// Refund is the gateway-side record of a (possibly partial) refund.
type Refund struct {
	ID string
}

// PaymentEvent is a verified, decoded webhook notification.
type PaymentEvent struct {
	Type     string // One of the Event* constants.
	IntentID string
	OrderID  string
}

// PaymentGateway defines the interface to the external payment provider.
// Amounts are always minor units; the gateway never sees decimal prices.
type PaymentGateway interface {
	// CreateIntent registers a pending charge with the gateway, tagging it with
	// the order ID so webhooks can be correlated back to the order.
	CreateIntent(ctx context.Context, amountMinor int64, currency, orderID string) (*PaymentIntent, error)

	// GetIntent fetches the current gateway-side state of an intent.
	GetIntent(ctx context.Context, intentID string) (*PaymentIntent, error)

	// CreateRefund refunds a charged intent. A nil amount refunds in full;
	// otherwise amountMinor is refunded partially.
	CreateRefund(ctx context.Context, intentID string, amountMinor *int64) (*Refund, error)

	// VerifyWebhook checks the signature of a raw webhook payload and decodes
	// it into a PaymentEvent. An invalid signature is an error; an event type
	// the store does not care about decodes to EventIgnored.
	VerifyWebhook(payload []byte, signature string) (*PaymentEvent, error)
}
