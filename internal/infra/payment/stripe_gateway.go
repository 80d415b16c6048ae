// Package payment contains the gateway-facing payment infrastructure.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/fx"
)

// orderIDMetadataKey tags every intent with the order it pays for, so a
// webhook can be correlated back without any extra storage.
const orderIDMetadataKey = "order_id"

// stripeGateway implements the domain's PaymentGateway interface on Stripe.
type stripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// GatewayParams holds dependencies for the Stripe gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewStripeGateway is the constructor for stripeGateway.
func NewStripeGateway(params GatewayParams) service.PaymentGateway {
	api := &client.API{}
	api.Init(params.Config.Stripe.SecretKey, nil)

	return &stripeGateway{
		api:           api,
		webhookSecret: params.Config.Stripe.WebhookSecret,
		logger:        params.Logger,
	}
}

// CreateIntent registers a pending charge with Stripe.
func (g *stripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency, orderID string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(orderIDMetadataKey, orderID)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe payment intent creation failed")
	}

	return toPaymentIntent(intent), nil
}

// GetIntent fetches the current Stripe-side state of an intent.
func (g *stripeGateway) GetIntent(ctx context.Context, intentID string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe payment intent retrieval failed")
	}

	return toPaymentIntent(intent), nil
}

// CreateRefund refunds a charged intent, fully when amountMinor is nil.
func (g *stripeGateway) CreateRefund(ctx context.Context, intentID string, amountMinor *int64) (*service.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(intentID),
	}
	params.Context = ctx
	if amountMinor != nil {
		params.Amount = stripe.Int64(*amountMinor)
	}

	refund, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe refund creation failed")
	}

	return &service.Refund{ID: refund.ID}, nil
}

// VerifyWebhook checks the payload's HMAC signature against the endpoint
// secret and decodes the event. Unhandled event types decode to EventIgnored
// rather than an error, so the endpoint can acknowledge them.
func (g *stripeGateway) VerifyWebhook(payload []byte, signature string) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "stripe webhook signature verification failed")
	}

	var eventType string
	switch event.Type {
	case "payment_intent.succeeded":
		eventType = service.EventPaymentSucceeded
	case "payment_intent.payment_failed":
		eventType = service.EventPaymentFailed
	default:
		g.logger.Debug("Ignoring stripe event", slog.String("type", string(event.Type)))

		return &service.PaymentEvent{Type: service.EventIgnored}, nil
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errors.Wrap(err, "failed to decode stripe payment intent payload")
	}

	return &service.PaymentEvent{
		Type:     eventType,
		IntentID: intent.ID,
		OrderID:  intent.Metadata[orderIDMetadataKey],
	}, nil
}

// toPaymentIntent maps a Stripe intent to the gateway-neutral representation.
func toPaymentIntent(intent *stripe.PaymentIntent) *service.PaymentIntent {
	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
		OrderID:      intent.Metadata[orderIDMetadataKey],
	}
}
