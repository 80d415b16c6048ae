package payment

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test_secret"

func createTestGateway(t *testing.T) service.PaymentGateway {
	t.Helper()

	return NewStripeGateway(GatewayParams{
		Config: &config.Config{
			Stripe: &config.StripeConfig{
				SecretKey:     "sk_test_fake",
				WebhookSecret: testWebhookSecret,
				Currency:      "usd",
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// signPayload produces the signature header Stripe would attach to the payload.
func signPayload(payload []byte, secret string) string {
	now := time.Now()
	mac := webhook.ComputeSignature(now, payload, secret)

	return fmt.Sprintf("t=%d,v1=%x", now.Unix(), mac)
}

func succeededEventPayload(intentID, orderID string) []byte {
	return fmt.Appendf(nil, `{
		"id": "evt_1",
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": %q,
				"metadata": {"order_id": %q}
			}
		}
	}`, intentID, orderID)
}

func TestStripeGateway_VerifyWebhook_SucceededEvent(t *testing.T) {
	gateway := createTestGateway(t)

	payload := succeededEventPayload("pi_123", "4f1c2b6a-0000-0000-0000-000000000001")

	event, err := gateway.VerifyWebhook(payload, signPayload(payload, testWebhookSecret))

	require.NoError(t, err)
	assert.Equal(t, service.EventPaymentSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.IntentID)
	assert.Equal(t, "4f1c2b6a-0000-0000-0000-000000000001", event.OrderID)
}

func TestStripeGateway_VerifyWebhook_FailedEvent(t *testing.T) {
	gateway := createTestGateway(t)

	payload := []byte(`{
		"id": "evt_2",
		"type": "payment_intent.payment_failed",
		"data": {
			"object": {
				"id": "pi_456",
				"metadata": {"order_id": "4f1c2b6a-0000-0000-0000-000000000002"}
			}
		}
	}`)

	event, err := gateway.VerifyWebhook(payload, signPayload(payload, testWebhookSecret))

	require.NoError(t, err)
	assert.Equal(t, service.EventPaymentFailed, event.Type)
	assert.Equal(t, "pi_456", event.IntentID)
}

func TestStripeGateway_VerifyWebhook_WrongSecret(t *testing.T) {
	gateway := createTestGateway(t)

	payload := succeededEventPayload("pi_123", "4f1c2b6a-0000-0000-0000-000000000001")

	event, err := gateway.VerifyWebhook(payload, signPayload(payload, "whsec_someone_else"))

	assert.Nil(t, event)
	assert.Error(t, err)
}

func TestStripeGateway_VerifyWebhook_StaleTimestamp(t *testing.T) {
	gateway := createTestGateway(t)

	payload := succeededEventPayload("pi_123", "4f1c2b6a-0000-0000-0000-000000000001")
	stale := time.Now().Add(-time.Hour)
	signature := fmt.Sprintf("t=%d,v1=%x", stale.Unix(), webhook.ComputeSignature(stale, payload, testWebhookSecret))

	event, err := gateway.VerifyWebhook(payload, signature)

	assert.Nil(t, event)
	assert.Error(t, err)
}

func TestStripeGateway_VerifyWebhook_UnhandledEventAcknowledged(t *testing.T) {
	gateway := createTestGateway(t)

	payload := []byte(`{
		"id": "evt_3",
		"type": "charge.dispute.created",
		"data": {"object": {"id": "dp_1"}}
	}`)

	event, err := gateway.VerifyWebhook(payload, signPayload(payload, testWebhookSecret))

	require.NoError(t, err)
	assert.Equal(t, service.EventIgnored, event.Type)
	assert.Empty(t, event.IntentID)
}
