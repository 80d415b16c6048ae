package handler

import (
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WebhookHandler receives payment gateway notifications. It reads the raw
// request body because signature verification runs over the exact bytes the
// gateway signed; any re-encoding would break the HMAC.
type WebhookHandler struct {
	uc      usecase.PaymentUsecase
	gateway service.PaymentGateway
	logger  *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(uc usecase.PaymentUsecase, gateway service.PaymentGateway, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, gateway: gateway, logger: logger}
}

// HandlePaymentWebhook verifies and applies a gateway event. After a valid
// signature the endpoint always acknowledges with 200, even when processing
// fails, so the gateway does not retry events we have already judged.
func (h *WebhookHandler) HandlePaymentWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "Failed to read webhook payload")
	}

	event, err := h.gateway.VerifyWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", slog.Any("error", err))

		return response.BadRequest(c, "INVALID_SIGNATURE", "Webhook signature verification failed")
	}

	if err := h.uc.HandlePaymentEvent(c.Request().Context(), event); err != nil {
		h.logger.Error("Webhook event processing failed",
			slog.String("type", event.Type),
			slog.String("intentID", event.IntentID),
			slog.Any("error", err))
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
