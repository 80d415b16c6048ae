package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// CreateIntent handles the request to start a gateway payment for an order.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateIntentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment intent input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.CreateIntent(c.Request().Context(), userID, isAdmin(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Payment intent created successfully")
}

// Confirm handles the client-side payment confirmation request.
func (h *PaymentHandler) Confirm(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.ConfirmPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.ConfirmPayment(c.Request().Context(), userID, isAdmin(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Payment confirmation processed")
}

// Refund handles the admin refund request.
func (h *PaymentHandler) Refund(c echo.Context) error {
	var input usecase.RefundInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Refund(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Refund created successfully")
}

// Methods handles the public payment methods listing.
func (h *PaymentHandler) Methods(c echo.Context) error {
	methods := h.uc.ListPaymentMethods(c.Request().Context())

	return response.Success(c, http.StatusOK, methods, "Payment methods retrieved successfully")
}
