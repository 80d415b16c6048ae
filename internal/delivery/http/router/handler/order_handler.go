package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create handles the checkout request.
func (h *OrderHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// Get handles a single order lookup. Customers only see their own orders.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), userID, orderID, isAdmin(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListMine handles the caller's order history request.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// ListAll handles the admin view over every order.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// UpdateStatus handles the admin fulfillment status change.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated successfully")
}

// UpdatePayment handles the admin payment status override.
func (h *OrderHandler) UpdatePayment(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdatePaymentStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.UpdatePaymentStatus(c.Request().Context(), orderID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Payment status updated successfully")
}
