package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// List handles the public review listing for a product.
func (h *ReviewHandler) List(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// Create handles the request to review a product.
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), userID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// Update handles the request to edit the caller's own review.
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), userID, reviewID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// Delete handles the request to remove the caller's own review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"}, "Review deleted successfully")
}
