// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	ReviewHandler  *handler.ReviewHandler
	WebhookHandler *handler.WebhookHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate
	requireAdmin := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.GET("/me", r.params.AuthHandler.GetProfile, authenticate)
	}

	// Catalog routes. Listing and detail are public; writes are admin-only.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.GET("/:slug", r.params.ProductHandler.GetBySlug)
		productGroup.POST("", r.params.ProductHandler.Create, authenticate, requireAdmin)
		productGroup.PUT("/:id", r.params.ProductHandler.Update, authenticate, requireAdmin)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete, authenticate, requireAdmin)

		// Reviews hang off their product; the :id here is the product ID.
		productGroup.GET("/:id/reviews", r.params.ReviewHandler.List)
		productGroup.POST("/:id/reviews", r.params.ReviewHandler.Create, authenticate)
	}

	// Review editing addresses the review directly.
	reviewGroup := e.Group("/reviews", authenticate)
	{
		reviewGroup.PUT("/:id", r.params.ReviewHandler.Update)
		reviewGroup.DELETE("/:id", r.params.ReviewHandler.Delete)
	}

	// Order routes
	orderGroup := e.Group("/orders", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("/mine", r.params.OrderHandler.ListMine)
		orderGroup.GET("/admin/all", r.params.OrderHandler.ListAll, requireAdmin)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.PUT("/:id/status", r.params.OrderHandler.UpdateStatus, requireAdmin)
		orderGroup.PUT("/:id/payment", r.params.OrderHandler.UpdatePayment, requireAdmin)
	}

	// Payment routes
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.GET("/methods", r.params.PaymentHandler.Methods)
		paymentGroup.POST("/create-intent", r.params.PaymentHandler.CreateIntent, authenticate)
		paymentGroup.POST("/confirm", r.params.PaymentHandler.Confirm, authenticate)
		paymentGroup.POST("/refund", r.params.PaymentHandler.Refund, authenticate, requireAdmin)
	}

	// Gateway webhooks authenticate via signature, not JWT.
	e.POST("/webhooks/payment-gateway", r.params.WebhookHandler.HandlePaymentWebhook)
}
