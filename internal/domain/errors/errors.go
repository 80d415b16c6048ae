package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business error code, so a copy carrying request
// details still matches its predefined sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_EXISTS",
		"A user with this email already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductSlugConflict = NewBaseError(
		http.StatusConflict,
		"PRODUCT_SLUG_CONFLICT",
		"A product with the same slug already exists",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Insufficient stock",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"ORDER_STATUS_INVALID",
		"Invalid order status transition",
		"",
	)

	// Payment-related errors
	ErrPaymentNotPending = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_NOT_PENDING",
		"Order payment is not pending",
		"",
	)

	ErrUnsupportedPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PAYMENT_METHOD",
		"Only Stripe payments are currently supported",
		"",
	)

	ErrPaymentStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_STATUS_INVALID",
		"Invalid payment status transition",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrReviewExists = NewBaseError(
		http.StatusConflict,
		"REVIEW_EXISTS",
		"You have already reviewed this product",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// PaymentGatewayError represents a gateway communication failure, implementing
// the AppError interface. The caller does not retry automatically; retry
// policy belongs to the client.
type PaymentGatewayError struct {
	err     error
	details string
}

// NewPaymentGatewayError creates a payment-gateway communication error
func NewPaymentGatewayError(err error, details string) AppError {
	return &PaymentGatewayError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PaymentGatewayError) Error() string {
	return errors.Wrap(e.err, "payment gateway request failed").Error()
}

// Unwrap exposes the underlying gateway error.
func (e *PaymentGatewayError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PaymentGatewayError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PaymentGatewayError) ErrorCode() string {
	return "PAYMENT_GATEWAY_ERROR"
}

// Message returns the user-friendly error message
func (e *PaymentGatewayError) Message() string {
	return "Payment gateway request failed"
}

// Details returns detailed error information
func (e *PaymentGatewayError) Details() string {
	return e.details
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
