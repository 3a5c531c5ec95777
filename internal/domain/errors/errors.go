// Package errors defines the application error taxonomy shared between the
// service layer and the HTTP delivery.
package errors

import (
	"net/http"

	"atelier/internal/errors"
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

// Predefined error types.
//
// Missing targets and missing required parents map to 404. Field-level
// validation failures and broken references map to 400. Uniqueness and
// structural business-rule violations map to 409.
var (
	// Clothing-related errors
	ErrClothingNotFound = NewBaseError(
		http.StatusNotFound,
		"CLOTHING_NOT_FOUND",
		"clothing item not found",
		"",
	)

	ErrInvalidSKU = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SKU",
		"SKU is not valid",
		"",
	)

	ErrInvalidBrandReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BRAND_REFERENCE",
		"brand is not valid",
		"",
	)

	ErrDuplicateSKU = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_SKU",
		"SKU already exists",
		"",
	)

	ErrClothingHasDesigners = NewBaseError(
		http.StatusConflict,
		"CLOTHING_HAS_DESIGNERS",
		"unable to delete clothing because it has associated designers",
		"",
	)

	// Review-related errors
	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"review not found",
		"",
	)

	ErrReviewNotInClothing = NewBaseError(
		http.StatusConflict,
		"REVIEW_NOT_IN_CLOTHING",
		"review is not associated to the clothing item",
		"",
	)

	// Generic catalog errors
	ErrBrandNotFound = NewBaseError(
		http.StatusNotFound,
		"BRAND_NOT_FOUND",
		"brand not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"category not found",
		"",
	)

	ErrOperatorNotFound = NewBaseError(
		http.StatusNotFound,
		"OPERATOR_NOT_FOUND",
		"operator not found",
		"",
	)

	// Variant-related errors
	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"variant not found",
		"",
	)

	ErrVariantNotInProduct = NewBaseError(
		http.StatusConflict,
		"VARIANT_NOT_IN_PRODUCT",
		"variant is not associated to the product",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrInvalidUserReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER_REFERENCE",
		"user reference is not valid",
		"",
	)

	ErrInvalidOperatorReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OPERATOR_REFERENCE",
		"operator reference is not valid",
		"",
	)

	ErrInvalidProductReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_REFERENCE",
		"product reference is not valid",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusBadRequest,
		"ORDER_CREATION_FAILED",
		"failed to create order",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
