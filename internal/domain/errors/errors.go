// Package errors defines the application error taxonomy. Every error the
// delivery layer can surface maps to an HTTP status and a business code.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// Predefined error types
var (
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"This email is already registered",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"This username is already taken",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Unknown account role",
		"",
	)

	// Closet-related errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Closet item not found",
		"",
	)

	ErrItemLimitReached = NewBaseError(
		http.StatusForbidden,
		"ITEM_LIMIT_REACHED",
		"Closet item limit reached for the current plan",
		"",
	)

	// Outfit-related errors
	ErrOutfitNotFound = NewBaseError(
		http.StatusNotFound,
		"OUTFIT_NOT_FOUND",
		"Outfit card not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrNotCreator = NewBaseError(
		http.StatusForbidden,
		"NOT_CREATOR",
		"Only the creator may perform this action",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Order status cannot move to the requested state",
		"",
	)

	// Market-related errors
	ErrSellerNotFound = NewBaseError(
		http.StatusNotFound,
		"SELLER_NOT_FOUND",
		"Seller profile not found",
		"",
	)

	ErrCreatorNotFound = NewBaseError(
		http.StatusNotFound,
		"CREATOR_NOT_FOUND",
		"Creator profile not found",
		"",
	)

	// Instagram-related errors
	ErrInstagramNotConnected = NewBaseError(
		http.StatusConflict,
		"INSTAGRAM_NOT_CONNECTED",
		"Instagram account is not connected",
		"",
	)

	// Subscription-related errors
	ErrFeatureNotAvailable = NewBaseError(
		http.StatusForbidden,
		"FEATURE_NOT_AVAILABLE",
		"This feature is not included in the current plan",
		"",
	)

	ErrInvalidTier = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIER",
		"Unknown subscription tier",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// StorageError represents a storage backend failure, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the underlying backend error for errors.Is/As chains.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Storage operation failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
