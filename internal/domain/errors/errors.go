package errors

import (
	"net/http"

	"partnerhub/internal/errors"
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

// Predefined error types
var (
	// Partner-related errors
	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"Partner not found",
		"",
	)

	ErrPartnerCreateFailed = NewBaseError(
		http.StatusBadRequest,
		"PARTNER_CREATE_ERROR",
		"Error creating partner",
		"",
	)

	ErrPartnerUpdateFailed = NewBaseError(
		http.StatusBadRequest,
		"PARTNER_UPDATE_ERROR",
		"Error updating partner",
		"",
	)

	ErrPartnerDeleteFailed = NewBaseError(
		http.StatusBadRequest,
		"PARTNER_DELETE_ERROR",
		"Error deleting partner",
		"",
	)

	// Remote shop errors. Shop creation is the only remote failure that is
	// fatal to an operation; everything else surfaces as a warning.
	ErrWooShopCreateFailed = NewBaseError(
		http.StatusBadGateway,
		"WOO_SHOPS_CREATE_ERROR",
		"Failed to create Woo shop",
		"",
	)

	// Link-table errors
	ErrShopLinkCreateFailed = NewBaseError(
		http.StatusBadRequest,
		"SHOP_LINK_CREATE_ERROR",
		"Error creating shop record",
		"",
	)

	// Category-related errors
	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Product category not found",
		"",
	)

	ErrCategoryRemoteFailed = NewBaseError(
		http.StatusBadGateway,
		"CATEGORY_REMOTE_ERROR",
		"Remote category operation failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Validation failed",
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
