package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// Response is the body of every API response
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// ValidationErrorData carries the failing field of a validation error
type ValidationErrorData struct {
	Field string `json:"field"`
}

// ReferenceErrorData carries the number of rows blocking a delete
type ReferenceErrorData struct {
	Count int64 `json:"count"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Success writes a success response
func Success(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Response{Status: StatusSuccess, Message: message, Data: data})
}

// OK writes a 200 success response without a message
func OK(c echo.Context, data interface{}) error {
	return Success(c, http.StatusOK, "", data)
}

// Error writes an error response
func Error(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, Response{Status: StatusError, Message: message, Data: data})
}

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, field, message string) error {
	var data interface{}
	if field != "" {
		data = ValidationErrorData{Field: field}
	}
	return Error(c, http.StatusBadRequest, message, data)
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message, nil)
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, domain.ErrUnauthorized.Error(), nil)
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message, nil)
}

// handleServiceError maps a service error onto the HTTP error taxonomy.
// Unknown errors are logged and their message passed through.
func handleServiceError(c echo.Context, err error, action string) error {
	var validationErr *domain.ValidationError
	var conflictErr *domain.ConflictError
	var referenceErr *domain.ReferenceError

	switch {
	case errors.As(err, &validationErr):
		return NewValidationError(c, validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrUnauthorized):
		return NewUnauthorizedError(c)
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, notFoundMessage(err))
	case errors.As(err, &conflictErr):
		return Error(c, http.StatusConflict, conflictErr.Message, nil)
	case errors.Is(err, domain.ErrConflict):
		return Error(c, http.StatusConflict, "Resource already exists", nil)
	case errors.As(err, &referenceErr):
		return Error(c, http.StatusConflict, referenceErr.Message, ReferenceErrorData{Count: referenceErr.Count})
	case errors.Is(err, service.ErrExportArchiveDisabled):
		return Error(c, http.StatusServiceUnavailable, "Export archive is not configured", nil)
	}

	log.Error().Err(err).Str("action", action).Str("path", c.Request().URL.Path).Msg("Request failed")
	return NewInternalError(c, err.Error())
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, domain.ErrCategoryNotFound):
		return "Category not found"
	case errors.Is(err, domain.ErrIncomeSourceNotFound):
		return "Income source not found"
	case errors.Is(err, domain.ErrRecurringNotFound):
		return "Recurring expense not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found"
	}
	return "Not found"
}
