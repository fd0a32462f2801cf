package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse mirrors the handler package's uniform response body
type errorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Status: "error", Message: message, Data: nil})
}

// unauthorizedError creates an unauthorized error response
func unauthorizedError(c echo.Context, message string) error {
	return errorJSON(c, http.StatusUnauthorized, message)
}
