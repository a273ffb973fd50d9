// Package response writes the JSON bodies of the HTTP API.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`        // User-facing text, safe to display
	Code    string `json:"code,omitempty"` // Machine-readable error code, e.g. "EVENT_NOT_FOUND"
}

// MessageResponse is the body of calls that only report an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes data as-is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error writes {"message": message, "code": errorCode}.
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    errorCode,
	})
}
