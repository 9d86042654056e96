// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	deliverycontext "swiftauth/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Response is the envelope around every JSON body. Code mirrors the HTTP status.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the stable machine-readable code, e.g. "ACCOUNT_NOT_FOUND".
type ErrorBody struct {
	Code      string `json:"code"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func Success(c echo.Context, status int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(status, Response{Success: true, Code: status, Message: message, Data: data})
}

// Message answers 200 with no data.
func Message(c echo.Context, message string) error {
	return Success(c, http.StatusOK, nil, message)
}

// Error renders a failure. The request ID is included so clients can quote it in reports.
func Error(c echo.Context, status int, code, message, details string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	return c.JSON(status, Response{
		Code:    status,
		Message: message,
		Error: &ErrorBody{
			Code:      code,
			Details:   details,
			RequestID: deliverycontext.RequestIDFrom(c.Request().Context()),
		},
	})
}
