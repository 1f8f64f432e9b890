// Package response renders API bodies. Successful calls return the resource
// itself; failures share an error envelope carrying the request ID.
package response

import (
	"net/http"

	deliverycontext "ideabank/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Itemized field errors (4xx only)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}

// OK returns a 200 response with data as the JSON body
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created returns a 201 response with data as the JSON body
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// Text returns a 200 plain-text confirmation
func Text(c echo.Context, message string) error {
	return c.String(http.StatusOK, message)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}
