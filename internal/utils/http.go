package utils

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success           bool   `json:"success"`
	Error             string `json:"error"`
	Code              int    `json:"code,omitempty"`
	RetryAfter        int    `json:"retry_after,omitempty"`
	RemainingAttempts *int   `json:"remaining_attempts,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ThrottledResponse sends a 429 Too Many Requests response with a Retry-After
// header and field.
func ThrottledResponse(c echo.Context, errorMessage string, retryAfter int) error {
	if retryAfter > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
	}
	return c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Success:    false,
		Error:      errorMessage,
		Code:       http.StatusTooManyRequests,
		RetryAfter: retryAfter,
	})
}

// InvalidCodeResponse sends a 400 response for a rejected OTP, carrying the
// remaining attempt count when one applies.
func InvalidCodeResponse(c echo.Context, errorMessage string, remaining int) error {
	resp := ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    http.StatusBadRequest,
	}
	if remaining >= 0 {
		resp.RemainingAttempts = &remaining
	}
	return c.JSON(http.StatusBadRequest, resp)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}
