package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/apperrors"
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
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
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

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps a domain error to the right HTTP status with its
// human-readable message. Unknown errors become a generic 500.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case apperrors.IsNotFound(err):
		return NotFoundResponse(c, err.Error())
	case apperrors.IsInvalidInput(err):
		return BadRequestResponse(c, err.Error())
	case apperrors.IsInvalidState(err):
		return ErrorResponseHandler(c, http.StatusConflict, err.Error())
	default:
		switch err {
		case apperrors.ErrInsufficientBalance:
			return ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
		case apperrors.ErrNoEligibleDriver:
			return ErrorResponseHandler(c, http.StatusConflict, err.Error())
		case apperrors.ErrInvalidCredentials:
			return UnauthorizedResponse(c, err.Error())
		}
		return InternalServerErrorResponse(c, "")
	}
}
