package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorKind classifies lifecycle failures so callers can tell
// "already taken" apart from a system error.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindInvalidState ErrorKind = "INVALID_STATE"
	KindForbidden    ErrorKind = "FORBIDDEN"
	KindConflict     ErrorKind = "CONFLICT"
	KindValidation   ErrorKind = "VALIDATION_ERROR"
)

// AppError is the structured error surfaced at every operation boundary.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func NewNotFoundError(msg string) error {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func NewInvalidStateError(msg string) error {
	return &AppError{Kind: KindInvalidState, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func NewConflictError(msg string) error {
	return &AppError{Kind: KindConflict, Message: msg}
}

func NewValidationError(msg string) error {
	return &AppError{Kind: KindValidation, Message: msg}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError maps an error to an HTTP status and writes a standardized JSON body.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		GetLogger().Error("unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindInvalidState:
		status = http.StatusUnprocessableEntity
	case KindForbidden:
		status = http.StatusForbidden
	case KindConflict:
		status = http.StatusConflict
	case KindValidation:
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Kind: string(appErr.Kind), Message: appErr.Message})
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
