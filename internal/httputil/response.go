// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UnknownErrorMessage is sent to the client for failures that carry no status of their own.
const UnknownErrorMessage = "unknown error"

// StatusCoder is implemented by errors that know which HTTP status they map to.
type StatusCoder interface {
	StatusCode() int
}

// ErrorResponse is the JSON envelope of every error response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse builds the envelope for err. The message is the error's display text.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Message: err.Error()}
}

// StatusOf returns the status declared by err, or 500 when no error in the chain declares one.
func StatusOf(err error) int {
	var coder StatusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}
	return http.StatusInternalServerError
}

// RespondError writes the error envelope using the status declared by err.
// Errors without a declared status are reported as "unknown error" so internal details never reach the client.
// The full error chain is logged.
func RespondError(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var coder StatusCoder
	statusCode := http.StatusInternalServerError
	response := ErrorResponse{Message: UnknownErrorMessage}
	if errors.As(err, &coder) {
		statusCode = coder.StatusCode()
		response = NewErrorResponse(err)
		if coderErr, ok := coder.(error); ok {
			response = NewErrorResponse(coderErr)
		}
	}

	if logger != nil {
		attrs := []any{slog.Int("status_code", statusCode), slog.Any("error", err)}
		if cause := errors.Unwrap(err); cause != nil {
			attrs = append(attrs, slog.Any("cause", cause))
		}
		if statusCode >= http.StatusInternalServerError {
			logger.Error("request failed", attrs...)
		} else {
			logger.Warn("request failed", attrs...)
		}
	}

	c.JSON(statusCode, response)
}

// RespondBadRequest writes a 400 envelope for malformed bodies or constraint violations.
func RespondBadRequest(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse(err))
}
