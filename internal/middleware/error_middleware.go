package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/dberrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// HandlerFunc is a gin handler that reports failure by returning an error
type HandlerFunc func(c *gin.Context) error

// Handle adapts fn to gin. A returned error is recorded on the context and
// answered by ErrorHandler.
func Handle(fn HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}

// ErrorHandler writes the response for the last error recorded by a handler
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		HandleAPIError(c, c.Errors.Last().Err)
	}
}

// Recovery turns a panic into a logged 500 response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(c.Request.Context()).Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Str("path", c.Request.URL.Path).
					Msg("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(serverErrorMessage))
			}
		}()
		c.Next()
	}
}

const serverErrorMessage = "Server Error"

// ResolveError maps err to the status and message the client sees
func ResolveError(err error) (int, string) {
	var malformed *apperrors.MalformedIDError
	if errors.As(err, &malformed) {
		return http.StatusNotFound, fmt.Sprintf("Resource with id: %s not found", malformed.Value)
	}
	if dberrors.IsInvalidTextRepresentation(err) {
		return http.StatusNotFound, fmt.Sprintf("Resource with id: %s not found", dberrors.InvalidTextValue(err))
	}

	if dberrors.IsUniqueViolation(err) {
		return http.StatusBadRequest, "Duplicate field value entered"
	}
	if dberrors.IsConstraintViolation(err) {
		return http.StatusBadRequest, dberrors.ConstraintMessage(err)
	}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Error()
	}

	var appErr *apperrors.ErrorResponse
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode, appErr.Error()
	}

	return http.StatusInternalServerError, serverErrorMessage
}

// HandleAPIError logs err and writes the error envelope. The client only sees
// the resolved message; failures answered with 500 are logged in full.
func HandleAPIError(c *gin.Context, err error) {
	status, message := ResolveError(err)

	log := logger.FromContext(c.Request.Context())
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Request failed")

	c.JSON(status, dto.NewErrorResponse(message))
}
