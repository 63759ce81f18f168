package middleware

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "event-lottery-backend/internal/common/errors"
	"event-lottery-backend/internal/common/logger"
)

const requestIDKey = "request_id"

// RequestID assigns each request an id, honoring one supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "unknown".
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Success   bool                `json:"success"`
	Error     *apperrors.AppError `json:"error"`
	Timestamp time.Time           `json:"timestamp"`
	RequestID string              `json:"request_id"`
}

// Recovery converts panics into a logged 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		RespondError(c, apperrors.New(apperrors.ErrCodeInternal, "Internal server error"))
	})
}

// RespondError writes the error taxonomy response for err and logs it.
func RespondError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "Internal server error")
	}

	logEvent := logger.Info()
	switch appErr.Code {
	case apperrors.ErrCodeInternal:
		logEvent = logger.Error()
	case apperrors.ErrCodeCapacityExceeded:
		// Defensive invariant check fired: surface to the operator alert channel.
		logEvent = logger.Error().Bool("operator_alert", true)
	case apperrors.ErrCodeBusy:
		logEvent = logger.Warn()
		c.Header("Retry-After", "1")
	}
	logEvent.
		Str("request_id", GetRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Err(err).
		Msg("Request failed")

	c.AbortWithStatusJSON(apperrors.HTTPStatus(appErr.Code), ErrorResponse{
		Success:   false,
		Error:     appErr,
		Timestamp: time.Now(),
		RequestID: GetRequestID(c),
	})
}
