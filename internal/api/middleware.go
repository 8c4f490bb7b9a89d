package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cleanresponse/internal/api/types"
	"cleanresponse/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// maxRequestIDLength bounds client-supplied request ids.
const maxRequestIDLength = 128

// RequestID assigns every request an id, reusing a sane X-Request-ID header
// from the client or generating a UUID, and echoes it in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(types.RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(types.RequestIDKey, id)
		c.Header(types.RequestIDHeader, id)
		c.Next()
	}
}

// PanicRecovery converts panics into 500 envelopes.
//
// The stack of the panic site is attached unless production is set.
func PanicRecovery(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			err, ok := rec.(error)
			if ok {
				err = errors.WithStack(err)
			} else {
				err = errors.Errorf("panic: %v", rec)
			}

			log.Error().
				Err(err).
				Str("request_id", types.RequestID(c)).
				Str("path", c.Request.URL.Path).
				Msg("Recovered from panic")

			types.AbortWithError(c, response.InternalServerError("", err, production, types.Options(c)...))
		}()

		c.Next()
	}
}

// TimeoutMiddleware bounds the request context with the given timeout.
// Handlers observe it through c.Request.Context().
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SecurityHeaders sets conservative response headers for a JSON API.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

// LoggerMiddleware writes one structured access log entry per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if msg := c.Errors.String(); msg != "" {
			event = event.Str("error", strings.TrimSpace(msg))
		}

		event.
			Str("request_id", types.RequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}
