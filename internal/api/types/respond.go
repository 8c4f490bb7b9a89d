// Package types holds request DTOs and the gin helpers that write response envelopes.
package types

import (
	"net/http"

	"cleanresponse/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// RequestIDHeader carries the request id in and out of the service.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey stores the request id in the gin context.
	RequestIDKey = "request_id"
)

// RequestID returns the request id assigned by the RequestID middleware, or "".
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Options returns the envelope options derived from the request, so every
// envelope written for c carries its request id.
func Options(c *gin.Context, extra ...response.Option) []response.Option {
	opts := make([]response.Option, 0, len(extra)+1)
	opts = append(opts, response.WithRequestID(RequestID(c)))
	return append(opts, extra...)
}

// JSON writes env with the given HTTP status.
func JSON(c *gin.Context, status int, env response.Envelope) {
	c.JSON(status, env)
}

// AbortWithError aborts the request chain and writes env, using its code as the HTTP status.
//
// The envelope is also recorded on the gin context so logging middleware can see it.
func AbortWithError(c *gin.Context, env response.ErrorEnvelope) {
	status := env.Code
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}

	_ = c.Error(env)
	c.AbortWithStatusJSON(status, env)
}
