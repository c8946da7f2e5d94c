package middleware

import (
	"net/http"
	"time"

	"ifcsheet/domain/core"
	"ifcsheet/internal"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader carries the request id back to the browser
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

// RequestID tags every request with a fresh id and logs its outcome
func RequestID(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := core.NewRequestID()
		c.Set(RequestIDKey, id.String())
		c.Header(RequestIDHeader, id.String())

		start := time.Now()
		c.Next()

		logger.Debug("%s %s %s -> %d in %s", id, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// GetRequestID returns the id set by RequestID, or "" outside it
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// LimitBody caps request bodies at maxBytes; reading past the cap fails
// with *http.MaxBytesError
func LimitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
