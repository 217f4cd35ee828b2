package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ncobase/monoapi/ctxutil"
	"github.com/ncobase/monoapi/net/resp"
)

const maxRequestIDLength = 128

// RequestID keeps the incoming X-Request-ID or generates a uuid, and exposes
// it on the request context and the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(resp.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(ctxutil.TraceIDKey, id)
		c.Request = c.Request.WithContext(ctxutil.SetTraceID(c.Request.Context(), id))
		c.Writer.Header().Set(resp.RequestIDHeader, id)

		c.Next()
	}
}
