package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
)

type traceIDKey struct{}

// TraceIDKey is the log field and gin key the request id is stored under.
const TraceIDKey = "trace_id"

// SetTraceID returns a copy of ctx carrying the request id.
func SetTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// GetTraceID returns the request id carried by ctx, or "".
// A *gin.Context works too since it resolves string keys via c.Get.
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	if c, ok := ctx.(*gin.Context); ok {
		return c.GetString(TraceIDKey)
	}
	return ""
}
