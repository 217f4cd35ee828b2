package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts a server span for every request through otelgin, continuing
// a trace propagated by the caller. The span is renamed "METHOD route" once
// the route is known; unmatched requests use the unmatchedRoute label.
func Tracing(service string) gin.HandlersChain {
	return gin.HandlersChain{otelgin.Middleware(service), nameSpan}
}

func nameSpan(c *gin.Context) {
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = unmatchedRoute
	}
	span := trace.SpanFromContext(c.Request.Context())
	span.SetName(c.Request.Method + " " + route)
	if len(c.Errors) > 0 {
		span.RecordError(c.Errors.Last())
	}
}
