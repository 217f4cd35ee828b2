package ctxutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTraceIDRoundTrip(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetTraceID(ctx))
	assert.Equal(t, "req-2", GetTraceID(SetTraceID(ctx, "req-2")))
}

func TestTraceIDFromGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Set(TraceIDKey, "req-3")

	assert.Equal(t, "req-3", GetTraceID(c))
}
