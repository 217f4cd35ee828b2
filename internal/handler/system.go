package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/metrics"
	"github.com/ncobase/monoapi/net/resp"
	"github.com/ncobase/monoapi/version"
)

// SystemHandler serves the root, health and metrics endpoints.
type SystemHandler struct {
	base
	data    *data.Data
	metrics http.Handler
}

// NewSystemHandler creates a new system handler. m may be nil, in which case
// /metrics answers 404.
func NewSystemHandler(d *data.Data, m *metrics.Metrics, logger *logger.Logger) *SystemHandler {
	h := &SystemHandler{
		base: base{logger: logger},
		data: d,
	}
	if m != nil {
		h.metrics = m.Handler()
	}
	return h
}

// Root describes the service.
func (h *SystemHandler) Root(c *gin.Context) {
	resp.Success(c.Writer, map[string]any{
		"message":   "Welcome to the monoapi service with multiple databases",
		"version":   version.APIVersion,
		"docs":      fmt.Sprintf("/api/%s/docs", version.APIVersion),
		"databases": []string{data.MainDB, data.AnalyticsDB, data.LogsDB},
	})
}

// Health pings every database. A degraded service answers 503.
func (h *SystemHandler) Health(c *gin.Context) {
	health := h.data.Health(c.Request.Context())
	health["version"] = version.APIVersion

	status := http.StatusOK
	if health["status"] != "healthy" {
		status = http.StatusServiceUnavailable
		h.logger.Warnf(c.Request.Context(), "health check degraded: %v", health["databases"])
	}
	resp.WithStatusCode(c.Writer, status, health)
}

// Metrics serves the prometheus registry.
func (h *SystemHandler) Metrics(c *gin.Context) {
	if h.metrics == nil {
		resp.Fail(c.Writer, resp.NotFound(""))
		return
	}
	h.metrics.ServeHTTP(c.Writer, c.Request)
}
