package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/net/resp"
)

// LogHandler exposes the logs database.
type LogHandler struct {
	base
	svc *service.LogService
}

// NewLogHandler creates a new log handler.
func NewLogHandler(svc *service.LogService, logger *logger.Logger) *LogHandler {
	return &LogHandler{
		base: base{logger: logger},
		svc:  svc,
	}
}

// Application handles GET /logs/application?level=&logger_name=&after=&limit=.
func (h *LogHandler) Application(c *gin.Context) {
	var q struct {
		pageQuery
		service.ApplicationLogQuery
	}
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListApplicationLogs(c.Request.Context(), q.ApplicationLogQuery, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// API handles GET /logs/api?method=&status_code=&user_id=&after=&limit=.
func (h *LogHandler) API(c *gin.Context) {
	var q struct {
		pageQuery
		service.APILogQuery
	}
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListAPILogs(c.Request.Context(), q.APILogQuery, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// Errors handles GET /logs/errors.
func (h *LogHandler) Errors(c *gin.Context) {
	var q pageQuery
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ErrorLogs(c.Request.Context(), q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// SlowRequests handles GET /logs/slow-requests?threshold_ms=.
func (h *LogHandler) SlowRequests(c *gin.Context) {
	var q struct {
		pageQuery
		ThresholdMs int `form:"threshold_ms" binding:"omitempty,gt=0"`
	}
	if !h.bindQuery(c, &q) {
		return
	}
	if q.ThresholdMs == 0 {
		q.ThresholdMs = repository.DefaultSlowThresholdMs
	}

	page, err := h.svc.SlowRequests(c.Request.Context(), q.ThresholdMs, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}
