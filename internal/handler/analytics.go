package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/net/resp"
)

// AnalyticsHandler handles the analytics endpoints.
type AnalyticsHandler struct {
	base
	svc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(svc *service.AnalyticsService, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		base: base{logger: logger},
		svc:  svc,
	}
}

// CreateActivity records a user activity.
func (h *AnalyticsHandler) CreateActivity(c *gin.Context) {
	var req service.UserActivityRequest
	if !h.bindJSON(c, &req) {
		return
	}

	activity, err := h.svc.RecordActivity(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, activity)
}

// CreateItemView counts an item view.
func (h *AnalyticsHandler) CreateItemView(c *gin.Context) {
	var req service.ItemViewRequest
	if !h.bindJSON(c, &req) {
		return
	}

	view, err := h.svc.RecordItemView(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, view)
}

// ListActivities handles GET /analytics/user-activities?user_id=&after=&limit=.
func (h *AnalyticsHandler) ListActivities(c *gin.Context) {
	var q struct {
		pageQuery
		UserID *uint `form:"user_id"`
	}
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListActivities(c.Request.Context(), q.UserID, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// ListItemViews handles GET /analytics/item-views?item_id=&after=&limit=.
func (h *AnalyticsHandler) ListItemViews(c *gin.Context) {
	var q struct {
		pageQuery
		ItemID *uint `form:"item_id"`
	}
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListItemViews(c.Request.Context(), q.ItemID, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// PopularItems handles GET /analytics/popular-items?limit=.
func (h *AnalyticsHandler) PopularItems(c *gin.Context) {
	var q struct {
		Limit int `form:"limit,default=10"`
	}
	if !h.bindQuery(c, &q) {
		return
	}

	items, err := h.svc.PopularItems(c.Request.Context(), q.Limit)
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, items)
}

// Summary returns the analytics totals.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, summary)
}
