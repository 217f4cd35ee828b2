// Package handler provides the HTTP handlers of the API.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/metrics"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Item      *ItemHandler
	User      *UserHandler
	Admin     *AdminHandler
	Analytics *AnalyticsHandler
	Log       *LogHandler
	System    *SystemHandler
}

// NewHandler creates a new handler instance with all sub-handlers initialized.
func NewHandler(svc *service.Service, d *data.Data, m *metrics.Metrics, logger *logger.Logger) *Handler {
	return &Handler{
		Item:      NewItemHandler(svc.Item, logger),
		User:      NewUserHandler(svc.User, logger),
		Admin:     NewAdminHandler(svc.User, logger),
		Analytics: NewAnalyticsHandler(svc.Analytics, logger),
		Log:       NewLogHandler(svc.Log, logger),
		System:    NewSystemHandler(d, m, logger),
	}
}

// RegisterRoutes registers all HTTP routes. API routes live under prefix.
func (h *Handler) RegisterRoutes(r *gin.Engine, prefix string) {
	r.GET("/", h.System.Root)
	r.GET("/health", h.System.Health)
	r.GET("/metrics", h.System.Metrics)

	api := r.Group(prefix)
	{
		items := api.Group("/items")
		{
			items.POST("", h.Item.Create)
			items.GET("", h.Item.List)
			items.GET("/search", h.Item.Search)
			items.GET("/:id", h.Item.Get)
			items.PUT("/:id", h.Item.Update)
			items.DELETE("/:id", h.Item.Delete)
		}

		users := api.Group("/users")
		{
			users.POST("", h.User.Create)
			users.GET("", h.User.List)
			users.GET("/:id", h.User.Get)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		admin := api.Group("/admin/users")
		{
			admin.GET("", h.Admin.List)
			admin.GET("/:id", h.Admin.Get)
			admin.PUT("/:id", h.Admin.Update)
			admin.DELETE("/:id", h.Admin.Delete)
			admin.POST("/:id/activate", h.Admin.Activate)
			admin.POST("/:id/deactivate", h.Admin.Deactivate)
			admin.POST("/:id/make-admin", h.Admin.MakeAdmin)
			admin.POST("/:id/remove-admin", h.Admin.RemoveAdmin)
		}

		analytics := api.Group("/analytics")
		{
			analytics.POST("/user-activity", h.Analytics.CreateActivity)
			analytics.POST("/item-view", h.Analytics.CreateItemView)
			analytics.GET("/user-activities", h.Analytics.ListActivities)
			analytics.GET("/item-views", h.Analytics.ListItemViews)
			analytics.GET("/popular-items", h.Analytics.PopularItems)
			analytics.GET("/stats/summary", h.Analytics.Summary)
		}

		logs := api.Group("/logs")
		{
			logs.GET("/application", h.Log.Application)
			logs.GET("/api", h.Log.API)
			logs.GET("/errors", h.Log.Errors)
			logs.GET("/slow-requests", h.Log.SlowRequests)
		}
	}
}
