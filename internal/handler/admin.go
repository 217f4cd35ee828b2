package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/net/resp"
)

// AdminHandler handles user administration. The routes are not guarded.
type AdminHandler struct {
	base
	svc *service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(svc *service.UserService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		base: base{logger: logger},
		svc:  svc,
	}
}

// List handles GET /admin/users?include_inactive=. Inactive users are
// hidden unless asked for.
func (h *AdminHandler) List(c *gin.Context) {
	var q struct {
		pageQuery
		IncludeInactive bool `form:"include_inactive"`
	}
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListUsers(c.Request.Context(), !q.IncludeInactive, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// Get returns any user.
func (h *AdminHandler) Get(c *gin.Context) {
	h.apply(c, h.svc.GetUser)
}

// Update applies profile fields and account flags.
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req service.AdminUpdateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.svc.AdminUpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, userNotFound(id))
		return
	}

	resp.Success(c.Writer, user)
}

// Delete removes a user.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(c.Request.Context(), id); err != nil {
		h.fail(c, err, userNotFound(id))
		return
	}

	resp.NoContent(c.Writer)
}

// Activate handles POST /admin/users/:id/activate.
func (h *AdminHandler) Activate(c *gin.Context) {
	h.apply(c, func(ctx context.Context, id uint) (*model.User, error) {
		return h.svc.SetActive(ctx, id, true)
	})
}

// Deactivate handles POST /admin/users/:id/deactivate.
func (h *AdminHandler) Deactivate(c *gin.Context) {
	h.apply(c, func(ctx context.Context, id uint) (*model.User, error) {
		return h.svc.SetActive(ctx, id, false)
	})
}

// MakeAdmin handles POST /admin/users/:id/make-admin.
func (h *AdminHandler) MakeAdmin(c *gin.Context) {
	h.apply(c, func(ctx context.Context, id uint) (*model.User, error) {
		return h.svc.SetSuperuser(ctx, id, true)
	})
}

// RemoveAdmin handles POST /admin/users/:id/remove-admin.
func (h *AdminHandler) RemoveAdmin(c *gin.Context) {
	h.apply(c, func(ctx context.Context, id uint) (*model.User, error) {
		return h.svc.SetSuperuser(ctx, id, false)
	})
}

// apply runs fn on the :id user and writes the result.
func (h *AdminHandler) apply(c *gin.Context, fn func(context.Context, uint) (*model.User, error)) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	user, err := fn(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, userNotFound(id))
		return
	}

	resp.Success(c.Writer, user)
}
