package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/ecode"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/net/resp"
)

// UserHandler handles the public user endpoints.
type UserHandler struct {
	base
	svc *service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		base: base{logger: logger},
		svc:  svc,
	}
}

func userNotFound(id uint) string {
	return ecode.NotExist(fmt.Sprintf("User with id %d", id))
}

// Create registers a user.
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, user)
}

// List handles GET /users?after=&limit=&active_only=.
func (h *UserHandler) List(c *gin.Context) {
	var q struct {
		pageQuery
		ActiveOnly bool `form:"active_only"`
	}
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListUsers(c.Request.Context(), q.ActiveOnly, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// Get returns a user.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	user, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, userNotFound(id))
		return
	}

	resp.Success(c.Writer, user)
}

// Update applies a partial profile update.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, userNotFound(id))
		return
	}

	resp.Success(c.Writer, user)
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
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
