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

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	base
	svc *service.ItemService
}

// NewItemHandler creates a new item handler.
func NewItemHandler(svc *service.ItemService, logger *logger.Logger) *ItemHandler {
	return &ItemHandler{
		base: base{logger: logger},
		svc:  svc,
	}
}

type searchQuery struct {
	pageQuery
	Q    string `form:"q"`
	Name string `form:"name"`
}

func itemNotFound(id uint) string {
	return ecode.NotExist(fmt.Sprintf("Item with id %d", id))
}

// Create handles item creation.
func (h *ItemHandler) Create(c *gin.Context) {
	var req service.CreateItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.svc.CreateItem(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, item)
}

// List handles GET /items?after=&limit=.
func (h *ItemHandler) List(c *gin.Context) {
	var q pageQuery
	if !h.bindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListItems(c.Request.Context(), q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// Search handles GET /items/search?q=&after=&limit=. name is accepted for q.
func (h *ItemHandler) Search(c *gin.Context) {
	var q searchQuery
	if !h.bindQuery(c, &q) {
		return
	}
	term := q.Q
	if term == "" {
		term = q.Name
	}

	page, err := h.svc.SearchItems(c.Request.Context(), term, q.params())
	if err != nil {
		h.fail(c, err, "")
		return
	}

	resp.Success(c.Writer, page)
}

// Get handles item retrieval.
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, itemNotFound(id))
		return
	}

	resp.Success(c.Writer, item)
}

// Update handles partial item updates.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req service.UpdateItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.svc.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, itemNotFound(id))
		return
	}

	resp.Success(c.Writer, item)
}

// Delete removes an item and echoes it back in a success envelope.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	item, err := h.svc.DeleteItem(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, itemNotFound(id))
		return
	}

	resp.Message(c.Writer, http.StatusOK, fmt.Sprintf("Item %d deleted successfully", id), item)
}
