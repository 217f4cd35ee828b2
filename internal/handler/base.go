package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/ecode"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/net/resp"
	"github.com/ncobase/monoapi/paging"
	"github.com/ncobase/monoapi/validation/validator"
)

// pageQuery holds the cursor pagination query parameters.
type pageQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit,default=20"`
}

func (q pageQuery) params() paging.Params {
	return paging.Params{After: q.After, Limit: q.Limit}
}

type idURI struct {
	ID uint `uri:"id" binding:"required"`
}

// base carries the request plumbing shared by all handlers.
type base struct {
	logger *logger.Logger
}

// bindJSON decodes the body into req. Malformed JSON is a 400, a body that
// fails validation a 422.
func (b *base) bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if details := validator.Translate(err); details != nil {
		resp.Fail(c.Writer, resp.ValidationFailed("Validation error", details...))
		return false
	}
	b.logger.Warnf(c.Request.Context(), "invalid request body: %v", err)
	resp.Fail(c.Writer, resp.BadRequest("Invalid request body"))
	return false
}

// bindQuery decodes the query string into q; any failure is a 422.
func (b *base) bindQuery(c *gin.Context, q any) bool {
	err := c.ShouldBindQuery(q)
	if err == nil {
		return true
	}
	details := validator.Translate(err)
	if details == nil {
		details = []resp.Detail{{Code: ecode.ValidationError, Message: err.Error()}}
	}
	resp.Fail(c.Writer, resp.ValidationFailed("Invalid query parameters", details...))
	return false
}

// bindID reads the :id path parameter; anything but a positive integer is a 422.
func (b *base) bindID(c *gin.Context) (uint, bool) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resp.Fail(c.Writer, resp.ValidationFailed("Invalid path parameter", resp.Detail{
			Code:    ecode.ValidationError,
			Field:   "id",
			Message: "value is not a valid positive integer",
			Value:   c.Param("id"),
		}))
		return 0, false
	}
	return uri.ID, true
}

// fail writes the error response for err. notFound is the message used when
// the requested resource does not exist.
func (b *base) fail(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, paging.ErrInvalidLimit):
		resp.Fail(c.Writer, resp.ValidationFailed("Invalid query parameters", resp.Detail{
			Code:    ecode.ValidationError,
			Field:   "limit",
			Message: strings.TrimPrefix(err.Error(), paging.ErrInvalidLimit.Error()+": "),
			Value:   c.Query("limit"),
		}))
	case errors.Is(err, service.ErrInvalidLevel):
		resp.Fail(c.Writer, resp.ValidationFailed("Invalid query parameters", resp.Detail{
			Code:    ecode.ValidationError,
			Field:   "level",
			Message: "must be one of [DEBUG INFO WARNING ERROR CRITICAL]",
			Value:   c.Query("level"),
		}))
	case errors.Is(err, service.ErrPasswordTooLong):
		resp.Fail(c.Writer, resp.ValidationFailed("Validation error", resp.Detail{
			Code:    ecode.ValidationError,
			Field:   "password",
			Message: "must be at most 72 bytes",
		}))
	case errors.Is(err, repository.ErrNotFound):
		resp.Fail(c.Writer, resp.NotFound(notFound))
	case errors.Is(err, repository.ErrConflict):
		resp.Fail(c.Writer, resp.Conflict(conflictMessage(err)))
	default:
		b.logger.Errorf(c.Request.Context(), "%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		resp.Fail(c.Writer, resp.InternalServer(""))
	}
}

func conflictMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "with email"):
		return ecode.AlreadyExist("User with this email")
	case strings.Contains(msg, "with username"):
		return ecode.AlreadyExist("User with this username")
	}
	return ecode.Text(ecode.Conflict)
}
