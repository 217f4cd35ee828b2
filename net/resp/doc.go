// Package resp writes HTTP responses in the service's standard shapes.
//
// Successful reads write the payload itself, so a list endpoint returns the
// page directly:
//
//	resp.Success(c.Writer, page)                         // {"items": [...], "next_cursor": "..."}
//	resp.WithStatusCode(c.Writer, http.StatusCreated, item)
//
// Operations that report an outcome use the success envelope:
//
//	resp.Message(c.Writer, http.StatusOK, "Item 3 deleted successfully", item)
//	// {"status": "success", "message": "...", "timestamp": "...", "request_id": "...", "data": {...}}
//
// Failures always use the error envelope:
//
//	resp.Fail(c.Writer, resp.NotFound("Item with id 3 not found"))
//	// {"status": "error", "message": "...", "error_code": "NOT_FOUND", "timestamp": "...", "request_id": "..."}
//
//	resp.Fail(c.Writer, resp.ValidationFailed("Invalid query parameters", resp.Detail{
//	    Code: ecode.ValidationError, Field: "limit", Message: "limit must be between 1 and 100", Value: 0,
//	}))
//
// The request id is taken from the X-Request-ID response header, which the
// request id middleware sets before handlers run.
package resp
