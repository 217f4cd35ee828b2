// Package paging provides stateless, forward-only cursor pagination for list
// endpoints backed by an ordered, filterable collection.
//
// A cursor is an opaque token carrying the sort-field value of the last item
// returned. The next page is the rows strictly beyond that value, so no
// offsets are kept and nothing is stored server-side.
//
// # Basic Usage
//
// Validate the request parameters at the HTTP boundary:
//
//	params := paging.Params{After: c.Query("after"), Limit: limit}
//	if err := paging.ValidateParams(params); err != nil {
//	    // respond 422
//	}
//
// Run the engine over any Query implementation:
//
//	result, err := paging.Paginate(ctx, data.NewQuery[*model.Item](db), paging.ByIDDesc, params)
//
// # Cursor Encoding
//
// Cursors are base64 encoded JSON objects with sorted keys:
//
//	token, _ := paging.EncodeCursor(paging.Boundary{"id": int64(6)})
//	// eyJpZCI6Nn0=
//
//	b, err := paging.DecodeCursor(token)
//	if errors.Is(err, paging.ErrInvalidCursor) {
//	    // malformed token
//	}
//
// # Invalid Cursors
//
// Paginate never returns an error for a malformed cursor. It returns an empty
// page with no next cursor and sets Result.InvalidCursor so the caller can log
// the event.
//
// # Response Structure
//
//	{
//	  "items": [...],
//	  "next_cursor": "eyJpZCI6Nn0="   // null on the last page
//	}
package paging
