// Package ctxutil carries the request id on context.Context.
//
//	ctx = ctxutil.SetTraceID(ctx, id)
//	ctxutil.GetTraceID(ctx) == id
package ctxutil
