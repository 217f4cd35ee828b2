// Package ecode defines the business codes used in API responses.
//
// Integer codes follow the HTTP status they map to, negated:
//
//	ecode.NothingFound  // -404
//	ecode.ParamErr      // -422
//	ecode.ServerErr     // -500
//
// Each code maps to an HTTP status, a human readable message and the string
// error code written into the error envelope:
//
//	ecode.ToHTTPStatus(ecode.ParamErr) // 422
//	ecode.ToErrorCode(ecode.ParamErr)  // "VALIDATION_ERROR"
//	ecode.Text(ecode.NothingFound)     // "Resource not found"
//
// Message helpers build consistent texts:
//
//	ecode.NotExist(fmt.Sprintf("Item with id %d", id))
//	// "Item with id 3 not found"
package ecode
