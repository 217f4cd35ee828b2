package resp

import (
	"net/http"

	"github.com/ncobase/monoapi/ecode"
)

// BadRequest indicates a malformed request.
func BadRequest(message string, details ...Detail) *Exception {
	return newResponse(http.StatusBadRequest, ecode.RequestErr, message, details...)
}

// ValidationFailed indicates that request parameters did not validate.
func ValidationFailed(message string, details ...Detail) *Exception {
	return newResponse(http.StatusUnprocessableEntity, ecode.ParamErr, message, details...)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string, details ...Detail) *Exception {
	return newResponse(http.StatusNotFound, ecode.NothingFound, message, details...)
}

// Conflict indicates a conflict error.
func Conflict(message string, details ...Detail) *Exception {
	return newResponse(http.StatusConflict, ecode.Conflict, message, details...)
}

// NotAllowed indicates a not allowed error.
func NotAllowed(message string, details ...Detail) *Exception {
	return newResponse(http.StatusMethodNotAllowed, ecode.MethodNotAllowed, message, details...)
}

// InternalServer indicates a server error.
func InternalServer(message string, details ...Detail) *Exception {
	return newResponse(http.StatusInternalServerError, ecode.ServerErr, message, details...)
}
