package ecode

import "net/http"

// Business codes. 0 is success, negative values are failures.
const (
	OK                 = 0
	ServerErr          = -500
	ServiceUnavailable = -503
	RequestErr         = -400
	ParamErr           = -422
	Unauthorized       = -401
	AccessDenied       = -403
	NothingFound       = -404
	MethodNotAllowed   = -405
	Conflict           = -409
	LimitExceed        = -429
)

// ErrorCode is the machine readable error code carried by the error envelope.
type ErrorCode string

const (
	ValidationError ErrorCode = "VALIDATION_ERROR"
	NotFound        ErrorCode = "NOT_FOUND"
	UnauthorizedErr ErrorCode = "UNAUTHORIZED"
	Forbidden       ErrorCode = "FORBIDDEN"
	InternalError   ErrorCode = "INTERNAL_ERROR"
	BadRequest      ErrorCode = "BAD_REQUEST"
	ConflictErr     ErrorCode = "CONFLICT"
	RateLimited     ErrorCode = "RATE_LIMITED"
)

var (
	messages = map[int]string{
		OK:                 "ok",
		ServerErr:          "Internal server error",
		ServiceUnavailable: "Service unavailable",
		RequestErr:         "Invalid request",
		ParamErr:           "Invalid parameters",
		Unauthorized:       "Unauthorized",
		AccessDenied:       "Access denied",
		NothingFound:       "Resource not found",
		MethodNotAllowed:   "Method not allowed",
		Conflict:           "Resource conflict",
		LimitExceed:        "Too many requests",
	}
	statuses = map[int]int{
		OK:                 http.StatusOK,
		ServerErr:          http.StatusInternalServerError,
		ServiceUnavailable: http.StatusServiceUnavailable,
		RequestErr:         http.StatusBadRequest,
		ParamErr:           http.StatusUnprocessableEntity,
		Unauthorized:       http.StatusUnauthorized,
		AccessDenied:       http.StatusForbidden,
		NothingFound:       http.StatusNotFound,
		MethodNotAllowed:   http.StatusMethodNotAllowed,
		Conflict:           http.StatusConflict,
		LimitExceed:        http.StatusTooManyRequests,
	}
	errorCodes = map[int]ErrorCode{
		ServerErr:          InternalError,
		ServiceUnavailable: InternalError,
		RequestErr:         BadRequest,
		ParamErr:           ValidationError,
		Unauthorized:       UnauthorizedErr,
		AccessDenied:       Forbidden,
		NothingFound:       NotFound,
		MethodNotAllowed:   BadRequest,
		Conflict:           ConflictErr,
		LimitExceed:        RateLimited,
	}
)

// Text returns the message registered for code.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status.
func ToHTTPStatus(code int) int {
	if status, ok := statuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ToErrorCode maps a business code to the envelope error code.
func ToErrorCode(code int) ErrorCode {
	if ec, ok := errorCodes[code]; ok {
		return ec
	}
	return InternalError
}
