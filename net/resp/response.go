package resp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ncobase/monoapi/ecode"
)

// RequestIDHeader is the response header the request id is read from.
const RequestIDHeader = "X-Request-ID"

// Status values of the envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusWarning = "warning"
)

// Detail describes a single failing field or condition.
type Detail struct {
	Code    ecode.ErrorCode `json:"code"`
	Field   string          `json:"field,omitempty"`
	Message string          `json:"message"`
	Value   any             `json:"value,omitempty"`
}

// Exception describes a failure before it is written.
type Exception struct {
	Status  int      // HTTP status
	Code    int      // Business code
	Message string   // Message
	Details []Detail // Field errors
}

// Error implements error so an Exception can travel through error returns.
func (e *Exception) Error() string {
	return e.Message
}

// Envelope is the standard response body.
type Envelope struct {
	Status    string          `json:"status"`
	Message   string          `json:"message,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"request_id,omitempty"`
	Data      any             `json:"data,omitempty"`
	Meta      map[string]any  `json:"meta,omitempty"`
	ErrorCode ecode.ErrorCode `json:"error_code,omitempty"`
	Details   []Detail        `json:"details,omitempty"`
}

// newResponse creates a new exception.
func newResponse(status, code int, message string, details ...Detail) *Exception {
	if message == "" {
		message = ecode.Text(code)
	}
	return &Exception{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Success writes data as the body with status 200.
func Success(w http.ResponseWriter, data ...any) {
	WithStatusCode(w, http.StatusOK, data...)
}

// WithStatusCode writes data as the body with the given status.
// A string argument is written as a success envelope message.
func WithStatusCode(w http.ResponseWriter, statusCode int, data ...any) {
	var responseData any
	if len(data) > 0 {
		responseData = data[0]
	}

	switch v := responseData.(type) {
	case nil:
		Message(w, statusCode, "ok", nil)
	case string:
		Message(w, statusCode, v, nil)
	default:
		writeResponse(w, statusCode, v)
	}
}

// Message writes a success envelope carrying message, data and optional meta.
func Message(w http.ResponseWriter, statusCode int, message string, data any, meta ...map[string]any) {
	env := &Envelope{
		Status:    StatusSuccess,
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: w.Header().Get(RequestIDHeader),
		Data:      data,
	}
	if len(meta) > 0 {
		env.Meta = meta[0]
	}
	writeResponse(w, statusCode, env)
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Fail writes the error envelope for r.
func Fail(w http.ResponseWriter, r *Exception) {
	statusCode, result := buildFailureResponse(w, r)
	writeResponse(w, statusCode, result)
}

// buildFailureResponse builds the failure response.
func buildFailureResponse(w http.ResponseWriter, r *Exception) (int, *Envelope) {
	if r == nil {
		r = InternalServer("")
	}

	code := r.Code
	if code == 0 {
		code = ecode.RequestErr
	}
	status := r.Status
	if status == 0 {
		status = ecode.ToHTTPStatus(code)
	}
	message := r.Message
	if message == "" {
		message = ecode.Text(code)
	}

	return status, &Envelope{
		Status:    StatusError,
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: w.Header().Get(RequestIDHeader),
		ErrorCode: ecode.ToErrorCode(code),
		Details:   r.Details,
	}
}

// writeResponse writes res as JSON with the given status code.
func writeResponse(w http.ResponseWriter, code int, res any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}
