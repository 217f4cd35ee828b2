package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/monoapi/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessWritesPayload(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]any{"items": []int{1, 2}, "next_cursor": nil})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"items":[1,2],"next_cursor":null}`, w.Body.String())
}

func TestMessageWritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set(RequestIDHeader, "req-42")
	Message(w, http.StatusOK, "Item 3 deleted successfully", map[string]int{"id": 3})

	var env map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, StatusSuccess, env["status"])
	assert.Equal(t, "Item 3 deleted successfully", env["message"])
	assert.Equal(t, "req-42", env["request_id"])
	assert.NotEmpty(t, env["timestamp"])
	assert.Equal(t, map[string]any{"id": float64(3)}, env["data"])
}

func TestFailWritesErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, ValidationFailed("Invalid query parameters", Detail{
		Code:    ecode.ValidationError,
		Field:   "limit",
		Message: "limit must be between 1 and 100",
		Value:   0,
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, ecode.ValidationError, env.ErrorCode)
	require.Len(t, env.Details, 1)
	assert.Equal(t, "limit", env.Details[0].Field)
}

func TestFailNilIsInternalError(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, ecode.InternalError, env.ErrorCode)
	assert.Equal(t, ecode.Text(ecode.ServerErr), env.Message)
}

func TestHelperStatuses(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").Status)
	assert.Equal(t, http.StatusConflict, Conflict("x").Status)
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	assert.Equal(t, ecode.Text(ecode.NothingFound), NotFound("").Message)
}
