package ecode

import (
	"net/http"
	"testing"
)

func TestCodeMappings(t *testing.T) {
	cases := []struct {
		code   int
		status int
		ec     ErrorCode
	}{
		{ParamErr, http.StatusUnprocessableEntity, ValidationError},
		{NothingFound, http.StatusNotFound, NotFound},
		{Conflict, http.StatusConflict, ConflictErr},
		{RequestErr, http.StatusBadRequest, BadRequest},
		{ServerErr, http.StatusInternalServerError, InternalError},
		{-12345, http.StatusInternalServerError, InternalError},
	}
	for _, c := range cases {
		if got := ToHTTPStatus(c.code); got != c.status {
			t.Errorf("ToHTTPStatus(%d) = %d, want %d", c.code, got, c.status)
		}
		if got := ToErrorCode(c.code); got != c.ec {
			t.Errorf("ToErrorCode(%d) = %s, want %s", c.code, got, c.ec)
		}
	}
}

func TestText(t *testing.T) {
	if got := Text(NothingFound); got != "Resource not found" {
		t.Errorf("unexpected text %q", got)
	}
	if got := Text(-99999); got != Text(ServerErr) {
		t.Errorf("unknown code should fall back to server error text, got %q", got)
	}
}

func TestMessageHelpers(t *testing.T) {
	if got := NotExist("Item with id 3"); got != "Item with id 3 not found" {
		t.Errorf("NotExist = %q", got)
	}
	if got := AlreadyExist(); got != "already exists" {
		t.Errorf("AlreadyExist() = %q", got)
	}
	if got := AlreadyExist("email"); got != "email already exists" {
		t.Errorf("AlreadyExist = %q", got)
	}
}
