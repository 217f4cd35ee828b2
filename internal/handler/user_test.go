package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) createUser(username string) int {
	w := s.do(http.MethodPost, "/api/v1/users", map[string]any{
		"email":    username + "@example.com",
		"username": username,
		"password": "password123",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	return int(decode[map[string]any](s.t, w)["id"].(float64))
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t)
	id := s.createUser("ada")

	w := s.do(http.MethodGet, fmt.Sprintf("/api/v1/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, "password")
	assert.Contains(t, body, `"username":"ada"`)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/v1/users/%d", id), map[string]any{"full_name": "Ada Lovelace"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada Lovelace", decode[map[string]any](t, w)["full_name"])

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", id), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", id), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, fmt.Sprintf("User with id %d not found", id), decode[envelope](t, w).Message)
}

func TestUserCreateValidation(t *testing.T) {
	s := newTestServer(t)
	s.createUser("grace")

	w := s.do(http.MethodPost, "/api/v1/users", map[string]any{
		"email": "grace@example.com", "username": "other", "password": "password123",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	env := decode[envelope](t, w)
	assert.Equal(t, "CONFLICT", env.ErrorCode)
	assert.Equal(t, "User with this email already exists", env.Message)

	w = s.do(http.MethodPost, "/api/v1/users", map[string]any{
		"email": "not-an-email", "username": "bad name", "password": "short",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	fields := map[string]bool{}
	for _, d := range decode[envelope](t, w).Details {
		fields[d["field"].(string)] = true
	}
	assert.Equal(t, map[string]bool{"email": true, "username": true, "password": true}, fields)

	// 40 two-byte runes pass max=72 but exceed bcrypt's 72 bytes
	w = s.do(http.MethodPost, "/api/v1/users", map[string]any{
		"email": "ellipsis@example.com", "username": "ellipsis", "password": strings.Repeat("é", 40),
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	env = decode[envelope](t, w)
	require.Len(t, env.Details, 1)
	assert.Equal(t, "password", env.Details[0]["field"])
}

func TestUserListActiveOnly(t *testing.T) {
	s := newTestServer(t)
	a := s.createUser("alpha")
	s.createUser("bravo")

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%d/deactivate", a), nil).Code)

	w := s.do(http.MethodGet, "/api/v1/users", nil)
	assert.Len(t, decode[page](t, w).Items, 2)

	w = s.do(http.MethodGet, "/api/v1/users?active_only=true", nil)
	p := decode[page](t, w)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "bravo", p.Items[0]["username"])

	w = s.do(http.MethodGet, "/api/v1/users?active_only=perhaps", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdminUsers(t *testing.T) {
	s := newTestServer(t)
	id := s.createUser("carol")
	s.createUser("dave")

	w := s.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%d/make-admin", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, w)["is_superuser"])

	w = s.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%d/remove-admin", id), nil)
	assert.Equal(t, false, decode[map[string]any](t, w)["is_superuser"])

	w = s.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%d/deactivate", id), nil)
	assert.Equal(t, false, decode[map[string]any](t, w)["is_active"])

	w = s.do(http.MethodGet, "/api/v1/admin/users", nil)
	assert.Len(t, decode[page](t, w).Items, 1)
	w = s.do(http.MethodGet, "/api/v1/admin/users?include_inactive=true", nil)
	assert.Len(t, decode[page](t, w).Items, 2)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/users/%d", id), map[string]any{"is_active": true, "username": "dave"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/v1/admin/users/%d", id), map[string]any{"is_active": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]any](t, w)["is_active"])

	w = s.do(http.MethodGet, fmt.Sprintf("/api/v1/admin/users/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/users/%d", id), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, fmt.Sprintf("/api/v1/admin/users/%d/activate", id), nil).Code)
}
