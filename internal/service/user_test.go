package service_test

import (
	"context"
	"testing"

	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/paging"
	"github.com/ncobase/monoapi/security/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceHashesPasswords(t *testing.T) {
	svc, d, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.User.CreateUser(ctx, &service.CreateUserRequest{
		Email:    "ada@example.com",
		Username: "ada",
		Password: "analytical",
	})
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)

	var stored string
	require.NoError(t, d.Main.Table("users").Select("hashed_password").Where("id = ?", user.ID).Scan(&stored).Error)
	assert.NotEqual(t, "analytical", stored)
	assert.True(t, password.Verify(stored, "analytical"))

	_, err = svc.User.UpdateUser(ctx, user.ID, &service.UpdateUserRequest{Password: ptr("engine-no-2")})
	require.NoError(t, err)
	require.NoError(t, d.Main.Table("users").Select("hashed_password").Where("id = ?", user.ID).Scan(&stored).Error)
	assert.True(t, password.Verify(stored, "engine-no-2"))
}

func TestUserServiceConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.User.CreateUser(ctx, &service.CreateUserRequest{Email: "a@example.com", Username: "alpha", Password: "password1"})
	require.NoError(t, err)
	bravo, err := svc.User.CreateUser(ctx, &service.CreateUserRequest{Email: "b@example.com", Username: "bravo", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.User.CreateUser(ctx, &service.CreateUserRequest{Email: "a@example.com", Username: "other", Password: "password1"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	_, err = svc.User.UpdateUser(ctx, bravo.ID, &service.UpdateUserRequest{Username: ptr("alpha")})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestUserServiceAdminFlags(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.User.CreateUser(ctx, &service.CreateUserRequest{Email: "c@example.com", Username: "charlie", Password: "password1"})
	require.NoError(t, err)

	u, err = svc.User.SetSuperuser(ctx, u.ID, true)
	require.NoError(t, err)
	assert.True(t, u.IsSuperuser)

	u, err = svc.User.SetActive(ctx, u.ID, false)
	require.NoError(t, err)
	assert.False(t, u.IsActive)

	active, err := svc.User.ListUsers(ctx, true, paging.NewParams())
	require.NoError(t, err)
	assert.Empty(t, active.Items)

	all, err := svc.User.ListUsers(ctx, false, paging.NewParams())
	require.NoError(t, err)
	assert.Len(t, all.Items, 1)

	u, err = svc.User.AdminUpdateUser(ctx, u.ID, &service.AdminUpdateUserRequest{
		UpdateUserRequest: service.UpdateUserRequest{FullName: ptr("Charlie Root")},
		IsActive:          ptr(true),
		IsSuperuser:       ptr(false),
	})
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsSuperuser)
	assert.Equal(t, "Charlie Root", *u.FullName)

	require.NoError(t, svc.User.DeleteUser(ctx, u.ID))
	assert.ErrorIs(t, svc.User.DeleteUser(ctx, u.ID), repository.ErrNotFound)
	_, err = svc.User.SetActive(ctx, u.ID, true)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
