package service

import (
	"context"
	"errors"

	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
	"github.com/ncobase/monoapi/security/password"
)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = errors.New("password too long")

// UserService handles user accounts.
type UserService struct {
	repo   repository.UserRepository
	logger *logger.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, logger *logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// CreateUserRequest represents the request to register a user.
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Username string  `json:"username" binding:"required,alphanum,max=50"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
}

// UpdateUserRequest represents a partial user update.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Username *string `json:"username" binding:"omitempty,alphanum,max=50"`
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
}

// AdminUpdateUserRequest additionally sets the account flags.
type AdminUpdateUserRequest struct {
	UpdateUserRequest
	IsActive    *bool `json:"is_active"`
	IsSuperuser *bool `json:"is_superuser"`
}

// CreateUser registers an active, non-admin user.
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &model.User{
		Email:          req.Email,
		Username:       req.Username,
		FullName:       req.FullName,
		HashedPassword: hash,
		IsActive:       true,
	})
}

// GetUser returns a user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers returns a page of users, newest first.
func (s *UserService) ListUsers(ctx context.Context, activeOnly bool, p paging.Params) (*paging.Result[model.User], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}
	result, err := s.repo.List(ctx, repository.UserFilter{ActiveOnly: activeOnly}, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "user", result, p)
	return result, nil
}

// UpdateUser applies the fields present in req.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req *UpdateUserRequest) (*model.User, error) {
	updates, err := userUpdates(req)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, updates)
}

// AdminUpdateUser applies profile fields and account flags.
func (s *UserService) AdminUpdateUser(ctx context.Context, id uint, req *AdminUpdateUserRequest) (*model.User, error) {
	updates, err := userUpdates(&req.UpdateUserRequest)
	if err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsSuperuser != nil {
		updates["is_superuser"] = *req.IsSuperuser
	}
	return s.repo.Update(ctx, id, updates)
}

// SetActive activates or deactivates a user.
func (s *UserService) SetActive(ctx context.Context, id uint, active bool) (*model.User, error) {
	return s.repo.Update(ctx, id, map[string]any{"is_active": active})
}

// SetSuperuser grants or revokes admin rights.
func (s *UserService) SetSuperuser(ctx context.Context, id uint, superuser bool) (*model.User, error) {
	return s.repo.Update(ctx, id, map[string]any{"is_superuser": superuser})
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func userUpdates(req *UpdateUserRequest) (map[string]any, error) {
	updates := make(map[string]any)
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["hashed_password"] = hash
	}
	return updates, nil
}

// hashPassword rejects passwords over bcrypt's 72 byte input limit, which
// multi-byte characters can reach within 72 characters.
func hashPassword(plain string) (string, error) {
	hash, err := password.Hash(plain)
	if password.IsTooLong(err) {
		return "", ErrPasswordTooLong
	}
	return hash, err
}
