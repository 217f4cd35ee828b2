package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
	"gorm.io/gorm"
)

// UserFilter narrows a user listing.
type UserFilter struct {
	ActiveOnly bool
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, id uint, updates map[string]any) (*model.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter UserFilter, p paging.Params) (*paging.Result[model.User], error)
}

type userRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewUserRepository creates a new user repository on the main database.
func NewUserRepository(d *data.Data, logger *logger.Logger) UserRepository {
	return &userRepository{
		db:     d.Main,
		logger: logger,
	}
}

// Create inserts a user. A taken email or username yields ErrConflict.
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.checkUnique(ctx, 0, user.Email, user.Username); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		err = translate(err)
		if !errors.Is(err, ErrConflict) {
			r.logger.Errorf(ctx, "failed to create user: %v", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Infof(ctx, "user created, id: %d", user.ID)
	return user, nil
}

// checkUnique reports ErrConflict when email or username belong to a user
// other than exceptID.
func (r *userRepository) checkUnique(ctx context.Context, exceptID uint, email, username string) error {
	checks := []struct {
		column, value string
	}{
		{"email", email},
		{"username", username},
	}
	for _, c := range checks {
		if c.value == "" {
			continue
		}
		var count int64
		err := r.db.WithContext(ctx).Model(&model.User{}).
			Where(c.column+" = ? AND id <> ?", c.value, exceptID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", c.column, err)
		}
		if count > 0 {
			return fmt.Errorf("user with %s %q: %w", c.column, c.value, ErrConflict)
		}
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.first(ctx, "email = ?", email)
}

// GetByUsername retrieves a user by username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userRepository) first(ctx context.Context, cond string, arg any) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&user).Error; err != nil {
		err = translate(err)
		if !errors.Is(err, ErrNotFound) {
			r.logger.Errorf(ctx, "failed to get user (%s %v): %v", cond, arg, err)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Update applies a partial update given as column -> value. Changing the
// email or username to one already taken yields ErrConflict.
func (r *userRepository) Update(ctx context.Context, id uint, updates map[string]any) (*model.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return user, nil
	}

	email, _ := updates["email"].(string)
	username, _ := updates["username"].(string)
	if err := r.checkUnique(ctx, id, email, username); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		err = translate(err)
		if !errors.Is(err, ErrConflict) {
			r.logger.Errorf(ctx, "failed to update user %d: %v", id, err)
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	r.logger.Infof(ctx, "user updated, id: %d", id)
	return r.GetByID(ctx, id)
}

// Delete removes a user.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		r.logger.Errorf(ctx, "failed to delete user %d: %v", id, res.Error)
		return fmt.Errorf("failed to delete user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to delete user %d: %w", id, ErrNotFound)
	}

	r.logger.Infof(ctx, "user deleted, id: %d", id)
	return nil
}

// List pages through users.
func (r *userRepository) List(ctx context.Context, filter UserFilter, p paging.Params) (*paging.Result[model.User], error) {
	q := r.db
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	return paging.Paginate(ctx, data.NewQuery[model.User](q), paging.ByIDDesc, p)
}
