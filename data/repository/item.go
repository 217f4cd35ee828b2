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

// ItemRepository defines the interface for item data operations.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) (*model.Item, error)
	GetByID(ctx context.Context, id uint) (*model.Item, error)
	Update(ctx context.Context, id uint, updates map[string]any) (*model.Item, error)
	Delete(ctx context.Context, id uint) (*model.Item, error)
	List(ctx context.Context, p paging.Params) (*paging.Result[model.Item], error)
	Search(ctx context.Context, term string, p paging.Params) (*paging.Result[model.Item], error)
}

type itemRepository struct {
	db     *gorm.DB
	logger *logger.Logger
}

// NewItemRepository creates a new item repository on the main database.
func NewItemRepository(d *data.Data, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		db:     d.Main,
		logger: logger,
	}
}

// Create creates a new item.
func (r *itemRepository) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		r.logger.Errorf(ctx, "failed to create item: %v", err)
		return nil, fmt.Errorf("failed to create item: %w", translate(err))
	}

	r.logger.Infof(ctx, "item created, id: %d", item.ID)
	return item, nil
}

// GetByID retrieves an item by ID.
func (r *itemRepository) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		err = translate(err)
		if !errors.Is(err, ErrNotFound) {
			r.logger.Errorf(ctx, "failed to get item %d: %v", id, err)
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return &item, nil
}

// Update applies a partial update given as column -> value.
func (r *itemRepository) Update(ctx context.Context, id uint, updates map[string]any) (*model.Item, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return item, nil
	}

	if err := r.db.WithContext(ctx).Model(item).Updates(updates).Error; err != nil {
		r.logger.Errorf(ctx, "failed to update item %d: %v", id, err)
		return nil, fmt.Errorf("failed to update item %d: %w", id, translate(err))
	}

	r.logger.Infof(ctx, "item updated, id: %d", id)
	return r.GetByID(ctx, id)
}

// Delete removes an item and returns it as it was.
func (r *itemRepository) Delete(ctx context.Context, id uint) (*model.Item, error) {
	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&model.Item{}, id).Error; err != nil {
		r.logger.Errorf(ctx, "failed to delete item %d: %v", id, err)
		return nil, fmt.Errorf("failed to delete item %d: %w", id, err)
	}

	r.logger.Infof(ctx, "item deleted, id: %d", id)
	return item, nil
}

// List pages through all items.
func (r *itemRepository) List(ctx context.Context, p paging.Params) (*paging.Result[model.Item], error) {
	return paging.Paginate(ctx, data.NewQuery[model.Item](r.db), paging.ByIDDesc, p)
}

// Search pages through items whose title contains term, ignoring case. An
// empty term matches every item.
func (r *itemRepository) Search(ctx context.Context, term string, p paging.Params) (*paging.Result[model.Item], error) {
	q := r.db
	if term != "" {
		q = q.Where("LOWER(title) LIKE ? ESCAPE '"+likeEscape+"'", likePattern(term))
	}
	return paging.Paginate(ctx, data.NewQuery[model.Item](q), paging.ByIDDesc, p)
}
