package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/ncobase/monoapi/data/cache"
	"github.com/ncobase/monoapi/data/model"
	"github.com/ncobase/monoapi/data/repository"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/paging"
)

// ItemService handles item-related business logic.
type ItemService struct {
	repo   repository.ItemRepository
	cache  cache.ICache[model.Item]
	logger *logger.Logger
}

// NewItemService creates a new item service.
func NewItemService(repo repository.ItemRepository, c cache.ICache[model.Item], logger *logger.Logger) *ItemService {
	return &ItemService{
		repo:   repo,
		cache:  c,
		logger: logger,
	}
}

// CreateItemRequest represents the request to create an item.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateItemRequest represents the request to update an item. Absent fields
// are left unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// CreateItem creates a new item. Items are active unless told otherwise.
func (s *ItemService) CreateItem(ctx context.Context, req *CreateItemRequest) (*model.Item, error) {
	item := &model.Item{
		Title:       req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	return s.repo.Create(ctx, item)
}

// GetItem returns an item, reading through the cache.
func (s *ItemService) GetItem(ctx context.Context, id uint) (*model.Item, error) {
	key := strconv.FormatUint(uint64(id), 10)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warnf(ctx, "item cache read failed, id: %d: %v", id, err)
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, item); err != nil {
		s.logger.Warnf(ctx, "item cache write failed, id: %d: %v", id, err)
	}
	return item, nil
}

// ListItems returns a page of items, newest first.
func (s *ItemService) ListItems(ctx context.Context, p paging.Params) (*paging.Result[model.Item], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}
	result, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "item", result, p)
	return result, nil
}

// SearchItems returns a page of items whose name contains term, ignoring case.
func (s *ItemService) SearchItems(ctx context.Context, term string, p paging.Params) (*paging.Result[model.Item], error) {
	if err := paging.ValidateParams(p); err != nil {
		return nil, err
	}
	result, err := s.repo.Search(ctx, term, p)
	if err != nil {
		return nil, err
	}
	noteInvalidCursor(ctx, s.logger, "item search", result, p)
	return result, nil
}

// UpdateItem applies the fields present in req.
func (s *ItemService) UpdateItem(ctx context.Context, id uint, req *UpdateItemRequest) (*model.Item, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["title"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	item, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.evict(ctx, id)
	return item, nil
}

// DeleteItem removes an item and returns it as it was.
func (s *ItemService) DeleteItem(ctx context.Context, id uint) (*model.Item, error) {
	item, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.evict(ctx, id)
	return item, nil
}

func (s *ItemService) evict(ctx context.Context, id uint) {
	if err := s.cache.Delete(ctx, strconv.FormatUint(uint64(id), 10)); err != nil {
		s.logger.Warnf(ctx, "item cache evict failed, id: %d: %v", id, err)
	}
}
