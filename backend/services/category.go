package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"habittracker/backend/models"
	"habittracker/backend/store"
)

type CategoryService struct {
	store store.Store
	clock Clock
}

func NewCategoryService(s store.Store, clock Clock) *CategoryService {
	return &CategoryService{store: s, clock: clock}
}

func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	category := &models.Category{ID: uuid.NewString(), Name: name, CreatedAt: s.clock.now()}
	if err := s.store.Categories().Create(ctx, category); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.Categories().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.store.Categories().Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id, name string) (*models.Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name

	switch err := s.store.Categories().Update(ctx, category); {
	case errors.Is(err, store.ErrNotFound):
		return nil, ErrCategoryNotFound
	case errors.Is(err, store.ErrConflict):
		return nil, ErrCategoryExists
	case err != nil:
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.store.Categories().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
