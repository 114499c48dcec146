package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_category_service.go -package=mocks prompt-manager/internal/service CategoryService

import (
	"context"

	"prompt-manager/internal/contextutil"
	"prompt-manager/internal/storage"
)

// CategoryService manages the category vocabulary.
type CategoryService interface {
	// List returns all known categories.
	List(ctx context.Context) ([]string, error)
	// Add inserts a category and returns the sorted vocabulary.
	Add(ctx context.Context, name string) ([]string, error)
	// Remove deletes a category and returns the sorted vocabulary.
	// Prompts tagged with it are left untouched.
	Remove(ctx context.Context, name string) ([]string, error)
}

// categoryService implements CategoryService.
type categoryService struct {
	stores *Stores
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(stores *Stores) CategoryService {
	return &categoryService{stores: stores}
}

func (s *categoryService) List(ctx context.Context) ([]string, error) {
	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	categories, err := s.stores.Categories.Load(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to load categories")
	}
	return categories, nil
}

func (s *categoryService) Add(ctx context.Context, name string) ([]string, error) {
	name = storage.NormalizeCategory(name)
	if name == "" {
		return nil, &ValidationError{Field: "category", Message: "Category name required"}
	}

	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	categories, err := s.stores.Categories.Add(ctx, name)
	if err != nil {
		return nil, WrapError(err, "failed to add category")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "added category", "category", name)
	return categories, nil
}

func (s *categoryService) Remove(ctx context.Context, name string) ([]string, error) {
	name = storage.NormalizeCategory(name)
	if name == "" {
		return nil, &ValidationError{Field: "category", Message: "Category name required"}
	}

	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	categories, err := s.stores.Categories.Remove(ctx, name)
	if err != nil {
		return nil, WrapError(err, "failed to delete category")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "deleted category", "category", name)
	return categories, nil
}
