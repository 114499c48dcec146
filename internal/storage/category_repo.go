package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_category_store.go -package=mocks prompt-manager/internal/storage CategoryStore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"

	"prompt-manager/internal/contextutil"
)

var (
	// DefaultCategories seeds a missing categories file.
	DefaultCategories = []string{"poses", "emotions", "portraits", "lighting", "actions", "outfits", "backgrounds", "angles"}
	// FallbackCategories are served when the categories file cannot be parsed.
	FallbackCategories = []string{"poses", "emotions", "portraits"}
)

// CategoryStore defines the interface for category vocabulary persistence.
type CategoryStore interface {
	// Load returns the stored categories, seeding defaults when the file is missing.
	Load(ctx context.Context) ([]string, error)
	// Save deduplicates and sorts categories, persists them and returns the stored list.
	Save(ctx context.Context, categories []string) ([]string, error)
	// Add inserts a normalized category if absent and returns the stored list.
	Add(ctx context.Context, name string) ([]string, error)
	// Remove deletes a normalized category if present and returns the stored list.
	Remove(ctx context.Context, name string) ([]string, error)
	// Merge adds every non-empty tag that is not yet known and returns the stored list.
	Merge(ctx context.Context, names []string) ([]string, error)
}

// CategoryRepo stores categories as a JSON array of strings.
// It implements the CategoryStore interface.
type CategoryRepo struct {
	path string
}

// NewCategoryRepo creates a new CategoryRepo backed by the file at path.
func NewCategoryRepo(path string) *CategoryRepo {
	return &CategoryRepo{path: path}
}

// NormalizeCategory lowercases and trims a category name.
func NormalizeCategory(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Load reads the category file. A malformed file yields FallbackCategories, not an error.
func (r *CategoryRepo) Load(ctx context.Context) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := fileExists(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat categories file: %w", err)
	}
	if !exists {
		saved, err := r.Save(ctx, DefaultCategories)
		if err != nil {
			return nil, fmt.Errorf("failed to seed categories file: %w", err)
		}
		return saved, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		logger.WarnContext(ctx, "failed to read categories, using fallback", "path", r.path, "error", err)
		return append([]string(nil), FallbackCategories...), nil
	}

	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		logger.WarnContext(ctx, "failed to parse categories, using fallback", "path", r.path, "error", err)
		return append([]string(nil), FallbackCategories...), nil
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// Save writes the deduplicated, sorted categories as an indented JSON array.
func (r *CategoryRepo) Save(ctx context.Context, categories []string) ([]string, error) {
	stored := lo.Uniq(categories)
	sort.Strings(stored)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored); err != nil {
		return nil, fmt.Errorf("failed to encode categories: %w", err)
	}

	if err := writeFileReplace(r.path, bytes.TrimRight(buf.Bytes(), "\n")); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "saved categories", "count", len(stored))
	return stored, nil
}

// Add inserts name after normalization. Adding a known category is a no-op.
func (r *CategoryRepo) Add(ctx context.Context, name string) ([]string, error) {
	name = NormalizeCategory(name)
	categories, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if name == "" || lo.Contains(categories, name) {
		return sortedCopy(categories), nil
	}
	return r.Save(ctx, append(categories, name))
}

// Remove deletes name after normalization. Removing an unknown category is a no-op.
// Prompts tagged with the category keep the tag.
func (r *CategoryRepo) Remove(ctx context.Context, name string) ([]string, error) {
	name = NormalizeCategory(name)
	categories, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !lo.Contains(categories, name) {
		return sortedCopy(categories), nil
	}
	return r.Save(ctx, lo.Without(categories, name))
}

// Merge adds every tag in names that is not already present.
func (r *CategoryRepo) Merge(ctx context.Context, names []string) ([]string, error) {
	categories, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	missing := lo.Uniq(lo.Filter(names, func(name string, _ int) bool {
		return name != "" && !lo.Contains(categories, name)
	}))
	if len(missing) == 0 {
		return sortedCopy(categories), nil
	}
	return r.Save(ctx, append(categories, missing...))
}

func sortedCopy(categories []string) []string {
	out := lo.Uniq(categories)
	sort.Strings(out)
	return out
}
