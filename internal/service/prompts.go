package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_prompt_service.go -package=mocks prompt-manager/internal/service PromptService

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"prompt-manager/internal/contextutil"
	"prompt-manager/internal/storage"
)

// DefaultTitle replaces empty titles so every saved line stays decodable.
const DefaultTitle = "Untitled"

// PromptInput carries the editable fields of a prompt.
type PromptInput struct {
	Title      string
	Categories []string
	Favorite   bool
	Image      string
	Prompt     string
}

// PromptService provides prompt list operations.
type PromptService interface {
	// List returns all prompts in file order.
	List(ctx context.Context) ([]storage.PromptRecord, error)
	// Add appends a prompt and returns its index.
	Add(ctx context.Context, in PromptInput) (int, error)
	// Update replaces the fields of the prompt at index (1-based).
	Update(ctx context.Context, index int, in PromptInput) error
	// Delete removes the prompt at index (1-based) and its preview image.
	Delete(ctx context.Context, index int) (storage.PromptRecord, error)
	// SaveAll replaces the whole list and returns the number of saved prompts.
	SaveAll(ctx context.Context, records []storage.PromptRecord) (int, error)
}

// promptService implements PromptService.
type promptService struct {
	stores *Stores
}

// NewPromptService creates a new PromptService.
func NewPromptService(stores *Stores) PromptService {
	return &promptService{stores: stores}
}

func (s *promptService) List(ctx context.Context) ([]storage.PromptRecord, error) {
	// LoadAll seeds a missing file, so reads take the write lock too.
	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	records, err := s.stores.Prompts.LoadAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to load prompts")
	}
	return records, nil
}

func (s *promptService) Add(ctx context.Context, in PromptInput) (int, error) {
	logger := contextutil.LoggerFromContext(ctx)

	in = normalizeInput(in)
	var verrs validationErrors
	if in.Title == "" {
		verrs.add("title", "Title required")
	}
	if in.Prompt == "" {
		verrs.add("prompt", "Prompt required")
	}
	checkSingleLine(&verrs, in)
	if err := verrs.err(); err != nil {
		logger.WarnContext(ctx, "invalid add prompt request", "error", err)
		return 0, err
	}

	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	records, err := s.stores.Prompts.LoadAll(ctx)
	if err != nil {
		return 0, WrapError(err, "failed to load prompts")
	}

	records = append(records, storage.PromptRecord{
		Index:      len(records) + 1,
		Title:      in.Title,
		Categories: in.Categories,
		Favorite:   in.Favorite,
		Image:      in.Image,
		Prompt:     in.Prompt,
	})
	if err := s.stores.Prompts.SaveAll(ctx, records); err != nil {
		return 0, WrapError(err, "failed to save prompts")
	}

	// Not transactional with the prompt write above.
	if _, err := s.stores.Categories.Merge(ctx, in.Categories); err != nil {
		return 0, WrapError(err, "failed to update categories")
	}

	logger.InfoContext(ctx, "added prompt", "title", in.Title, "index", len(records))
	return len(records), nil
}

func (s *promptService) Update(ctx context.Context, index int, in PromptInput) error {
	logger := contextutil.LoggerFromContext(ctx)
	in = normalizeInput(in)
	if in.Title == "" {
		in.Title = DefaultTitle
	}
	var verrs validationErrors
	checkSingleLine(&verrs, in)
	if err := verrs.err(); err != nil {
		logger.WarnContext(ctx, "invalid update prompt request", "error", err)
		return err
	}

	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	records, err := s.stores.Prompts.LoadAll(ctx)
	if err != nil {
		return WrapError(err, "failed to load prompts")
	}
	if index < 1 || index > len(records) {
		logger.WarnContext(ctx, "update index out of range", "index", index, "count", len(records))
		return outOfRange()
	}

	target := &records[index-1]
	target.Title = in.Title
	target.Categories = in.Categories
	target.Favorite = in.Favorite
	target.Image = in.Image
	target.Prompt = in.Prompt

	if err := s.stores.Prompts.SaveAll(ctx, records); err != nil {
		return WrapError(err, "failed to save prompts")
	}
	if _, err := s.stores.Categories.Merge(ctx, in.Categories); err != nil {
		return WrapError(err, "failed to update categories")
	}

	logger.InfoContext(ctx, "updated prompt", "index", index, "title", in.Title)
	return nil
}

func (s *promptService) Delete(ctx context.Context, index int) (storage.PromptRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	records, err := s.stores.Prompts.LoadAll(ctx)
	if err != nil {
		return storage.PromptRecord{}, WrapError(err, "failed to load prompts")
	}
	if index < 1 || index > len(records) {
		logger.WarnContext(ctx, "delete index out of range", "index", index, "count", len(records))
		return storage.PromptRecord{}, outOfRange()
	}

	deleted := records[index-1]
	remaining := append(records[:index-1:index-1], records[index:]...)

	// Other images keep their prompt_{index} names even though indices shift.
	if deleted.Image != "" {
		if err := s.stores.Images.Delete(ctx, deleted.Image); err != nil {
			return storage.PromptRecord{}, WrapError(err, "failed to delete preview image")
		}
	}

	if err := s.stores.Prompts.SaveAll(ctx, remaining); err != nil {
		return storage.PromptRecord{}, WrapError(err, "failed to save prompts")
	}

	logger.InfoContext(ctx, "deleted prompt", "index", index, "title", deleted.Title)
	return deleted, nil
}

func (s *promptService) SaveAll(ctx context.Context, records []storage.PromptRecord) (int, error) {
	if records == nil {
		records = []storage.PromptRecord{}
	}
	var verrs validationErrors
	for i := range records {
		if verrs.result != nil {
			break
		}
		records[i].Title = strings.TrimSpace(records[i].Title)
		if records[i].Title == "" {
			records[i].Title = DefaultTitle
		}
		if records[i].Categories == nil {
			records[i].Categories = []string{}
		}
		checkSingleLine(&verrs, PromptInput{
			Title:      records[i].Title,
			Categories: records[i].Categories,
			Image:      records[i].Image,
			Prompt:     records[i].Prompt,
		})
	}
	if err := verrs.err(); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid save prompts request", "error", err)
		return 0, err
	}

	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	if err := s.stores.Prompts.SaveAll(ctx, records); err != nil {
		return 0, WrapError(err, "failed to save prompts")
	}
	return len(records), nil
}

// checkSingleLine rejects line breaks, since each prompt is stored as one line of prompts.txt.
func checkSingleLine(verrs *validationErrors, in PromptInput) {
	if hasLineBreak(in.Title) {
		verrs.add("title", "Title must not contain line breaks")
	}
	if lo.SomeBy(in.Categories, hasLineBreak) {
		verrs.add("categories", "Categories must not contain line breaks")
	}
	if hasLineBreak(in.Image) {
		verrs.add("image", "Image must not contain line breaks")
	}
	if hasLineBreak(in.Prompt) {
		verrs.add("prompt", "Prompt must not contain line breaks")
	}
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// normalizeInput trims text fields and lowercases category tags.
func normalizeInput(in PromptInput) PromptInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Prompt = strings.TrimSpace(in.Prompt)
	in.Image = strings.TrimSpace(in.Image)
	in.Categories = lo.Uniq(lo.Compact(lo.Map(in.Categories, func(c string, _ int) string {
		return storage.NormalizeCategory(c)
	})))
	return in
}
