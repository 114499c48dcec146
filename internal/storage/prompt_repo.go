package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_prompt_store.go -package=mocks prompt-manager/internal/storage PromptStore

import (
	"context"
	"fmt"
	"os"
	"strings"

	"prompt-manager/internal/contextutil"
)

// PromptStore defines the interface for prompt list persistence.
type PromptStore interface {
	// LoadAll reads every well-formed record in file order.
	// The file is seeded with default prompts when it does not exist.
	LoadAll(ctx context.Context) ([]PromptRecord, error)
	// SaveAll re-indexes records 1..N in slice order and replaces the file.
	SaveAll(ctx context.Context, records []PromptRecord) error
}

// PromptRepo stores prompts in a pipe-delimited text file, one record per line.
// It implements the PromptStore interface.
type PromptRepo struct {
	path string
}

// NewPromptRepo creates a new PromptRepo backed by the file at path.
func NewPromptRepo(path string) *PromptRepo {
	return &PromptRepo{path: path}
}

// Path returns the backing file path.
func (r *PromptRepo) Path() string {
	return r.path
}

// LoadAll reads and decodes all prompts. Malformed lines are skipped with a warning.
func (r *PromptRepo) LoadAll(ctx context.Context) ([]PromptRecord, error) {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := fileExists(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat prompts file: %w", err)
	}
	if !exists {
		if err := r.SaveAll(ctx, DefaultPrompts()); err != nil {
			return nil, fmt.Errorf("failed to seed prompts file: %w", err)
		}
		logger.InfoContext(ctx, "created default prompts file", "path", r.path)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	records := []PromptRecord{}
	skipped := 0
	// Lines are split in memory so a single huge line cannot fail the whole load.
	for i, line := range strings.Split(string(data), "\n") {
		record, ok := DecodeLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				skipped++
				logger.WarnContext(ctx, "skipping malformed prompt line", "path", r.path, "line", i+1)
			}
			continue
		}
		records = append(records, record)
	}

	if skipped > 0 {
		logger.WarnContext(ctx, "prompts loaded with skipped lines", "loaded", len(records), "skipped", skipped)
	}
	return records, nil
}

// SaveAll assigns indices 1..N in order and overwrites the file.
// The Index field of the passed records is updated in place.
func (r *PromptRepo) SaveAll(ctx context.Context, records []PromptRecord) error {
	lines := make([]string, len(records))
	for i := range records {
		records[i].Index = i + 1
		lines[i] = EncodeLine(records[i])
	}

	if err := writeFileReplace(r.path, []byte(strings.Join(lines, "\n"))); err != nil {
		return fmt.Errorf("failed to save prompts: %w", err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "saved prompts", "count", len(records))
	return nil
}

// DefaultPrompts returns the records written to a fresh prompts file.
func DefaultPrompts() []PromptRecord {
	return []PromptRecord{
		{
			Index:      1,
			Title:      "Confident Stand",
			Categories: []string{"poses"},
			Favorite:   true,
			Prompt:     "1girl, full body, white background, standing pose, hand on hip, confident smirk, long hair flowing, lingerie, high heels, seductive lighting, masterpiece, best quality",
		},
		{
			Index:      2,
			Title:      "Gentle Kneel",
			Categories: []string{"poses", "emotions"},
			Favorite:   false,
			Prompt:     "1girl, white background, full body, kneeling pose, head tilted, emotional eyes, gentle smile, silk nightwear, soft lighting, seductive vibe, best quality",
		},
		{
			Index:      3,
			Title:      "Sultry Gaze",
			Categories: []string{"portraits", "emotions"},
			Favorite:   true,
			Prompt:     "close-up, 1girl, half-lidded eyes, pout, white background, soft lighting, seductive, detailed face, masterpiece",
		},
	}
}
