package service

import (
	"context"
	"path/filepath"
	"testing"

	"prompt-manager/internal/storage"
)

// newFileStores returns stores backed by files in a fresh temp directory.
func newFileStores(t *testing.T) (*Stores, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStores(
		storage.NewPromptRepo(filepath.Join(dir, "prompts.txt")),
		storage.NewCategoryRepo(filepath.Join(dir, "categories.json")),
		storage.NewImageRepo(filepath.Join(dir, "preview_images")),
	), dir
}

func titles(records []storage.PromptRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func mustList(t *testing.T, svc PromptService) []storage.PromptRecord {
	t.Helper()
	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	return records
}
