package service

import (
	"sync"

	"prompt-manager/internal/storage"
)

// Stores bundles the backing stores shared by all services.
// Read-modify-write cycles on the prompt and category files run under mu,
// so concurrent requests in one process do not lose each other's updates.
type Stores struct {
	Prompts    storage.PromptStore
	Categories storage.CategoryStore
	Images     storage.ImageStore

	mu sync.Mutex
}

// NewStores creates a Stores value from the given store implementations.
func NewStores(prompts storage.PromptStore, categories storage.CategoryStore, images storage.ImageStore) *Stores {
	return &Stores{
		Prompts:    prompts,
		Categories: categories,
		Images:     images,
	}
}
