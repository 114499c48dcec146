package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_image_service.go -package=mocks prompt-manager/internal/service ImageService

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"

	"prompt-manager/internal/storage"
)

// Image is a fetched preview image.
type Image struct {
	Data        []byte
	ContentType string
}

// ImageService manages preview images.
type ImageService interface {
	// Upload stores data for the prompt at index. The extension is taken from filename.
	Upload(ctx context.Context, filename string, data []byte, index int) (string, error)
	// Fetch returns a stored image or ErrNotFound.
	Fetch(ctx context.Context, filename string) (Image, error)
	// Delete removes a stored image. Missing files are not an error.
	Delete(ctx context.Context, filename string) error
	// Orphans lists stored images that no prompt references.
	Orphans(ctx context.Context) ([]string, error)
}

// imageService implements ImageService.
type imageService struct {
	stores *Stores
}

// NewImageService creates a new ImageService.
func NewImageService(stores *Stores) ImageService {
	return &imageService{stores: stores}
}

// FileExtension returns the lowercased text after the last dot of filename.
// A name without a dot yields the whole name.
func FileExtension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return strings.ToLower(filename[i+1:])
	}
	return strings.ToLower(filename)
}

func (s *imageService) Upload(ctx context.Context, filename string, data []byte, index int) (string, error) {
	saved, err := s.stores.Images.Save(ctx, data, index, FileExtension(filename))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileType) {
			return "", &ValidationError{Field: "file", Message: "Invalid file type"}
		}
		return "", WrapError(err, "failed to save image")
	}
	return saved, nil
}

func (s *imageService) Fetch(ctx context.Context, filename string) (Image, error) {
	data, contentType, err := s.stores.Images.Fetch(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Image{}, ErrNotFound
		}
		return Image{}, WrapError(err, "failed to read image")
	}
	return Image{Data: data, ContentType: contentType}, nil
}

func (s *imageService) Delete(ctx context.Context, filename string) error {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return &ValidationError{Field: "filename", Message: "Filename required"}
	}
	if err := s.stores.Images.Delete(ctx, filename); err != nil {
		return WrapError(err, "failed to delete image")
	}
	return nil
}

// Orphans reports files left behind when deletions renumber prompts.
// It never removes anything.
func (s *imageService) Orphans(ctx context.Context) ([]string, error) {
	s.stores.mu.Lock()
	defer s.stores.mu.Unlock()

	files, err := s.stores.Images.List(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list images")
	}
	records, err := s.stores.Prompts.LoadAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to load prompts")
	}

	referenced := lo.FilterMap(records, func(r storage.PromptRecord, _ int) (string, bool) {
		return r.Image, r.Image != ""
	})
	orphans, _ := lo.Difference(files, referenced)
	if orphans == nil {
		orphans = []string{}
	}
	return orphans, nil
}
