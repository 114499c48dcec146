package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_image_store.go -package=mocks prompt-manager/internal/storage ImageStore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"prompt-manager/internal/contextutil"
)

// AllowedImageExtensions lists the preview formats accepted on upload.
var AllowedImageExtensions = []string{"jpg", "jpeg", "png", "webp"}

var imageContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

const defaultImageContentType = "image/jpeg"

// ImageStore defines the interface for preview image persistence.
type ImageStore interface {
	// Save writes data as prompt_{index}.{ext} and returns the filename.
	Save(ctx context.Context, data []byte, index int, ext string) (string, error)
	// Fetch returns the image bytes and content type. Returns ErrNotFound if missing.
	Fetch(ctx context.Context, filename string) ([]byte, string, error)
	// Delete removes an image. Missing files are ignored.
	Delete(ctx context.Context, filename string) error
	// List returns the names of all stored images, sorted.
	List(ctx context.Context) ([]string, error)
}

// ImageRepo stores preview images as plain files in one directory.
// It implements the ImageStore interface.
type ImageRepo struct {
	dir string
}

// NewImageRepo creates a new ImageRepo rooted at dir.
func NewImageRepo(dir string) *ImageRepo {
	return &ImageRepo{dir: dir}
}

// Dir returns the image directory.
func (r *ImageRepo) Dir() string {
	return r.dir
}

// ImageFilename returns the deterministic filename for a prompt preview.
func ImageFilename(index int, ext string) string {
	return fmt.Sprintf("prompt_%d.%s", index, strings.ToLower(ext))
}

// ImageContentType maps a filename extension to its MIME type.
func ImageContentType(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ct, ok := imageContentTypes[ext]; ok {
		return ct
	}
	return defaultImageContentType
}

// Save writes the image, overwriting any previous upload for the same index and extension.
func (r *ImageRepo) Save(ctx context.Context, data []byte, index int, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if !lo.Contains(AllowedImageExtensions, ext) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileType, ext)
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	filename := ImageFilename(index, ext)
	if err := os.WriteFile(filepath.Join(r.dir, filename), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", filename, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "saved preview image", "filename", filename, "bytes", len(data))
	return filename, nil
}

// Fetch reads an image by filename.
func (r *ImageRepo) Fetch(ctx context.Context, filename string) ([]byte, string, error) {
	path, err := r.resolve(filename)
	if err != nil {
		return nil, "", ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to read image %s: %w", filename, err)
	}
	return data, ImageContentType(filename), nil
}

// Delete removes an image if it exists.
func (r *ImageRepo) Delete(ctx context.Context, filename string) error {
	path, err := r.resolve(filename)
	if err != nil {
		// Nothing outside the directory can exist as an image.
		return nil
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete image %s: %w", filename, err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "deleted preview image", "filename", filename)
	return nil
}

// List returns the regular files in the image directory.
func (r *ImageRepo) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// resolve maps a bare filename to a path inside the image directory.
// The name is used as given; no trimming or cleaning is applied.
func (r *ImageRepo) resolve(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." {
		return "", errors.New("invalid filename")
	}
	if strings.ContainsAny(filename, `/\`) || filepath.Base(filename) != filename {
		return "", errors.New("filename must not contain path separators")
	}
	return filepath.Join(r.dir, filename), nil
}
