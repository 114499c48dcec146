package handlers

import (
	"net/http"

	"prompt-manager/internal/service"
)

// CategoryHandler handles HTTP requests for the category vocabulary.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// CategoryRequest is the body of the add and delete category endpoints.
type CategoryRequest struct {
	Category string `json:"category"`
}

// CategoriesResponse is returned after a category change.
type CategoriesResponse struct {
	Status     string   `json:"status"`
	Categories []string `json:"categories"`
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	categories, err := h.categories.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, categories)
}

// Add handles POST /categories/add.
func (h *CategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	categories, err := h.categories.Add(ctx, req.Category)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, CategoriesResponse{Status: statusSuccess, Categories: categories})
}

// Delete handles DELETE /categories/delete.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	categories, err := h.categories.Remove(ctx, req.Category)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, CategoriesResponse{Status: statusSuccess, Categories: categories})
}
