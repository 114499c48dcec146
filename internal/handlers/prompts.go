package handlers

import (
	"net/http"

	"prompt-manager/internal/service"
	"prompt-manager/internal/storage"
)

// PromptHandler handles HTTP requests for the prompt list.
type PromptHandler struct {
	prompts service.PromptService
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(prompts service.PromptService) *PromptHandler {
	return &PromptHandler{prompts: prompts}
}

// PromptFields are the editable prompt fields shared by add and update requests.
type PromptFields struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Favorite   bool     `json:"favorite"`
	Image      *string  `json:"image"`
	Prompt     string   `json:"prompt"`
}

func (f PromptFields) input() service.PromptInput {
	in := service.PromptInput{
		Title:      f.Title,
		Categories: f.Categories,
		Favorite:   f.Favorite,
		Prompt:     f.Prompt,
	}
	if f.Image != nil {
		in.Image = *f.Image
	}
	return in
}

// UpdatePromptRequest is the body of POST /update.
type UpdatePromptRequest struct {
	Index *int `json:"index"`
	PromptFields
}

// DeletePromptRequest is the body of DELETE /delete.
type DeletePromptRequest struct {
	Index *int `json:"index"`
}

// SavePromptsRequest is the body of POST /save.
type SavePromptsRequest struct {
	Prompts []storage.PromptRecord `json:"prompts"`
}

// AddPromptResponse is returned by POST /add.
type AddPromptResponse struct {
	Status string `json:"status"`
	Index  int    `json:"index"`
}

// DeletePromptResponse is returned by DELETE /delete.
type DeletePromptResponse struct {
	Status  string `json:"status"`
	Deleted string `json:"deleted"`
}

// SavePromptsResponse is returned by POST /save.
type SavePromptsResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// indexOrMissing treats an absent index as -1 so it fails the range check.
func indexOrMissing(index *int) int {
	if index == nil {
		return -1
	}
	return *index
}

// List handles GET /prompts.
func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records, err := h.prompts.List(ctx)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, records)
}

// Add handles POST /add.
func (h *PromptHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req PromptFields
	if !decodeJSON(w, r, &req) {
		return
	}

	index, err := h.prompts.Add(ctx, req.input())
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, AddPromptResponse{Status: statusSuccess, Index: index})
}

// Update handles POST /update.
func (h *PromptHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdatePromptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.prompts.Update(ctx, indexOrMissing(req.Index), req.input()); err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, StatusResponse{Status: statusSuccess})
}

// Delete handles DELETE /delete.
func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req DeletePromptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	deleted, err := h.prompts.Delete(ctx, indexOrMissing(req.Index))
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, DeletePromptResponse{Status: statusSuccess, Deleted: deleted.Title})
}

// Save handles POST /save, replacing the whole list.
func (h *PromptHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SavePromptsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	count, err := h.prompts.SaveAll(ctx, req.Prompts)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, SavePromptsResponse{Status: statusSuccess, Count: count})
}
