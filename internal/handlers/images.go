package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"prompt-manager/internal/contextutil"
	"prompt-manager/internal/service"
)

// ImageHandler handles preview image uploads and downloads.
type ImageHandler struct {
	images         service.ImageService
	maxUploadBytes int64
}

// NewImageHandler creates a new ImageHandler. Uploads larger than maxUploadBytes are rejected.
func NewImageHandler(images service.ImageService, maxUploadBytes int64) *ImageHandler {
	return &ImageHandler{
		images:         images,
		maxUploadBytes: maxUploadBytes,
	}
}

// DeleteImageRequest is the body of DELETE /image/delete.
type DeleteImageRequest struct {
	Filename string `json:"filename"`
}

// UploadImageResponse is returned by POST /upload_image.
type UploadImageResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
}

// OrphansResponse is returned by GET /images/orphans.
type OrphansResponse struct {
	Status  string   `json:"status"`
	Orphans []string `json:"orphans"`
}

// Upload handles POST /upload_image (multipart form with "file" and "index").
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, ctx, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, ctx, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, ctx, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	index := 0
	if raw := strings.TrimSpace(r.FormValue("index")); raw != "" {
		index, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, ctx, http.StatusBadRequest, "Invalid index")
			return
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, ctx, http.StatusInternalServerError, err.Error())
		return
	}

	filename, err := h.images.Upload(ctx, header.Filename, data, index)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, UploadImageResponse{Status: statusSuccess, Filename: filename})
}

// Get handles GET /image/{filename}. Errors are answered with an empty body.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filename := chi.URLParam(r, "filename")

	img, err := h.images.Fetch(ctx, filename)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to serve image", "filename", filename, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}

// Delete handles DELETE /image/delete.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req DeleteImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.images.Delete(ctx, req.Filename); err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, StatusResponse{Status: statusSuccess})
}

// Orphans handles GET /images/orphans.
func (h *ImageHandler) Orphans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orphans, err := h.images.Orphans(ctx)
	if err != nil {
		handleServiceError(w, ctx, err)
		return
	}
	writeJSON(w, ctx, http.StatusOK, OrphansResponse{Status: statusSuccess, Orphans: orphans})
}
