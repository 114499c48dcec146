package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"prompt-manager/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	dataDir    string
	previewDir string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(dataDir, previewDir string) *HealthHandler {
	return &HealthHandler{
		dataDir:    dataDir,
		previewDir: previewDir,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
// Returns 200 OK if healthy, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	var issues []string

	if h.checkDir(ctx, logger, h.dataDir) {
		checks["data_dir"] = "ok"
	} else {
		checks["data_dir"] = "error"
		issues = append(issues, "data_dir_unavailable")
	}

	if h.checkDir(ctx, logger, h.previewDir) {
		checks["preview_dir"] = "ok"
	} else {
		checks["preview_dir"] = "error"
		issues = append(issues, "preview_dir_unavailable")
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}

// checkDir reports whether dir exists and is a directory.
func (h *HealthHandler) checkDir(ctx context.Context, logger *slog.Logger, dir string) bool {
	info, err := os.Stat(dir)
	if err != nil {
		logger.WarnContext(ctx, "health check failed", "dir", dir, "error", err)
		return false
	}
	if !info.IsDir() {
		logger.WarnContext(ctx, "health check failed", "dir", dir, "error", fmt.Errorf("not a directory"))
		return false
	}
	return true
}
