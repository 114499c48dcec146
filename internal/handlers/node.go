package handlers

import (
	"net/http"

	"prompt-manager/internal/node"
)

// NodeHandler exposes the node definition and its passthrough execution.
type NodeHandler struct {
	node *node.PromptManager
}

// NewNodeHandler creates a new NodeHandler.
func NewNodeHandler(n *node.PromptManager) *NodeHandler {
	return &NodeHandler{node: n}
}

// ProcessNodeRequest is the body of POST /node/process.
type ProcessNodeRequest struct {
	SelectedPrompts string `json:"selected_prompts"`
	UniqueID        string `json:"unique_id,omitempty"`
}

// ProcessNodeResponse holds the node output.
type ProcessNodeResponse struct {
	Prompt string `json:"prompt"`
}

// Definition handles GET /node.
func (h *NodeHandler) Definition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r.Context(), http.StatusOK, h.node.Definition())
}

// Process handles POST /node/process.
func (h *NodeHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessNodeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, r.Context(), http.StatusOK, ProcessNodeResponse{Prompt: h.node.Process(req.SelectedPrompts)})
}
