// Package node describes the prompt manager node exposed to the host editor.
// The node takes the prompts selected in the UI and passes them through unchanged.
package node

const (
	// TypeName is the registry key of the node.
	TypeName = "AKASH_PROMPT_MANAGER"
	// DisplayName is shown in the editor's node menu.
	DisplayName = "Prompt Manager"
	// Category is the editor menu path.
	Category = "Akash Nodes/Prompt Manager"

	// InputSelectedPrompts is the single required input.
	InputSelectedPrompts = "selected_prompts"
	// OutputPrompt is the single output.
	OutputPrompt = "prompt"

	typeString = "STRING"
)

// InputSpec describes one node input.
type InputSpec struct {
	Type           string `json:"type"`
	Multiline      bool   `json:"multiline,omitempty"`
	Default        string `json:"default"`
	DynamicPrompts bool   `json:"dynamicPrompts"`
}

// Definition is the node schema registered with the host.
type Definition struct {
	Name        string               `json:"name"`
	DisplayName string               `json:"display_name"`
	Category    string               `json:"category"`
	Required    map[string]InputSpec `json:"required"`
	Hidden      map[string]string    `json:"hidden"`
	ReturnTypes []string             `json:"return_types"`
	ReturnNames []string             `json:"return_names"`
	Function    string               `json:"function"`
	OutputNode  bool                 `json:"output_node"`
}

// PromptManager is the node implementation.
type PromptManager struct{}

// New creates a PromptManager node.
func New() *PromptManager {
	return &PromptManager{}
}

// Definition returns the node schema.
func (n *PromptManager) Definition() Definition {
	return Definition{
		Name:        TypeName,
		DisplayName: DisplayName,
		Category:    Category,
		Required: map[string]InputSpec{
			InputSelectedPrompts: {
				Type:           typeString,
				Multiline:      true,
				Default:        "",
				DynamicPrompts: false,
			},
		},
		Hidden: map[string]string{
			"unique_id": "UNIQUE_ID",
		},
		ReturnTypes: []string{typeString},
		ReturnNames: []string{OutputPrompt},
		Function:    "process_prompts",
		OutputNode:  false,
	}
}

// Process returns selected unchanged.
func (n *PromptManager) Process(selected string) string {
	return selected
}
