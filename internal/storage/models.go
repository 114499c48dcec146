package storage

import "encoding/json"

// PromptRecord is one entry of the prompt list.
// Index is the record's position in the file (1-based) and is reassigned on every save.
type PromptRecord struct {
	Index      int      // Position in prompts.txt, starts at 1
	Title      string   // Display title
	Categories []string // Lowercase category tags, may be empty
	Favorite   bool     // Marked with ★ in the file
	Image      string   // Preview image filename, empty when none
	Prompt     string   // Prompt body text (single line)
}

// promptRecordJSON is the wire shape of a PromptRecord.
type promptRecordJSON struct {
	Index      int      `json:"index"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Favorite   bool     `json:"favorite"`
	Image      *string  `json:"image"`
	Prompt     string   `json:"prompt"`
}

// MarshalJSON encodes an empty image as null and nil categories as an empty array.
func (r PromptRecord) MarshalJSON() ([]byte, error) {
	out := promptRecordJSON{
		Index:      r.Index,
		Title:      r.Title,
		Categories: r.Categories,
		Favorite:   r.Favorite,
		Prompt:     r.Prompt,
	}
	if out.Categories == nil {
		out.Categories = []string{}
	}
	if r.Image != "" {
		image := r.Image
		out.Image = &image
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts null or missing image and categories.
func (r *PromptRecord) UnmarshalJSON(data []byte) error {
	var in promptRecordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*r = PromptRecord{
		Index:      in.Index,
		Title:      in.Title,
		Categories: in.Categories,
		Favorite:   in.Favorite,
		Prompt:     in.Prompt,
	}
	if r.Categories == nil {
		r.Categories = []string{}
	}
	if in.Image != nil {
		r.Image = *in.Image
	}
	return nil
}
