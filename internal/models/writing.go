package models

// WritingPrompt is the persisted form of a writing prompt, keyed by a
// caller-assigned id. Once upserted the record is owned by the database;
// saving the same id again replaces it (last-write-wins).
type WritingPrompt struct {
	ID                string   `json:"id"`
	PromptText        string   `json:"prompt"`
	VisualDescription string   `json:"visual_description"`
	ImagePath         string   `json:"image_path"`
	Tags              []string `json:"tags"`
	SourceFile        string   `json:"source_file"`
}
