package models

import "time"

type ContentType string

const (
	ContentQuantitative ContentType = "quantitative"
	ContentReading      ContentType = "reading"
	ContentVerbal       ContentType = "verbal"
	ContentAnalogy      ContentType = "analogy"
	ContentSynonym      ContentType = "synonym"
	ContentWriting      ContentType = "writing"
)

var ValidContentTypes = map[ContentType]bool{
	ContentQuantitative: true,
	ContentReading:      true,
	ContentVerbal:       true,
	ContentAnalogy:      true,
	ContentSynonym:      true,
	ContentWriting:      true,
}

type Difficulty string

const (
	DifficultyStandard Difficulty = "standard"
	DifficultyAdvanced Difficulty = "advanced"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyStandard: true,
	DifficultyAdvanced: true,
}

// QuestionsPerPassage is the fixed number of sub-questions bundled with every
// generated reading passage. A reading request's count denotes passages, not
// questions.
const QuestionsPerPassage = 4

// ── Request Types ─────────────────────────────────────

type GenerationRequest struct {
	ContentType ContentType `json:"content_type"`
	Difficulty  Difficulty  `json:"difficulty"`
	Topic       string      `json:"topic,omitempty"`
	Count       int         `json:"count"`
	Provider    string      `json:"provider,omitempty"`
}

// ── Generated Content ─────────────────────────────────

type Question struct {
	Category      string            `json:"category"`
	PromptText    string            `json:"prompt_text"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

type Passage struct {
	Text      string     `json:"text"`
	Questions []Question `json:"questions"`
}

type GeneratedWritingPrompt struct {
	PromptText string   `json:"prompt_text"`
	Tags       []string `json:"tags,omitempty"`
}

// ── Response Types ────────────────────────────────────
//
// Count always reflects items actually produced, which may be less than the
// requested count when individual units fail generation or validation.

type QuestionSetResponse struct {
	ContentType ContentType `json:"content_type"`
	Difficulty  Difficulty  `json:"difficulty"`
	Count       int         `json:"count"`
	Questions   []Question  `json:"questions"`
}

type ReadingResponse struct {
	ContentType    ContentType `json:"content_type"`
	Difficulty     Difficulty  `json:"difficulty"`
	Count          int         `json:"count"`
	TotalQuestions int         `json:"total_questions"`
	Passages       []Passage   `json:"passages"`
}

type WritingResponse struct {
	ContentType ContentType              `json:"content_type"`
	Count       int                      `json:"count"`
	Prompts     []GeneratedWritingPrompt `json:"prompts"`
}

type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

// ── Provider Status ───────────────────────────────────

// ProviderStatus is transient and recomputed on each status query; it is
// never persisted.
type ProviderStatus struct {
	Name           string    `json:"name"`
	Available      bool      `json:"available"`
	ResponseTimeMs *int64    `json:"response_time_ms,omitempty"`
	Error          string    `json:"error,omitempty"`
	CheckedAt      time.Time `json:"checked_at"`
}
