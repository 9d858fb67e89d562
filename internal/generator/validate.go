package generator

import (
	"fmt"
	"strings"

	"github.com/ssat-prep/backend/internal/models"
)

// ValidationError reports why a generated item was rejected.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

var optionKeys = []string{"A", "B", "C", "D"}

func validateQuestion(q *models.Question) error {
	var errs []string

	if q.PromptText == "" {
		errs = append(errs, "empty prompt_text")
	}
	if q.Explanation == "" {
		errs = append(errs, "empty explanation")
	}

	if len(q.Options) != len(optionKeys) {
		errs = append(errs, fmt.Sprintf("expected %d options, got %d", len(optionKeys), len(q.Options)))
	}
	for _, key := range optionKeys {
		if text, ok := q.Options[key]; !ok {
			errs = append(errs, fmt.Sprintf("missing option %q", key))
		} else if text == "" {
			errs = append(errs, fmt.Sprintf("option %q has empty text", key))
		}
	}

	if _, ok := q.Options[q.CorrectAnswer]; !ok {
		errs = append(errs, fmt.Sprintf("correct_answer %q is not an option key", q.CorrectAnswer))
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func validatePassage(p *models.Passage) error {
	var errs []string

	if strings.TrimSpace(p.Text) == "" {
		errs = append(errs, "empty passage text")
	}
	if len(p.Questions) == 0 {
		errs = append(errs, "passage has no questions")
	}

	for i := range p.Questions {
		if err := validateQuestion(&p.Questions[i]); err != nil {
			errs = append(errs, fmt.Sprintf("question %d: %v", i+1, err))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func validateWritingPrompt(w *models.GeneratedWritingPrompt) error {
	if strings.TrimSpace(w.PromptText) == "" {
		return &ValidationError{Errors: []string{"empty prompt_text"}}
	}
	return nil
}
