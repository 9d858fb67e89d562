package generator

import (
	"strings"
	"testing"

	"github.com/ssat-prep/backend/internal/models"
)

func validQuestion() models.Question {
	return models.Question{
		Category:   "synonym",
		PromptText: "ABUNDANT",
		Options: map[string]string{
			"A": "scarce",
			"B": "plentiful",
			"C": "noisy",
			"D": "careful",
		},
		CorrectAnswer: "B",
		Explanation:   "Abundant means existing in large quantities; plentiful is the closest synonym.",
	}
}

func TestValidateQuestion_Valid(t *testing.T) {
	q := validQuestion()
	if err := validateQuestion(&q); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateQuestion_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Question)
		wantErr string
	}{
		{
			name:    "correct answer not an option key",
			mutate:  func(q *models.Question) { q.CorrectAnswer = "E" },
			wantErr: "not an option key",
		},
		{
			name:    "missing option",
			mutate:  func(q *models.Question) { delete(q.Options, "C") },
			wantErr: `missing option "C"`,
		},
		{
			name:    "empty option text",
			mutate:  func(q *models.Question) { q.Options["D"] = "" },
			wantErr: "empty text",
		},
		{
			name: "too many options",
			mutate: func(q *models.Question) {
				q.Options["E"] = "extra"
			},
			wantErr: "expected 4 options",
		},
		{
			name:    "empty prompt",
			mutate:  func(q *models.Question) { q.PromptText = "" },
			wantErr: "empty prompt_text",
		},
		{
			name:    "empty explanation",
			mutate:  func(q *models.Question) { q.Explanation = "" },
			wantErr: "empty explanation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)

			err := validateQuestion(&q)
			if err == nil {
				t.Fatal("expected validation error")
			}

			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(ve.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, ve)
			}
		})
	}
}

func TestValidatePassage_Valid(t *testing.T) {
	p := models.Passage{
		Text:      strings.Repeat("The river carried silt down from the mountains every spring. ", 20),
		Questions: []models.Question{validQuestion(), validQuestion()},
	}
	if err := validatePassage(&p); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidatePassage_NoQuestions(t *testing.T) {
	p := models.Passage{Text: "Some passage text."}
	err := validatePassage(&p)
	if err == nil {
		t.Fatal("expected error for passage without questions")
	}
	if !strings.Contains(err.Error(), "no questions") {
		t.Errorf("expected 'no questions' error, got: %v", err)
	}
}

func TestValidatePassage_BadSubQuestion(t *testing.T) {
	bad := validQuestion()
	bad.CorrectAnswer = "Z"

	p := models.Passage{
		Text:      "Some passage text.",
		Questions: []models.Question{validQuestion(), bad},
	}

	err := validatePassage(&p)
	if err == nil {
		t.Fatal("expected error for invalid sub-question")
	}
	if !strings.Contains(err.Error(), "question 2") {
		t.Errorf("expected error naming question 2, got: %v", err)
	}
}

func TestValidateWritingPrompt(t *testing.T) {
	ok := models.GeneratedWritingPrompt{PromptText: "Write a story about a locked door."}
	if err := validateWritingPrompt(&ok); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	empty := models.GeneratedWritingPrompt{PromptText: "   "}
	if err := validateWritingPrompt(&empty); err == nil {
		t.Fatal("expected error for blank prompt_text")
	}
}
