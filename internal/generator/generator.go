package generator

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ssat-prep/backend/internal/models"
	"github.com/ssat-prep/backend/internal/provider"
)

// ErrNoProviderAvailable means no LLM provider has credentials configured.
var ErrNoProviderAvailable = errors.New("no LLM provider configured")

// ErrEmptyResult means every requested unit failed generation or validation.
var ErrEmptyResult = errors.New("no valid items produced")

// ErrUnknownContentType means the request named a content type this
// generator does not produce.
var ErrUnknownContentType = errors.New("unknown content type")

// ProviderClient is the slice of the provider client the generator needs.
type ProviderClient interface {
	Available() []provider.ID
	Call(ctx context.Context, id provider.ID, systemPrompt, userPrompt string) (string, error)
}

// Generator turns typed generation requests into typed responses. It is
// stateless: its only side effects are outbound provider calls and logging.
type Generator struct {
	providers ProviderClient
}

func New(providers ProviderClient) *Generator {
	return &Generator{providers: providers}
}

// Generate runs one typed request end to end and returns a
// *QuestionSetResponse, *ReadingResponse, or *WritingResponse depending on
// the content type. Individual units that fail are dropped with a logged
// reason; only a zero-item result is an error.
func (g *Generator) Generate(ctx context.Context, req models.GenerationRequest) (any, error) {
	if !models.ValidContentTypes[req.ContentType] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, req.ContentType)
	}

	switch req.ContentType {
	case models.ContentReading:
		return g.GenerateReading(ctx, req)
	case models.ContentWriting:
		return g.GenerateWriting(ctx, req)
	default:
		return g.GenerateQuestionSet(ctx, req)
	}
}

// resolveProvider picks the explicitly requested provider when it is
// configured, otherwise the first available one. Selection is deterministic:
// availability is a fixed priority list, not an unordered set.
func (g *Generator) resolveProvider(req models.GenerationRequest) (provider.ID, error) {
	available := g.providers.Available()
	if len(available) == 0 {
		return "", ErrNoProviderAvailable
	}

	if req.Provider != "" {
		requested := provider.ID(req.Provider)
		for _, id := range available {
			if id == requested {
				return requested, nil
			}
		}
		log.Printf("WARNING: requested provider %q not configured, falling back to %s", req.Provider, available[0])
	}

	return available[0], nil
}

func (g *Generator) GenerateQuestionSet(ctx context.Context, req models.GenerationRequest) (*models.QuestionSetResponse, error) {
	id, err := g.resolveProvider(req)
	if err != nil {
		return nil, err
	}

	systemPrompt := SystemPrompt(req.ContentType)
	userPrompt := BuildUserPrompt(req.ContentType, req.Difficulty, req.Topic)

	questions := make([]models.Question, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		raw, err := g.providers.Call(ctx, id, systemPrompt, userPrompt)
		if err != nil {
			log.Printf("WARNING: %s question %d/%d: provider call failed: %v", req.ContentType, i+1, req.Count, err)
			continue
		}

		var q models.Question
		if err := ExtractJSON(raw, &q); err != nil {
			log.Printf("WARNING: %s question %d/%d: %v — skipping", req.ContentType, i+1, req.Count, err)
			continue
		}
		if q.Category == "" {
			q.Category = string(req.ContentType)
		}
		if err := validateQuestion(&q); err != nil {
			log.Printf("WARNING: %s question %d/%d dropped: %v", req.ContentType, i+1, req.Count, err)
			continue
		}

		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%s generation: %w", req.ContentType, ErrEmptyResult)
	}

	return &models.QuestionSetResponse{
		ContentType: req.ContentType,
		Difficulty:  req.Difficulty,
		Count:       len(questions),
		Questions:   questions,
	}, nil
}

// generatedPassage is the wire shape one reading call returns: the passage
// text bundled with its sub-questions.
type generatedPassage struct {
	Passage   string            `json:"passage"`
	Questions []models.Question `json:"questions"`
}

func (g *Generator) GenerateReading(ctx context.Context, req models.GenerationRequest) (*models.ReadingResponse, error) {
	id, err := g.resolveProvider(req)
	if err != nil {
		return nil, err
	}

	systemPrompt := ReadingSystemPrompt()
	userPrompt := BuildUserPrompt(models.ContentReading, req.Difficulty, req.Topic)

	passages := make([]models.Passage, 0, req.Count)
	totalQuestions := 0
	for i := 0; i < req.Count; i++ {
		raw, err := g.providers.Call(ctx, id, systemPrompt, userPrompt)
		if err != nil {
			log.Printf("WARNING: reading passage %d/%d: provider call failed: %v", i+1, req.Count, err)
			continue
		}

		var gp generatedPassage
		if err := ExtractJSON(raw, &gp); err != nil {
			log.Printf("WARNING: reading passage %d/%d: %v — skipping", i+1, req.Count, err)
			continue
		}

		passage := models.Passage{Text: gp.Passage, Questions: gp.Questions}
		for j := range passage.Questions {
			if passage.Questions[j].Category == "" {
				passage.Questions[j].Category = string(models.ContentReading)
			}
		}
		if err := validatePassage(&passage); err != nil {
			log.Printf("WARNING: reading passage %d/%d dropped: %v", i+1, req.Count, err)
			continue
		}

		passages = append(passages, passage)
		totalQuestions += len(passage.Questions)
	}

	if len(passages) == 0 {
		return nil, fmt.Errorf("reading generation: %w", ErrEmptyResult)
	}

	return &models.ReadingResponse{
		ContentType:    models.ContentReading,
		Difficulty:     req.Difficulty,
		Count:          len(passages),
		TotalQuestions: totalQuestions,
		Passages:       passages,
	}, nil
}

func (g *Generator) GenerateWriting(ctx context.Context, req models.GenerationRequest) (*models.WritingResponse, error) {
	id, err := g.resolveProvider(req)
	if err != nil {
		return nil, err
	}

	systemPrompt := WritingSystemPrompt()
	userPrompt := BuildUserPrompt(models.ContentWriting, req.Difficulty, req.Topic)

	prompts := make([]models.GeneratedWritingPrompt, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		raw, err := g.providers.Call(ctx, id, systemPrompt, userPrompt)
		if err != nil {
			log.Printf("WARNING: writing prompt %d/%d: provider call failed: %v", i+1, req.Count, err)
			continue
		}

		var wp models.GeneratedWritingPrompt
		if err := ExtractJSON(raw, &wp); err != nil {
			log.Printf("WARNING: writing prompt %d/%d: %v — skipping", i+1, req.Count, err)
			continue
		}
		if err := validateWritingPrompt(&wp); err != nil {
			log.Printf("WARNING: writing prompt %d/%d dropped: %v", i+1, req.Count, err)
			continue
		}

		prompts = append(prompts, wp)
	}

	if len(prompts) == 0 {
		return nil, fmt.Errorf("writing generation: %w", ErrEmptyResult)
	}

	return &models.WritingResponse{
		ContentType: models.ContentWriting,
		Count:       len(prompts),
		Prompts:     prompts,
	}, nil
}
