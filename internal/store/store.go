package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/ssat-prep/backend/internal/models"
)

// Store upserts writing prompts with embeddings into Postgres.
type Store struct {
	db       *sql.DB
	embedder Embedder
}

func New(db *sql.DB, embedder Embedder) *Store {
	return &Store{db: db, embedder: embedder}
}

// upsertPromptSQL replaces every non-key column on conflict, so a re-save of
// the same id is a full overwrite, never a partial merge.
const upsertPromptSQL = `INSERT INTO writing_prompts (id, source_file, prompt, tags, visual_description, image_path, embedding)
	 VALUES ($1, $2, $3, $4, $5, $6, $7)
	 ON CONFLICT (id) DO UPDATE SET
	   source_file        = EXCLUDED.source_file,
	   prompt             = EXCLUDED.prompt,
	   tags               = EXCLUDED.tags,
	   visual_description = EXCLUDED.visual_description,
	   image_path         = EXCLUDED.image_path,
	   embedding          = EXCLUDED.embedding,
	   updated_at         = NOW()`

// Save computes an embedding for the prompt text and upserts the record.
// Writes are last-write-wins on id: saving the same id again replaces the
// prior row, and saving identical content twice is a no-op in effect.
func (s *Store) Save(ctx context.Context, wp models.WritingPrompt) error {
	if err := validatePrompt(wp); err != nil {
		return err
	}

	embedding, err := s.embedder.Embed(ctx, embedText(wp))
	if err != nil {
		return fmt.Errorf("embed prompt %s: %w", wp.ID, err)
	}

	_, err = s.db.ExecContext(ctx, upsertPromptSQL,
		wp.ID, wp.SourceFile, wp.PromptText, pq.Array(wp.Tags),
		wp.VisualDescription, wp.ImagePath, pgvector.NewVector(embedding),
	)
	if err != nil {
		return fmt.Errorf("upsert prompt %s: %w", wp.ID, err)
	}
	return nil
}

// Exists reports whether a prompt with the given id is already stored.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM writing_prompts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check prompt %s: %w", id, err)
	}
	return exists, nil
}

// embedText is the content the embedding represents: the prompt itself plus
// the visual description of its paired image.
func embedText(wp models.WritingPrompt) string {
	return wp.PromptText + "\n" + wp.VisualDescription
}

// All persisted fields must be non-empty; a half-filled record is useless for
// retrieval.
func validatePrompt(wp models.WritingPrompt) error {
	var missing []string
	if wp.ID == "" {
		missing = append(missing, "id")
	}
	if wp.PromptText == "" {
		missing = append(missing, "prompt")
	}
	if wp.VisualDescription == "" {
		missing = append(missing, "visual_description")
	}
	if wp.ImagePath == "" {
		missing = append(missing, "image_path")
	}
	if len(wp.Tags) == 0 {
		missing = append(missing, "tags")
	}
	if wp.SourceFile == "" {
		missing = append(missing, "source_file")
	}
	if len(missing) > 0 {
		return fmt.Errorf("prompt %s missing fields: %s", wp.ID, strings.Join(missing, ", "))
	}
	return nil
}

// Saver is the single-item save contract SaveBatch runs against.
type Saver interface {
	Save(ctx context.Context, wp models.WritingPrompt) error
}

// BatchResult tallies one batch save.
type BatchResult struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// SaveBatch attempts each item independently in sequence. Failures are
// tallied and logged, never rolled back; retrying failed ids is the caller's
// decision.
func SaveBatch(ctx context.Context, s Saver, items []models.WritingPrompt) BatchResult {
	result := BatchResult{Total: len(items)}
	for _, wp := range items {
		if err := s.Save(ctx, wp); err != nil {
			log.Printf("WARNING: save prompt %s failed: %v", wp.ID, err)
			result.Failed++
			continue
		}
		result.Successful++
	}
	return result
}
