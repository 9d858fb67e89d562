// promptloader ingests writing-prompt descriptor files and upserts them into
// the writing_prompts table with embeddings.
//
// Usage:
//
//	promptloader [-delay 2s] [-force] <folder-or-file>
//
// Each descriptor is a JSON file shaped like models.WritingPrompt. A missing
// id gets a generated one; a missing prompt text is filled in through the LLM
// orchestrator (writing content type, the visual description as topic) before
// persistence. Per-item failures are logged and skipped; the exit status is
// non-zero only for top-level errors.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ssat-prep/backend/internal/database"
	"github.com/ssat-prep/backend/internal/generator"
	"github.com/ssat-prep/backend/internal/models"
	"github.com/ssat-prep/backend/internal/provider"
	"github.com/ssat-prep/backend/internal/store"
)

func main() {
	delay := flag.Duration("delay", 2*time.Second, "pause between items, to stay under provider rate limits")
	force := flag.Bool("force", false, "re-save prompts whose id already exists")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: promptloader [-delay 2s] [-force] <folder-or-file>")
		os.Exit(2)
	}

	files, err := collectFiles(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read input path: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("No descriptor files found under %s", flag.Arg(0))
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()

	cfg := provider.ConfigFromEnv()
	providers, err := provider.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize provider client: %v", err)
	}
	gen := generator.New(providers)

	embedder := store.NewOpenAIEmbedder(os.Getenv("OPENAI_API_KEY"), os.Getenv("EMBEDDING_MODEL"))
	st := store.New(db, embedder)

	var saved, failed, skipped int
	for i, file := range files {
		log.Printf("[%d/%d] %s", i+1, len(files), filepath.Base(file))

		wp, err := loadDescriptor(file)
		if err != nil {
			log.Printf("WARNING: skipping %s: %v", file, err)
			failed++
			continue
		}

		if !*force {
			exists, err := st.Exists(ctx, wp.ID)
			if err != nil {
				log.Printf("WARNING: existence check for %s failed: %v", wp.ID, err)
				failed++
				continue
			}
			if exists {
				log.Printf("Already stored, skipping: %s", wp.ID)
				skipped++
				continue
			}
		}

		if wp.PromptText == "" {
			if err := fillPrompt(ctx, gen, &wp); err != nil {
				log.Printf("WARNING: prompt generation for %s failed: %v", wp.ID, err)
				failed++
				continue
			}
		}

		if err := st.Save(ctx, wp); err != nil {
			log.Printf("WARNING: save %s failed: %v", wp.ID, err)
			failed++
			continue
		}
		saved++

		if i < len(files)-1 {
			time.Sleep(*delay)
		}
	}

	log.Printf("Done: %d saved, %d failed, %d skipped (of %d files)", saved, failed, skipped, len(files))
}

func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return filepath.Glob(filepath.Join(path, "*.json"))
}

func loadDescriptor(file string) (models.WritingPrompt, error) {
	var wp models.WritingPrompt

	data, err := os.ReadFile(file)
	if err != nil {
		return wp, err
	}
	if err := json.Unmarshal(data, &wp); err != nil {
		return wp, fmt.Errorf("parse descriptor: %w", err)
	}

	if wp.ID == "" {
		wp.ID = uuid.NewString()
	}
	if wp.SourceFile == "" {
		wp.SourceFile = filepath.Base(file)
	}
	return wp, nil
}

// fillPrompt asks the orchestrator for one writing prompt themed on the
// descriptor's visual description.
func fillPrompt(ctx context.Context, gen *generator.Generator, wp *models.WritingPrompt) error {
	resp, err := gen.GenerateWriting(ctx, models.GenerationRequest{
		ContentType: models.ContentWriting,
		Difficulty:  models.DifficultyStandard,
		Topic:       wp.VisualDescription,
		Count:       1,
	})
	if err != nil {
		return err
	}

	wp.PromptText = resp.Prompts[0].PromptText
	if len(wp.Tags) == 0 {
		wp.Tags = resp.Prompts[0].Tags
	}
	return nil
}
