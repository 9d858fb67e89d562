package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "ssat_user")
	password := getEnv("DB_PASSWORD", "ssat_password")
	dbname := getEnv("DB_NAME", "ssat_content")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE EXTENSION IF NOT EXISTS vector;

	CREATE TABLE IF NOT EXISTS writing_prompts (
		id                 VARCHAR(64) PRIMARY KEY,
		source_file        TEXT NOT NULL,
		prompt             TEXT NOT NULL,
		tags               TEXT[] NOT NULL DEFAULT '{}',
		visual_description TEXT NOT NULL,
		image_path         TEXT NOT NULL,
		embedding          vector(1536),
		created_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at         TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_writing_prompts_source ON writing_prompts(source_file);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// HNSW needs pgvector >= 0.5; older installs fall back to a sequential
	// scan, which is fine at this table size.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_writing_prompts_embedding
		ON writing_prompts USING hnsw (embedding vector_cosine_ops)`); err != nil {
		log.Printf("WARNING: skipping hnsw index: %v", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
