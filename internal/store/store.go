// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists a run's comparison results in SQLite and
// produces the lossless structured export. The scalar columns carry
// everything the report queries sort or aggregate on; the payload
// column keeps the full result so the export loses nothing.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// Store manages the results SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the results database at cfg.Path, creating
// the schema when missing.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating results directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			topic TEXT PRIMARY KEY,
			text_similarity REAL NOT NULL,
			similarity_category TEXT NOT NULL,
			section_overlap REAL NOT NULL,
			word_count_diff INTEGER NOT NULL,
			citation_diff INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			payload TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_similarity ON results(text_similarity)`,
		`CREATE INDEX IF NOT EXISTS idx_results_category ON results(similarity_category)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save upserts one comparison result. Re-running a topic replaces its row.
func (s *Store) Save(ctx context.Context, result types.ComparisonResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result for %q: %w", result.Topic, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (topic, text_similarity, similarity_category,
			section_overlap, word_count_diff, citation_diff, created_at, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(topic) DO UPDATE SET
			text_similarity = excluded.text_similarity,
			similarity_category = excluded.similarity_category,
			section_overlap = excluded.section_overlap,
			word_count_diff = excluded.word_count_diff,
			citation_diff = excluded.citation_diff,
			created_at = excluded.created_at,
			payload = excluded.payload`,
		result.Topic, result.TextSimilarity, string(result.SimilarityCategory),
		result.SectionOverlap, result.WordCountDiff, result.CitationDiff,
		result.Timestamp.Format(time.RFC3339), string(payload))
	if err != nil {
		return fmt.Errorf("saving result for %q: %w", result.Topic, err)
	}
	return nil
}

// SaveAll persists a batch of results.
func (s *Store) SaveAll(ctx context.Context, results []types.ComparisonResult) error {
	for _, r := range results {
		if err := s.Save(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// List returns all stored results ordered by descending similarity.
func (s *Store) List(ctx context.Context) ([]types.ComparisonResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM results ORDER BY text_similarity DESC, topic ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []types.ComparisonResult
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		var r types.ComparisonResult
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("decoding stored result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Summary holds the aggregate statistics kept in the database.
type Summary struct {
	Total          int
	MeanSimilarity float64
	CategoryCounts map[types.SimilarityCategory]int
}

// Summarize computes the aggregate view over all stored results.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	sum := Summary{CategoryCounts: map[types.SimilarityCategory]int{}}

	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(text_similarity), 0) FROM results`)
	if err := row.Scan(&sum.Total, &sum.MeanSimilarity); err != nil {
		return Summary{}, fmt.Errorf("summarizing results: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT similarity_category, COUNT(*) FROM results GROUP BY similarity_category`)
	if err != nil {
		return Summary{}, fmt.Errorf("counting categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return Summary{}, fmt.Errorf("scanning category row: %w", err)
		}
		sum.CategoryCounts[types.SimilarityCategory(category)] = count
	}
	return sum, rows.Err()
}
