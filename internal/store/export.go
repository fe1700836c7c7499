// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// Export is the structured run export: every field of every comparison
// result plus run metadata.
type Export struct {
	GeneratedAt   time.Time                `json:"generated_at"`
	PagesAnalyzed int                      `json:"pages_analyzed"`
	Results       []types.ComparisonResult `json:"results"`
}

// ExportJSON writes the full result set to path. The export is
// lossless: results round-trip through the stored payload untouched.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	results, err := s.List(ctx)
	if err != nil {
		return fmt.Errorf("loading results for export: %w", err)
	}
	return WriteExport(path, results)
}

// WriteExport serializes results to path without touching the store,
// for runs that export directly from memory.
func WriteExport(path string, results []types.ComparisonResult) error {
	if results == nil {
		results = []types.ComparisonResult{}
	}
	export := Export{
		GeneratedAt:   time.Now().UTC(),
		PagesAnalyzed: len(results),
		Results:       results,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
