// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compare derives a similarity verdict from a pair of page
// snapshots: sequence-match ratio, bounded edit distance, semantic diff
// segments, structural deltas, and a categorized summary. Compare is a
// pure function of its inputs and thresholds.
package compare

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// Thresholds for the key-difference summary, matching the report's
// notion of a notable gap.
const (
	notableWordDiffPct = 25.0
	notableCitationGap = 5
	maxUniqueListed    = 3
)

// Compare scores the Grokipedia page against the Wikipedia page and
// returns the immutable comparison result. Missing sections, citations
// or infoboxes on either side degrade to empty containers.
func Compare(grok, wiki *types.PageContent, cfg types.CompareConfig) types.ComparisonResult {
	result := types.ComparisonResult{
		Topic:         grok.Title,
		GrokipediaURL: grok.URL,
		WikipediaURL:  wiki.URL,
		Timestamp:     time.Now().UTC(),
	}

	result.TextSimilarity = TextSimilarity(grok.TextContent, wiki.TextContent)
	result.LevenshteinDistance = Levenshtein(grok.TextContent, wiki.TextContent)
	result.DiffSegments = DiffSegments(grok.TextContent, wiki.TextContent, cfg.MaxDiffSegments)

	result.WordCountGrokipedia = grok.WordCount
	result.WordCountWikipedia = wiki.WordCount
	result.WordCountDiff = grok.WordCount - wiki.WordCount
	if wiki.WordCount > 0 {
		result.WordCountDiffPct = float64(result.WordCountDiff) / float64(wiki.WordCount) * 100
	}

	result.SectionOverlap = SectionOverlap(grok.Sections, wiki.Sections)
	result.UniqueToGrokipedia = UniqueSections(grok.Sections, wiki.Sections)
	result.UniqueToWikipedia = UniqueSections(wiki.Sections, grok.Sections)

	result.CitationCountGrokipedia = len(grok.Citations)
	result.CitationCountWikipedia = len(wiki.Citations)
	result.CitationDiff = result.CitationCountGrokipedia - result.CitationCountWikipedia

	result.HasInfoboxGrokipedia = grok.HasInfobox()
	result.HasInfoboxWikipedia = wiki.HasInfobox()

	result.ExternalLinksGrokipedia = len(grok.ExternalLinks)
	result.ExternalLinksWikipedia = len(wiki.ExternalLinks)
	result.ExternalLinksDiff = result.ExternalLinksGrokipedia - result.ExternalLinksWikipedia

	result.RecencyGrokipedia = grok.LastModified
	result.RecencyWikipedia = wiki.LastModified
	result.LanguageGrokipedia = grok.Language
	result.LanguageWikipedia = wiki.Language

	result.SimilarityCategory = Categorize(result.TextSimilarity, cfg)
	result.KeyDifferences = keyDifferences(result)

	return result
}

// Categorize buckets a similarity score using the configured
// thresholds: high at or above HighThreshold, medium at or above
// MediumThreshold, low otherwise.
func Categorize(similarity float64, cfg types.CompareConfig) types.SimilarityCategory {
	switch {
	case similarity >= cfg.HighThreshold:
		return types.SimilarityHigh
	case similarity >= cfg.MediumThreshold:
		return types.SimilarityMedium
	default:
		return types.SimilarityLow
	}
}

// keyDifferences renders the notable findings as human-readable lines,
// headline first.
func keyDifferences(r types.ComparisonResult) []string {
	diffs := []string{
		fmt.Sprintf("Text similarity: %.2f%% (%s)", r.TextSimilarity*100, r.SimilarityCategory),
	}

	if pct := r.WordCountDiffPct; pct > notableWordDiffPct || pct < -notableWordDiffPct {
		if r.WordCountDiff > 0 {
			diffs = append(diffs, fmt.Sprintf(
				"Grokipedia version is %.1f%% longer (%d vs %d words)",
				abs(pct), r.WordCountGrokipedia, r.WordCountWikipedia))
		} else {
			diffs = append(diffs, fmt.Sprintf(
				"Wikipedia version is %.1f%% longer (%d vs %d words)",
				abs(pct), r.WordCountWikipedia, r.WordCountGrokipedia))
		}
	}

	if gap := r.CitationDiff; gap > notableCitationGap || gap < -notableCitationGap {
		if gap > 0 {
			diffs = append(diffs, fmt.Sprintf("Grokipedia has %d more citations (%d vs %d)",
				gap, r.CitationCountGrokipedia, r.CitationCountWikipedia))
		} else {
			diffs = append(diffs, fmt.Sprintf("Wikipedia has %d more citations (%d vs %d)",
				-gap, r.CitationCountWikipedia, r.CitationCountGrokipedia))
		}
	}

	if len(r.UniqueToGrokipedia) > 0 {
		diffs = append(diffs, "Grokipedia has unique sections: "+joinCapped(r.UniqueToGrokipedia))
	}
	if len(r.UniqueToWikipedia) > 0 {
		diffs = append(diffs, "Wikipedia has unique sections: "+joinCapped(r.UniqueToWikipedia))
	}

	if r.HasInfoboxGrokipedia != r.HasInfoboxWikipedia {
		if r.HasInfoboxGrokipedia {
			diffs = append(diffs, "Grokipedia has an infobox, Wikipedia does not")
		} else {
			diffs = append(diffs, "Wikipedia has an infobox, Grokipedia does not")
		}
	}

	if r.LanguageGrokipedia != "" && r.LanguageWikipedia != "" &&
		r.LanguageGrokipedia != r.LanguageWikipedia {
		diffs = append(diffs, fmt.Sprintf("Detected languages differ: %s vs %s",
			r.LanguageGrokipedia, r.LanguageWikipedia))
	}

	return diffs
}

func joinCapped(titles []string) string {
	if len(titles) > maxUniqueListed {
		titles = titles[:maxUniqueListed]
	}
	return strings.Join(titles, ", ")
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
