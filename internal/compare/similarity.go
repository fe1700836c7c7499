// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// levenshteinLimit bounds the edit-distance input; the quadratic DP is
// too expensive for full article bodies. Policy is truncation, not
// sampling, so the property "distance over long texts equals distance
// over their 10k prefixes" holds.
const levenshteinLimit = 10000

// segmentTextLimit caps the text recorded per diff segment side.
const segmentTextLimit = 500

// TextSimilarity returns the longest-contiguous-matching-subsequence
// ratio of the two texts, case-insensitive, in [0,1]. Two empty texts
// are a perfect match; one empty text matches nothing.
func TextSimilarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	m := difflib.NewMatcher(
		strings.Split(strings.ToLower(a), ""),
		strings.Split(strings.ToLower(b), ""),
	)
	return m.Ratio()
}

// Levenshtein returns the edit distance between the first 10,000
// characters of each text.
func Levenshtein(a, b string) int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(truncateRunes(a, levenshteinLimit), truncateRunes(b, levenshteinLimit), false)
	return dmp.DiffLevenshtein(diffs)
}

// DiffSegments produces the aligned diff between the Grokipedia and
// Wikipedia texts as an ordered sequence of tagged segments. Semantic
// cleanup coalesces trivial character runs so segment boundaries fall
// on meaningful word edges. maxSegments caps the output (0 means the
// default of 100); per-side text is capped at 500 characters.
func DiffSegments(grok, wiki string, maxSegments int) []types.DiffSegment {
	if maxSegments <= 0 {
		maxSegments = 100
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(grok, wiki, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	segments := make([]types.DiffSegment, 0, len(diffs))
	position := 0
	for _, d := range diffs {
		if len(segments) >= maxSegments {
			break
		}

		seg := types.DiffSegment{Position: position}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			seg.Kind = types.SegmentEqual
			seg.GrokipediaText = truncateRunes(d.Text, segmentTextLimit)
			seg.WikipediaText = seg.GrokipediaText
		case diffmatchpatch.DiffDelete:
			// Present in the Grokipedia text only.
			seg.Kind = types.SegmentInsert
			seg.GrokipediaText = truncateRunes(d.Text, segmentTextLimit)
		case diffmatchpatch.DiffInsert:
			// Present in the Wikipedia text only.
			seg.Kind = types.SegmentDelete
			seg.WikipediaText = truncateRunes(d.Text, segmentTextLimit)
		}
		segments = append(segments, seg)
		position += len([]rune(d.Text))
	}
	return segments
}

// SectionOverlap returns the Jaccard similarity of the two section
// title sets, normalized by lowercase and trim. Defined as 0.0 when
// either side has no sections.
func SectionOverlap(a, b map[string]string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	setA := normalizeTitles(a)
	setB := normalizeTitles(b)

	intersection := 0
	for title := range setA {
		if setB[title] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// UniqueSections returns the section titles present in a but not in b,
// sorted, using the same normalization as SectionOverlap for matching
// but reporting the original titles.
func UniqueSections(a, b map[string]string) []string {
	setB := normalizeTitles(b)

	unique := make([]string, 0)
	for title := range a {
		if !setB[normalizeTitle(title)] {
			unique = append(unique, title)
		}
	}
	sort.Strings(unique)
	return unique
}

func normalizeTitles(sections map[string]string) map[string]bool {
	set := make(map[string]bool, len(sections))
	for title := range sections {
		set[normalizeTitle(title)] = true
	}
	return set
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
