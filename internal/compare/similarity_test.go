// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wikicompare/pkg/types"
)

func TestTextSimilarityIdentical(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. " + strings.Repeat("More text here. ", 20)
	assert.Equal(t, 1.0, TextSimilarity(text, text))
}

func TestTextSimilarityEmpty(t *testing.T) {
	assert.Equal(t, 1.0, TextSimilarity("", ""), "two empty texts are a perfect match")
	assert.Equal(t, 0.0, TextSimilarity("", "nonempty"))
	assert.Equal(t, 0.0, TextSimilarity("nonempty", ""))
}

func TestTextSimilarityDisjointAlphabets(t *testing.T) {
	assert.Equal(t, 0.0, TextSimilarity("aaaa", "bbbb"))
}

func TestTextSimilarityCaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, TextSimilarity("The Cat Sat", "the cat sat"))
}

func TestTextSimilarityNearMatch(t *testing.T) {
	a := "The quick brown fox jumps over the lazy dog"
	b := "The quick brown fox jumps over the lazy cat"
	sim := TextSimilarity(a, b)
	assert.Greater(t, sim, 0.8)
	assert.Less(t, sim, 1.0)
}

func TestTextSimilaritySymmetricRange(t *testing.T) {
	a := "alpha beta gamma delta"
	b := "alpha gamma epsilon"
	ab := TextSimilarity(a, b)
	ba := TextSimilarity(b, a)
	assert.InDelta(t, ab, ba, 0.05)
	assert.GreaterOrEqual(t, ab, 0.0)
	assert.LessOrEqual(t, ab, 1.0)
}

func TestLevenshteinBasics(t *testing.T) {
	assert.Equal(t, 0, Levenshtein("same text", "same text"))
	assert.Equal(t, 3, Levenshtein("kitten", "sitting"))
	assert.Equal(t, 4, Levenshtein("abcd", ""))
}

func TestLevenshteinTruncation(t *testing.T) {
	prefix := strings.Repeat("a", 15000)
	a := prefix + strings.Repeat("x", 5000)
	b := prefix + strings.Repeat("y", 5000)

	// The texts differ only after character 15000, beyond the 10k
	// truncation point, so the distance equals that of the prefixes.
	assert.Equal(t, Levenshtein(prefix[:10000], prefix[:10000]), Levenshtein(a, b))
	assert.Equal(t, 0, Levenshtein(a, b))
}

func TestDiffSegmentsEqualTexts(t *testing.T) {
	segments := DiffSegments("identical body", "identical body", 0)
	require.Len(t, segments, 1)
	assert.Equal(t, types.SegmentEqual, segments[0].Kind)
	assert.Equal(t, segments[0].GrokipediaText, segments[0].WikipediaText)
}

func TestDiffSegmentsTagging(t *testing.T) {
	grok := "The project was founded in 2015 and grew quickly."
	wiki := "The project was founded in 2015 and was later dissolved."

	segments := DiffSegments(grok, wiki, 0)
	require.NotEmpty(t, segments)

	var haveInsert, haveDelete bool
	position := 0
	for _, seg := range segments {
		assert.GreaterOrEqual(t, seg.Position, position)
		position = seg.Position
		switch seg.Kind {
		case types.SegmentInsert:
			haveInsert = true
			assert.NotEmpty(t, seg.GrokipediaText)
			assert.Empty(t, seg.WikipediaText)
		case types.SegmentDelete:
			haveDelete = true
			assert.NotEmpty(t, seg.WikipediaText)
			assert.Empty(t, seg.GrokipediaText)
		}
	}
	assert.True(t, haveInsert, "grokipedia-only text should produce an insert segment")
	assert.True(t, haveDelete, "wikipedia-only text should produce a delete segment")
}

func TestDiffSegmentsCap(t *testing.T) {
	var a, b strings.Builder
	for i := 0; i < 300; i++ {
		a.WriteString("common ")
		if i%2 == 0 {
			a.WriteString("left ")
			b.WriteString("right ")
		}
		b.WriteString("common ")
	}

	segments := DiffSegments(a.String(), b.String(), 10)
	assert.LessOrEqual(t, len(segments), 10)
}

func TestDiffSegmentsTextLimit(t *testing.T) {
	long := strings.Repeat("z", 2000)
	segments := DiffSegments(long, "", 0)
	require.NotEmpty(t, segments)
	assert.LessOrEqual(t, len(segments[0].GrokipediaText), segmentTextLimit)
}

func TestSectionOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b map[string]string
		want float64
	}{
		{"both empty", map[string]string{}, map[string]string{}, 0.0},
		{"one empty", map[string]string{"A": "x"}, map[string]string{}, 0.0},
		{"identical", map[string]string{"A": "x"}, map[string]string{"A": "y"}, 1.0},
		{"disjoint", map[string]string{"A": "x"}, map[string]string{"B": "y"}, 0.0},
		{"half", map[string]string{"A": "", "B": ""}, map[string]string{"B": "", "C": ""}, 1.0 / 3.0},
		{"case-insensitive titles", map[string]string{"History": ""}, map[string]string{" history ": ""}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SectionOverlap(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSectionOverlapSymmetric(t *testing.T) {
	a := map[string]string{"A": "", "B": "", "C": ""}
	b := map[string]string{"B": "", "D": ""}
	assert.Equal(t, SectionOverlap(a, b), SectionOverlap(b, a))
}

func TestUniqueSections(t *testing.T) {
	a := map[string]string{"History": "", "Economy": "", "Culture": ""}
	b := map[string]string{"History": ""}
	assert.Equal(t, []string{"Culture", "Economy"}, UniqueSections(a, b))
	assert.Empty(t, UniqueSections(b, a))
}
