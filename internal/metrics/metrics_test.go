// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/wikicompare/pkg/types"
)

func TestQualityEmptyText(t *testing.T) {
	q := Quality("", 5)
	assert.Equal(t, 0.0, q.ReadabilityScore, "zero sentinel, not an error")
	assert.Equal(t, 0.0, q.CitationDensity)
	assert.Equal(t, 0.0, q.ComplexityScore)
}

func TestCitationDensity(t *testing.T) {
	text := strings.Repeat("word ", 500)
	q := Quality(text, 10)
	assert.InDelta(t, 20.0, q.CitationDensity, 1e-9) // 10 per 500 words = 20 per 1000

	noCitations := Quality(text, 0)
	assert.Equal(t, 0.0, noCitations.CitationDensity)
}

func TestCitationDensityNonNegative(t *testing.T) {
	q := Quality("a few words here.", 3)
	assert.GreaterOrEqual(t, q.CitationDensity, 0.0)
}

func TestReadabilityBounds(t *testing.T) {
	texts := []string{
		"The cat sat. The dog ran. It was fun.",
		"Notwithstanding multifarious considerations, heterogeneous organizational interdependencies predominantly characterize contemporary institutional administration.",
		strings.Repeat("word ", 200) + ".",
	}
	for _, text := range texts {
		score := Readability(text)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
}

func TestReadabilitySimpleBeatsComplex(t *testing.T) {
	simple := Readability("The cat sat. The dog ran. We had fun.")
	dense := Readability("Notwithstanding multifarious considerations and heterogeneous organizational interdependencies, contemporary institutional administration predominantly exemplifies bureaucratic sophistication.")
	assert.Greater(t, simple, dense)
}

func TestReadabilityNoSentences(t *testing.T) {
	assert.Equal(t, 0.0, Readability(""))
}

func TestComplexityBounds(t *testing.T) {
	texts := []string{
		"",
		"a b c.",
		"short words only here now.",
		strings.Repeat("extraordinarily sesquipedalian vocabularies ", 20) + ".",
	}
	for _, text := range texts {
		score := Complexity(text)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestComplexityOrdering(t *testing.T) {
	simple := Complexity("The cat sat. The dog ran.")
	dense := Complexity(strings.Repeat("extraordinarily sesquipedalian vocabularies intercontinental ", 10) + ".")
	assert.Greater(t, dense, simple)
}

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"water", 2},
		{"banana", 3},
		{"the", 1},    // silent-e adjustment still leaves one
		{"rhythm", 1}, // y counts as the only vowel group
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, countSyllables(tt.word))
		})
	}
}

func TestLexiconScorerLoadedWholeWord(t *testing.T) {
	scorer := LexiconScorer{Lexicon: DefaultLexicon()}

	b := scorer.Score("This is obviously a Notorious case, obviously.")
	assert.Equal(t, 3, b.LoadedLanguageCount)

	// Substrings inside larger words must not match.
	none := scorer.Score("The inobviously-named compound was stable.")
	assert.Equal(t, 0, none.LoadedLanguageCount)
}

func TestLexiconScorerFirstPerson(t *testing.T) {
	scorer := LexiconScorer{Lexicon: DefaultLexicon()}
	b := scorer.Score("I think we should trust our instincts, in my view.")
	assert.Equal(t, 4, b.FirstPersonCount) // I, we, our, my
}

func TestLexiconScorerHedges(t *testing.T) {
	scorer := LexiconScorer{Lexicon: DefaultLexicon()}
	b := scorer.Score("Some say it was allegedly planned; critics argue otherwise.")
	assert.Equal(t, 3, b.HedgeWordsCount)
}

func TestSentimentPolarity(t *testing.T) {
	scorer := LexiconScorer{Lexicon: DefaultLexicon()}

	positive := scorer.Score("A great and excellent outcome, genuinely good.")
	assert.Greater(t, positive.SentimentPolarity, 0.0)

	negative := scorer.Score("A bad, harmful and flawed design.")
	assert.Less(t, negative.SentimentPolarity, 0.0)

	neutral := scorer.Score("The table has four legs.")
	assert.Equal(t, 0.0, neutral.SentimentPolarity, "defined as zero with no sentiment terms")

	balanced := scorer.Score("good bad")
	assert.Equal(t, 0.0, balanced.SentimentPolarity)
}

func TestSubjectivityClamped(t *testing.T) {
	scorer := LexiconScorer{Lexicon: DefaultLexicon()}
	// Every word is a subjectivity indicator; the raw ratio would be 10.
	b := scorer.Score("obviously obviously obviously obviously")
	assert.Equal(t, 1.0, b.SubjectivityScore)

	empty := scorer.Score("")
	assert.Equal(t, 0.0, empty.SubjectivityScore)
}

func TestAnalyzeZeroWordPage(t *testing.T) {
	a := New(types.MetricsConfig{})
	page := &types.PageContent{Title: "Empty"}
	page.Finalize()

	m := a.Analyze(page)
	assert.Equal(t, 0.0, m.Quality.ReadabilityScore)
	assert.Equal(t, 0.0, m.Quality.CitationDensity)
	assert.Equal(t, 0.0, m.Bias.SubjectivityScore)
}

func TestAnalyzeGroupToggles(t *testing.T) {
	page := &types.PageContent{TextContent: "Obviously a great page. It reads well."}
	page.Finalize()

	qualityOnly := New(types.MetricsConfig{EnabledGroups: []types.MetricGroup{types.GroupQuality}})
	m := qualityOnly.Analyze(page)
	assert.NotZero(t, m.Quality.ReadabilityScore)
	assert.Zero(t, m.Bias.LoadedLanguageCount, "bias group disabled")

	biasOnly := New(types.MetricsConfig{EnabledGroups: []types.MetricGroup{types.GroupBias}})
	m = biasOnly.Analyze(page)
	assert.Zero(t, m.Quality.ReadabilityScore)
	assert.Equal(t, 1, m.Bias.LoadedLanguageCount)
}

type stubScorer struct{ fixed types.BiasMetrics }

func (s stubScorer) Score(string) types.BiasMetrics { return s.fixed }

func TestAnalyzerScorerIsPluggable(t *testing.T) {
	fixed := types.BiasMetrics{SentimentPolarity: -0.5, LoadedLanguageCount: 42}
	a := NewWithScorer(types.MetricsConfig{}, stubScorer{fixed: fixed})

	page := &types.PageContent{TextContent: "anything"}
	page.Finalize()
	assert.Equal(t, fixed, a.Analyze(page).Bias)
}

func TestCompareQualityDeltas(t *testing.T) {
	grok := types.QualityMetrics{ReadabilityScore: 60, CitationDensity: 8, ComplexityScore: 0.4, AvgSentenceLength: 18}
	wiki := types.QualityMetrics{ReadabilityScore: 50, CitationDensity: 10, ComplexityScore: 0.5, AvgSentenceLength: 20}

	d := CompareQuality(grok, wiki)
	assert.InDelta(t, 10.0, d["readability_diff"], 1e-9)
	assert.InDelta(t, -2.0, d["citation_density_diff"], 1e-9)
}

func TestCompareBiasDeltas(t *testing.T) {
	grok := types.BiasMetrics{LoadedLanguageCount: 5, HedgeWordsCount: 2}
	wiki := types.BiasMetrics{LoadedLanguageCount: 1, HedgeWordsCount: 4}

	d := CompareBias(grok, wiki)
	assert.Equal(t, 4.0, d["loaded_language_diff"])
	assert.Equal(t, -2.0, d["hedge_words_diff"])
}

func TestTokenizeStripsPunctuation(t *testing.T) {
	tokens := tokenize("well, (obviously) it's \"notorious\"!")
	require.Contains(t, tokens, "obviously")
	assert.Contains(t, tokens, "notorious")
}
