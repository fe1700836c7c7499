// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics derives quality and bias indicators from a single
// page snapshot. All scores are lexicon and formula heuristics — no
// model inference — and are documented as approximations. The bias
// scorer sits behind the Scorer interface so a model-based
// implementation can replace it without touching callers.
package metrics

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// Scorer produces bias indicators for a text body.
type Scorer interface {
	Score(text string) types.BiasMetrics
}

// Analyzer computes the per-page quality and bias metrics.
type Analyzer struct {
	cfg    types.MetricsConfig
	scorer Scorer
}

// New returns an Analyzer with the default lexicon scorer.
func New(cfg types.MetricsConfig) *Analyzer {
	return NewWithScorer(cfg, LexiconScorer{Lexicon: DefaultLexicon()})
}

// NewWithScorer returns an Analyzer using a custom bias scorer.
func NewWithScorer(cfg types.MetricsConfig, scorer Scorer) *Analyzer {
	return &Analyzer{cfg: cfg, scorer: scorer}
}

// Analyze computes the enabled metric groups for a page. Disabled
// groups come back zero-valued.
func (a *Analyzer) Analyze(page *types.PageContent) types.PageMetrics {
	var m types.PageMetrics
	if a.cfg.GroupEnabled(types.GroupQuality) {
		m.Quality = Quality(page.TextContent, len(page.Citations))
	}
	if a.cfg.GroupEnabled(types.GroupBias) {
		m.Bias = a.scorer.Score(page.TextContent)
	}
	return m
}

// Quality computes the quality indicators for a text body with the
// given citation count. Zero-word input yields the zero sentinel for
// every score rather than an error.
func Quality(text string, citationCount int) types.QualityMetrics {
	var q types.QualityMetrics
	if text == "" {
		return q
	}

	q.ReadabilityScore = Readability(text)
	if words := len(strings.Fields(text)); words > 0 {
		q.CitationDensity = float64(citationCount) / float64(words) * 1000
	}
	q.AvgSentenceLength = avgSentenceLength(text)
	q.ComplexityScore = Complexity(text)
	return q
}

// Readability returns the Flesch Reading Ease score clamped to
// [0,100]: 206.835 − 1.015×(words/sentences) − 84.6×(syllables/words).
// Sentence segmentation and syllable estimation are rough heuristics;
// 0.0 is the sentinel for unscorable input.
func Readability(text string) float64 {
	sentences := splitSentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0.0
	}

	var syllables int
	for _, w := range words {
		syllables += countSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(len(sentences))) -
		84.6*(float64(syllables)/float64(len(words)))

	if score < 0 {
		return 0.0
	}
	if score > 100 {
		return 100.0
	}
	return score
}

// wordLengthCap and sentenceLengthCap normalize the complexity inputs:
// 10+ character words and 30+ word sentences count as maximally complex.
const (
	wordLengthCap     = 10.0
	sentenceLengthCap = 30.0
)

// Complexity scores text complexity in [0,1] from average word length
// and average sentence length, each normalized against its cap.
func Complexity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0.0
	}

	var totalLen int
	for _, w := range words {
		totalLen += len(w)
	}
	avgWordLen := float64(totalLen) / float64(len(words))

	wordComplexity := min1(avgWordLen / wordLengthCap)
	sentenceComplexity := min1(avgSentenceLength(text) / sentenceLengthCap)
	return (wordComplexity + sentenceComplexity) / 2
}

// LexiconScorer is the default Scorer: counts of lexicon-matched terms
// combined into polarity and subjectivity scores.
type LexiconScorer struct {
	Lexicon Lexicon
}

// Score implements Scorer. All matching is case-insensitive; loaded
// words, pronouns and sentiment terms are matched against
// punctuation-trimmed tokens from the same whitespace tokenizer used
// for word counts, hedge phrases as substrings.
func (s LexiconScorer) Score(text string) types.BiasMetrics {
	var b types.BiasMetrics
	if text == "" {
		return b
	}

	lower := strings.ToLower(text)
	tokens := tokenize(lower)

	counts := map[string]int{}
	for _, tok := range tokens {
		counts[tok]++
	}

	for _, w := range s.Lexicon.Loaded {
		b.LoadedLanguageCount += counts[w]
	}
	for _, p := range s.Lexicon.FirstPerson {
		b.FirstPersonCount += counts[p]
	}
	for _, phrase := range s.Lexicon.Hedges {
		b.HedgeWordsCount += strings.Count(lower, phrase)
	}

	var positive, negative int
	for _, w := range s.Lexicon.Positive {
		positive += counts[w]
	}
	for _, w := range s.Lexicon.Negative {
		negative += counts[w]
	}
	if total := positive + negative; total > 0 {
		b.SentimentPolarity = float64(positive-negative) / float64(total)
	}

	if words := len(strings.Fields(text)); words > 0 {
		indicators := b.LoadedLanguageCount + b.FirstPersonCount + b.HedgeWordsCount
		b.SubjectivityScore = min1(float64(indicators) / float64(words) * 10)
	}

	return b
}

// CompareQuality returns the quality deltas, Grokipedia minus Wikipedia.
func CompareQuality(grok, wiki types.QualityMetrics) map[string]float64 {
	return map[string]float64{
		"readability_diff":      grok.ReadabilityScore - wiki.ReadabilityScore,
		"citation_density_diff": grok.CitationDensity - wiki.CitationDensity,
		"complexity_diff":       grok.ComplexityScore - wiki.ComplexityScore,
		"sentence_length_diff":  grok.AvgSentenceLength - wiki.AvgSentenceLength,
	}
}

// CompareBias returns the bias deltas, Grokipedia minus Wikipedia.
func CompareBias(grok, wiki types.BiasMetrics) map[string]float64 {
	return map[string]float64{
		"sentiment_diff":       grok.SentimentPolarity - wiki.SentimentPolarity,
		"subjectivity_diff":    grok.SubjectivityScore - wiki.SubjectivityScore,
		"loaded_language_diff": float64(grok.LoadedLanguageCount - wiki.LoadedLanguageCount),
		"first_person_diff":    float64(grok.FirstPersonCount - wiki.FirstPersonCount),
		"hedge_words_diff":     float64(grok.HedgeWordsCount - wiki.HedgeWordsCount),
	}
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// splitSentences segments text on terminal punctuation, dropping
// empty fragments.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func avgSentenceLength(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0.0
	}
	var total int
	for _, s := range sentences {
		total += len(strings.Fields(s))
	}
	return float64(total) / float64(len(sentences))
}

// countSyllables estimates syllables from vowel groups with a silent-e
// adjustment; every word counts at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		return 1
	}
	return count
}

// tokenize splits on whitespace and trims surrounding punctuation so
// "brilliant," matches the lexicon entry "brilliant".
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := fields[:0]
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func min1(f float64) float64 {
	if f > 1.0 {
		return 1.0
	}
	return f
}
