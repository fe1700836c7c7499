// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SegmentKind tags a diff segment.
type SegmentKind string

const (
	SegmentEqual  SegmentKind = "equal"
	SegmentInsert SegmentKind = "insert" // present only in the Grokipedia text
	SegmentDelete SegmentKind = "delete" // present only in the Wikipedia text
)

// DiffSegment is one span of the aligned diff between the two texts.
type DiffSegment struct {
	// Kind is equal, insert, or delete.
	Kind SegmentKind `json:"kind" yaml:"kind"`

	// GrokipediaText is the span's text on the Grokipedia side, capped
	// at 500 characters. Empty for delete segments.
	GrokipediaText string `json:"grokipedia_text" yaml:"grokipedia_text"`

	// WikipediaText is the span's text on the Wikipedia side, capped
	// at 500 characters. Empty for insert segments.
	WikipediaText string `json:"wikipedia_text" yaml:"wikipedia_text"`

	// Position is the character offset of the segment in the diff stream.
	Position int `json:"position" yaml:"position"`
}

// SimilarityCategory buckets a text-similarity score.
type SimilarityCategory string

const (
	SimilarityHigh   SimilarityCategory = "high"
	SimilarityMedium SimilarityCategory = "medium"
	SimilarityLow    SimilarityCategory = "low"
)

// QualityMetrics holds per-page quality indicators.
type QualityMetrics struct {
	// ReadabilityScore is the Flesch Reading Ease score clamped to
	// [0,100]; 0 when the page has no words or sentences.
	ReadabilityScore float64 `json:"readability_score" yaml:"readability_score"`

	// CitationDensity is citations per 1000 words; 0 on empty pages.
	CitationDensity float64 `json:"citation_density" yaml:"citation_density"`

	// AvgSentenceLength is the mean sentence length in words.
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// ComplexityScore combines word and sentence length into [0,1].
	ComplexityScore float64 `json:"complexity_score" yaml:"complexity_score"`
}

// BiasMetrics holds per-page editorial-bias indicators. All counts are
// lexicon heuristics, not model output.
type BiasMetrics struct {
	// SentimentPolarity ranges -1 (negative) to 1 (positive); 0 when
	// no sentiment-bearing terms occur.
	SentimentPolarity float64 `json:"sentiment_polarity" yaml:"sentiment_polarity"`

	// SubjectivityScore ranges 0 (objective) to 1 (subjective).
	SubjectivityScore float64 `json:"subjectivity_score" yaml:"subjectivity_score"`

	LoadedLanguageCount int `json:"loaded_language_count" yaml:"loaded_language_count"`
	FirstPersonCount    int `json:"first_person_count" yaml:"first_person_count"`
	HedgeWordsCount     int `json:"hedge_words_count" yaml:"hedge_words_count"`
}

// PageMetrics pairs the quality and bias indicators for one side.
type PageMetrics struct {
	Quality QualityMetrics `json:"quality" yaml:"quality"`
	Bias    BiasMetrics    `json:"bias" yaml:"bias"`
}

// ComparisonResult holds everything derived from comparing one topic's
// Grokipedia and Wikipedia pages. Built once per topic per run and
// never mutated afterwards.
type ComparisonResult struct {
	Topic         string `json:"topic" yaml:"topic"`
	GrokipediaURL string `json:"grokipedia_url" yaml:"grokipedia_url"`
	WikipediaURL  string `json:"wikipedia_url" yaml:"wikipedia_url"`

	// Text similarity metrics.
	TextSimilarity      float64       `json:"text_similarity" yaml:"text_similarity"`
	LevenshteinDistance int           `json:"levenshtein_distance" yaml:"levenshtein_distance"`
	DiffSegments        []DiffSegment `json:"diff_segments" yaml:"diff_segments"`

	// Content metrics.
	WordCountGrokipedia int      `json:"word_count_grokipedia" yaml:"word_count_grokipedia"`
	WordCountWikipedia  int      `json:"word_count_wikipedia" yaml:"word_count_wikipedia"`
	WordCountDiff       int      `json:"word_count_diff" yaml:"word_count_diff"`
	WordCountDiffPct    float64  `json:"word_count_diff_pct" yaml:"word_count_diff_pct"`
	SectionOverlap      float64  `json:"section_overlap" yaml:"section_overlap"`
	UniqueToGrokipedia  []string `json:"unique_to_grokipedia" yaml:"unique_to_grokipedia"`
	UniqueToWikipedia   []string `json:"unique_to_wikipedia" yaml:"unique_to_wikipedia"`

	// Structural metrics. Signed diffs are Grokipedia minus Wikipedia.
	CitationCountGrokipedia int  `json:"citation_count_grokipedia" yaml:"citation_count_grokipedia"`
	CitationCountWikipedia  int  `json:"citation_count_wikipedia" yaml:"citation_count_wikipedia"`
	CitationDiff            int  `json:"citation_diff" yaml:"citation_diff"`
	HasInfoboxGrokipedia    bool `json:"has_infobox_grokipedia" yaml:"has_infobox_grokipedia"`
	HasInfoboxWikipedia     bool `json:"has_infobox_wikipedia" yaml:"has_infobox_wikipedia"`

	ExternalLinksGrokipedia int `json:"external_links_grokipedia" yaml:"external_links_grokipedia"`
	ExternalLinksWikipedia  int `json:"external_links_wikipedia" yaml:"external_links_wikipedia"`
	ExternalLinksDiff       int `json:"external_links_diff" yaml:"external_links_diff"`

	// Temporal metrics; zero when a side does not expose an edit date.
	RecencyGrokipedia time.Time `json:"recency_grokipedia,omitempty" yaml:"recency_grokipedia,omitempty"`
	RecencyWikipedia  time.Time `json:"recency_wikipedia,omitempty" yaml:"recency_wikipedia,omitempty"`

	// Language detected per side, empty when detection was inconclusive.
	LanguageGrokipedia string `json:"language_grokipedia,omitempty" yaml:"language_grokipedia,omitempty"`
	LanguageWikipedia  string `json:"language_wikipedia,omitempty" yaml:"language_wikipedia,omitempty"`

	// Summary.
	SimilarityCategory SimilarityCategory `json:"similarity_category" yaml:"similarity_category"`
	KeyDifferences     []string           `json:"key_differences" yaml:"key_differences"`

	// Per-side quality and bias metrics, keyed by source name.
	GrokipediaMetrics PageMetrics `json:"grokipedia_metrics" yaml:"grokipedia_metrics"`
	WikipediaMetrics  PageMetrics `json:"wikipedia_metrics" yaml:"wikipedia_metrics"`

	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}
