// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders human-readable summaries of a run's comparison
// results. Reports are plain text, deterministic for a given result set,
// and written either to an injected io.Writer or to files under the
// configured output directory.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pdiddy/wikicompare/pkg/types"
)

const (
	summaryFile  = "summary_report.txt"
	detailedFile = "detailed_report.txt"

	topListSize = 10
)

// Generator renders summary and detailed reports from comparison
// results. The compare thresholds label the category legend; the
// metric-group toggles decide which report blocks appear.
type Generator struct {
	cfg     types.ReportConfig
	compare types.CompareConfig
	metrics types.MetricsConfig
}

// New returns a report Generator.
func New(cfg types.ReportConfig, compare types.CompareConfig, metrics types.MetricsConfig) *Generator {
	return &Generator{cfg: cfg, compare: compare, metrics: metrics}
}

// WriteAll renders both reports into the configured output directory and
// returns the written file paths.
func (g *Generator) WriteAll(results []types.ComparisonResult) ([]string, error) {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}

	paths := []string{
		filepath.Join(g.cfg.OutputDir, summaryFile),
		filepath.Join(g.cfg.OutputDir, detailedFile),
	}
	writers := []func(io.Writer, []types.ComparisonResult) error{
		g.Summary, g.Detailed,
	}
	for i, path := range paths {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating report file: %w", err)
		}
		err = writers[i](f, results)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", filepath.Base(path), err)
		}
	}
	return paths, nil
}

// Summary writes the aggregate report: overall statistics, the similarity
// histogram, content and structural averages, and the most and least
// similar topics.
func (g *Generator) Summary(w io.Writer, results []types.ComparisonResult) error {
	fmt.Fprintln(w, "GROKIPEDIA VS WIKIPEDIA COMPARISON SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Pages analyzed: %d\n\n", len(results))

	if len(results) == 0 {
		fmt.Fprintln(w, "No results to report.")
		return nil
	}

	stats := computeStats(results)

	fmt.Fprintln(w, "SIMILARITY")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Mean text similarity:   %.4f\n", stats.meanSimilarity)
	fmt.Fprintf(w, "Median text similarity: %.4f\n", stats.medianSimilarity)
	fmt.Fprintf(w, "High   (>= %.2f): %d\n", g.compare.HighThreshold, stats.categories[types.SimilarityHigh])
	fmt.Fprintf(w, "Medium (>= %.2f): %d\n", g.compare.MediumThreshold, stats.categories[types.SimilarityMedium])
	fmt.Fprintf(w, "Low    (<  %.2f): %d\n\n", g.compare.MediumThreshold, stats.categories[types.SimilarityLow])

	fmt.Fprintln(w, "SIMILARITY DISTRIBUTION")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	writeHistogram(w, results)
	fmt.Fprintln(w)

	if g.metrics.GroupEnabled(types.GroupContent) {
		fmt.Fprintln(w, "CONTENT")
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "Mean word count (Grokipedia): %.0f\n", stats.meanWordsGrok)
		fmt.Fprintf(w, "Mean word count (Wikipedia):  %.0f\n", stats.meanWordsWiki)
		fmt.Fprintf(w, "Mean absolute word count diff: %.0f\n", stats.meanAbsWordDiff)
		fmt.Fprintf(w, "Longer article: Grokipedia %d, Wikipedia %d\n",
			stats.longerGrok, stats.longerWiki)
		fmt.Fprintf(w, "Mean section overlap:         %.4f\n\n", stats.meanSectionOverlap)
	}

	if g.metrics.GroupEnabled(types.GroupStructural) {
		fmt.Fprintln(w, "STRUCTURE")
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "More citations: Grokipedia %d, Wikipedia %d\n",
			stats.moreCitedGrok, stats.moreCitedWiki)
		fmt.Fprintf(w, "Mean citation count (Grokipedia): %.1f\n", stats.meanCitesGrok)
		fmt.Fprintf(w, "Mean citation count (Wikipedia):  %.1f\n", stats.meanCitesWiki)
		fmt.Fprintf(w, "Pages with infobox (Grokipedia): %d\n", stats.infoboxGrok)
		fmt.Fprintf(w, "Pages with infobox (Wikipedia):  %d\n\n", stats.infoboxWiki)
	}

	writeTopList(w, "MOST SIMILAR", mostSimilar(results))
	fmt.Fprintln(w)
	writeTopList(w, "LEAST SIMILAR", leastSimilar(results))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "NOTABLE DIFFERENCES")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for _, r := range sortedByTopic(results) {
		if len(r.KeyDifferences) <= 1 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", r.Topic)
		for _, d := range r.KeyDifferences[1:] {
			fmt.Fprintf(w, "  - %s\n", d)
		}
	}
	return nil
}

// Detailed writes the per-topic report: one table row per result plus a
// per-topic breakdown of metrics and key differences.
func (g *Generator) Detailed(w io.Writer, results []types.ComparisonResult) error {
	fmt.Fprintln(w, "GROKIPEDIA VS WIKIPEDIA DETAILED REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Pages analyzed: %d\n\n", len(results))

	if len(results) == 0 {
		fmt.Fprintln(w, "No results to report.")
		return nil
	}

	content := g.metrics.GroupEnabled(types.GroupContent)
	structural := g.metrics.GroupEnabled(types.GroupStructural)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"Topic", "Similarity", "Category"}
	if content {
		header = append(header, "Sections", "Words G/W")
	}
	if structural {
		header = append(header, "Cites G/W")
	}
	t.AppendHeader(header)

	for _, r := range sortedByTopic(results) {
		row := table.Row{
			r.Topic,
			fmt.Sprintf("%.4f", r.TextSimilarity),
			string(r.SimilarityCategory),
		}
		if content {
			row = append(row,
				fmt.Sprintf("%.2f", r.SectionOverlap),
				fmt.Sprintf("%d/%d", r.WordCountGrokipedia, r.WordCountWikipedia))
		}
		if structural {
			row = append(row, fmt.Sprintf("%d/%d", r.CitationCountGrokipedia, r.CitationCountWikipedia))
		}
		t.AppendRow(row)
	}
	t.Render()
	fmt.Fprintln(w)

	for _, r := range sortedByTopic(results) {
		g.writeTopicDetail(w, r)
	}
	return nil
}

func (g *Generator) writeTopicDetail(w io.Writer, r types.ComparisonResult) {
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "TOPIC: %s\n", r.Topic)
	fmt.Fprintf(w, "  Grokipedia: %s\n", r.GrokipediaURL)
	fmt.Fprintf(w, "  Wikipedia:  %s\n", r.WikipediaURL)
	fmt.Fprintf(w, "  Text similarity: %.4f (%s)\n", r.TextSimilarity, r.SimilarityCategory)
	fmt.Fprintf(w, "  Levenshtein distance: %d\n", r.LevenshteinDistance)

	if g.metrics.GroupEnabled(types.GroupContent) {
		fmt.Fprintf(w, "  Section overlap: %.4f\n", r.SectionOverlap)
		if len(r.UniqueToGrokipedia) > 0 {
			fmt.Fprintf(w, "  Sections only in Grokipedia: %s\n", strings.Join(r.UniqueToGrokipedia, ", "))
		}
		if len(r.UniqueToWikipedia) > 0 {
			fmt.Fprintf(w, "  Sections only in Wikipedia: %s\n", strings.Join(r.UniqueToWikipedia, ", "))
		}
		fmt.Fprintf(w, "  Word counts: %d vs %d (diff %+d, %.1f%%)\n",
			r.WordCountGrokipedia, r.WordCountWikipedia, r.WordCountDiff, r.WordCountDiffPct)
	}

	if g.metrics.GroupEnabled(types.GroupStructural) {
		fmt.Fprintf(w, "  Citations: %d vs %d (diff %+d)\n",
			r.CitationCountGrokipedia, r.CitationCountWikipedia, r.CitationDiff)
		fmt.Fprintf(w, "  Infobox: %s vs %s\n",
			yesNo(r.HasInfoboxGrokipedia), yesNo(r.HasInfoboxWikipedia))
		fmt.Fprintf(w, "  External links: %d vs %d\n",
			r.ExternalLinksGrokipedia, r.ExternalLinksWikipedia)
		if !r.RecencyGrokipedia.IsZero() || !r.RecencyWikipedia.IsZero() {
			fmt.Fprintf(w, "  Last modified: %s vs %s\n",
				formatRecency(r.RecencyGrokipedia), formatRecency(r.RecencyWikipedia))
		}
	}

	if g.metrics.GroupEnabled(types.GroupQuality) {
		fmt.Fprintf(w, "  Readability: %.1f vs %.1f\n",
			r.GrokipediaMetrics.Quality.ReadabilityScore, r.WikipediaMetrics.Quality.ReadabilityScore)
		fmt.Fprintf(w, "  Citation density: %.1f vs %.1f per 1000 words%s\n",
			r.GrokipediaMetrics.Quality.CitationDensity, r.WikipediaMetrics.Quality.CitationDensity,
			g.densityTarget())
	}

	if g.metrics.GroupEnabled(types.GroupBias) {
		fmt.Fprintf(w, "  Sentiment: %+.2f vs %+.2f\n",
			r.GrokipediaMetrics.Bias.SentimentPolarity, r.WikipediaMetrics.Bias.SentimentPolarity)
		fmt.Fprintf(w, "  Subjectivity: %.2f vs %.2f\n",
			r.GrokipediaMetrics.Bias.SubjectivityScore, r.WikipediaMetrics.Bias.SubjectivityScore)
	}

	if len(r.KeyDifferences) > 0 {
		fmt.Fprintln(w, "  Key differences:")
		for _, d := range r.KeyDifferences {
			fmt.Fprintf(w, "    - %s\n", d)
		}
	}
	writeDiffExcerpt(w, r.DiffSegments)
	fmt.Fprintln(w)
}

// diffExcerptLimit caps the changed segments shown per topic.
const diffExcerptLimit = 3

// writeDiffExcerpt prints the first changed diff segments, truncated
// for the report.
func writeDiffExcerpt(w io.Writer, segments []types.DiffSegment) {
	shown := 0
	for _, seg := range segments {
		if seg.Kind == types.SegmentEqual {
			continue
		}
		if shown == 0 {
			fmt.Fprintln(w, "  Diff excerpt:")
		}
		switch seg.Kind {
		case types.SegmentInsert:
			fmt.Fprintf(w, "    + %s\n", excerpt(seg.GrokipediaText))
		case types.SegmentDelete:
			fmt.Fprintf(w, "    - %s\n", excerpt(seg.WikipediaText))
		}
		shown++
		if shown == diffExcerptLimit {
			return
		}
	}
}

const excerptLen = 120

func excerpt(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) > excerptLen {
		return string(runes[:excerptLen]) + "..."
	}
	return s
}

type aggregateStats struct {
	meanSimilarity     float64
	medianSimilarity   float64
	categories         map[types.SimilarityCategory]int
	meanWordsGrok      float64
	meanWordsWiki      float64
	meanAbsWordDiff    float64
	longerGrok         int
	longerWiki         int
	moreCitedGrok      int
	moreCitedWiki      int
	meanSectionOverlap float64
	meanCitesGrok      float64
	meanCitesWiki      float64
	infoboxGrok        int
	infoboxWiki        int
}

func computeStats(results []types.ComparisonResult) aggregateStats {
	stats := aggregateStats{categories: map[types.SimilarityCategory]int{}}
	n := float64(len(results))

	similarities := make([]float64, 0, len(results))
	for _, r := range results {
		stats.meanSimilarity += r.TextSimilarity / n
		stats.meanWordsGrok += float64(r.WordCountGrokipedia) / n
		stats.meanWordsWiki += float64(r.WordCountWikipedia) / n
		stats.meanSectionOverlap += r.SectionOverlap / n
		stats.meanCitesGrok += float64(r.CitationCountGrokipedia) / n
		stats.meanCitesWiki += float64(r.CitationCountWikipedia) / n
		stats.categories[r.SimilarityCategory]++
		if diff := r.WordCountDiff; diff > 0 {
			stats.longerGrok++
			stats.meanAbsWordDiff += float64(diff) / n
		} else if diff < 0 {
			stats.longerWiki++
			stats.meanAbsWordDiff += float64(-diff) / n
		}
		if r.CitationDiff > 0 {
			stats.moreCitedGrok++
		} else if r.CitationDiff < 0 {
			stats.moreCitedWiki++
		}
		if r.HasInfoboxGrokipedia {
			stats.infoboxGrok++
		}
		if r.HasInfoboxWikipedia {
			stats.infoboxWiki++
		}
		similarities = append(similarities, r.TextSimilarity)
	}

	sort.Float64s(similarities)
	mid := len(similarities) / 2
	if len(similarities)%2 == 1 {
		stats.medianSimilarity = similarities[mid]
	} else {
		stats.medianSimilarity = (similarities[mid-1] + similarities[mid]) / 2
	}
	return stats
}

// writeHistogram prints the similarity distribution in ten 0.1-wide bins.
// A score of exactly 1.0 lands in the top bin.
func writeHistogram(w io.Writer, results []types.ComparisonResult) {
	var bins [10]int
	for _, r := range results {
		i := int(r.TextSimilarity * 10)
		if i > 9 {
			i = 9
		}
		if i < 0 {
			i = 0
		}
		bins[i]++
	}
	for i, count := range bins {
		lo, hi := float64(i)/10, float64(i+1)/10
		fmt.Fprintf(w, "  %.1f-%.1f: %-4d %s\n", lo, hi, count, strings.Repeat("#", count))
	}
}

func writeTopList(w io.Writer, title string, results []types.ComparisonResult) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i, r := range results {
		fmt.Fprintf(w, "%2d. %-40s %.4f\n", i+1, r.Topic, r.TextSimilarity)
	}
}

// mostSimilar returns up to ten results by descending similarity, topic
// as tiebreaker so output is stable.
func mostSimilar(results []types.ComparisonResult) []types.ComparisonResult {
	sorted := append([]types.ComparisonResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TextSimilarity != sorted[j].TextSimilarity {
			return sorted[i].TextSimilarity > sorted[j].TextSimilarity
		}
		return sorted[i].Topic < sorted[j].Topic
	})
	return capList(sorted)
}

// leastSimilar returns up to ten results by ascending similarity.
func leastSimilar(results []types.ComparisonResult) []types.ComparisonResult {
	sorted := append([]types.ComparisonResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TextSimilarity != sorted[j].TextSimilarity {
			return sorted[i].TextSimilarity < sorted[j].TextSimilarity
		}
		return sorted[i].Topic < sorted[j].Topic
	})
	return capList(sorted)
}

func capList(results []types.ComparisonResult) []types.ComparisonResult {
	if len(results) > topListSize {
		return results[:topListSize]
	}
	return results
}

func sortedByTopic(results []types.ComparisonResult) []types.ComparisonResult {
	sorted := append([]types.ComparisonResult(nil), results...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Topic < sorted[j].Topic })
	return sorted
}

// densityTarget renders the configured citations-per-1000-words
// reference, empty when unset.
func (g *Generator) densityTarget() string {
	if g.metrics.CitationDensityTarget <= 0 {
		return ""
	}
	return fmt.Sprintf(" (target %.1f)", g.metrics.CitationDensityTarget)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatRecency(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}
