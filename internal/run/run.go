// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package run orchestrates a comparison run: topic selection, paired
// fetches, comparison, per-page metrics, persistence, and reports. A
// topic that fails on either side is skipped with a recorded reason;
// the run fails only when nothing could be compared at all.
package run

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/wikicompare/internal/compare"
	"github.com/pdiddy/wikicompare/internal/metrics"
	"github.com/pdiddy/wikicompare/internal/report"
	"github.com/pdiddy/wikicompare/internal/sample"
	"github.com/pdiddy/wikicompare/internal/scrape"
	"github.com/pdiddy/wikicompare/internal/store"
	"github.com/pdiddy/wikicompare/pkg/types"
)

// Options adjusts one run beyond the pipeline configuration.
type Options struct {
	// Topics, when non-empty, is the explicit topic list; sampling is
	// bypassed.
	Topics []string

	// SampleSize overrides the configured sample size when positive.
	SampleSize int

	// ExportPath overrides the configured destination of the structured
	// JSON export. Every completed run writes the export.
	ExportPath string

	// SkipReports suppresses the text reports.
	SkipReports bool

	// SkipStore suppresses SQLite persistence.
	SkipStore bool

	// Grokipedia and Wikipedia override the page sources; nil selects
	// the real sites.
	Grokipedia scrape.Source
	Wikipedia  scrape.Source
}

// Skip records one topic that produced no comparison.
type Skip struct {
	Topic  string `json:"topic"`
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// Summary is the outcome of one run.
type Summary struct {
	TopicsSelected int
	Compared       int
	Skips          []Skip
	Results        []types.ComparisonResult
	ReportPaths    []string
}

// Run executes the full pipeline and writes progress lines to w.
func Run(ctx context.Context, cfg types.PipelineConfig, opts Options, w io.Writer) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	topics, err := selectTopics(cfg, opts)
	if err != nil {
		return nil, err
	}

	grok, wiki := opts.Grokipedia, opts.Wikipedia
	if grok == nil || wiki == nil {
		fetcher := scrape.NewFetcher(cfg.Scrape)
		if grok == nil {
			grok = scrape.NewGrokipedia(fetcher)
		}
		if wiki == nil {
			wiki = scrape.NewWikipedia(fetcher)
		}
	}

	analyzer := metrics.New(cfg.Metrics)
	summary := &Summary{TopicsSelected: len(topics)}

	fmt.Fprintf(w, "Comparing %d topics\n", len(topics))
	for i, topic := range topics {
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(topics), topic.Title)

		result, skip := compareTopic(ctx, topic.Title, grok, wiki, analyzer, cfg)
		if skip != nil {
			summary.Skips = append(summary.Skips, *skip)
			fmt.Fprintf(w, "  skipped: %s (%s)\n", skip.Reason, skip.Source)
			continue
		}
		summary.Results = append(summary.Results, *result)
		fmt.Fprintf(w, "  similarity %.4f (%s)\n", result.TextSimilarity, result.SimilarityCategory)
	}
	summary.Compared = len(summary.Results)

	if summary.Compared == 0 && len(topics) > 0 {
		return summary, fmt.Errorf("no topics could be compared: %d skipped", len(summary.Skips))
	}

	if err := persist(ctx, cfg, opts, summary, w); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "Done: %d compared, %d skipped\n", summary.Compared, len(summary.Skips))
	return summary, nil
}

// compareTopic fetches both sides of one topic and builds its result.
// Either side failing yields a Skip instead.
func compareTopic(ctx context.Context, topic string, grok, wiki scrape.Source,
	analyzer *metrics.Analyzer, cfg types.PipelineConfig) (*types.ComparisonResult, *Skip) {

	grokPage, err := grok.FetchAndParse(ctx, topic)
	if err != nil {
		return nil, &Skip{Topic: topic, Source: grok.Name(), Reason: err.Error()}
	}
	wikiPage, err := wiki.FetchAndParse(ctx, topic)
	if err != nil {
		return nil, &Skip{Topic: topic, Source: wiki.Name(), Reason: err.Error()}
	}

	result := compare.Compare(grokPage, wikiPage, cfg.Compare)
	result.Topic = topic
	result.GrokipediaMetrics = analyzer.Analyze(grokPage)
	result.WikipediaMetrics = analyzer.Analyze(wikiPage)
	return &result, nil
}

func selectTopics(cfg types.PipelineConfig, opts Options) ([]sample.Topic, error) {
	if len(opts.Topics) > 0 {
		return sample.Literal(opts.Topics), nil
	}
	topics, err := sample.New(cfg.Sampling).Sample(opts.SampleSize)
	if err != nil {
		return nil, fmt.Errorf("selecting topics: %w", err)
	}
	return topics, nil
}

func persist(ctx context.Context, cfg types.PipelineConfig, opts Options,
	summary *Summary, w io.Writer) error {

	if !opts.SkipStore && cfg.Store.Path != "" {
		st, err := store.NewStore(cfg.Store)
		if err != nil {
			return fmt.Errorf("opening results store: %w", err)
		}
		defer st.Close()
		if err := st.SaveAll(ctx, summary.Results); err != nil {
			return fmt.Errorf("saving results: %w", err)
		}
		fmt.Fprintf(w, "Saved %d results to %s\n", summary.Compared, cfg.Store.Path)
	}

	exportPath := opts.ExportPath
	if exportPath == "" {
		exportPath = cfg.Store.ExportPath
	}
	if exportPath != "" {
		if err := store.WriteExport(exportPath, summary.Results); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Fprintf(w, "Exported results to %s\n", exportPath)
	}

	if !opts.SkipReports {
		paths, err := report.New(cfg.Report, cfg.Compare, cfg.Metrics).WriteAll(summary.Results)
		if err != nil {
			return fmt.Errorf("writing reports: %w", err)
		}
		summary.ReportPaths = paths
		for _, p := range paths {
			fmt.Fprintf(w, "Wrote %s\n", p)
		}
	}
	return nil
}
