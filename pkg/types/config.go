// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"math"
	"time"

	"go.yaml.in/yaml/v3"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "wikicompare/0.1 (research project)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScrapeConfig holds settings for the fetch collaborators.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// RateLimitDelay is the minimum delay between consecutive requests
	// to a source (default 2s).
	RateLimitDelay time.Duration `json:"rate_limit_delay" yaml:"rate_limit_delay"`

	// MaxRetries is the number of retry attempts on transient network
	// failure (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// CacheDir, when set, stores fetched HTML so repeated runs re-parse
	// from disk instead of refetching.
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`

	// DetectLanguage enables language detection on extracted text.
	DetectLanguage bool `json:"detect_language" yaml:"detect_language"`
}

// scrapeConfigYAML mirrors ScrapeConfig with Go duration strings so a
// config file can say "30s" instead of nanoseconds. Pointer fields keep
// defaults intact when a key is absent.
type scrapeConfigYAML struct {
	Timeout        *string `yaml:"timeout"`
	UserAgent      *string `yaml:"user_agent"`
	RateLimitDelay *string `yaml:"rate_limit_delay"`
	MaxRetries     *int    `yaml:"max_retries"`
	CacheDir       *string `yaml:"cache_dir"`
	DetectLanguage *bool   `yaml:"detect_language"`
}

// UnmarshalYAML overlays present keys onto the existing values.
func (c *ScrapeConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw scrapeConfigYAML
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Timeout != nil {
		d, err := time.ParseDuration(*raw.Timeout)
		if err != nil {
			return fmt.Errorf("parsing timeout: %w", err)
		}
		c.Timeout = d
	}
	if raw.RateLimitDelay != nil {
		d, err := time.ParseDuration(*raw.RateLimitDelay)
		if err != nil {
			return fmt.Errorf("parsing rate_limit_delay: %w", err)
		}
		c.RateLimitDelay = d
	}
	if raw.UserAgent != nil {
		c.UserAgent = *raw.UserAgent
	}
	if raw.MaxRetries != nil {
		c.MaxRetries = *raw.MaxRetries
	}
	if raw.CacheDir != nil {
		c.CacheDir = *raw.CacheDir
	}
	if raw.DetectLanguage != nil {
		c.DetectLanguage = *raw.DetectLanguage
	}
	return nil
}

// CompareConfig holds the comparison engine's thresholds.
type CompareConfig struct {
	// HighThreshold is the minimum similarity for the "high" category
	// (default 0.85).
	HighThreshold float64 `json:"high_threshold" yaml:"high_threshold"`

	// MediumThreshold is the minimum similarity for the "medium"
	// category (default 0.60).
	MediumThreshold float64 `json:"medium_threshold" yaml:"medium_threshold"`

	// MaxDiffSegments caps the recorded diff segments per comparison
	// (default 100).
	MaxDiffSegments int `json:"max_diff_segments" yaml:"max_diff_segments"`
}

// MetricGroup names a toggleable group of analysis metrics.
type MetricGroup string

const (
	GroupContent    MetricGroup = "content"
	GroupStructural MetricGroup = "structural"
	GroupQuality    MetricGroup = "quality"
	GroupBias       MetricGroup = "bias"
)

// MetricsConfig holds settings for the metrics analyzer.
type MetricsConfig struct {
	// EnabledGroups lists the metric groups to compute. Empty enables all.
	EnabledGroups []MetricGroup `json:"enabled_groups" yaml:"enabled_groups"`

	// CitationDensityTarget is the citations-per-1000-words reference
	// value reported alongside measured densities.
	CitationDensityTarget float64 `json:"citation_density_target" yaml:"citation_density_target"`
}

// GroupEnabled reports whether the named metric group is active.
func (c MetricsConfig) GroupEnabled(g MetricGroup) bool {
	if len(c.EnabledGroups) == 0 {
		return true
	}
	for _, e := range c.EnabledGroups {
		if e == g {
			return true
		}
	}
	return false
}

// SamplingCategory is one stratum of the topic sample.
type SamplingCategory struct {
	// Name labels the category (e.g. "science", "politics").
	Name string `json:"name" yaml:"name"`

	// Weight is the category's share of the total sample, in [0,1].
	Weight float64 `json:"weight" yaml:"weight"`

	// Topics is the pool of candidate article titles.
	Topics []string `json:"topics" yaml:"topics"`
}

// SamplingConfig holds the stratified sampling settings.
type SamplingConfig struct {
	// TotalSampleSize is the default number of topics per run.
	TotalSampleSize int `json:"total_sample_size" yaml:"total_sample_size"`

	// RandomSeed makes sampling reproducible (default 42).
	RandomSeed int64 `json:"random_seed" yaml:"random_seed"`

	// Categories lists the sampling strata.
	Categories []SamplingCategory `json:"categories" yaml:"categories"`
}

// ReportConfig holds the report generator's settings.
type ReportConfig struct {
	// OutputDir is the directory for text reports (default "data/reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// StoreConfig holds the results store settings.
type StoreConfig struct {
	// Path is the SQLite database file (default "data/processed/results.db").
	Path string `json:"path" yaml:"path"`

	// ExportPath is where every completed run writes its structured
	// JSON export (default "data/processed/comparison_results.json").
	ExportPath string `json:"export_path" yaml:"export_path"`
}

// PipelineConfig groups all stage configurations for a run.
type PipelineConfig struct {
	Scrape   ScrapeConfig   `json:"scrape" yaml:"scrape"`
	Compare  CompareConfig  `json:"compare" yaml:"compare"`
	Metrics  MetricsConfig  `json:"metrics" yaml:"metrics"`
	Sampling SamplingConfig `json:"sampling" yaml:"sampling"`
	Report   ReportConfig   `json:"report" yaml:"report"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}

const weightTolerance = 0.001

// Validate checks the configuration invariants that must hold before
// any fetch starts. Violations are fatal for the run.
func (c PipelineConfig) Validate() error {
	if c.Compare.MediumThreshold < 0 || c.Compare.HighThreshold > 1 {
		return fmt.Errorf("similarity thresholds must lie in [0,1]: medium=%g high=%g",
			c.Compare.MediumThreshold, c.Compare.HighThreshold)
	}
	if c.Compare.MediumThreshold > c.Compare.HighThreshold {
		return fmt.Errorf("medium threshold %g exceeds high threshold %g",
			c.Compare.MediumThreshold, c.Compare.HighThreshold)
	}

	if len(c.Sampling.Categories) > 0 {
		var sum float64
		for _, cat := range c.Sampling.Categories {
			if cat.Weight < 0 || cat.Weight > 1 {
				return fmt.Errorf("category %q weight %g outside [0,1]", cat.Name, cat.Weight)
			}
			sum += cat.Weight
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return fmt.Errorf("category weights sum to %g, want 1.0", sum)
		}
	}

	if c.Scrape.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be non-negative, got %d", c.Scrape.MaxRetries)
	}
	return nil
}

// DefaultConfig returns the pipeline defaults used when a setting is
// absent from the configuration file.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Scrape: ScrapeConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "wikicompare/0.1 (research project)",
			},
			RateLimitDelay: 2 * time.Second,
			MaxRetries:     3,
			DetectLanguage: true,
		},
		Compare: CompareConfig{
			HighThreshold:   0.85,
			MediumThreshold: 0.60,
			MaxDiffSegments: 100,
		},
		Metrics: MetricsConfig{
			CitationDensityTarget: 5.0,
		},
		Sampling: SamplingConfig{
			TotalSampleSize: 10,
			RandomSeed:      42,
		},
		Report: ReportConfig{OutputDir: "data/reports"},
		Store: StoreConfig{
			Path:       "data/processed/results.db",
			ExportPath: "data/processed/comparison_results.json",
		},
	}
}
