// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape fetches articles from the compared sites and parses
// them into normalized PageContent snapshots. Each site implements the
// Source interface per the Strategy pattern; shared fetch mechanics
// (rate limiting, retries, caching) live in Fetcher.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/wikicompare/internal/httputil"
	"github.com/pdiddy/wikicompare/pkg/types"
)

// Sentinel errors distinguishing the failure modes the orchestrator
// handles: a missing page and a page whose structure could not be
// parsed are skipped per topic; network errors are retried first.
var (
	ErrNotFound = errors.New("page not found")
	ErrParse    = errors.New("page structure not parseable")
)

// Source fetches and parses one site's article for a topic.
type Source interface {
	Name() string
	PageURL(topic string) string
	FetchAndParse(ctx context.Context, topic string) (*types.PageContent, error)
}

// Fetcher holds the HTTP mechanics shared by all sources: one client,
// one rate limiter, and the optional HTML cache.
type Fetcher struct {
	client  *http.Client
	limiter *httputil.RateLimiter
	cfg     types.ScrapeConfig
}

// NewFetcher builds a Fetcher from the scrape configuration.
func NewFetcher(cfg types.ScrapeConfig) *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: httputil.NewRateLimiter(cfg.RateLimitDelay),
		cfg:     cfg,
	}
}

// html returns the page body for url, serving from the cache when
// configured and populating it after a successful fetch.
func (f *Fetcher) html(ctx context.Context, source, topic, pageURL string) (string, error) {
	cachePath := f.cachePath(source, topic)
	if cachePath != "" {
		if data, err := os.ReadFile(cachePath); err == nil {
			return string(data), nil
		}
	}

	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	if cachePath != "" {
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
			os.WriteFile(cachePath, []byte(body), 0o644)
		}
	}
	return body, nil
}

// fetch performs one rate-limited, retrying GET and maps HTTP failures
// onto the error taxonomy.
func (f *Fetcher) fetch(ctx context.Context, pageURL string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", pageURL, err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, f.client, req, f.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%s: %w", pageURL, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("fetching %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", pageURL, err)
	}
	return string(body), nil
}

func (f *Fetcher) cachePath(source, topic string) string {
	if f.cfg.CacheDir == "" {
		return ""
	}
	return filepath.Join(f.cfg.CacheDir, source+"_"+Slug(topic)+".html")
}

// Slug converts a topic title into a filesystem-safe cache key.
func Slug(topic string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(topic) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// WikiPath encodes a topic title for a /wiki/<title> URL.
func WikiPath(topic string) string {
	return url.PathEscape(strings.ReplaceAll(topic, " ", "_"))
}

// Retryable reports whether an error was a transient network failure
// rather than a terminal not-found or parse failure.
func Retryable(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrParse)
}
