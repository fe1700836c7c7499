// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"fmt"

	"github.com/pdiddy/wikicompare/pkg/types"
)

const wikipediaBaseURL = "https://en.wikipedia.org"

// wikipediaProfile targets the MediaWiki layout. The parser-output
// fallback covers API-rendered fragments that lack the content frame.
var wikipediaProfile = siteProfile{
	source: "wikipedia",
	titleRules: []selectorRule{
		{"first-heading", "h1#firstHeading"},
		{"any-h1", "h1"},
	},
	contentRules: []selectorRule{
		{"content-text", "div#mw-content-text"},
		{"parser-output", "div.mw-parser-output"},
	},
	titleSuffix: " - Wikipedia",
}

// Wikipedia fetches articles from en.wikipedia.org.
type Wikipedia struct {
	fetcher *Fetcher
	baseURL string
	detect  bool
}

// NewWikipedia returns the Wikipedia source backed by the shared fetcher.
func NewWikipedia(f *Fetcher) *Wikipedia {
	return &Wikipedia{fetcher: f, baseURL: wikipediaBaseURL, detect: f.cfg.DetectLanguage}
}

// Name implements Source.
func (w *Wikipedia) Name() string { return wikipediaProfile.source }

// PageURL constructs the article URL for a topic.
func (w *Wikipedia) PageURL(topic string) string {
	return fmt.Sprintf("%s/wiki/%s", w.baseURL, WikiPath(topic))
}

// FetchAndParse implements Source.
func (w *Wikipedia) FetchAndParse(ctx context.Context, topic string) (*types.PageContent, error) {
	pageURL := w.PageURL(topic)
	html, err := w.fetcher.html(ctx, w.Name(), topic, pageURL)
	if err != nil {
		return nil, err
	}

	page, err := parsePage(html, pageURL, wikipediaProfile)
	if err != nil {
		return nil, err
	}
	if w.detect {
		page.Language = DetectLanguage(page.TextContent)
	}
	return page, nil
}
