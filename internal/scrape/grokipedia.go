// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pdiddy/wikicompare/pkg/types"
)

const grokipediaBaseURL = "https://grokipedia.com"

// grokipediaProfile carries a longer fallback chain because the site's
// markup is not a published contract; the MediaWiki rule at the end
// covers a layout change toward wiki-standard markup.
var grokipediaProfile = siteProfile{
	source: "grokipedia",
	titleRules: []selectorRule{
		{"first-heading", "h1#firstHeading"},
		{"title-class", "h1.title, h1.page-title"},
		{"any-h1", "h1"},
	},
	contentRules: []selectorRule{
		{"content-id", "div#content"},
		{"content-class", "div.content"},
		{"main", "main"},
		{"article", "article"},
		{"mediawiki", "div#mw-content-text"},
	},
	titleSuffix: " - Grokipedia",
}

var grokipediaTitleSuffixRe = regexp.MustCompile(`\s*[-–—]\s*Grokipedia.*$`)

// Grokipedia fetches articles from grokipedia.com.
type Grokipedia struct {
	fetcher *Fetcher
	baseURL string
	detect  bool
}

// NewGrokipedia returns the Grokipedia source backed by the shared fetcher.
func NewGrokipedia(f *Fetcher) *Grokipedia {
	return &Grokipedia{fetcher: f, baseURL: grokipediaBaseURL, detect: f.cfg.DetectLanguage}
}

// Name implements Source.
func (g *Grokipedia) Name() string { return grokipediaProfile.source }

// PageURL constructs the article URL for a topic.
func (g *Grokipedia) PageURL(topic string) string {
	return fmt.Sprintf("%s/wiki/%s", g.baseURL, WikiPath(topic))
}

// FetchAndParse implements Source.
func (g *Grokipedia) FetchAndParse(ctx context.Context, topic string) (*types.PageContent, error) {
	pageURL := g.PageURL(topic)
	html, err := g.fetcher.html(ctx, g.Name(), topic, pageURL)
	if err != nil {
		return nil, err
	}

	page, err := parsePage(html, pageURL, grokipediaProfile)
	if err != nil {
		return nil, err
	}
	page.Title = grokipediaTitleSuffixRe.ReplaceAllString(page.Title, "")
	if g.detect {
		page.Language = DetectLanguage(page.TextContent)
	}
	return page, nil
}
