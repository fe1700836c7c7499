// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// siteProfile describes how to locate a site's page parts: the ordered
// selector chains tried against an evolving page layout.
type siteProfile struct {
	source       string
	titleRules   []selectorRule
	contentRules []selectorRule
	// titleSuffix is stripped from <title>-derived titles (" - Wikipedia").
	titleSuffix string
}

// parsePage turns raw HTML into a PageContent using the site profile.
// A document that cannot be tokenized at all is a parse error; a
// document missing the expected containers degrades to a best-effort
// page with empty containers rather than failing.
func parsePage(html, pageURL string, profile siteProfile) (*types.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", pageURL, err, ErrParse)
	}

	page := &types.PageContent{
		Title:   extractTitle(doc, profile),
		URL:     pageURL,
		RawHTML: html,
		Source:  profile.source,
	}

	if content, _ := firstMatch(doc, profile.contentRules); content != nil {
		page.TextContent = cleanText(content)
		page.Sections, page.SectionOrder = extractSections(content)
		for _, node := range extractCitations(content) {
			page.Citations = append(page.Citations, types.Citation{
				Number: node.Number,
				ID:     node.ID,
				Text:   node.Text,
				URL:    node.URL,
			})
		}
		page.Images = extractImages(content)
	}

	page.Infobox = extractInfobox(doc)
	page.ExternalLinks = extractExternalLinks(doc)
	page.Categories = extractCategories(doc)
	page.LastModified = extractLastModified(doc)

	page.Finalize()
	return page, nil
}

// extractTitle tries the profile's title rules, then the <title> tag
// with the site suffix stripped.
func extractTitle(doc *goquery.Document, profile siteProfile) string {
	if sel, _ := firstMatch(doc, profile.titleRules); sel != nil {
		if title := strings.TrimSpace(sel.Text()); title != "" {
			return title
		}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if profile.titleSuffix != "" {
		if idx := strings.Index(title, profile.titleSuffix); idx >= 0 {
			title = strings.TrimSpace(title[:idx])
		}
	}
	if title == "" {
		return "Unknown Title"
	}
	return title
}
