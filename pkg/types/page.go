// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value and configuration types shared across
// pipeline stages.
package types

import (
	"strings"
	"time"
)

// Citation is one reference extracted from an article body.
type Citation struct {
	// Number is the 1-based position of the citation on the page.
	Number int `json:"number" yaml:"number"`

	// ID is the citation anchor (e.g. "cite_note-3"), when present.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Text is the visible citation text.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// URL is the citation target, when the reference links out.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// PageContent is the normalized snapshot of one fetched article.
// Instances are built once by a scrape source and never mutated.
type PageContent struct {
	// Title is the article title as displayed on the page.
	Title string `json:"title" yaml:"title"`

	// URL is the address the page was fetched from.
	URL string `json:"url" yaml:"url"`

	// RawHTML is the unmodified response body.
	RawHTML string `json:"-" yaml:"-"`

	// TextContent is the extracted body text with scripts, styles and
	// markup removed and whitespace collapsed.
	TextContent string `json:"text_content" yaml:"text_content"`

	// Sections maps section titles to their extracted text, in page order.
	Sections map[string]string `json:"sections" yaml:"sections"`

	// SectionOrder preserves the order sections appear on the page.
	SectionOrder []string `json:"section_order,omitempty" yaml:"section_order,omitempty"`

	// Citations lists the references found in the article body.
	Citations []Citation `json:"citations" yaml:"citations"`

	// Infobox holds key/value pairs from the page infobox, nil when absent.
	Infobox map[string]string `json:"infobox,omitempty" yaml:"infobox,omitempty"`

	// Images lists image source URLs found in the article body.
	Images []string `json:"images,omitempty" yaml:"images,omitempty"`

	// ExternalLinks lists outbound link targets.
	ExternalLinks []string `json:"external_links,omitempty" yaml:"external_links,omitempty"`

	// Categories lists the page's category labels.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// LastModified is the page's last-edit timestamp, zero when unknown.
	LastModified time.Time `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`

	// WordCount is the number of whitespace-delimited tokens in
	// TextContent. Set by Finalize.
	WordCount int `json:"word_count" yaml:"word_count"`

	// Language is the detected language of the body text (e.g. "English"),
	// empty when detection was skipped or inconclusive.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Source names the site the page came from ("wikipedia", "grokipedia").
	Source string `json:"source" yaml:"source"`
}

// Finalize derives WordCount from TextContent and replaces nil
// containers with empty ones so downstream stages never see nulls.
func (p *PageContent) Finalize() {
	p.WordCount = len(strings.Fields(p.TextContent))
	if p.Sections == nil {
		p.Sections = map[string]string{}
	}
	if p.Citations == nil {
		p.Citations = []Citation{}
	}
}

// HasInfobox reports whether the page carried an infobox.
func (p *PageContent) HasInfobox() bool {
	return p.Infobox != nil
}
