// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wikiStyleHTML = `<!DOCTYPE html>
<html><head><title>Go (programming language) - Wikipedia</title></head>
<body>
<h1 id="firstHeading">Go (programming language)</h1>
<div id="mw-content-text">
  <p>Go is a statically typed language.<sup class="reference"><a href="#cite_note-1">[1]</a></sup></p>
  <h2><span class="mw-headline">History</span><span>[edit]</span></h2>
  <p>Go was designed at Google.<sup class="reference"><a href="#cite_note-2">[2]</a></sup></p>
  <h2><span class="mw-headline">Syntax</span></h2>
  <p>Syntax is small.</p>
  <script>console.log("noise")</script>
  <img src="//upload.example.org/gopher.png">
</div>
<table class="infobox">
  <tr><th>Paradigm</th><td>concurrent</td></tr>
  <tr><th>Designed by</th><td>Griesemer, Pike, Thompson</td></tr>
</table>
<div id="catlinks">
  <a href="/wiki/Help:Category">Categories</a>
  <a href="/wiki/Category:Programming_languages">Programming languages</a>
  <a href="/wiki/Category:Google_software">Google software</a>
</div>
<a class="external" href="https://go.dev">go.dev</a>
<a class="external" href="https://go.dev">go.dev duplicate</a>
<li id="footer-info-lastmod">This page was last edited on 2 March 2026, at 10:00.</li>
</body></html>`

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func TestExtractSections(t *testing.T) {
	d := doc(t, wikiStyleHTML)
	content, rule := firstMatch(d, wikipediaProfile.contentRules)
	require.NotNil(t, content)
	assert.Equal(t, "content-text", rule)

	sections, order := extractSections(content)
	assert.Equal(t, []string{"Introduction", "History", "Syntax"}, order)
	assert.Contains(t, sections["Introduction"], "statically typed")
	assert.Contains(t, sections["History"], "designed at Google")
	assert.NotContains(t, sections["History"], "[edit]")
}

func TestExtractCitations(t *testing.T) {
	d := doc(t, wikiStyleHTML)
	content, _ := firstMatch(d, wikipediaProfile.contentRules)

	citations := extractCitations(content)
	require.Len(t, citations, 2)
	assert.Equal(t, 1, citations[0].Number)
	assert.Equal(t, "cite_note-1", citations[0].ID)
}

func TestExtractCitationsFallbackRule(t *testing.T) {
	// No sup.reference markers; the cite-anchor rule should pick up.
	html := `<div id="mw-content-text"><p>Claim<a href="#cite_note-9">[9]</a></p></div>`
	d := doc(t, html)
	content, _ := firstMatch(d, wikipediaProfile.contentRules)

	citations := extractCitations(content)
	require.Len(t, citations, 1)
	assert.Equal(t, "cite_note-9", citations[0].ID)
}

func TestExtractInfobox(t *testing.T) {
	d := doc(t, wikiStyleHTML)
	info := extractInfobox(d)
	require.NotNil(t, info)
	assert.Equal(t, "concurrent", info["Paradigm"])
	assert.Len(t, info, 2)
}

func TestExtractInfoboxAbsent(t *testing.T) {
	d := doc(t, `<html><body><p>plain</p></body></html>`)
	assert.Nil(t, extractInfobox(d))
}

func TestExtractImagesNormalizesProtocolRelative(t *testing.T) {
	d := doc(t, wikiStyleHTML)
	content, _ := firstMatch(d, wikipediaProfile.contentRules)
	images := extractImages(content)
	require.Len(t, images, 1)
	assert.Equal(t, "https://upload.example.org/gopher.png", images[0])
}

func TestExtractExternalLinksDeduplicates(t *testing.T) {
	d := doc(t, wikiStyleHTML)
	links := extractExternalLinks(d)
	assert.Equal(t, []string{"https://go.dev"}, links)
}

func TestExtractCategories(t *testing.T) {
	d := doc(t, wikiStyleHTML)
	cats := extractCategories(d)
	assert.Equal(t, []string{"Programming languages", "Google software"}, cats)
}

func TestExtractLastModified(t *testing.T) {
	d := doc(t, wikiStyleHTML)
	got := extractLastModified(d)
	assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestExtractLastModifiedAbsent(t *testing.T) {
	d := doc(t, `<html><body></body></html>`)
	assert.True(t, extractLastModified(d).IsZero())
}

func TestCleanTextStripsScripts(t *testing.T) {
	d := doc(t, `<div id="c"><p>kept   text</p><script>dropped()</script></div>`)
	text := cleanText(d.Find("#c"))
	assert.Equal(t, "kept text", text)
}

func TestFirstMatchOrdering(t *testing.T) {
	// Both rules match; the earlier one must win.
	html := `<div id="content">new layout</div><main>older layout</main>`
	sel, rule := firstMatch(doc(t, html), grokipediaProfile.contentRules)
	require.NotNil(t, sel)
	assert.Equal(t, "content-id", rule)
	assert.Equal(t, "new layout", sel.Text())
}

func TestFirstMatchNone(t *testing.T) {
	sel, rule := firstMatch(doc(t, `<p>bare</p>`), grokipediaProfile.contentRules)
	assert.Nil(t, sel)
	assert.Empty(t, rule)
}
