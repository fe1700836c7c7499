// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// selectorRule is one entry in a prioritized extraction fallback chain.
// Rules are tried in order and the first one that matches wins, so a
// source keeps working when the site ships a new layout that any later
// rule still understands.
type selectorRule struct {
	name     string
	selector string
}

// firstMatch returns the selection for the first rule matching the
// document, or an empty selection when none do.
func firstMatch(doc *goquery.Document, rules []selectorRule) (*goquery.Selection, string) {
	for _, rule := range rules {
		if sel := doc.Find(rule.selector); sel.Length() > 0 {
			return sel.First(), rule.name
		}
	}
	return nil, ""
}

// cleanText extracts the visible text of a selection with scripts and
// styles removed and whitespace collapsed to single spaces.
func cleanText(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	clone := sel.Clone()
	clone.Find("script, style").Remove()
	return strings.Join(strings.Fields(clone.Text()), " ")
}

var editSuffixRe = regexp.MustCompile(`\[\s*edit\s*\]\s*$`)

// extractSections walks the content container in document order and
// groups paragraph/list text under the preceding heading. Text before
// the first heading lands in "Introduction".
func extractSections(content *goquery.Selection) (map[string]string, []string) {
	sections := map[string]string{}
	var order []string

	current := "Introduction"
	var buf []string

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if _, ok := sections[current]; !ok {
			order = append(order, current)
		}
		sections[current] += strings.Join(buf, " ")
		buf = nil
	}

	content.Find("h1, h2, h3, h4, p, ul, ol").Each(func(_ int, el *goquery.Selection) {
		switch goquery.NodeName(el) {
		case "h1", "h2", "h3", "h4":
			flush()
			title := el.Find(".mw-headline").First().Text()
			if title == "" {
				title = el.Text()
			}
			title = editSuffixRe.ReplaceAllString(strings.TrimSpace(title), "")
			if title != "" {
				current = strings.TrimSpace(title)
			}
		default:
			if text := strings.Join(strings.Fields(el.Text()), " "); text != "" {
				buf = append(buf, text)
			}
		}
	})
	flush()

	return sections, order
}

// citationRules is the fallback chain for reference markers.
var citationRules = []selectorRule{
	{"mediawiki-sup", "sup.reference"},
	{"reference-list", "ol.references > li, div.references > div"},
	{"cite-anchors", `a[href^="#cite"]`},
}

// extractCitations collects the references in the content container
// using the first citation rule that matches.
func extractCitations(content *goquery.Selection) []citationNode {
	for _, rule := range citationRules {
		sel := content.Find(rule.selector)
		if sel.Length() == 0 {
			continue
		}

		var nodes []citationNode
		sel.Each(func(i int, el *goquery.Selection) {
			node := citationNode{
				Number: i + 1,
				Text:   strings.TrimSpace(el.Text()),
			}
			if link := el.Find("a").First(); link.Length() > 0 {
				href, _ := link.Attr("href")
				node.ID = strings.TrimPrefix(href, "#")
			}
			if ext := el.Find(`a[href^="http"]`).First(); ext.Length() > 0 {
				node.URL, _ = ext.Attr("href")
			}
			nodes = append(nodes, node)
		})
		return nodes
	}
	return nil
}

// citationNode is the raw citation record before conversion to types.Citation.
type citationNode struct {
	Number int
	ID     string
	Text   string
	URL    string
}

// infoboxRules is the fallback chain for infobox containers.
var infoboxRules = []selectorRule{
	{"mediawiki-table", "table.infobox"},
	{"generic-class", ".infobox, [class*=infobox]"},
}

// extractInfobox returns the infobox key/value rows, or nil when the
// page has no infobox.
func extractInfobox(doc *goquery.Document) map[string]string {
	for _, rule := range infoboxRules {
		box := doc.Find(rule.selector).First()
		if box.Length() == 0 {
			continue
		}

		info := map[string]string{}
		box.Find("tr").Each(func(_ int, row *goquery.Selection) {
			key := strings.TrimSpace(row.Find("th").First().Text())
			val := strings.Join(strings.Fields(row.Find("td").First().Text()), " ")
			if key != "" && val != "" {
				info[key] = val
			}
		})
		if len(info) > 0 {
			return info
		}
	}
	return nil
}

// extractImages lists image sources in the content container,
// normalizing scheme-relative URLs.
func extractImages(content *goquery.Selection) []string {
	var images []string
	seen := map[string]bool{}
	content.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		if strings.HasPrefix(src, "//") {
			src = "https:" + src
		}
		if src != "" && !seen[src] {
			seen[src] = true
			images = append(images, src)
		}
	})
	return images
}

// extractExternalLinks lists distinct outbound link targets.
func extractExternalLinks(doc *goquery.Document) []string {
	var links []string
	seen := map[string]bool{}
	doc.Find(`a.external[href], a[rel~="nofollow"][href]`).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "http") && !seen[href] {
			seen[href] = true
			links = append(links, href)
		}
	})
	return links
}

// categoryRules is the fallback chain for category labels.
var categoryRules = []selectorRule{
	{"mediawiki-catlinks", `#catlinks a[href*=":"]`},
	{"generic-category", `a[href^="/category"], a[href^="/Category"]`},
}

// extractCategories lists the page's category labels, dropping the
// leading "Category:" namespace prefix when present.
func extractCategories(doc *goquery.Document) []string {
	for _, rule := range categoryRules {
		sel := doc.Find(rule.selector)
		if sel.Length() == 0 {
			continue
		}

		var cats []string
		seen := map[string]bool{}
		sel.Each(func(_ int, a *goquery.Selection) {
			href, _ := a.Attr("href")
			label := strings.TrimSpace(a.Text())
			lower := strings.ToLower(href)
			if label == "" || (!strings.Contains(lower, "category:") && !strings.Contains(lower, "/category/")) {
				return
			}
			label = strings.TrimPrefix(label, "Category:")
			if !seen[label] {
				seen[label] = true
				cats = append(cats, label)
			}
		})
		if len(cats) > 0 {
			return cats
		}
	}
	return nil
}

var lastModifiedRe = regexp.MustCompile(`(\d{1,2} [A-Z][a-z]+ \d{4})`)

// extractLastModified parses the page's last-edit date from the footer
// line ("This page was last edited on 2 March 2026 ..."). Returns the
// zero time when the footer is absent or unparseable.
func extractLastModified(doc *goquery.Document) time.Time {
	text := doc.Find("#footer-info-lastmod, li[id*=lastmod]").First().Text()
	m := lastModifiedRe.FindString(text)
	if m == "" {
		return time.Time{}
	}
	t, err := time.Parse("2 January 2006", m)
	if err != nil {
		return time.Time{}
	}
	return t
}
