// Package goquery provides the wiki-family content extractor. It
// collects page title and body paragraph text using tag and class/id
// heuristics, excluding navigation, footers, reference lists,
// infoboxes, and script/style content.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hkwon/pagesum"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagesum.Extractor at compile time.
var _ pagesum.Extractor = (*Extractor)(nil)

// contentSelector matches known body-content containers for the wiki
// site family.
const contentSelector = "div#mw-content-text, div#content, div.mw-parser-output, div.mw-body, div.mw-body-content, div.content"

// Extractor extracts title and paragraph text from wiki-family pages.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns title and flattened body text.
//
// A paragraph is collected only when it is not below a skip (script,
// style) or exclude (nav, footer, aside, table, navbox, references,
// infobox markers) element, and it sits below a content container. On
// pages with no recognizable container at all, every paragraph
// qualifies. Ancestor checks compose nested regions the same way a
// stack-based tag walk would.
func (e *Extractor) Extract(rawHTML string) (*pagesum.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagesum.Errorf(pagesum.EINVALID, "failed to parse HTML: %v", err)
	}

	hasContainer := doc.Find(contentSelector).Length() > 0

	var title string
	if sel := doc.Find("title").First(); sel.Length() > 0 {
		if n := sel.Get(0); !hasBlockedAncestor(n) {
			title = collectText(n)
		}
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		if hasBlockedAncestor(n) {
			return
		}
		if hasContainer && !inContentRegion(n) {
			return
		}
		if t := collectText(n); t != "" {
			parts = append(parts, t)
		}
	})

	return &pagesum.ExtractResult{
		Title: title,
		Body:  strings.TrimSpace(strings.Join(parts, " ")),
	}, nil
}

// collectText gathers the trimmed text fragments below n in document
// order, joined by single spaces. Subtrees that open a skip or exclude
// region (e.g. a sup.reference citation marker inside a paragraph) are
// dropped.
func collectText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if blocked(c) {
				continue
			}
			if c.Type == html.TextNode {
				if t := strings.TrimSpace(c.Data); t != "" {
					parts = append(parts, t)
				}
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

// blocked reports whether n opens a skip or exclude region.
func blocked(n *html.Node) bool {
	return isSkip(n) || isExcluded(n)
}

func hasBlockedAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if blocked(p) {
			return true
		}
	}
	return false
}

// inContentRegion reports whether n sits below a content container.
func inContentRegion(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if isContentRoot(p) {
			return true
		}
	}
	return false
}

// isSkip matches regions whose text is discarded entirely.
func isSkip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return n.Data == "script" || n.Data == "style"
}

// isExcluded matches known non-content regions.
func isExcluded(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "nav", "footer", "aside", "table":
		return true
	case "div":
		if id := attr(n, "id"); id == "toc" || id == "catlinks" {
			return true
		}
		return hasAnyClass(n, "navbox", "mw-references-wrap", "hatnote")
	case "ol", "ul":
		return hasAnyClass(n, "references")
	case "sup":
		return hasAnyClass(n, "reference")
	}
	return false
}

// isContentRoot matches the wiki-family body-content containers.
func isContentRoot(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != "div" {
		return false
	}
	if id := attr(n, "id"); id == "mw-content-text" || id == "content" {
		return true
	}
	return hasAnyClass(n, "mw-parser-output", "mw-body", "mw-body-content", "content")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAnyClass(n *html.Node, names ...string) bool {
	for _, class := range strings.Fields(attr(n, "class")) {
		for _, name := range names {
			if class == name {
				return true
			}
		}
	}
	return false
}
