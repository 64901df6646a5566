// Package goquery extracts article metadata and text from HTML entry files
// using a parsed DOM rather than patterns.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seolint"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements seolint.Extractor at compile time.
var _ seolint.Extractor = (*Extractor)(nil)

// Extractor extracts metadata and text from complete HTML documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw as HTML. The title comes from <title> with og:title as
// fallback, the description from the description meta tag with
// og:description as fallback. Body text excludes script, style, noscript
// and template content.
func (e *Extractor) Extract(raw string) (*seolint.ExtractResult, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, seolint.Errorf(seolint.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = metaContent(doc, `meta[property="og:title"]`)
	}

	description := metaContent(doc, `meta[name="description"]`)
	if description == "" {
		description = metaContent(doc, `meta[property="og:description"]`)
	}

	var body string
	if sel := doc.Find("body"); sel.Length() > 0 {
		body = textOf(sel.Nodes[0])
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := textOf(sel.Nodes[0]); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return &seolint.ExtractResult{
		Title:       title,
		Description: description,
		Body:        body,
		Paragraphs:  paragraphs,
	}, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// textOf returns the visible text below n with whitespace collapsed.
// Adjacent elements are separated by a space so block boundaries do not
// glue words together.
func textOf(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			parts = append(parts, n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
