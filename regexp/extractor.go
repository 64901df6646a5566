// Package regexp provides pattern-based extraction and text metrics for
// article sources written as JSX/TSX pages, MDX or Markdown.
//
// The patterns are a deliberate simplification of real parsing. They may
// leave minor residue in the extracted text, which the density-based
// metrics tolerate.
package regexp

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/fwojciec/seolint"
	"gopkg.in/yaml.v3"
)

// Ensure Extractor implements seolint.Extractor at compile time.
var _ seolint.Extractor = (*Extractor)(nil)

var (
	titleRe       = fieldRe("title")
	descriptionRe = fieldRe("description")

	escapeRe      = regexp.MustCompile(`\\(.)`)
	frontmatterRe = regexp.MustCompile(`(?s)\A\s*---\r?\n(.*?)\r?\n---\s*(?:\r?\n|\z)`)

	blockRe      = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(?:script|style)>`)
	commentRe    = regexp.MustCompile(`(?s)\{\s*/\*.*?\*/\s*\}|<!--.*?-->|/\*.*?\*/`)
	importFromRe = regexp.MustCompile(`(?s)\bimport\s+[^;'"]*?\s+from\s+['"][^'"]*['"]\s*;?`)
	importBareRe = regexp.MustCompile(`(?m)^\s*import\s+['"][^'"]*['"]\s*;?\s*$`)
	exportRe     = regexp.MustCompile(`(?m)^\s*export\s+.*$`)
	returnRe     = regexp.MustCompile(`(?m)^\s*return\s*\(?\s*$`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	attrPairRe   = regexp.MustCompile("[\\w-]+\\s*[:=]\\s*(?:\"[^\"]*\"|'[^']*'|`[^`]*`)")
	mdImageRe    = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLinkRe     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdHeadingRe  = regexp.MustCompile(`(?m)^\s*#{1,6}\s+`)
	mdHeadLineRe = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]+.*$`)
	headingTagRe = regexp.MustCompile(`(?is)<h[1-6]\b[^>]*>.*?</h[1-6]>`)
	mdEmphasisRe = regexp.MustCompile("\\*\\*|__|`")
	paragraphRe  = regexp.MustCompile(`(?is)<p\b[^>]*>(.*?)</p>`)
	blankLineRe  = regexp.MustCompile(`\n\s*\n`)
	jsxBraceRe   = regexp.MustCompile(`[{}]`)
)

// fieldRe matches a named field followed by a quoted string literal,
// e.g. title: "..." or description='...'.
func fieldRe(name string) *regexp.Regexp {
	return regexp.MustCompile(`["']?\b` + name + `["']?\s*[:=]\s*` +
		"(?:\"((?:[^\"\\\\]|\\\\.)*)\"|'((?:[^'\\\\]|\\\\.)*)'|`([^`]*)`)")
}

// Extractor extracts metadata and body text using regular expressions.
// It never returns an error; missing fields are returned as empty strings.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title, description, body text and paragraphs of raw.
func (e *Extractor) Extract(raw string) (*seolint.ExtractResult, error) {
	title, description := ExtractMetadata(raw)
	return &seolint.ExtractResult{
		Title:       title,
		Description: description,
		Body:        ExtractBodyText(raw),
		Paragraphs:  ExtractParagraphs(raw),
	}, nil
}

// ExtractMetadata returns the first title and description fields in raw.
// Markdown front matter is consulted first; fields it does not define are
// looked up as quoted literals anywhere in the source.
func ExtractMetadata(raw string) (title, description string) {
	fm := parseFrontmatter(raw)
	title = fm["title"]
	description = fm["description"]
	if title == "" {
		title = firstField(titleRe, raw)
	}
	if description == "" {
		description = firstField(descriptionRe, raw)
	}
	return title, description
}

func firstField(re *regexp.Regexp, raw string) string {
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	for _, group := range m[1:] {
		if group != "" {
			return strings.TrimSpace(escapeRe.ReplaceAllString(group, "$1"))
		}
	}
	return ""
}

// parseFrontmatter returns the string fields of a leading YAML front matter
// block. Invalid front matter yields an empty map.
func parseFrontmatter(raw string) map[string]string {
	fields := make(map[string]string)
	m := frontmatterRe.FindStringSubmatch(raw)
	if m == nil {
		return fields
	}

	var values map[string]any
	if err := yaml.Unmarshal([]byte(m[1]), &values); err != nil {
		return fields
	}
	for k, v := range values {
		if s, ok := v.(string); ok {
			fields[k] = strings.TrimSpace(s)
		}
	}
	return fields
}

// ExtractBodyText reduces raw to plain text: markup tags, import and export
// declarations, inline key/value attribute pairs and Markdown syntax are
// removed and whitespace is collapsed to single spaces.
func ExtractBodyText(raw string) string {
	return collapse(strip(raw))
}

// ExtractParagraphs returns the text of each <p> element in raw. Sources
// without paragraph elements are split on blank lines instead, ignoring
// headings.
func ExtractParagraphs(raw string) []string {
	var paragraphs []string

	for _, m := range paragraphRe.FindAllStringSubmatch(raw, -1) {
		if text := collapse(strip(m[1])); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	if len(paragraphs) > 0 {
		return paragraphs
	}

	raw = mdHeadLineRe.ReplaceAllString(raw, "")
	raw = headingTagRe.ReplaceAllString(raw, "")
	for _, block := range blankLineRe.Split(strip(raw), -1) {
		if text := collapse(block); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}

// strip removes markup and declarations but keeps line structure.
func strip(s string) string {
	s = frontmatterRe.ReplaceAllString(s, "")
	s = blockRe.ReplaceAllString(s, " ")
	s = commentRe.ReplaceAllString(s, " ")
	s = importFromRe.ReplaceAllString(s, " ")
	s = importBareRe.ReplaceAllString(s, "")
	s = exportRe.ReplaceAllString(s, "")
	s = returnRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, " ")
	s = attrPairRe.ReplaceAllString(s, " ")
	s = mdImageRe.ReplaceAllString(s, " ")
	s = mdLinkRe.ReplaceAllString(s, "$1")
	s = mdHeadingRe.ReplaceAllString(s, "")
	s = mdEmphasisRe.ReplaceAllString(s, "")
	s = jsxBraceRe.ReplaceAllString(s, " ")
	return html.UnescapeString(s)
}

// collapse joins the words of s with single spaces, dropping tokens that
// carry no letters or digits (stray punctuation left by stripping).
func collapse(s string) string {
	fields := strings.Fields(s)
	words := fields[:0]
	for _, f := range fields {
		if strings.IndexFunc(f, isAlnum) >= 0 {
			words = append(words, f)
		}
	}
	return strings.Join(words, " ")
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
