package regexp

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/seolint"
)

// Ensure Metrics implements seolint.MetricsCalculator at compile time.
var _ seolint.MetricsCalculator = (*Metrics)(nil)

// internalPath matches "/" or a path starting with a single slash.
// Protocol-relative references ("//host") are external.
const internalPath = "(/(?:[^/\"'`\\s][^\"'`\\s]*)?)"

var (
	hrefRe      = regexp.MustCompile(`\bhref\s*=\s*\{?\s*["'` + "`]" + internalPath + "[\"'`]")
	linkCompRe  = regexp.MustCompile(`<Link\b[^>]*?\bto\s*=\s*\{?\s*["'` + "`]" + internalPath + "[\"'`]")
	mdInlineRe  = regexp.MustCompile(`\[[^\]]*\]\((/(?:[^/)\s][^)\s]*)?)(?:\s+"[^"]*")?\)`)
	imgTagRe    = regexp.MustCompile(`(?i)<img\b`)
	imgCompRe   = regexp.MustCompile(`<Image\b`)
	mdImgRe     = regexp.MustCompile(`!\[([^\]]*)\]\(`)
	altRe       = regexp.MustCompile(`\balt\s*=`)
	dimensionRe = regexp.MustCompile(`\b(?:width|height)\s*=`)
	imgImportRe = regexp.MustCompile(`\bfrom\s+['"]next/image['"]`)
)

// Metrics computes text metrics with regular expressions.
type Metrics struct{}

// NewMetrics creates a new Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// KeywordDensity returns occurrences of keyword in body as a percentage of
// the body's word count. Matching is case-insensitive and on word
// boundaries; the words of a multi-word keyword may be separated by any
// whitespace. Empty input yields 0; the result never exceeds 100.
func (m *Metrics) KeywordDensity(body, keyword string) float64 {
	words := strings.Fields(body)
	kw := strings.Fields(keyword)
	if len(words) == 0 || len(kw) == 0 {
		return 0
	}

	re := keywordPattern(kw)
	count := len(re.FindAllStringIndex(strings.Join(words, " "), -1))

	// Several matches can share one whitespace-delimited word ("dog-dog").
	return math.Min(float64(count)/float64(len(words))*100, 100)
}

// keywordPattern builds a case-insensitive pattern for the keyword words.
// Boundaries are only asserted next to word characters, so keywords such
// as "c++" still match.
func keywordPattern(kw []string) *regexp.Regexp {
	quoted := make([]string, len(kw))
	for i, w := range kw {
		quoted[i] = regexp.QuoteMeta(w)
	}
	pattern := strings.Join(quoted, `\s+`)

	first, _ := utf8.DecodeRuneInString(kw[0])
	last, _ := utf8.DecodeLastRuneInString(kw[len(kw)-1])
	if isWordRune(first) {
		pattern = `\b` + pattern
	}
	if isWordRune(last) {
		pattern += `\b`
	}
	return regexp.MustCompile(`(?i)` + pattern)
}

func isWordRune(r rune) bool {
	return r == '_' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// CountInternalLinks returns the number of distinct internal link targets
// in raw, detected from href attributes, Link components and Markdown
// inline links. Matches are deduplicated by their literal text, so a
// path written in two link syntaxes counts twice while an identical
// literal matched by several patterns counts once.
func (m *Metrics) CountInternalLinks(raw string) int {
	seen := make(map[string]struct{})

	for _, re := range []*regexp.Regexp{hrefRe, linkCompRe} {
		for _, match := range re.FindAllString(raw, -1) {
			seen[match] = struct{}{}
		}
	}

	for _, loc := range mdInlineRe.FindAllStringSubmatchIndex(raw, -1) {
		// ![alt](/src) is an image, not a link.
		if loc[0] > 0 && raw[loc[0]-1] == '!' {
			continue
		}
		seen[raw[loc[0]:loc[1]]] = struct{}{}
	}

	return len(seen)
}

// DetectImages reports whether raw contains images and whether they are
// optimized: alt text present together with explicit dimensions or an
// optimizing image component.
func (m *Metrics) DetectImages(raw string) seolint.ImageInfo {
	component := imgCompRe.MatchString(raw) || imgImportRe.MatchString(raw)
	hasImages := imgTagRe.MatchString(raw) || imgCompRe.MatchString(raw) || mdImgRe.MatchString(raw)
	if !hasImages {
		return seolint.ImageInfo{}
	}

	hasAlt := altRe.MatchString(raw)
	for _, match := range mdImgRe.FindAllStringSubmatch(raw, -1) {
		if strings.TrimSpace(match[1]) != "" {
			hasAlt = true
			break
		}
	}

	return seolint.ImageInfo{
		HasImages: true,
		Optimized: hasAlt && (dimensionRe.MatchString(raw) || component),
	}
}

// Measure computes the full metric set for a document. Lengths are counted
// in characters.
func (m *Metrics) Measure(doc *seolint.Document, keyword string) seolint.MetricSet {
	images := m.DetectImages(doc.Raw)
	return seolint.MetricSet{
		KeywordDensity:    m.KeywordDensity(doc.Body, keyword),
		TitleLength:       utf8.RuneCountInString(doc.Title),
		DescriptionLength: utf8.RuneCountInString(doc.Description),
		InternalLinkCount: m.CountInternalLinks(doc.Raw),
		HasImages:         images.HasImages,
		ImagesOptimized:   images.Optimized,
	}
}
