package seolint

// ExtractResult holds the metadata and text extracted from an article source.
type ExtractResult struct {
	// Title is the first title field found in the source, or empty.
	Title string

	// Description is the first description field found in the source, or empty.
	Description string

	// Body is the article text with markup stripped and whitespace collapsed.
	Body string

	// Paragraphs holds the article's paragraph texts in document order.
	Paragraphs []string
}

// Extractor pulls metadata and plain text out of a semi-structured article source.
type Extractor interface {
	// Extract processes the raw source and returns its metadata and text.
	// A missing field is not an error; it is returned as an empty string.
	Extract(raw string) (*ExtractResult, error)
}

// ExtractorSet selects an Extractor by entry file extension.
type ExtractorSet struct {
	// Default is used for extensions without a dedicated extractor.
	Default Extractor

	byExt map[string]Extractor
}

// NewExtractorSet returns an ExtractorSet that falls back to def.
func NewExtractorSet(def Extractor) *ExtractorSet {
	return &ExtractorSet{Default: def, byExt: make(map[string]Extractor)}
}

// Register assigns an extractor to one or more extensions (e.g., ".html").
func (s *ExtractorSet) Register(e Extractor, exts ...string) {
	for _, ext := range exts {
		s.byExt[ext] = e
	}
}

// For returns the extractor registered for the source's extension.
func (s *ExtractorSet) For(src *Source) Extractor {
	if e, ok := s.byExt[src.Ext()]; ok {
		return e
	}
	return s.Default
}

// Wrap returns a copy of the set with every extractor passed through fn,
// e.g. to add logging.
func (s *ExtractorSet) Wrap(fn func(Extractor) Extractor) *ExtractorSet {
	out := &ExtractorSet{byExt: make(map[string]Extractor, len(s.byExt))}
	if s.Default != nil {
		out.Default = fn(s.Default)
	}
	for ext, e := range s.byExt {
		out.byExt[ext] = fn(e)
	}
	return out
}
