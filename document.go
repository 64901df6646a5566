package seolint

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
)

// Source identifies a single article in a corpus before it is read.
type Source struct {
	// Slug is the stable key of the article, usually its directory name.
	Slug string `json:"slug"`

	// Path is the location of the entry file the article is read from.
	Path string `json:"path"`
}

// Ext returns the lowercased file extension of the source's entry file.
func (s *Source) Ext() string {
	return strings.ToLower(filepath.Ext(s.Path))
}

// Document represents an article after extraction. Documents are immutable
// once built and are discarded after producing a result.
type Document struct {
	Slug        string   `json:"slug"`
	Path        string   `json:"path"`
	Raw         string   `json:"-"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Paragraphs  []string `json:"paragraphs"`
	ContentHash string   `json:"contentHash"`
}

// FirstParagraph returns the opening paragraph of the document body,
// or an empty string when no paragraphs were extracted.
func (d *Document) FirstParagraph() string {
	if len(d.Paragraphs) == 0 {
		return ""
	}
	return d.Paragraphs[0]
}

// Conclusion returns the final paragraph of the document body.
func (d *Document) Conclusion() string {
	if len(d.Paragraphs) == 0 {
		return ""
	}
	return d.Paragraphs[len(d.Paragraphs)-1]
}

// Corpus discovers and reads the articles subject to one analysis run.
type Corpus interface {
	// Discover lists the articles in the corpus ordered by slug.
	// Entries without a recognized entry file are skipped, not reported.
	Discover(ctx context.Context) ([]*Source, error)

	// Read returns the raw source text of a discovered article.
	Read(ctx context.Context, src *Source) (string, error)
}

// Ensure StaticCorpus implements Corpus at compile time.
var _ Corpus = (*StaticCorpus)(nil)

// StaticCorpus is an in-memory corpus keyed by slug. It lets callers inject
// document sources directly without touching the filesystem.
type StaticCorpus struct {
	// Path is used as the entry file name of every source (e.g., "page.tsx").
	Path string

	// Articles maps slug to raw source text.
	Articles map[string]string
}

// Discover returns one source per article, ordered by slug.
func (c *StaticCorpus) Discover(ctx context.Context) ([]*Source, error) {
	slugs := make([]string, 0, len(c.Articles))
	for slug := range c.Articles {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	name := c.Path
	if name == "" {
		name = "page.tsx"
	}

	sources := make([]*Source, 0, len(slugs))
	for _, slug := range slugs {
		sources = append(sources, &Source{Slug: slug, Path: slug + "/" + name})
	}
	return sources, nil
}

// Read returns the raw text stored for the source's slug.
// Returns ENOTFOUND if the slug is unknown.
func (c *StaticCorpus) Read(ctx context.Context, src *Source) (string, error) {
	raw, ok := c.Articles[src.Slug]
	if !ok {
		return "", Errorf(ENOTFOUND, "article %q not found", src.Slug)
	}
	return raw, nil
}
