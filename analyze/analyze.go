// Package analyze orchestrates a compliance run: corpus discovery, extraction,
// keyword inference, metrics, rule evaluation and summary.
package analyze

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/goquery"
	"github.com/fwojciec/seolint/regexp"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Analyzer scores every article of a corpus.
type Analyzer struct {
	Corpus      seolint.Corpus
	Extractors  *seolint.ExtractorSet
	Metrics     seolint.MetricsCalculator
	Thresholds  seolint.Thresholds
	Concurrency int

	// Root is recorded in the report to identify the corpus.
	Root string

	// Now returns the report timestamp. Defaults to time.Now.
	Now func() time.Time
}

// NewAnalyzer creates an Analyzer with the regexp extractor for source files,
// the goquery extractor for HTML files, and default thresholds.
func NewAnalyzer(corpus seolint.Corpus) *Analyzer {
	extractors := seolint.NewExtractorSet(regexp.NewExtractor())
	extractors.Register(goquery.NewExtractor(), ".html", ".htm")
	return &Analyzer{
		Corpus:      corpus,
		Extractors:  extractors,
		Metrics:     regexp.NewMetrics(),
		Thresholds:  seolint.DefaultThresholds(),
		Concurrency: seolint.DefaultConcurrency,
	}
}

// ProgressEvent reports progress during an analysis run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Slug      string
	Compliant bool
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting analysis progress.
type ProgressFunc func(event ProgressEvent)

// docResult holds the outcome of analyzing a single source.
type docResult struct {
	position int
	slug     string
	result   *seolint.ComplianceResult
	err      error
}

// Analyze evaluates every discovered article and builds the report.
// A discovery failure aborts the run. A document that cannot be read or
// extracted is skipped and reported through a ProgressFailed event; the
// remaining documents are still analyzed. Details are ordered by slug.
func (a *Analyzer) Analyze(ctx context.Context, progress ProgressFunc) (*seolint.Report, error) {
	if err := a.Thresholds.Validate(); err != nil {
		return nil, err
	}

	sources, err := a.Corpus.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("corpus discovery: %w", err)
	}

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = seolint.DefaultConcurrency
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan docResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range sources {
			i, src := i, src
			g.Go(func() error {
				resultCh <- a.processSource(gctx, i, src)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in discovery order.
	results := make([]*seolint.ComplianceResult, total)
	var completed atomic.Int64
	for r := range resultCh {
		n := int(completed.Add(1))
		if r.err != nil {
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: n,
					Total:     total,
					Slug:      r.slug,
					Error:     r.err,
				})
			}
			continue
		}
		results[r.position] = r.result
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: n,
				Total:     total,
				Slug:      r.slug,
				Compliant: r.result.Compliant,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	details := make([]*seolint.ComplianceResult, 0, total)
	for _, r := range results {
		if r != nil {
			details = append(details, r)
		}
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	report := &seolint.Report{
		ID:        uuid.New().String(),
		Timestamp: now().UTC(),
		Root:      a.Root,
		Summary:   seolint.Summarize(details),
		Details:   details,
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(details), Total: total})
	}

	return report, nil
}

// processSource reads and analyzes one source. A panic in extraction or
// rule evaluation is converted into an error for that source only.
func (a *Analyzer) processSource(ctx context.Context, position int, src *seolint.Source) (res docResult) {
	res = docResult{position: position, slug: src.Slug}

	defer func() {
		if r := recover(); r != nil {
			res.result = nil
			res.err = seolint.Errorf(seolint.EINTERNAL, "analyze %s: panic: %v", src.Slug, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		res.err = err
		return res
	}

	raw, err := a.Corpus.Read(ctx, src)
	if err != nil {
		res.err = fmt.Errorf("read %s: %w", src.Path, err)
		return res
	}

	res.result, res.err = a.AnalyzeDocument(src.Slug, src.Path, raw)
	return res
}

// AnalyzeDocument evaluates a single article source. The extractor is chosen
// by the extension of path. The result depends only on the arguments and the
// analyzer's configuration.
func (a *Analyzer) AnalyzeDocument(slug, path, raw string) (*seolint.ComplianceResult, error) {
	src := &seolint.Source{Slug: slug, Path: path}
	extracted, err := a.Extractors.For(src).Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	doc := &seolint.Document{
		Slug:        slug,
		Path:        path,
		Raw:         raw,
		Title:       extracted.Title,
		Description: extracted.Description,
		Body:        extracted.Body,
		Paragraphs:  extracted.Paragraphs,
		ContentHash: ComputeHash(raw),
	}

	keyword := seolint.InferKeyword(doc.Title)
	metrics := a.Metrics.Measure(doc, keyword)
	return seolint.Evaluate(doc, metrics, keyword, a.Thresholds), nil
}
