package analyze_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/seolint"
	"github.com/fwojciec/seolint/analyze"
	"github.com/fwojciec/seolint/mock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compliantArticle returns a Markdown article that passes every error rule:
// a 51 character title, a 155 character description and a keyword density
// of about 1%.
func compliantArticle() string {
	description := strings.Repeat("Dog training basics. ", 8)[:155]
	filler := strings.Repeat("Reward good behaviour with treats and praise. ", 25)
	return fmt.Sprintf(`---
title: Dog Training Basics for Every New Puppy Owner Today
description: %s
---
Dog training basics start with patience and short daily sessions.

%s

Practice dog training basics every day for lasting results.
`, description, filler)
}

const nonCompliantArticle = `export const metadata = { title: 'Short', description: 'Too short' };

export default function Page() {
  return (
    <p>Hello world</p>
  );
}
`

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newAnalyzer(corpus seolint.Corpus) *analyze.Analyzer {
	a := analyze.NewAnalyzer(corpus)
	a.Root = "content/blog"
	a.Now = fixedNow
	return a
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("scores every article and summarizes the corpus", func(t *testing.T) {
		t.Parallel()

		corpus := &seolint.StaticCorpus{
			Path: "page.mdx",
			Articles: map[string]string{
				"b-bad":  nonCompliantArticle,
				"a-good": compliantArticle(),
			},
		}

		report, err := newAnalyzer(corpus).Analyze(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, report.Details, 2)
		assert.Equal(t, "a-good", report.Details[0].Slug)
		assert.Equal(t, "b-bad", report.Details[1].Slug)

		good := report.Details[0]
		assert.Empty(t, good.Errors)
		assert.True(t, good.Compliant)
		assert.Equal(t, "dog training basics", good.Keyword)
		assert.Equal(t, 51, good.Metrics.TitleLength)
		assert.Equal(t, 155, good.Metrics.DescriptionLength)
		assert.True(t, good.Flags.KeywordDensityCompliant)
		assert.True(t, good.Flags.KeywordInFirstParagraph)
		assert.True(t, good.Flags.KeywordInConclusion)

		bad := report.Details[1]
		assert.False(t, bad.Compliant)
		assert.Len(t, bad.Errors, 3)

		assert.Equal(t, 2, report.Summary.TotalArticles)
		assert.Equal(t, 1, report.Summary.CompliantArticles)
		assert.InDelta(t, 50.0, report.Summary.ComplianceRate, 0.0001)
		assert.Equal(t, "content/blog", report.Root)
		assert.Equal(t, fixedNow(), report.Timestamp)
		_, err = uuid.Parse(report.ID)
		assert.NoError(t, err)
	})

	t.Run("empty corpus yields zero rate", func(t *testing.T) {
		t.Parallel()

		corpus := &seolint.StaticCorpus{Articles: map[string]string{}}

		report, err := newAnalyzer(corpus).Analyze(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, report.Details)
		assert.Equal(t, 0, report.Summary.TotalArticles)
		assert.Zero(t, report.Summary.ComplianceRate)
	})

	t.Run("skips unreadable documents and reports them", func(t *testing.T) {
		t.Parallel()

		corpus := &mock.Corpus{
			DiscoverFn: func(ctx context.Context) ([]*seolint.Source, error) {
				return []*seolint.Source{
					{Slug: "a", Path: "a/page.tsx"},
					{Slug: "b", Path: "b/page.tsx"},
					{Slug: "c", Path: "c/page.tsx"},
				}, nil
			},
			ReadFn: func(ctx context.Context, src *seolint.Source) (string, error) {
				if src.Slug == "b" {
					return "", errors.New("permission denied")
				}
				return nonCompliantArticle, nil
			},
		}

		var failed []analyze.ProgressEvent
		report, err := newAnalyzer(corpus).Analyze(context.Background(), func(e analyze.ProgressEvent) {
			if e.Type == analyze.ProgressFailed {
				failed = append(failed, e)
			}
		})

		require.NoError(t, err)
		require.Len(t, report.Details, 2)
		assert.Equal(t, "a", report.Details[0].Slug)
		assert.Equal(t, "c", report.Details[1].Slug)
		assert.Equal(t, 2, report.Summary.TotalArticles)
		require.Len(t, failed, 1)
		assert.Equal(t, "b", failed[0].Slug)
		assert.ErrorContains(t, failed[0].Error, "permission denied")
	})

	t.Run("recovers from a panicking extractor", func(t *testing.T) {
		t.Parallel()

		corpus := &seolint.StaticCorpus{
			Articles: map[string]string{"a": "fine", "b": "boom"},
		}
		a := newAnalyzer(corpus)
		a.Extractors = seolint.NewExtractorSet(&mock.Extractor{
			ExtractFn: func(raw string) (*seolint.ExtractResult, error) {
				if raw == "boom" {
					panic("unexpected input")
				}
				return &seolint.ExtractResult{Title: "Fine"}, nil
			},
		})

		var failed []analyze.ProgressEvent
		report, err := a.Analyze(context.Background(), func(e analyze.ProgressEvent) {
			if e.Type == analyze.ProgressFailed {
				failed = append(failed, e)
			}
		})

		require.NoError(t, err)
		require.Len(t, report.Details, 1)
		assert.Equal(t, "a", report.Details[0].Slug)
		require.Len(t, failed, 1)
		assert.Equal(t, seolint.EINTERNAL, seolint.ErrorCode(failed[0].Error))
	})

	t.Run("propagates discovery failure", func(t *testing.T) {
		t.Parallel()

		discoverErr := errors.New("no such directory")
		corpus := &mock.Corpus{
			DiscoverFn: func(ctx context.Context) ([]*seolint.Source, error) {
				return nil, discoverErr
			},
		}

		_, err := newAnalyzer(corpus).Analyze(context.Background(), nil)

		require.ErrorIs(t, err, discoverErr)
	})

	t.Run("rejects invalid thresholds", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(&seolint.StaticCorpus{})
		a.Thresholds.TitleMin = 80

		_, err := a.Analyze(context.Background(), nil)

		assert.Equal(t, seolint.EINVALID, seolint.ErrorCode(err))
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		corpus := &seolint.StaticCorpus{Articles: map[string]string{"a": nonCompliantArticle}}

		_, err := newAnalyzer(corpus).Analyze(ctx, nil)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("emits start and finish events", func(t *testing.T) {
		t.Parallel()

		corpus := &seolint.StaticCorpus{
			Articles: map[string]string{"a": nonCompliantArticle, "b": nonCompliantArticle},
		}

		var events []analyze.ProgressEvent
		_, err := newAnalyzer(corpus).Analyze(context.Background(), func(e analyze.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, analyze.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, analyze.ProgressCompleted, events[1].Type)
		assert.Equal(t, analyze.ProgressCompleted, events[2].Type)
		assert.Equal(t, 2, events[2].Completed)
		assert.Equal(t, analyze.ProgressFinished, events[3].Type)
	})

	t.Run("result does not depend on concurrency", func(t *testing.T) {
		t.Parallel()

		articles := make(map[string]string)
		for i := 0; i < 20; i++ {
			if i%3 == 0 {
				articles[fmt.Sprintf("article-%02d", i)] = compliantArticle()
			} else {
				articles[fmt.Sprintf("article-%02d", i)] = nonCompliantArticle
			}
		}
		corpus := &seolint.StaticCorpus{Path: "page.md", Articles: articles}

		serial := newAnalyzer(corpus)
		serial.Concurrency = 1
		parallel := newAnalyzer(corpus)
		parallel.Concurrency = 8

		r1, err := serial.Analyze(context.Background(), nil)
		require.NoError(t, err)
		r2, err := parallel.Analyze(context.Background(), nil)
		require.NoError(t, err)

		assert.Equal(t, r1.Details, r2.Details)
		assert.Equal(t, r1.Summary, r2.Summary)
		assert.Equal(t, 7, r1.Summary.CompliantArticles)
	})
}

func TestAnalyzer_AnalyzeDocument(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(nil)

		r1, err := a.AnalyzeDocument("a", "a/page.md", compliantArticle())
		require.NoError(t, err)
		r2, err := a.AnalyzeDocument("a", "a/page.md", compliantArticle())
		require.NoError(t, err)

		b1, err := json.Marshal(r1)
		require.NoError(t, err)
		b2, err := json.Marshal(r2)
		require.NoError(t, err)
		assert.Equal(t, string(b1), string(b2))
	})

	t.Run("compliant iff no errors", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(nil)
		for _, raw := range []string{compliantArticle(), nonCompliantArticle, "", "<p>x</p>"} {
			r, err := a.AnalyzeDocument("a", "a/page.tsx", raw)
			require.NoError(t, err)
			assert.Equal(t, len(r.Errors) == 0, r.Compliant)
			assert.GreaterOrEqual(t, r.Metrics.KeywordDensity, 0.0)
			assert.LessOrEqual(t, r.Metrics.KeywordDensity, 100.0)
		}
	})

	t.Run("uses the html extractor for html entry files", func(t *testing.T) {
		t.Parallel()

		raw := `<html><head><title>Dog Training</title></head><body><p>Dog training is fun.</p></body></html>`

		r, err := newAnalyzer(nil).AnalyzeDocument("a", "a/index.html", raw)

		require.NoError(t, err)
		assert.Equal(t, "Dog Training", r.Title)
		assert.Equal(t, "dog training", r.Keyword)
		assert.True(t, r.Flags.KeywordInFirstParagraph)
	})

	t.Run("records content hash", func(t *testing.T) {
		t.Parallel()

		r, err := newAnalyzer(nil).AnalyzeDocument("a", "a/page.tsx", nonCompliantArticle)

		require.NoError(t, err)
		assert.Equal(t, analyze.ComputeHash(nonCompliantArticle), r.ContentHash)
	})

	t.Run("wraps extractor errors", func(t *testing.T) {
		t.Parallel()

		a := newAnalyzer(nil)
		a.Extractors = seolint.NewExtractorSet(&mock.Extractor{
			ExtractFn: func(raw string) (*seolint.ExtractResult, error) {
				return nil, seolint.Errorf(seolint.EINVALID, "bad markup")
			},
		})

		_, err := a.AnalyzeDocument("a", "a/page.tsx", "x")

		assert.Equal(t, seolint.EINVALID, seolint.ErrorCode(err))
		assert.ErrorContains(t, err, "a/page.tsx")
	})
}
