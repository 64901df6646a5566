package seolint_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/seolint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passingMetrics satisfies every rule under the default thresholds.
func passingMetrics() seolint.MetricSet {
	return seolint.MetricSet{
		KeywordDensity:    1.0,
		TitleLength:       55,
		DescriptionLength: 155,
		InternalLinkCount: 3,
	}
}

func testDocument() *seolint.Document {
	return &seolint.Document{
		Slug:        "dog-training",
		Title:       "Dog Training Basics",
		Description: "Everything about dog training.",
		Paragraphs:  []string{"Dog training starts early.", "Middle.", "Keep up the dog training."},
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	th := seolint.DefaultThresholds()

	t.Run("passing document has no issues", func(t *testing.T) {
		t.Parallel()

		r := seolint.Evaluate(testDocument(), passingMetrics(), "dog training", th)

		assert.True(t, r.Compliant)
		assert.Empty(t, r.Errors)
		assert.Empty(t, r.Warnings)
		assert.Empty(t, r.Recommendations)
		assert.Equal(t, seolint.ComplianceFlags{
			TitleCompliant:           true,
			MetaDescriptionCompliant: true,
			KeywordDensityCompliant:  true,
			InternalLinksCompliant:   true,
			ImagesCompliant:          true,
			KeywordInTitle:           true,
			KeywordInDescription:     true,
			KeywordInFirstParagraph:  true,
			KeywordInConclusion:      true,
		}, r.Flags)
	})

	t.Run("title within range is compliant", func(t *testing.T) {
		t.Parallel()

		m := passingMetrics()
		m.TitleLength = len("Pet Dental Health: Complete Care Guide for Dogs and Cats")

		r := seolint.Evaluate(testDocument(), m, "dog training", th)

		assert.True(t, r.Flags.TitleCompliant)
	})

	t.Run("title bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{50, 60} {
			m := passingMetrics()
			m.TitleLength = n
			assert.True(t, seolint.Evaluate(testDocument(), m, "dog training", th).Flags.TitleCompliant, n)
		}
		for _, n := range []int{0, 49, 61} {
			m := passingMetrics()
			m.TitleLength = n
			assert.False(t, seolint.Evaluate(testDocument(), m, "dog training", th).Flags.TitleCompliant, n)
		}
	})

	t.Run("short description is an error", func(t *testing.T) {
		t.Parallel()

		m := passingMetrics()
		m.DescriptionLength = 120

		r := seolint.Evaluate(testDocument(), m, "dog training", th)

		assert.False(t, r.Flags.MetaDescriptionCompliant)
		assert.False(t, r.Compliant)
		require.Len(t, r.Errors, 1)
		assert.Equal(t, "Meta description length (120) should be between 150-160 characters", r.Errors[0])
		assert.Contains(t, r.Errors[0], "150")
		assert.Contains(t, r.Errors[0], "160")
	})

	t.Run("excessive density is an error", func(t *testing.T) {
		t.Parallel()

		m := passingMetrics()
		m.KeywordDensity = 50

		r := seolint.Evaluate(testDocument(), m, "dog training", th)

		assert.False(t, r.Flags.KeywordDensityCompliant)
		assert.False(t, r.Compliant)
		assert.Equal(t, []string{"Keyword density (50.00%) should be between 0.5%-1.5%"}, r.Errors)
	})

	t.Run("missing internal links is a warning", func(t *testing.T) {
		t.Parallel()

		m := passingMetrics()
		m.InternalLinkCount = 0

		r := seolint.Evaluate(testDocument(), m, "dog training", th)

		assert.False(t, r.Flags.InternalLinksCompliant)
		assert.True(t, r.Compliant)
		assert.Equal(t, []string{"Only 0 internal links found, minimum required: 3"}, r.Warnings)
		assert.Equal(t, []string{"Add at least 3 internal links to related articles"}, r.Recommendations)
	})

	t.Run("unoptimized images are a warning", func(t *testing.T) {
		t.Parallel()

		m := passingMetrics()
		m.HasImages = true

		r := seolint.Evaluate(testDocument(), m, "dog training", th)

		assert.False(t, r.Flags.ImagesCompliant)
		assert.True(t, r.Compliant)
		assert.Equal(t, []string{"Images found but not optimized (missing alt text or dimensions)"}, r.Warnings)
	})

	t.Run("optimized images are compliant", func(t *testing.T) {
		t.Parallel()

		m := passingMetrics()
		m.HasImages = true
		m.ImagesOptimized = true

		r := seolint.Evaluate(testDocument(), m, "dog training", th)

		assert.True(t, r.Flags.ImagesCompliant)
	})

	t.Run("keyword placement is checked case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := seolint.Evaluate(testDocument(), passingMetrics(), "DOG TRAINING", th)

		assert.True(t, r.Flags.KeywordInTitle)
		assert.True(t, r.Flags.KeywordInDescription)
		assert.True(t, r.Flags.KeywordInFirstParagraph)
		assert.True(t, r.Flags.KeywordInConclusion)
	})

	t.Run("missing placements are warnings", func(t *testing.T) {
		t.Parallel()

		doc := &seolint.Document{Slug: "x"}

		r := seolint.Evaluate(doc, passingMetrics(), "dog training", th)

		assert.True(t, r.Compliant)
		assert.Equal(t, []string{
			`Keyword "dog training" not found in title`,
			`Keyword "dog training" not found in meta description`,
			`Keyword "dog training" not found in first paragraph`,
			`Keyword "dog training" not found in conclusion`,
		}, r.Warnings)
		assert.Len(t, r.Recommendations, 4)
	})

	t.Run("empty keyword is never placed", func(t *testing.T) {
		t.Parallel()

		r := seolint.Evaluate(testDocument(), passingMetrics(), "", th)

		assert.False(t, r.Flags.KeywordInTitle)
		assert.False(t, r.Flags.KeywordInConclusion)
	})

	t.Run("reports every failing rule in order", func(t *testing.T) {
		t.Parallel()

		r := seolint.Evaluate(&seolint.Document{}, seolint.MetricSet{HasImages: true}, "", th)

		assert.False(t, r.Compliant)
		assert.Equal(t, []string{
			"Title length (0) should be between 50-60 characters",
			"Meta description length (0) should be between 150-160 characters",
			"Keyword density (0.00%) should be between 0.5%-1.5%",
		}, r.Errors)
		assert.Len(t, r.Warnings, 6)
		assert.Len(t, r.Recommendations, 9)
		assert.Equal(t, "Adjust title to 50-60 characters", r.Recommendations[0])
	})

	t.Run("uses custom thresholds", func(t *testing.T) {
		t.Parallel()

		custom := th
		custom.TitleMin = 10
		custom.TitleMax = 20
		m := passingMetrics()
		m.TitleLength = 15

		r := seolint.Evaluate(testDocument(), m, "dog training", custom)

		assert.True(t, r.Flags.TitleCompliant)
	})

	t.Run("copies document identity", func(t *testing.T) {
		t.Parallel()

		doc := testDocument()
		doc.ContentHash = "abc"

		r := seolint.Evaluate(doc, passingMetrics(), "dog training", th)

		assert.Equal(t, "dog-training", r.Slug)
		assert.Equal(t, "Dog Training Basics", r.Title)
		assert.Equal(t, "abc", r.ContentHash)
		assert.Equal(t, "dog training", r.Keyword)
	})
}

func TestEvaluate_CompliantIffNoErrors(t *testing.T) {
	t.Parallel()

	th := seolint.DefaultThresholds()
	for _, title := range []int{0, 55, 70} {
		for _, desc := range []int{0, 155, 200} {
			for _, density := range []float64{0, 1, 3} {
				for _, links := range []int{0, 5} {
					m := seolint.MetricSet{
						TitleLength:       title,
						DescriptionLength: desc,
						KeywordDensity:    density,
						InternalLinkCount: links,
					}
					r := seolint.Evaluate(testDocument(), m, "dog training", th)
					assert.Equal(t, len(r.Errors) == 0, r.Compliant)
					if r.Flags.TitleCompliant {
						assert.True(t, m.TitleLength >= 50 && m.TitleLength <= 60)
					}
					if r.Flags.MetaDescriptionCompliant {
						assert.True(t, m.DescriptionLength >= 150 && m.DescriptionLength <= 160)
					}
					if r.Flags.KeywordDensityCompliant {
						assert.True(t, m.KeywordDensity >= 0.5 && m.KeywordDensity <= 1.5)
					}
				}
			}
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	t.Parallel()

	th := seolint.DefaultThresholds()
	m := passingMetrics()
	m.InternalLinkCount = 1

	r1 := seolint.Evaluate(testDocument(), m, "dog training", th)
	r2 := seolint.Evaluate(testDocument(), m, "dog training", th)

	b1, err := json.Marshal(r1)
	require.NoError(t, err)
	b2, err := json.Marshal(r2)
	require.NoError(t, err)
	assert.Equal(t, string(b1), string(b2))
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	assert.True(t, seolint.ContainsFold("Dog Training Basics", "dog training"))
	assert.True(t, seolint.ContainsFold("CRÈME BRÛLÉE", "crème brûlée"))
	assert.False(t, seolint.ContainsFold("Dog Training", "cat"))
	assert.False(t, seolint.ContainsFold("anything", ""))
}

func TestRules_Severities(t *testing.T) {
	t.Parallel()

	var errs, warns int
	for _, rule := range seolint.Rules() {
		switch rule.Severity {
		case seolint.SeverityError:
			errs++
		case seolint.SeverityWarning:
			warns++
		}
	}

	assert.Equal(t, 3, errs)
	assert.Equal(t, 6, warns)
}
