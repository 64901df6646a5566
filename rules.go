package seolint

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Severity classifies a rule violation.
type Severity string

// Severity levels. Errors make a document non-compliant; warnings do not.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// RuleInput is everything a rule may inspect.
type RuleInput struct {
	Document   *Document
	Metrics    MetricSet
	Keyword    string
	Thresholds Thresholds
}

// Rule is a single compliance check with its paired messages.
type Rule struct {
	Name     string
	Severity Severity

	// Check reports whether the input satisfies the rule.
	Check func(in *RuleInput) bool

	// Message describes a violation.
	Message func(in *RuleInput) string

	// Recommendation is the action that fixes a violation.
	Recommendation func(in *RuleInput) string

	// Flag points at the field in ComplianceFlags the outcome is stored in.
	Flag func(f *ComplianceFlags) *bool
}

// Rules returns the rule table in evaluation order.
func Rules() []Rule {
	return []Rule{
		{
			Name:     "title-length",
			Severity: SeverityError,
			Check: func(in *RuleInput) bool {
				return within(in.Metrics.TitleLength, in.Thresholds.TitleMin, in.Thresholds.TitleMax)
			},
			Message: func(in *RuleInput) string {
				return fmt.Sprintf("Title length (%d) should be between %d-%d characters",
					in.Metrics.TitleLength, in.Thresholds.TitleMin, in.Thresholds.TitleMax)
			},
			Recommendation: func(in *RuleInput) string {
				return fmt.Sprintf("Adjust title to %d-%d characters", in.Thresholds.TitleMin, in.Thresholds.TitleMax)
			},
			Flag: func(f *ComplianceFlags) *bool { return &f.TitleCompliant },
		},
		{
			Name:     "description-length",
			Severity: SeverityError,
			Check: func(in *RuleInput) bool {
				return within(in.Metrics.DescriptionLength, in.Thresholds.DescriptionMin, in.Thresholds.DescriptionMax)
			},
			Message: func(in *RuleInput) string {
				return fmt.Sprintf("Meta description length (%d) should be between %d-%d characters",
					in.Metrics.DescriptionLength, in.Thresholds.DescriptionMin, in.Thresholds.DescriptionMax)
			},
			Recommendation: func(in *RuleInput) string {
				return fmt.Sprintf("Adjust meta description to %d-%d characters",
					in.Thresholds.DescriptionMin, in.Thresholds.DescriptionMax)
			},
			Flag: func(f *ComplianceFlags) *bool { return &f.MetaDescriptionCompliant },
		},
		{
			Name:     "keyword-density",
			Severity: SeverityError,
			Check: func(in *RuleInput) bool {
				d := in.Metrics.KeywordDensity
				return d >= in.Thresholds.KeywordDensityMin && d <= in.Thresholds.KeywordDensityMax
			},
			Message: func(in *RuleInput) string {
				return fmt.Sprintf("Keyword density (%.2f%%) should be between %g%%-%g%%",
					in.Metrics.KeywordDensity, in.Thresholds.KeywordDensityMin, in.Thresholds.KeywordDensityMax)
			},
			Recommendation: func(in *RuleInput) string {
				return fmt.Sprintf("Adjust usage of %q to reach %g%%-%g%% density",
					in.Keyword, in.Thresholds.KeywordDensityMin, in.Thresholds.KeywordDensityMax)
			},
			Flag: func(f *ComplianceFlags) *bool { return &f.KeywordDensityCompliant },
		},
		{
			Name:     "internal-links",
			Severity: SeverityWarning,
			Check: func(in *RuleInput) bool {
				return in.Metrics.InternalLinkCount >= in.Thresholds.MinInternalLinks
			},
			Message: func(in *RuleInput) string {
				return fmt.Sprintf("Only %d internal links found, minimum required: %d",
					in.Metrics.InternalLinkCount, in.Thresholds.MinInternalLinks)
			},
			Recommendation: func(in *RuleInput) string {
				return fmt.Sprintf("Add at least %d internal links to related articles", in.Thresholds.MinInternalLinks)
			},
			Flag: func(f *ComplianceFlags) *bool { return &f.InternalLinksCompliant },
		},
		{
			Name:     "images",
			Severity: SeverityWarning,
			Check: func(in *RuleInput) bool {
				return !in.Metrics.HasImages || in.Metrics.ImagesOptimized
			},
			Message: func(*RuleInput) string {
				return "Images found but not optimized (missing alt text or dimensions)"
			},
			Recommendation: func(*RuleInput) string {
				return "Add alt text and explicit dimensions (or an image component) to all images"
			},
			Flag: func(f *ComplianceFlags) *bool { return &f.ImagesCompliant },
		},
		keywordPlacementRule("keyword-in-title", "title", "Include %q in the title",
			func(d *Document) string { return d.Title },
			func(f *ComplianceFlags) *bool { return &f.KeywordInTitle }),
		keywordPlacementRule("keyword-in-description", "meta description", "Include %q in the meta description",
			func(d *Document) string { return d.Description },
			func(f *ComplianceFlags) *bool { return &f.KeywordInDescription }),
		keywordPlacementRule("keyword-in-first-paragraph", "first paragraph", "Mention %q in the opening paragraph",
			(*Document).FirstParagraph,
			func(f *ComplianceFlags) *bool { return &f.KeywordInFirstParagraph }),
		keywordPlacementRule("keyword-in-conclusion", "conclusion", "Mention %q in the concluding paragraph",
			(*Document).Conclusion,
			func(f *ComplianceFlags) *bool { return &f.KeywordInConclusion }),
	}
}

func keywordPlacementRule(name, where, recommendation string, field func(*Document) string, flag func(*ComplianceFlags) *bool) Rule {
	return Rule{
		Name:     name,
		Severity: SeverityWarning,
		Check: func(in *RuleInput) bool {
			return ContainsFold(field(in.Document), in.Keyword)
		},
		Message: func(in *RuleInput) string {
			return fmt.Sprintf("Keyword %q not found in %s", in.Keyword, where)
		},
		Recommendation: func(in *RuleInput) string {
			return fmt.Sprintf(recommendation, in.Keyword)
		},
		Flag: flag,
	}
}

// Evaluate applies every rule to a document and returns its result.
// All rules run regardless of earlier failures, so the result always carries
// the complete issue list. The outcome depends only on the inputs.
func Evaluate(doc *Document, metrics MetricSet, keyword string, th Thresholds) *ComplianceResult {
	result := &ComplianceResult{
		Slug:            doc.Slug,
		Title:           doc.Title,
		Description:     doc.Description,
		Keyword:         keyword,
		ContentHash:     doc.ContentHash,
		Metrics:         metrics,
		Errors:          []string{},
		Warnings:        []string{},
		Recommendations: []string{},
	}

	in := &RuleInput{
		Document:   doc,
		Metrics:    metrics,
		Keyword:    keyword,
		Thresholds: th,
	}

	for _, rule := range Rules() {
		ok := rule.Check(in)
		*rule.Flag(&result.Flags) = ok
		if ok {
			continue
		}

		switch rule.Severity {
		case SeverityError:
			result.Errors = append(result.Errors, rule.Message(in))
		default:
			result.Warnings = append(result.Warnings, rule.Message(in))
		}
		result.Recommendations = append(result.Recommendations, rule.Recommendation(in))
	}

	result.Compliant = len(result.Errors) == 0
	return result
}

// ContainsFold reports whether substr is within s under Unicode case folding.
// An empty substr is never contained.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}

func within(n, lo, hi int) bool {
	return n >= lo && n <= hi
}
