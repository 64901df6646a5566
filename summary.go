package seolint

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// TopIssuesLimit is the number of ranked issues kept in a summary.
const TopIssuesLimit = 10

// ComplianceRateTarget is the rate below which a review pass is recommended.
const ComplianceRateTarget = 80.0

// IssueCount is the number of documents an issue message occurred in.
type IssueCount struct {
	Issue string `json:"issue"`
	Count int    `json:"count"`
}

// ComplianceSummary holds corpus-level statistics derived from a result set.
type ComplianceSummary struct {
	TotalArticles     int          `json:"totalArticles"`
	CompliantArticles int          `json:"compliantArticles"`
	ComplianceRate    float64      `json:"complianceRate"`
	TopIssues         []IssueCount `json:"topIssues"`
	Recommendations   []string     `json:"recommendations"`
}

// globalRecommendations are triggered when any issue contains the marker.
var globalRecommendations = []struct {
	marker         string
	recommendation string
}{
	{"Title length", "Run a title-length sweep: rewrite titles that fall outside the allowed range"},
	{"Meta description length", "Run a meta description sweep: rewrite descriptions that fall outside the allowed range"},
	{"Keyword density", "Review keyword usage in article bodies to bring density into the target range"},
	{"internal links", "Add cross-links between related articles to strengthen internal linking"},
	{"Images found", "Optimize images: add alt text and explicit dimensions or use the image component"},
	{"not found in", "Review keyword placement in titles, descriptions, openings and conclusions"},
}

// Summarize builds a corpus summary from per-document results.
// It is a pure function of its input.
func Summarize(results []*ComplianceResult) *ComplianceSummary {
	summary := &ComplianceSummary{
		TotalArticles:   len(results),
		TopIssues:       []IssueCount{},
		Recommendations: []string{},
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range results {
		if len(r.Errors) == 0 {
			summary.CompliantArticles++
		}
		for _, issue := range r.Issues() {
			if _, ok := counts[issue]; !ok {
				order = append(order, issue)
			}
			counts[issue]++
		}
	}

	summary.ComplianceRate = ComplianceRate(summary.CompliantArticles, summary.TotalArticles)

	ranked := make([]IssueCount, 0, len(order))
	for _, issue := range order {
		ranked = append(ranked, IssueCount{Issue: issue, Count: counts[issue]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > TopIssuesLimit {
		ranked = ranked[:TopIssuesLimit]
	}
	summary.TopIssues = ranked

	if summary.TotalArticles > 0 && summary.ComplianceRate < ComplianceRateTarget {
		summary.Recommendations = append(summary.Recommendations, fmt.Sprintf(
			"Compliance rate is below %g%%: schedule a metadata review pass across all articles", ComplianceRateTarget))
	}
	for _, g := range globalRecommendations {
		for _, issue := range order {
			if strings.Contains(issue, g.marker) {
				summary.Recommendations = append(summary.Recommendations, g.recommendation)
				break
			}
		}
	}

	return summary
}

// ComplianceRate returns compliant/total as a percentage rounded to two
// decimal places, or 0 when total is 0.
func ComplianceRate(compliant, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(compliant) * 100 / float64(total)
	return math.Round(rate*100) / 100
}
