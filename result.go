package seolint

// ComplianceFlags records the outcome of every rule for one document.
type ComplianceFlags struct {
	TitleCompliant           bool `json:"titleCompliant"`
	MetaDescriptionCompliant bool `json:"metaDescriptionCompliant"`
	KeywordDensityCompliant  bool `json:"keywordDensityCompliant"`
	InternalLinksCompliant   bool `json:"internalLinksCompliant"`
	ImagesCompliant          bool `json:"imagesCompliant"`
	KeywordInTitle           bool `json:"keywordInTitle"`
	KeywordInDescription     bool `json:"keywordInDescription"`
	KeywordInFirstParagraph  bool `json:"keywordInFirstParagraph"`
	KeywordInConclusion      bool `json:"keywordInConclusion"`
}

// ComplianceResult is the outcome of evaluating one document.
// A document is compliant iff Errors is empty; warnings never affect it.
type ComplianceResult struct {
	Slug            string          `json:"slug"`
	Title           string          `json:"title"`
	Description     string          `json:"metaDescription"`
	Keyword         string          `json:"keyword"`
	ContentHash     string          `json:"contentHash"`
	Metrics         MetricSet       `json:"metrics"`
	Flags           ComplianceFlags `json:"compliance"`
	Compliant       bool            `json:"compliant"`
	Errors          []string        `json:"errors"`
	Warnings        []string        `json:"warnings"`
	Recommendations []string        `json:"recommendations"`
}

// Issues returns errors followed by warnings.
func (r *ComplianceResult) Issues() []string {
	issues := make([]string, 0, len(r.Errors)+len(r.Warnings))
	issues = append(issues, r.Errors...)
	issues = append(issues, r.Warnings...)
	return issues
}
