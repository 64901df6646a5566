package seolint

// MetricSet holds the measured signals of a single document.
type MetricSet struct {
	KeywordDensity    float64 `json:"keywordDensity"`
	TitleLength       int     `json:"titleLength"`
	DescriptionLength int     `json:"metaDescriptionLength"`
	InternalLinkCount int     `json:"internalLinkCount"`
	HasImages         bool    `json:"hasImages"`
	ImagesOptimized   bool    `json:"imagesOptimized"`
}

// ImageInfo reports whether a source references images and whether they
// carry alt text and sizing hints.
type ImageInfo struct {
	HasImages bool
	Optimized bool
}

// MetricsCalculator computes text metrics for a document.
type MetricsCalculator interface {
	// KeywordDensity returns keyword occurrences per hundred body words.
	// Returns 0 for an empty body or an empty keyword.
	KeywordDensity(body, keyword string) float64

	// CountInternalLinks returns the number of distinct root-relative
	// link references in the raw source.
	CountInternalLinks(raw string) int

	// DetectImages reports image usage in the raw source.
	DetectImages(raw string) ImageInfo

	// Measure computes the full metric set for a document and keyword.
	Measure(doc *Document, keyword string) MetricSet
}
