package mock

import "github.com/fwojciec/seolint"

var _ seolint.MetricsCalculator = (*MetricsCalculator)(nil)

// MetricsCalculator is a mock implementation of seolint.MetricsCalculator.
type MetricsCalculator struct {
	KeywordDensityFn     func(body, keyword string) float64
	CountInternalLinksFn func(raw string) int
	DetectImagesFn       func(raw string) seolint.ImageInfo
	MeasureFn            func(doc *seolint.Document, keyword string) seolint.MetricSet
}

func (m *MetricsCalculator) KeywordDensity(body, keyword string) float64 {
	return m.KeywordDensityFn(body, keyword)
}

func (m *MetricsCalculator) CountInternalLinks(raw string) int {
	return m.CountInternalLinksFn(raw)
}

func (m *MetricsCalculator) DetectImages(raw string) seolint.ImageInfo {
	return m.DetectImagesFn(raw)
}

func (m *MetricsCalculator) Measure(doc *seolint.Document, keyword string) seolint.MetricSet {
	return m.MeasureFn(doc, keyword)
}
