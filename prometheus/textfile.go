// Package prometheus exports compliance reports as Prometheus metrics in
// the text exposition format, for node_exporter's textfile collector.
package prometheus

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/seolint"
	"github.com/prometheus/client_golang/prometheus"
)

// Ensure TextfileExporter implements seolint.Exporter at compile time.
var _ seolint.Exporter = (*TextfileExporter)(nil)

const namespace = "seolint"

// TextfileExporter writes corpus gauges to a .prom file.
type TextfileExporter struct{}

// NewTextfileExporter creates a new TextfileExporter.
func NewTextfileExporter() *TextfileExporter {
	return &TextfileExporter{}
}

// Export writes the report's metrics to path.
func (e *TextfileExporter) Export(report *seolint.Report, path string) error {
	reg, err := Registry(report)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}

// Registry returns a registry populated with the report's metrics.
func Registry(report *seolint.Report) (*prometheus.Registry, error) {
	total := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "articles_total",
		Help:      "Number of articles analyzed in the last run.",
	})
	compliant := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "articles_compliant",
		Help:      "Number of articles without compliance errors.",
	})
	rate := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "compliance_rate",
		Help:      "Percentage of compliant articles.",
	})
	issues := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "issue_occurrences",
		Help:      "Number of articles reporting each of the most frequent issues.",
	}, []string{"issue"})
	articles := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "article_compliant",
		Help:      "1 if the article has no compliance errors, 0 otherwise.",
	}, []string{"slug"})

	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{total, compliant, rate, issues, articles} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	if s := report.Summary; s != nil {
		total.Set(float64(s.TotalArticles))
		compliant.Set(float64(s.CompliantArticles))
		rate.Set(s.ComplianceRate)
		for _, ic := range s.TopIssues {
			issues.WithLabelValues(ic.Issue).Set(float64(ic.Count))
		}
	}
	for _, r := range report.Details {
		v := 0.0
		if r.Compliant {
			v = 1
		}
		articles.WithLabelValues(r.Slug).Set(v)
	}

	return reg, nil
}
