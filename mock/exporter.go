package mock

import "github.com/fwojciec/seolint"

var _ seolint.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of seolint.Exporter.
type Exporter struct {
	ExportFn func(report *seolint.Report, path string) error
}

func (e *Exporter) Export(report *seolint.Report, path string) error {
	return e.ExportFn(report, path)
}
