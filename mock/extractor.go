package mock

import "github.com/fwojciec/seolint"

var _ seolint.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of seolint.Extractor.
type Extractor struct {
	ExtractFn func(raw string) (*seolint.ExtractResult, error)
}

func (e *Extractor) Extract(raw string) (*seolint.ExtractResult, error) {
	return e.ExtractFn(raw)
}
