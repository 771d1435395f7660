package mock

import "github.com/fwojciec/marketcap"

var _ marketcap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of marketcap.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]*marketcap.Company, error)
}

func (e *Extractor) Extract(html string) ([]*marketcap.Company, error) {
	return e.ExtractFn(html)
}
