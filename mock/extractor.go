package mock

import "github.com/fwojciec/gapscan"

var _ gapscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of gapscan.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*gapscan.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*gapscan.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ gapscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of gapscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
