package mock

import "github.com/fwojciec/gapscan"

var _ gapscan.Structurer = (*Structurer)(nil)

// Structurer is a mock implementation of gapscan.Structurer.
type Structurer struct {
	StructureFn func(markup, source string) (*gapscan.DocumentStructure, error)
}

func (s *Structurer) Structure(markup, source string) (*gapscan.DocumentStructure, error) {
	return s.StructureFn(markup, source)
}
