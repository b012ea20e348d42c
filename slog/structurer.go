package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/gapscan"
)

// Ensure LoggingStructurer implements gapscan.Structurer.
var _ gapscan.Structurer = (*LoggingStructurer)(nil)

// LoggingStructurer wraps a Structurer with debug logging of structuring
// outcomes.
type LoggingStructurer struct {
	next   gapscan.Structurer
	logger *slog.Logger
}

// NewLoggingStructurer creates a new LoggingStructurer.
func NewLoggingStructurer(next gapscan.Structurer, logger *slog.Logger) *LoggingStructurer {
	return &LoggingStructurer{next: next, logger: logger}
}

// Structure delegates to the wrapped structurer, logging section and
// question counts.
func (s *LoggingStructurer) Structure(markup, source string) (*gapscan.DocumentStructure, error) {
	begin := time.Now()
	ds, err := s.next.Structure(markup, source)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("structured",
		"source", source,
		"sections", len(ds.SectionOrder),
		"questions", len(ds.Questions),
		"words", ds.Meta.WordCount,
		"duration", time.Since(begin),
	)
	return ds, nil
}
