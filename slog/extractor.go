package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/marketcap"
)

// Ensure LoggingExtractor implements marketcap.Extractor.
var _ marketcap.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   marketcap.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next marketcap.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the row count.
func (e *LoggingExtractor) Extract(html string) (companies []*marketcap.Company, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"rows", len(companies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
