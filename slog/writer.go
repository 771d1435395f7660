package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/marketcap"
)

// Ensure LoggingReportWriter implements marketcap.ReportWriter.
var _ marketcap.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   marketcap.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next marketcap.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the outcome.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, path string, result *marketcap.ScrapeResult) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write report",
			"path", path,
			"rows", len(result.Companies),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, path, result)
}
