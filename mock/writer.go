package mock

import (
	"context"

	"github.com/fwojciec/marketcap"
)

var _ marketcap.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of marketcap.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, path string, result *marketcap.ScrapeResult) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, path string, result *marketcap.ScrapeResult) error {
	return w.WriteReportFn(ctx, path, result)
}
