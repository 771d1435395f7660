// Package csv writes scrape results as CSV reports.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/marketcap"
)

// Ensure Writer implements marketcap.ReportWriter at compile time.
var _ marketcap.ReportWriter = (*Writer)(nil)

// Records returns the report rows: header, metadata, then companies
// ordered by rank.
func Records(result *marketcap.ScrapeResult) [][]string {
	companies := marketcap.SortCompanies(result.Companies)

	records := make([][]string, 0, len(companies)+2)
	records = append(records, marketcap.Header)
	records = append(records, []string{
		marketcap.MetadataLabel,
		marketcap.FormatTimestamp(result.ExtractedAt),
		"",
		"",
	})
	for _, c := range companies {
		records = append(records, []string{
			strconv.Itoa(c.Rank),
			c.Name,
			marketcap.FormatMarketCap(c.MarketCap),
			c.Country,
		})
	}
	return records
}

// Encode writes the report to w with CRLF line endings.
func Encode(w io.Writer, result *marketcap.ScrapeResult) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.WriteAll(Records(result)); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

// Writer writes reports as UTF-8 CSV files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteReport encodes the result and writes it to path, creating parent
// directories as needed.
func (w *Writer) WriteReport(ctx context.Context, path string, result *marketcap.ScrapeResult) error {
	var buf bytes.Buffer
	if err := Encode(&buf, result); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
