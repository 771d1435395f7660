package marketcap

import (
	"context"
	"strconv"
	"time"
)

// Report column labels, in output order.
var Header = []string{"rank", "name", "market_cap_billion_eur", "country"}

// MetadataLabel is the first cell of the row carrying the capture time.
const MetadataLabel = "extracted_at_europe_paris"

// TimestampLayout is ISO-8601 with seconds precision and a numeric offset.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// FormatTimestamp formats the capture time for the metadata row.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatMarketCap formats a value with exactly two decimals.
func FormatMarketCap(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Format identifies a report encoding.
type Format string

// Format constants.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ReportWriter serializes a scrape result to a file.
type ReportWriter interface {
	// WriteReport sorts companies by rank and writes the header row,
	// the metadata row, then one row per company. Missing parent
	// directories of path are created.
	WriteReport(ctx context.Context, path string, result *ScrapeResult) error
}
