// Package excelize writes scrape results as XLSX spreadsheets.
package excelize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/marketcap"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the report.
const SheetName = "Sheet1"

// numFmtTwoDecimals is the built-in "0.00" number format.
const numFmtTwoDecimals = 2

// Ensure Writer implements marketcap.ReportWriter at compile time.
var _ marketcap.ReportWriter = (*Writer)(nil)

// Writer writes reports as XLSX workbooks. Market caps are stored as
// numbers displayed with two decimals.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteReport builds the workbook and saves it to path, creating parent
// directories as needed.
func (w *Writer) WriteReport(ctx context.Context, path string, result *marketcap.ScrapeResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := fill(f, result); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func fill(f *excelize.File, result *marketcap.ScrapeResult) error {
	header := make([]any, len(marketcap.Header))
	for i, h := range marketcap.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "D1", bold); err != nil {
		return err
	}

	meta := []any{marketcap.MetadataLabel, marketcap.FormatTimestamp(result.ExtractedAt)}
	if err := f.SetSheetRow(SheetName, "A2", &meta); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	companies := marketcap.SortCompanies(result.Companies)
	for i, c := range companies {
		cell, err := excelize.CoordinatesToCellName(1, i+3)
		if err != nil {
			return err
		}
		row := []any{c.Rank, c.Name, c.MarketCap, c.Country}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+3, err)
		}
	}

	if len(companies) > 0 {
		twoDecimals, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
		if err != nil {
			return err
		}
		last := fmt.Sprintf("C%d", len(companies)+2)
		if err := f.SetCellStyle(SheetName, "C3", last, twoDecimals); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "B", "B", 32); err != nil {
		return err
	}
	return f.SetColWidth(SheetName, "C", "C", 24)
}
