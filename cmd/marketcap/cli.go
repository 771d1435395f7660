package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/marketcap"
)

// DefaultOutputName is the report file name without its extension.
const DefaultOutputName = "telecom_market_caps_eur_billion"

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Now      func() time.Time
	Fetcher  marketcap.Fetcher
	Scraper  marketcap.Scraper
	Writer   marketcap.ReportWriter
	Notifier marketcap.Notifier
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output   string  `short:"o" help:"Report path (default: ${default_output}.csv or .xlsx)" placeholder:"PATH"`
	Format   string  `short:"f" help:"Report format: csv or xlsx (inferred from --output when omitted)"`
	MaxPages int     `name:"max-pages" default:"20" help:"Maximum number of listing pages to fetch"`
	Timeout  int     `short:"t" default:"30" help:"Per-page fetch timeout in seconds"`
	URL      string  `default:"${default_url}" help:"Listing URL of the first page"`
	Layout   string  `short:"l" default:"plain" help:"Table layout: plain or extended"`
	Columns  []int   `sep:"," placeholder:"RANK,NAME,CAP,COUNTRY" help:"Zero-based cell indices overriding the layout's columns"`
	Timezone string  `default:"Europe/Paris" help:"Time zone of the capture timestamp"`
	Rate     float64 `default:"0" help:"Maximum pages per second (0 = unlimited)"`
	Browser  bool    `help:"Render pages with headless Chrome"`
	Notify   bool    `help:"Email the report when done"`
	Config   string  `default:"config.json" help:"Notifier configuration file"`
	Verbose  bool    `short:"v" help:"Enable debug logging"`
}

// options is the validated form of the parsed flags.
type options struct {
	Output   string
	Format   marketcap.Format
	Timeout  time.Duration
	Layout   marketcap.Layout
	Location *time.Location
}

// validate checks flag values and resolves defaults that depend on
// other flags.
func (c *CLI) validate() (*options, error) {
	if c.MaxPages < 1 {
		return nil, marketcap.Errorf(marketcap.EINVALID, "--max-pages must be at least 1, got %d", c.MaxPages)
	}
	if c.Timeout < 1 {
		return nil, marketcap.Errorf(marketcap.EINVALID, "--timeout must be at least 1 second, got %d", c.Timeout)
	}
	if c.Rate < 0 {
		return nil, marketcap.Errorf(marketcap.EINVALID, "--rate must not be negative")
	}
	if c.URL == "" {
		return nil, marketcap.Errorf(marketcap.EINVALID, "--url must not be empty")
	}

	format, err := resolveFormat(c.Format, c.Output)
	if err != nil {
		return nil, err
	}

	layout, err := marketcap.LayoutByName(c.Layout)
	if err != nil {
		return nil, err
	}
	if len(c.Columns) > 0 {
		if len(c.Columns) != 4 {
			return nil, marketcap.Errorf(marketcap.EINVALID, "--columns takes 4 indices, got %d", len(c.Columns))
		}
		layout.Rank, layout.Name, layout.MarketCap, layout.Country = c.Columns[0], c.Columns[1], c.Columns[2], c.Columns[3]
		if err := layout.Validate(); err != nil {
			return nil, err
		}
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, marketcap.Errorf(marketcap.EINVALID, "unknown time zone %q", c.Timezone)
	}

	output := c.Output
	if output == "" {
		output = DefaultOutputName + format.Extension()
	}

	return &options{
		Output:   output,
		Format:   format,
		Timeout:  time.Duration(c.Timeout) * time.Second,
		Layout:   layout,
		Location: loc,
	}, nil
}

// resolveFormat returns the explicit format, or infers it from the output
// path's extension.
func resolveFormat(format, output string) (marketcap.Format, error) {
	switch strings.ToLower(format) {
	case "csv":
		return marketcap.FormatCSV, nil
	case "xlsx":
		return marketcap.FormatXLSX, nil
	case "":
		if strings.EqualFold(filepath.Ext(output), marketcap.FormatXLSX.Extension()) {
			return marketcap.FormatXLSX, nil
		}
		return marketcap.FormatCSV, nil
	}
	return "", marketcap.Errorf(marketcap.EINVALID, "unknown format %q, expected csv or xlsx", format)
}

// ScrapeCmd runs one scrape and writes the report.
type ScrapeCmd struct {
	Output   string
	Location *time.Location
	Notify   bool
}

// Run scrapes every page, writes the report and optionally sends it.
// A scrape failure returns before anything is written. A notification
// failure is reported but does not fail the run.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	extractedAt := deps.Now().In(c.Location)

	companies, err := deps.Scraper.Scrape(ctx)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	result := &marketcap.ScrapeResult{
		Companies:   companies,
		ExtractedAt: extractedAt,
	}
	if err := deps.Writer.WriteReport(ctx, c.Output, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "%d rows written to %s\n", len(companies), c.Output)

	if !c.Notify {
		return nil
	}
	if deps.Notifier == nil || !deps.Notifier.Notify(ctx, c.Output, len(companies)) {
		fmt.Fprintln(deps.Stderr, "Email notification was not sent")
	}
	return nil
}
