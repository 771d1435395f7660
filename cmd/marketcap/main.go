package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/marketcap"
	"github.com/fwojciec/marketcap/csv"
	"github.com/fwojciec/marketcap/excelize"
	"github.com/fwojciec/marketcap/goquery"
	mchttp "github.com/fwojciec/marketcap/http"
	"github.com/fwojciec/marketcap/paginate"
	"github.com/fwojciec/marketcap/rod"
	mcslog "github.com/fwojciec/marketcap/slog"
	"github.com/fwojciec/marketcap/smtp"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now returns the current time. Used to stamp the report.
	Now func() time.Time

	// Services for end-to-end testing. When nil, real implementations
	// are wired from the parsed flags.
	Fetcher  marketcap.Fetcher
	Notifier marketcap.Notifier
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("marketcap"),
		kong.Description("Scrape telecom market capitalizations into a CSV or XLSX report"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_url":    marketcap.DefaultListingURL,
			"default_output": DefaultOutputName,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	opts, err := cli.validate()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.NewString())

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Now:    m.Now,
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	// Wire fetcher
	fetcher := m.Fetcher
	if fetcher == nil {
		if cli.Browser {
			rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(opts.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = mchttp.NewFetcher(mchttp.WithTimeout(opts.Timeout))
		}
	}
	deps.Fetcher = mcslog.NewLoggingFetcher(fetcher, logger)
	defer deps.Fetcher.Close()

	paginator := &paginate.Paginator{
		Fetcher:   deps.Fetcher,
		Extractor: mcslog.NewLoggingExtractor(goquery.NewTableExtractor(opts.Layout), logger),
		BaseURL:   cli.URL,
		MaxPages:  cli.MaxPages,
		Progress: func(p marketcap.PageProgress) {
			logger.Info("page scraped", "page", p.Page, "rows", p.Rows, "total", p.Total)
		},
		Logger: logger,
	}
	if cli.Rate > 0 {
		paginator.Limiter = paginate.NewLimiter(cli.Rate)
	}
	deps.Scraper = paginator

	// Wire report writer
	switch opts.Format {
	case marketcap.FormatXLSX:
		deps.Writer = mcslog.NewLoggingReportWriter(excelize.NewWriter(), logger)
	default:
		deps.Writer = mcslog.NewLoggingReportWriter(csv.NewWriter(), logger)
	}

	// Wire notifier
	if cli.Notify {
		deps.Notifier = m.Notifier
		if deps.Notifier == nil {
			cfg, err := smtp.LoadConfig(cli.Config)
			if err != nil {
				fmt.Fprintf(stderr, "Hint: check %s or the SMTP_* environment variables\n", cli.Config)
				logger.Error("loading notifier config", "path", cli.Config, "err", err)
			} else {
				deps.Notifier = smtp.NewNotifier(cfg, logger)
			}
		}
	}

	return (&ScrapeCmd{
		Output:   opts.Output,
		Location: opts.Location,
		Notify:   cli.Notify,
	}).Run(deps)
}
