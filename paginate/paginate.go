// Package paginate walks the numbered pages of a listing one at a time.
package paginate

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/fwojciec/marketcap"
	"github.com/fwojciec/marketcap/bloom"
)

// Ensure Paginator implements marketcap.Scraper at compile time.
var _ marketcap.Scraper = (*Paginator)(nil)

// Paginator fetches listing pages in order, starting at page 1, until a page
// yields no companies or MaxPages pages have been fetched.
//
// Pages are fetched sequentially: the total page count is unknown and an
// empty page is the only end-of-data signal.
type Paginator struct {
	Fetcher   marketcap.Fetcher
	Extractor marketcap.Extractor
	BaseURL   string

	// MaxPages bounds the number of fetches. Defaults to
	// marketcap.DefaultMaxPages when not positive.
	MaxPages int

	// Limiter, if set, is waited on before every fetch.
	Limiter marketcap.Limiter

	// Progress, if set, is called after every page that yields companies.
	Progress marketcap.PageProgressFunc

	// Logger, if set, receives repeated-page warnings.
	Logger *slog.Logger
}

// PageURL returns the URL of the given 1-based page.
// Page 1 is the bare listing URL; later pages add a "page" query parameter.
func PageURL(baseURL string, page int) (string, error) {
	if page <= 1 {
		return baseURL, nil
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return "", marketcap.Errorf(marketcap.EINVALID, "invalid listing URL: %v", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Scrape returns every company from every page, in fetch order.
// Any fetch failure aborts the scrape and no companies are returned.
func (p *Paginator) Scrape(ctx context.Context) ([]*marketcap.Company, error) {
	maxPages := p.MaxPages
	if maxPages <= 0 {
		maxPages = marketcap.DefaultMaxPages
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seen := bloom.NewFilter(uint(maxPages), 0.001)

	var all []*marketcap.Company
	for page := 1; page <= maxPages; page++ {
		pageURL, err := PageURL(p.BaseURL, page)
		if err != nil {
			return nil, err
		}

		if p.Limiter != nil {
			if err := p.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		html, err := p.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		// The site may serve an earlier page for out-of-range numbers;
		// MaxPages still bounds the walk.
		if seen.Seen(html) {
			logger.Warn("page repeats earlier content", "page", page, "url", pageURL)
		}

		companies, err := p.Extractor.Extract(html)
		if err != nil {
			return nil, fmt.Errorf("extracting page %d: %w", page, err)
		}

		if len(companies) == 0 {
			break
		}

		all = append(all, companies...)

		if p.Progress != nil {
			p.Progress(marketcap.PageProgress{
				Page:  page,
				URL:   pageURL,
				Rows:  len(companies),
				Total: len(all),
			})
		}
	}

	logger.Debug("scrape complete", "rows", len(all), "distinct_pages", seen.EstimatedCount())
	return all, nil
}
