package marketcap

import "context"

// PageProgress reports progress after each listing page is processed.
type PageProgress struct {
	Page  int
	URL   string
	Rows  int
	Total int
}

// PageProgressFunc is called as pages are processed.
type PageProgressFunc func(PageProgress)

// Scraper collects companies across every page of the listing.
type Scraper interface {
	// Scrape returns all companies in fetch order.
	// A failed page fetch aborts the whole scrape.
	Scrape(ctx context.Context) ([]*Company, error)
}

// Limiter paces successive page requests.
type Limiter interface {
	Wait(ctx context.Context) error
}
