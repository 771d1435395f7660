package mock

import (
	"context"

	"github.com/fwojciec/marketcap"
)

var _ marketcap.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of marketcap.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) ([]*marketcap.Company, error)
}

func (s *Scraper) Scrape(ctx context.Context) ([]*marketcap.Company, error) {
	return s.ScrapeFn(ctx)
}

var _ marketcap.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of marketcap.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
