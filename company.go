package marketcap

import (
	"cmp"
	"slices"
	"time"
)

// Company is one ranked row of the listing.
type Company struct {
	// Rank is the ordinal position reported by the site. It is never
	// renumbered; repeated ranks across pages are kept as-is.
	Rank int `json:"rank"`

	// Name has any trailing ticker or exchange code removed.
	Name string `json:"name"`

	// MarketCap is expressed in billions of euros.
	MarketCap float64 `json:"marketCap"`

	// Country has any leading flag emoji removed.
	Country string `json:"country"`
}

// Validate returns an error if the company contains invalid fields.
func (c *Company) Validate() error {
	if c.Rank <= 0 {
		return Errorf(EINVALID, "company rank must be positive, got %d", c.Rank)
	}
	if c.MarketCap < 0 {
		return Errorf(EINVALID, "company market cap must not be negative")
	}
	return nil
}

// ScrapeResult is the output of a complete run.
type ScrapeResult struct {
	// Companies are in fetch order, not rank order.
	Companies []*Company `json:"companies"`

	// ExtractedAt is captured once at the start of the run.
	ExtractedAt time.Time `json:"extractedAt"`
}

// SortCompanies returns a copy of companies ordered by ascending rank.
// Companies sharing a rank keep their relative order.
func SortCompanies(companies []*Company) []*Company {
	sorted := slices.Clone(companies)
	slices.SortStableFunc(sorted, func(a, b *Company) int {
		return cmp.Compare(a.Rank, b.Rank)
	})
	return sorted
}
