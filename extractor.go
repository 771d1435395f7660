package marketcap

// Layout maps the listing table's cell positions to company fields.
// Indices are zero-based positions among a row's td cells.
type Layout struct {
	Rank      int
	Name      int
	MarketCap int
	Country   int

	// StripFlag removes a leading flag emoji from the country cell.
	StripFlag bool
}

// PlainLayout matches the four-column table: rank, name, market cap, country.
var PlainLayout = Layout{Rank: 0, Name: 1, MarketCap: 2, Country: 3}

// ExtendedLayout matches the wide table: rank, name, market cap, price,
// today's change, 30-day price chart, country with a flag emoji.
var ExtendedLayout = Layout{Rank: 0, Name: 1, MarketCap: 2, Country: 6, StripFlag: true}

// MinCells returns the number of cells a row needs to be read.
func (l Layout) MinCells() int {
	return max(l.Rank, l.Name, l.MarketCap, l.Country) + 1
}

// Validate returns an error if the layout references a negative column.
func (l Layout) Validate() error {
	if min(l.Rank, l.Name, l.MarketCap, l.Country) < 0 {
		return Errorf(EINVALID, "layout column indices must not be negative")
	}
	return nil
}

// LayoutByName returns a built-in layout.
// Returns EINVALID for an unknown name.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "plain", "":
		return PlainLayout, nil
	case "extended":
		return ExtendedLayout, nil
	}
	return Layout{}, Errorf(EINVALID, "unknown layout %q", name)
}

// Extractor parses one listing page into companies.
type Extractor interface {
	// Extract returns the companies found in the page's first table.
	// A page without a table yields no companies and no error.
	// Rows that cannot be read are skipped, never returned partially.
	Extract(html string) ([]*Company, error)
}
