// Package goquery implements listing table extraction using goquery.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/marketcap"
	"golang.org/x/net/html"
)

// Ensure TableExtractor implements marketcap.Extractor at compile time.
var _ marketcap.Extractor = (*TableExtractor)(nil)

// TableExtractor reads companies from the first table of a listing page.
type TableExtractor struct {
	layout marketcap.Layout
}

// NewTableExtractor creates a TableExtractor reading cells at the layout's
// column positions.
func NewTableExtractor(layout marketcap.Layout) *TableExtractor {
	return &TableExtractor{layout: layout}
}

// Extract parses the page and returns one company per readable body row.
// Rows with too few cells, a missing or non-positive rank, or an
// unparseable market cap are skipped.
func (e *TableExtractor) Extract(page string) ([]*marketcap.Company, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, marketcap.Errorf(marketcap.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, nil
	}

	var companies []*marketcap.Company
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if c := e.extractRow(tr); c != nil {
			companies = append(companies, c)
		}
	})

	return companies, nil
}

func (e *TableExtractor) extractRow(tr *goquery.Selection) *marketcap.Company {
	cells := tr.Find("td")
	if cells.Length() < e.layout.MinCells() {
		return nil
	}

	rankText := cellText(cells.Eq(e.layout.Rank), "")
	if rankText == "" {
		return nil
	}
	rank, err := strconv.Atoi(rankText)
	if err != nil {
		return nil
	}

	capValue, ok := marketcap.ParseMarketCap(cellText(cells.Eq(e.layout.MarketCap), " "))
	if !ok {
		return nil
	}

	country := cellText(cells.Eq(e.layout.Country), " ")
	if e.layout.StripFlag {
		country = marketcap.CleanCountry(country)
	}

	c := &marketcap.Company{
		Rank:      rank,
		Name:      marketcap.CleanName(cellText(cells.Eq(e.layout.Name), " ")),
		MarketCap: capValue,
		Country:   country,
	}
	if c.Validate() != nil {
		return nil
	}
	return c
}

// cellText collects the cell's text nodes in document order, trims each,
// drops the empty ones, and joins the rest with sep.
func cellText(sel *goquery.Selection, sep string) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}
