// Package marketcap extracts a ranked table of telecommunications companies
// and their market capitalization from a paginated listing, normalizes the
// values to billions of euros, and writes the result as a CSV or XLSX report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, excelize/, rod/).
package marketcap

// DefaultListingURL is the first page of the telecommunications listing.
const DefaultListingURL = "https://companiesmarketcap.com/fr/telecommunication/" +
	"plus-grandes-entreprises-de-telecommunications-par-capitalisation-boursiere/"

// DefaultMaxPages is the default pagination ceiling.
const DefaultMaxPages = 20

// DefaultTimezone is the zone the capture timestamp is expressed in.
const DefaultTimezone = "Europe/Paris"
