package marketcap

import "context"

// Fetcher retrieves the HTML of a listing page.
type Fetcher interface {
	// Fetch requests the URL and returns the response body.
	// Any transport failure, including a non-success status or an
	// expired timeout, is returned as an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
