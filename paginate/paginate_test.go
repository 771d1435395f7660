package paginate_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/marketcap"
	"github.com/fwojciec/marketcap/mock"
	"github.com/fwojciec/marketcap/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://example.com/telecom/"

func TestPageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		page int
		want string
	}{
		{name: "first page is bare URL", base: baseURL, page: 1, want: baseURL},
		{name: "second page adds query", base: baseURL, page: 2, want: baseURL + "?page=2"},
		{name: "keeps existing query", base: baseURL + "?lang=fr", page: 3, want: baseURL + "?lang=fr&page=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := paginate.PageURL(tt.base, tt.page)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageURL_InvalidBase(t *testing.T) {
	t.Parallel()

	_, err := paginate.PageURL("://bad", 2)

	require.Error(t, err)
	assert.Equal(t, marketcap.EINVALID, marketcap.ErrorCode(err))
}

// pageFetcher serves "page-N" bodies and records requested URLs.
func pageFetcher(urls *[]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			*urls = append(*urls, url)
			page := 1
			if i := strings.Index(url, "page="); i >= 0 {
				page, _ = strconv.Atoi(url[i+len("page="):])
			}
			return fmt.Sprintf("page-%d", page), nil
		},
		CloseFn: func() error { return nil },
	}
}

// rowsPerPage returns an extractor yielding the given ranks for each page body.
func rowsPerPage(pages map[string][]int) *mock.Extractor {
	return &mock.Extractor{
		ExtractFn: func(html string) ([]*marketcap.Company, error) {
			var out []*marketcap.Company
			for _, rank := range pages[html] {
				out = append(out, &marketcap.Company{Rank: rank, Name: html})
			}
			return out, nil
		},
	}
}

func ranks(companies []*marketcap.Company) []int {
	out := make([]int, 0, len(companies))
	for _, c := range companies {
		out = append(out, c.Rank)
	}
	return out
}

func TestPaginator_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("stops at first empty page", func(t *testing.T) {
		t.Parallel()

		var urls []string
		p := &paginate.Paginator{
			Fetcher: pageFetcher(&urls),
			Extractor: rowsPerPage(map[string][]int{
				"page-1": {3, 1},
				"page-2": {2},
				"page-4": {4},
			}),
			BaseURL:  baseURL,
			MaxPages: 20,
		}

		companies, err := p.Scrape(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{baseURL, baseURL + "?page=2", baseURL + "?page=3"}, urls)
		// Fetch order, not rank order
		assert.Equal(t, []int{3, 1, 2}, ranks(companies))
	})

	t.Run("stops at page ceiling", func(t *testing.T) {
		t.Parallel()

		var urls []string
		p := &paginate.Paginator{
			Fetcher: pageFetcher(&urls),
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]*marketcap.Company, error) {
					return []*marketcap.Company{{Rank: 1}}, nil
				},
			},
			BaseURL:  baseURL,
			MaxPages: 2,
		}

		companies, err := p.Scrape(context.Background())

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Len(t, companies, 2)
	})

	t.Run("defaults ceiling when not positive", func(t *testing.T) {
		t.Parallel()

		var urls []string
		p := &paginate.Paginator{
			Fetcher: pageFetcher(&urls),
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]*marketcap.Company, error) {
					return []*marketcap.Company{{Rank: 1}}, nil
				},
			},
			BaseURL: baseURL,
		}

		_, err := p.Scrape(context.Background())

		require.NoError(t, err)
		assert.Len(t, urls, marketcap.DefaultMaxPages)
	})

	t.Run("empty first page yields no companies", func(t *testing.T) {
		t.Parallel()

		var urls []string
		p := &paginate.Paginator{
			Fetcher:   pageFetcher(&urls),
			Extractor: rowsPerPage(nil),
			BaseURL:   baseURL,
			MaxPages:  20,
		}

		companies, err := p.Scrape(context.Background())

		require.NoError(t, err)
		assert.Empty(t, companies)
		assert.Equal(t, []string{baseURL}, urls)
	})

	t.Run("fetch failure aborts with no companies", func(t *testing.T) {
		t.Parallel()

		calls := 0
		p := &paginate.Paginator{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					calls++
					if calls == 2 {
						return "", marketcap.Errorf(marketcap.EUNAVAILABLE, "HTTP 503 for %s", url)
					}
					return "page", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]*marketcap.Company, error) {
					return []*marketcap.Company{{Rank: 1}}, nil
				},
			},
			BaseURL:  baseURL,
			MaxPages: 20,
		}

		companies, err := p.Scrape(context.Background())

		require.Error(t, err)
		assert.Nil(t, companies)
		assert.Equal(t, 2, calls)
		assert.Contains(t, err.Error(), "fetching page 2")
		assert.Equal(t, marketcap.EUNAVAILABLE, marketcap.ErrorCode(err))
	})

	t.Run("extract failure aborts", func(t *testing.T) {
		t.Parallel()

		var urls []string
		p := &paginate.Paginator{
			Fetcher: pageFetcher(&urls),
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]*marketcap.Company, error) {
					return nil, marketcap.Errorf(marketcap.EINVALID, "failed to parse HTML")
				},
			},
			BaseURL:  baseURL,
			MaxPages: 20,
		}

		_, err := p.Scrape(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "extracting page 1")
	})

	t.Run("waits on limiter before each fetch", func(t *testing.T) {
		t.Parallel()

		var urls []string
		waits := 0
		p := &paginate.Paginator{
			Fetcher: pageFetcher(&urls),
			Extractor: rowsPerPage(map[string][]int{
				"page-1": {1},
				"page-2": {2},
			}),
			BaseURL:  baseURL,
			MaxPages: 20,
			Limiter: &mock.Limiter{
				WaitFn: func(ctx context.Context) error {
					waits++
					return nil
				},
			},
		}

		_, err := p.Scrape(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, waits)
		assert.Len(t, urls, 3)
	})

	t.Run("limiter error aborts", func(t *testing.T) {
		t.Parallel()

		var urls []string
		p := &paginate.Paginator{
			Fetcher:   pageFetcher(&urls),
			Extractor: rowsPerPage(nil),
			BaseURL:   baseURL,
			Limiter: &mock.Limiter{
				WaitFn: func(ctx context.Context) error {
					return context.Canceled
				},
			},
		}

		_, err := p.Scrape(context.Background())

		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, urls)
	})

	t.Run("reports progress per page", func(t *testing.T) {
		t.Parallel()

		var urls []string
		var events []marketcap.PageProgress
		p := &paginate.Paginator{
			Fetcher: pageFetcher(&urls),
			Extractor: rowsPerPage(map[string][]int{
				"page-1": {1, 2},
				"page-2": {3},
			}),
			BaseURL:  baseURL,
			MaxPages: 20,
			Progress: func(e marketcap.PageProgress) {
				events = append(events, e)
			},
		}

		_, err := p.Scrape(context.Background())

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, marketcap.PageProgress{Page: 1, URL: baseURL, Rows: 2, Total: 2}, events[0])
		assert.Equal(t, marketcap.PageProgress{Page: 2, URL: baseURL + "?page=2", Rows: 1, Total: 3}, events[1])
	})

	t.Run("warns when a page repeats earlier content", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		p := &paginate.Paginator{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "same body", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]*marketcap.Company, error) {
					return []*marketcap.Company{{Rank: 1}}, nil
				},
			},
			BaseURL:  baseURL,
			MaxPages: 2,
			Logger:   slog.New(slog.NewTextHandler(&buf, nil)),
		}

		companies, err := p.Scrape(context.Background())

		require.NoError(t, err)
		// The warning does not change termination
		assert.Len(t, companies, 2)
		assert.Contains(t, buf.String(), "page repeats earlier content")
		assert.Contains(t, buf.String(), "page=2")
	})
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first wait is immediate", func(t *testing.T) {
		t.Parallel()

		l := paginate.NewLimiter(0.5)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background()))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("second wait honors cancellation", func(t *testing.T) {
		t.Parallel()

		l := paginate.NewLimiter(0.1)
		require.NoError(t, l.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := l.Wait(ctx)
		require.Error(t, err)
	})
}
