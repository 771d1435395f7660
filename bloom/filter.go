// Package bloom provides repeated-page detection using Bloom filters.
package bloom

import (
	"strconv"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
)

// Filter remembers page bodies by fingerprint.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected pages
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Fingerprint returns the xxhash of a page body as a hex string.
func Fingerprint(content string) string {
	return strconv.FormatUint(xxhash.Sum64String(content), 16)
}

// Seen reports whether content might have been recorded before, then
// records it. False positives are possible; false negatives are not.
func (f *Filter) Seen(content string) bool {
	fp := Fingerprint(content)
	if f.f.TestString(fp) {
		return true
	}
	f.f.AddString(fp)
	return false
}

// EstimatedCount returns the approximate number of distinct pages recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
