package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/marketcap/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.001)

	// First sighting is not a repeat
	assert.False(t, f.Seen("<table><tr><td>1</td></tr></table>"))

	// Same body again is a repeat
	assert.True(t, f.Seen("<table><tr><td>1</td></tr></table>"))

	// Different body is not
	assert.False(t, f.Seen("<table><tr><td>2</td></tr></table>"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.001)

	// Empty filter should have count near 0
	assert.Equal(t, uint(0), f.EstimatedCount())

	for i := range 3 {
		f.Seen(fmt.Sprintf("page %d", i))
	}
	// Repeats do not add to the count
	f.Seen("page 0")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bloom.Fingerprint("abc"), bloom.Fingerprint("abc"))
	assert.NotEqual(t, bloom.Fingerprint("abc"), bloom.Fingerprint("abd"))
	assert.NotEmpty(t, bloom.Fingerprint(""))
}
