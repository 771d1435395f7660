package marketcap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/marketcap"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := marketcap.Errorf(marketcap.EINVALID, "unknown layout %q", "wide")

	assert.Equal(t, marketcap.EINVALID, marketcap.ErrorCode(err))
	assert.Equal(t, "unknown layout \"wide\"", marketcap.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching page 2: %w", marketcap.Errorf(marketcap.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, marketcap.EUNAVAILABLE, marketcap.ErrorCode(err))
	assert.Equal(t, "HTTP 503", marketcap.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, marketcap.EINTERNAL, marketcap.ErrorCode(err))
	assert.Equal(t, "Internal error", marketcap.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, marketcap.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, marketcap.ErrorMessage(nil))
}
