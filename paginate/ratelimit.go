package paginate

import (
	"github.com/fwojciec/marketcap"
	"golang.org/x/time/rate"
)

var _ marketcap.Limiter = (*rate.Limiter)(nil)

// NewLimiter creates a token bucket allowing rps page requests per second
// with a burst of 1. The first request is never delayed.
func NewLimiter(rps float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), 1)
}
