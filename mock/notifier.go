package mock

import (
	"context"

	"github.com/fwojciec/marketcap"
)

var _ marketcap.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of marketcap.Notifier.
type Notifier struct {
	NotifyFn func(ctx context.Context, path string, rowCount int) bool
}

func (n *Notifier) Notify(ctx context.Context, path string, rowCount int) bool {
	return n.NotifyFn(ctx, path, rowCount)
}
