package experiments

import (
	"context"
	"time"
)

// waitInterval blocks for the fixed duration d, or until ctx is done. It is
// the minimum inter-call spacing inserted before each disassociate call
// during a forced delete; it is deliberately a fixed spacing, not an
// adaptive backoff.
func waitInterval(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
