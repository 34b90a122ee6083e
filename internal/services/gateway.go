// Package services implements the action layer of the agrifinance
// marketplace. Every operation is a simulation gateway: it waits a fixed
// artificial delay standing in for a backend round trip, publishes the view
// paths made stale by the action, and fabricates a confirmation identifier.
// Nothing is persisted; the relational schema in internal/domain documents
// what a future persistence collaborator will store for each field set.
package services

import (
	"context"
	"time"
)

// simulate blocks for the configured backend delay. It honors ctx so an
// abandoned request stops waiting; the fabricated result is simply never
// produced, and no compensating action is needed because nothing was
// mutated. A non-positive delay only checks for prior cancellation.
func simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
