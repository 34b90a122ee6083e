package views

import (
	"sync"
	"testing"
)

func TestRegistry_InvalidateMarksStale(t *testing.T) {
	r := NewRegistry()

	if r.IsStale(BuyProducts) {
		t.Fatalf("fresh registry must have no stale views")
	}

	r.Invalidate(SellProducts, BuyProducts)

	if !r.IsStale(SellProducts) || !r.IsStale(BuyProducts) {
		t.Fatalf("both published views must be stale")
	}
	if r.IsStale(Home) {
		t.Fatalf("unpublished view must not be stale")
	}
}

func TestRegistry_StaleSinceAndRevalidate(t *testing.T) {
	r := NewRegistry()
	r.Invalidate(FinancialServices)

	if _, ok := r.StaleSince(FinancialServices); !ok {
		t.Fatalf("expected pending invalidation")
	}

	r.Revalidate(FinancialServices)
	if r.IsStale(FinancialServices) {
		t.Fatalf("revalidated view must no longer be stale")
	}
	if _, ok := r.StaleSince(FinancialServices); ok {
		t.Fatalf("revalidated view must have no timestamp")
	}
}

func TestRegistry_StaleListsAllPending(t *testing.T) {
	r := NewRegistry()
	r.Invalidate(BuyProducts, Home)
	r.Invalidate(BuyProducts) // re-publishing is idempotent for membership

	got := r.Stale()
	if len(got) != 2 {
		t.Fatalf("Stale() = %v, want 2 entries", got)
	}
	seen := map[string]bool{}
	for _, v := range got {
		seen[v] = true
	}
	if !seen[BuyProducts] || !seen[Home] {
		t.Fatalf("Stale() = %v, missing expected views", got)
	}
}

func TestRegistry_ConcurrentPublish(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Invalidate(BuyProducts, Home)
			r.IsStale(BuyProducts)
			r.Revalidate(Home)
		}()
	}
	wg.Wait()

	if !r.IsStale(BuyProducts) {
		t.Fatalf("BuyProducts must remain stale after concurrent publishes")
	}
}
