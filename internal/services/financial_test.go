package services

import (
	"context"
	"testing"

	"github.com/agrilink/agrifinance-backend/internal/views"
)

func TestFinancialGateway_Apply(t *testing.T) {
	inv := &captureInvalidator{}
	g := NewFinancialGateway(0, &seqGen{next: 512}, inv)

	receipt, err := g.Apply(context.Background(), ApplicationRequest{
		ServiceID: "loan-1",
		Amount:    "500",
		Purpose:   "seed",
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if receipt.ApplicationID != "FA-512" {
		t.Fatalf("ApplicationID = %q, want FA-512", receipt.ApplicationID)
	}

	got := inv.last(t)
	if len(got) != 1 || got[0] != views.FinancialServices {
		t.Fatalf("invalidated %v, want [%s]", got, views.FinancialServices)
	}
}

func TestFinancialGateway_Pay(t *testing.T) {
	inv := &captureInvalidator{}
	g := NewFinancialGateway(0, &seqGen{next: 7}, inv)

	receipt, err := g.Pay(context.Background(), PaymentRequest{LoanID: "loan-1", Amount: "120"})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if receipt.TransactionID != "P-7" {
		t.Fatalf("TransactionID = %q, want P-7", receipt.TransactionID)
	}

	got := inv.last(t)
	if len(got) != 1 || got[0] != views.FinancialServices {
		t.Fatalf("invalidated %v, want [%s]", got, views.FinancialServices)
	}
}

func TestFinancialGateway_RepeatedCallsAreIndependent(t *testing.T) {
	// No deduplication: identical input yields two successes with fresh ids.
	inv := &captureInvalidator{}
	g := NewFinancialGateway(0, &seqGen{}, inv)
	req := ApplicationRequest{ServiceID: "loan-1", Amount: "500", Purpose: "seed"}

	first, err := g.Apply(context.Background(), req)
	if err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	second, err := g.Apply(context.Background(), req)
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if first.ApplicationID == second.ApplicationID {
		t.Fatalf("expected distinct ids, both %q", first.ApplicationID)
	}
	if len(inv.batches) != 2 {
		t.Fatalf("expected 2 invalidation batches, got %d", len(inv.batches))
	}
}

func TestFinancialGateway_AbandonedRequest(t *testing.T) {
	inv := &captureInvalidator{}
	g := NewFinancialGateway(0, &seqGen{}, inv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Apply(ctx, ApplicationRequest{}); err == nil {
		t.Fatalf("expected error for abandoned request")
	}
	// Nothing was mutated before the result: no invalidation published.
	if len(inv.batches) != 0 {
		t.Fatalf("abandoned request must not publish invalidations, got %v", inv.batches)
	}
}
