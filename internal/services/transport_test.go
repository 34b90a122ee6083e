package services

import (
	"context"
	"testing"

	"github.com/agrilink/agrifinance-backend/internal/views"
)

func TestTransportGateway_Book(t *testing.T) {
	inv := &captureInvalidator{}
	g := NewTransportGateway(0, &seqGen{next: 140}, inv)

	receipt, err := g.Book(context.Background(), BookingRequest{
		ServiceID:        "ts-7",
		PickupLocation:   "Mzuzu",
		DeliveryLocation: "Lilongwe",
		CargoDescription: "Maize, 40 bags",
		CargoWeight:      "2000",
		PickupDate:       "2026-09-15",
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if receipt.BookingID != "TB-140" {
		t.Fatalf("BookingID = %q, want TB-140", receipt.BookingID)
	}

	got := inv.last(t)
	if len(got) != 1 || got[0] != views.Transport {
		t.Fatalf("invalidated %v, want [%s]", got, views.Transport)
	}
}

func TestTransportGateway_AbandonedRequest(t *testing.T) {
	inv := &captureInvalidator{}
	g := NewTransportGateway(0, &seqGen{}, inv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Book(ctx, BookingRequest{}); err == nil {
		t.Fatalf("expected error for abandoned request")
	}
	if len(inv.batches) != 0 {
		t.Fatalf("abandoned request must not publish invalidations")
	}
}
