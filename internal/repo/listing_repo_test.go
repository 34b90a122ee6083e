package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/agrilink/agrifinance-backend/internal/domain"
)

func TestCreateAndGetListing(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seller := seedUser(t, db, domain.RoleFarmer)
	product := seedProduct(t, db)

	l, err := CreateListing(ctx, db, seller.ID, product.ID, 200, "kg", 350, "Lilongwe", "Freshly harvested")
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	if l.ID == "" || l.Status != domain.ListingActive {
		t.Fatalf("unexpected listing: %+v", l)
	}

	got, err := GetListing(ctx, db, l.ID)
	if err != nil {
		t.Fatalf("GetListing: %v", err)
	}
	if got.SellerID != seller.ID || got.PricePerUnit != 350 || got.Quantity != 200 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestGetListing_Missing(t *testing.T) {
	db := openTestDB(t)

	_, err := GetListing(context.Background(), db, uuid.NewString())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListActiveListings_OrderAndFilter(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seller := seedUser(t, db, domain.RoleFarmer)
	product := seedProduct(t, db)

	first, err := CreateListing(ctx, db, seller.ID, product.ID, 10, "kg", 100, "Mzuzu", "")
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	second, err := CreateListing(ctx, db, seller.ID, product.ID, 20, "kg", 200, "Zomba", "")
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	if err := MarkListingSold(ctx, db, first.ID); err != nil {
		t.Fatalf("MarkListingSold: %v", err)
	}

	out, err := ListActiveListings(ctx, db)
	if err != nil {
		t.Fatalf("ListActiveListings: %v", err)
	}
	if len(out) != 1 || out[0].ID != second.ID {
		t.Fatalf("active listings = %+v", out)
	}
}

func TestMarkListingSold_Idempotence(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seller := seedUser(t, db, domain.RoleFarmer)
	product := seedProduct(t, db)

	l, err := CreateListing(ctx, db, seller.ID, product.ID, 10, "kg", 100, "Mzuzu", "")
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	if err := MarkListingSold(ctx, db, l.ID); err != nil {
		t.Fatalf("first sale: %v", err)
	}
	// Already sold: no active row matches.
	if err := MarkListingSold(ctx, db, l.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second sale err = %v, want ErrNotFound", err)
	}
}

func TestCreateTransaction_ComputesTotal(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seller := seedUser(t, db, domain.RoleFarmer)
	buyer := seedUser(t, db, domain.RoleBuyer)
	product := seedProduct(t, db)

	l, err := CreateListing(ctx, db, seller.ID, product.ID, 50, "kg", 400, "Blantyre", "")
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}

	tx, err := CreateTransaction(ctx, db, l.ID, buyer.ID, seller.ID, 10, 400)
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if tx.TotalAmount != 4000 {
		t.Fatalf("TotalAmount = %v, want 4000", tx.TotalAmount)
	}
	if tx.Status != domain.TransactionPending {
		t.Fatalf("Status = %q", tx.Status)
	}
}
