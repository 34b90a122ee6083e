package handlers

import (
	"context"

	"github.com/agrilink/agrifinance-backend/internal/services"
)

// ---- gateway stubs shared by the handler tests ----

type stubFinancial struct {
	apply func(ctx context.Context, req services.ApplicationRequest) (*services.ApplicationReceipt, error)
	pay   func(ctx context.Context, req services.PaymentRequest) (*services.PaymentReceipt, error)
}

func (s stubFinancial) Apply(ctx context.Context, req services.ApplicationRequest) (*services.ApplicationReceipt, error) {
	if s.apply != nil {
		return s.apply(ctx, req)
	}
	return &services.ApplicationReceipt{ApplicationID: "FA-0"}, nil
}

func (s stubFinancial) Pay(ctx context.Context, req services.PaymentRequest) (*services.PaymentReceipt, error) {
	if s.pay != nil {
		return s.pay(ctx, req)
	}
	return &services.PaymentReceipt{TransactionID: "P-0"}, nil
}

type stubMarketplace struct {
	create   func(ctx context.Context, req services.ListingRequest) (*services.ListingReceipt, error)
	purchase func(ctx context.Context, productID, quantity int) (*services.PurchaseReceipt, error)
}

func (s stubMarketplace) CreateListing(ctx context.Context, req services.ListingRequest) (*services.ListingReceipt, error) {
	if s.create != nil {
		return s.create(ctx, req)
	}
	return &services.ListingReceipt{}, nil
}

func (s stubMarketplace) Purchase(ctx context.Context, productID, quantity int) (*services.PurchaseReceipt, error) {
	if s.purchase != nil {
		return s.purchase(ctx, productID, quantity)
	}
	return &services.PurchaseReceipt{TransactionID: "T-0"}, nil
}

type stubTransport struct {
	book func(ctx context.Context, req services.BookingRequest) (*services.BookingReceipt, error)
}

func (s stubTransport) Book(ctx context.Context, req services.BookingRequest) (*services.BookingReceipt, error) {
	if s.book != nil {
		return s.book(ctx, req)
	}
	return &services.BookingReceipt{BookingID: "TB-0"}, nil
}
