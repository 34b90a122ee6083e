// Marketplace gateway: simulated product-listing creation and purchase.
package services

import (
	"context"
	"time"

	"github.com/agrilink/agrifinance-backend/internal/ids"
	"github.com/agrilink/agrifinance-backend/internal/views"
)

// purchasePrefix tags purchase transaction references ("T-1234").
const purchasePrefix = "T"

// ListingRequest carries the fields extracted from a sell-products form.
// All values are free-form strings; no stock, price, or location validation
// is performed.
type ListingRequest struct {
	Product     string
	Quantity    string
	Unit        string
	Price       string
	Location    string
	Description string
}

// ListingReceipt confirms a created listing. ID is a bare number in place
// of a persisted primary key.
type ListingReceipt struct {
	ID int
}

// PurchaseReceipt confirms a simulated purchase.
type PurchaseReceipt struct {
	TransactionID string
}

// MarketplaceGateway simulates the listing and purchase backend. Listing
// creation marks both the sell-side and buy-side views stale; a purchase
// marks the buy-side view and the home page stale.
//
// Safe for concurrent use; the gateway holds no mutable state.
type MarketplaceGateway struct {
	Delay time.Duration
	IDs   ids.Generator
	Views views.Invalidator
}

// NewMarketplaceGateway constructs a MarketplaceGateway.
func NewMarketplaceGateway(delay time.Duration, gen ids.Generator, inv views.Invalidator) *MarketplaceGateway {
	return &MarketplaceGateway{Delay: delay, IDs: gen, Views: inv}
}

// CreateListing accepts a listing draft as-is and returns its placeholder
// listing number.
func (g *MarketplaceGateway) CreateListing(ctx context.Context, req ListingRequest) (*ListingReceipt, error) {
	if err := simulate(ctx, g.Delay); err != nil {
		return nil, err
	}
	g.Views.Invalidate(views.SellProducts, views.BuyProducts)
	return &ListingReceipt{ID: g.IDs.Numeric()}, nil
}

// Purchase simulates buying quantity units of the product identified by
// productID. No ownership or stock check is made: there is no catalogue to
// check against yet.
func (g *MarketplaceGateway) Purchase(ctx context.Context, productID, quantity int) (*PurchaseReceipt, error) {
	if err := simulate(ctx, g.Delay); err != nil {
		return nil, err
	}
	g.Views.Invalidate(views.BuyProducts, views.Home)
	return &PurchaseReceipt{TransactionID: g.IDs.Ref(purchasePrefix)}, nil
}
