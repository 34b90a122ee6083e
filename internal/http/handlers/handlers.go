// Action handler wiring.
//
// Handlers are transport-thin: they extract payload fields with type
// coercion only (no validation, matching the action-layer contract), call
// the simulation gateways, and translate receipts into the uniform result
// records. Gateways are consumed through interfaces so tests can substitute
// deterministic fakes.
package handlers

import (
	"context"

	"github.com/agrilink/agrifinance-backend/internal/services"
)

// FinancialService defines the financial gateway operations consumed by
// HTTP handlers.
//
// Implementations must be safe for concurrent use and must honor the
// provided context during the simulated delay.
type FinancialService interface {
	// Apply submits a financial-service application.
	Apply(ctx context.Context, req services.ApplicationRequest) (*services.ApplicationReceipt, error)
	// Pay records a loan payment.
	Pay(ctx context.Context, req services.PaymentRequest) (*services.PaymentReceipt, error)
}

// MarketplaceService defines the listing and purchase operations consumed
// by HTTP handlers.
type MarketplaceService interface {
	// CreateListing publishes a product listing draft.
	CreateListing(ctx context.Context, req services.ListingRequest) (*services.ListingReceipt, error)
	// Purchase buys quantity units of a product.
	Purchase(ctx context.Context, productID, quantity int) (*services.PurchaseReceipt, error)
}

// TransportService defines the transport-booking operation consumed by
// HTTP handlers.
type TransportService interface {
	// Book requests a cargo transport booking.
	Book(ctx context.Context, req services.BookingRequest) (*services.BookingReceipt, error)
}

// Handlers groups the HTTP endpoints of the action layer.
type Handlers struct {
	finSvc       FinancialService
	marketSvc    MarketplaceService
	transportSvc TransportService
}

// New constructs a Handlers instance bound to the given gateways.
func New(fin FinancialService, market MarketplaceService, transport TransportService) *Handlers {
	return &Handlers{finSvc: fin, marketSvc: market, transportSvc: transport}
}
