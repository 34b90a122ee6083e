// Financial service gateway: simulated loan/insurance/savings applications
// and loan payments.
package services

import (
	"context"
	"time"

	"github.com/agrilink/agrifinance-backend/internal/ids"
	"github.com/agrilink/agrifinance-backend/internal/views"
)

// Identifier prefixes handed out by the financial gateway.
const (
	applicationPrefix = "FA"
	paymentPrefix     = "P"
)

// ApplicationRequest carries the fields extracted from a financial-service
// application form. Values are free-form strings: the gateway performs no
// type or range checking and no referential check against a service
// catalogue.
type ApplicationRequest struct {
	ServiceID string
	Amount    string
	Purpose   string
}

// ApplicationReceipt confirms a submitted application.
type ApplicationReceipt struct {
	ApplicationID string
}

// PaymentRequest carries the fields extracted from a loan-payment form.
type PaymentRequest struct {
	LoanID string
	Amount string
}

// PaymentReceipt confirms a processed payment.
type PaymentReceipt struct {
	TransactionID string
}

// FinancialGateway simulates the financial-service backend. Each call waits
// Delay, marks the financial-services view stale, and returns a receipt with
// a generated reference.
//
// Safe for concurrent use; the gateway holds no mutable state.
type FinancialGateway struct {
	Delay time.Duration
	IDs   ids.Generator
	Views views.Invalidator
}

// NewFinancialGateway constructs a FinancialGateway.
func NewFinancialGateway(delay time.Duration, gen ids.Generator, inv views.Invalidator) *FinancialGateway {
	return &FinancialGateway{Delay: delay, IDs: gen, Views: inv}
}

// Apply submits a financial-service application. The request fields are
// accepted as-is; the only failure mode is the caller abandoning the
// request during the simulated delay.
func (g *FinancialGateway) Apply(ctx context.Context, req ApplicationRequest) (*ApplicationReceipt, error) {
	if err := simulate(ctx, g.Delay); err != nil {
		return nil, err
	}
	g.Views.Invalidate(views.FinancialServices)
	return &ApplicationReceipt{ApplicationID: g.IDs.Ref(applicationPrefix)}, nil
}

// Pay records a simulated loan payment against req.LoanID.
func (g *FinancialGateway) Pay(ctx context.Context, req PaymentRequest) (*PaymentReceipt, error) {
	if err := simulate(ctx, g.Delay); err != nil {
		return nil, err
	}
	g.Views.Invalidate(views.FinancialServices)
	return &PaymentReceipt{TransactionID: g.IDs.Ref(paymentPrefix)}, nil
}
