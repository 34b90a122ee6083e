// Transport gateway: simulated cargo-booking requests. Distance and cost
// computation belong to the future transport backend; the gateway accepts
// the booking as submitted.
package services

import (
	"context"
	"time"

	"github.com/agrilink/agrifinance-backend/internal/ids"
	"github.com/agrilink/agrifinance-backend/internal/views"
)

// bookingPrefix tags transport booking references ("TB-1234").
const bookingPrefix = "TB"

// BookingRequest carries the fields extracted from a transport-booking
// form. Free-form strings, no validation.
type BookingRequest struct {
	ServiceID        string
	PickupLocation   string
	DeliveryLocation string
	CargoDescription string
	CargoWeight      string
	PickupDate       string
}

// BookingReceipt confirms a requested booking.
type BookingReceipt struct {
	BookingID string
}

// TransportGateway simulates the transport-booking backend.
//
// Safe for concurrent use; the gateway holds no mutable state.
type TransportGateway struct {
	Delay time.Duration
	IDs   ids.Generator
	Views views.Invalidator
}

// NewTransportGateway constructs a TransportGateway.
func NewTransportGateway(delay time.Duration, gen ids.Generator, inv views.Invalidator) *TransportGateway {
	return &TransportGateway{Delay: delay, IDs: gen, Views: inv}
}

// Book submits a transport-booking request and returns its reference.
func (g *TransportGateway) Book(ctx context.Context, req BookingRequest) (*BookingReceipt, error) {
	if err := simulate(ctx, g.Delay); err != nil {
		return nil, err
	}
	g.Views.Invalidate(views.Transport)
	return &BookingReceipt{BookingID: g.IDs.Ref(bookingPrefix)}, nil
}
