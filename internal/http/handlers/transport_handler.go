// Transport booking HTTP handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrilink/agrifinance-backend/internal/services"
)

// BookTransportRequest is the transport-booking form payload.
type BookTransportRequest struct {
	ServiceID        string `form:"serviceId"        json:"serviceId"        example:"ts-7"`
	PickupLocation   string `form:"pickupLocation"   json:"pickupLocation"   example:"Mzuzu"`
	DeliveryLocation string `form:"deliveryLocation" json:"deliveryLocation" example:"Lilongwe"`
	CargoDescription string `form:"cargoDescription" json:"cargoDescription" example:"Maize, 40 bags"`
	CargoWeight      string `form:"cargoWeight"      json:"cargoWeight"      example:"2000"`
	PickupDate       string `form:"pickupDate"       json:"pickupDate"       example:"2026-09-15"`
}

// BookTransportResponse confirms a requested booking.
type BookTransportResponse struct {
	Success   bool   `json:"success"   example:"true"`
	Message   string `json:"message"   example:"Transport booking requested successfully"`
	BookingID string `json:"bookingId" example:"TB-140"`
}

// BookTransport godoc
// @ID          bookTransport
// @Summary     Request a transport booking
// @Description Simulates booking cargo transport and returns the booking reference.
// @Tags        Transport
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
//
// @Param       body  body  handlers.BookTransportRequest  true  "Booking payload"
//
// @Success     200  {object} handlers.BookTransportResponse
// @Failure     500  {object} handlers.OperationResult "Operation failed"
// @Router      /transport/bookings [post]
func (h *Handlers) BookTransport(c *gin.Context) {
	var req BookTransportRequest
	_ = c.ShouldBind(&req)

	receipt, err := h.transportSvc.Book(c.Request.Context(), services.BookingRequest{
		ServiceID:        req.ServiceID,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		CargoDescription: req.CargoDescription,
		CargoWeight:      req.CargoWeight,
		PickupDate:       req.PickupDate,
	})
	if err != nil {
		failOp(c, "Failed to request transport booking", err)
		return
	}

	ok(c, http.StatusOK, BookTransportResponse{
		Success:   true,
		Message:   "Transport booking requested successfully",
		BookingID: receipt.BookingID,
	})
}
