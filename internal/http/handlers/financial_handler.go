// Financial service HTTP handlers.
//
// This file exposes the simulated financial-service actions:
//   - POST /financial-services/applications  (apply for a service)
//   - POST /financial-services/payments      (pay against a loan)
//
// Payloads are string-keyed field bags; fields are extracted as submitted,
// without type or range checks.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrilink/agrifinance-backend/internal/services"
)

// ApplyFinancialServiceRequest is the application payload.
type ApplyFinancialServiceRequest struct {
	ServiceID string `form:"serviceId" json:"serviceId" example:"loan-1"`
	Amount    string `form:"amount"    json:"amount"    example:"500"`
	Purpose   string `form:"purpose"   json:"purpose"   example:"seed"`
}

// ApplyFinancialServiceResponse confirms a submitted application.
type ApplyFinancialServiceResponse struct {
	Success       bool   `json:"success"       example:"true"`
	Message       string `json:"message"       example:"Application submitted successfully"`
	ApplicationID string `json:"applicationId" example:"FA-2371"`
}

// MakePaymentRequest is the loan-payment payload.
type MakePaymentRequest struct {
	LoanID string `form:"loanId" json:"loanId" example:"loan-1"`
	Amount string `form:"amount" json:"amount" example:"120"`
}

// MakePaymentResponse confirms a processed payment.
type MakePaymentResponse struct {
	Success       bool   `json:"success"       example:"true"`
	Message       string `json:"message"       example:"Payment processed successfully"`
	TransactionID string `json:"transactionId" example:"P-812"`
}

// ApplyFinancialService godoc
// @ID          applyFinancialService
// @Summary     Apply for a financial service
// @Description Simulates submitting a loan, insurance, or savings application and returns its reference.
// @Tags        Financial
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
//
// @Param       body  body  handlers.ApplyFinancialServiceRequest  true  "Application payload"
//
// @Success     200  {object} handlers.ApplyFinancialServiceResponse
// @Failure     500  {object} handlers.OperationResult "Operation failed"
// @Router      /financial-services/applications [post]
func (h *Handlers) ApplyFinancialService(c *gin.Context) {
	var req ApplyFinancialServiceRequest
	// Free-form field bag: a malformed body simply yields zero values.
	_ = c.ShouldBind(&req)

	receipt, err := h.finSvc.Apply(c.Request.Context(), services.ApplicationRequest{
		ServiceID: req.ServiceID,
		Amount:    req.Amount,
		Purpose:   req.Purpose,
	})
	if err != nil {
		failOp(c, "Failed to submit application", err)
		return
	}

	ok(c, http.StatusOK, ApplyFinancialServiceResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: receipt.ApplicationID,
	})
}

// MakePayment godoc
// @ID          makePayment
// @Summary     Make a loan payment
// @Description Simulates processing a payment against a loan and returns its transaction reference.
// @Tags        Financial
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
//
// @Param       body  body  handlers.MakePaymentRequest  true  "Payment payload"
//
// @Success     200  {object} handlers.MakePaymentResponse
// @Failure     500  {object} handlers.OperationResult "Operation failed"
// @Router      /financial-services/payments [post]
func (h *Handlers) MakePayment(c *gin.Context) {
	var req MakePaymentRequest
	_ = c.ShouldBind(&req)

	receipt, err := h.finSvc.Pay(c.Request.Context(), services.PaymentRequest{
		LoanID: req.LoanID,
		Amount: req.Amount,
	})
	if err != nil {
		failOp(c, "Failed to process payment", err)
		return
	}

	ok(c, http.StatusOK, MakePaymentResponse{
		Success:       true,
		Message:       "Payment processed successfully",
		TransactionID: receipt.TransactionID,
	})
}
