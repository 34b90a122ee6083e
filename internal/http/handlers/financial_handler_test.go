package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/agrilink/agrifinance-backend/internal/services"
)

func newFinancialRouter(fin FinancialService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(fin, stubMarketplace{}, stubTransport{})
	r := gin.New()
	r.POST("/financial-services/applications", h.ApplyFinancialService)
	r.POST("/financial-services/payments", h.MakePayment)
	return r
}

func TestApplyFinancialService_Success(t *testing.T) {
	var got services.ApplicationRequest
	fin := stubFinancial{apply: func(ctx context.Context, req services.ApplicationRequest) (*services.ApplicationReceipt, error) {
		got = req
		return &services.ApplicationReceipt{ApplicationID: "FA-2371"}, nil
	}}
	r := newFinancialRouter(fin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/financial-services/applications",
		bytes.NewBufferString(`{"serviceId":"loan-1","amount":"500","purpose":"seed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if got.ServiceID != "loan-1" || got.Amount != "500" || got.Purpose != "seed" {
		t.Fatalf("fields not passed through: %+v", got)
	}

	var resp ApplyFinancialServiceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !resp.Success {
		t.Fatalf("success=false")
	}
	if resp.Message != "Application submitted successfully" {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.ApplicationID != "FA-2371" {
		t.Fatalf("applicationId = %q", resp.ApplicationID)
	}
}

func TestApplyFinancialService_FormPayload(t *testing.T) {
	var got services.ApplicationRequest
	fin := stubFinancial{apply: func(ctx context.Context, req services.ApplicationRequest) (*services.ApplicationReceipt, error) {
		got = req
		return &services.ApplicationReceipt{ApplicationID: "FA-1"}, nil
	}}
	r := newFinancialRouter(fin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/financial-services/applications",
		strings.NewReader("serviceId=ins-2&amount=900&purpose=crop+insurance"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if got.ServiceID != "ins-2" || got.Amount != "900" || got.Purpose != "crop insurance" {
		t.Fatalf("form fields not passed through: %+v", got)
	}
}

func TestApplyFinancialService_MalformedBodyStillSucceeds(t *testing.T) {
	// No validation: a malformed body degrades to empty fields, not an error.
	var got services.ApplicationRequest
	fin := stubFinancial{apply: func(ctx context.Context, req services.ApplicationRequest) (*services.ApplicationReceipt, error) {
		got = req
		return &services.ApplicationReceipt{ApplicationID: "FA-2"}, nil
	}}
	r := newFinancialRouter(fin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/financial-services/applications",
		bytes.NewBufferString(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if got.ServiceID != "" || got.Amount != "" || got.Purpose != "" {
		t.Fatalf("expected zero-valued fields, got %+v", got)
	}
}

func TestApplyFinancialService_FaultIsShaped(t *testing.T) {
	fin := stubFinancial{apply: func(context.Context, services.ApplicationRequest) (*services.ApplicationReceipt, error) {
		return nil, errors.New("backend unreachable")
	}}
	r := newFinancialRouter(fin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/financial-services/applications",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var resp OperationResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Success {
		t.Fatalf("success must be false")
	}
	if resp.Message != "Failed to submit application" {
		t.Fatalf("message = %q", resp.Message)
	}
	// The raw fault must not leak into the response body.
	if strings.Contains(w.Body.String(), "unreachable") {
		t.Fatalf("raw error leaked: %s", w.Body.String())
	}
}

func TestMakePayment_Success(t *testing.T) {
	var got services.PaymentRequest
	fin := stubFinancial{pay: func(ctx context.Context, req services.PaymentRequest) (*services.PaymentReceipt, error) {
		got = req
		return &services.PaymentReceipt{TransactionID: "P-812"}, nil
	}}
	r := newFinancialRouter(fin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/financial-services/payments",
		bytes.NewBufferString(`{"loanId":"loan-1","amount":"120"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if got.LoanID != "loan-1" || got.Amount != "120" {
		t.Fatalf("fields not passed through: %+v", got)
	}

	var resp MakePaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !resp.Success || resp.Message != "Payment processed successfully" || resp.TransactionID != "P-812" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestMakePayment_FaultIsShaped(t *testing.T) {
	fin := stubFinancial{pay: func(context.Context, services.PaymentRequest) (*services.PaymentReceipt, error) {
		return nil, context.Canceled
	}}
	r := newFinancialRouter(fin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/financial-services/payments",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var resp OperationResult
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if resp.Success || resp.Message != "Failed to process payment" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
