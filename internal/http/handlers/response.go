// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints: the
// structured error envelope for transport-level failures, the uniform
// operation-result envelope produced by the simulated gateways, and helpers
// that keep success and failure shapes consistent across handlers.
//
// Two failure shapes exist on purpose:
//   - ErrorResponse is the transport envelope (bad route, rate limit,
//     rejected input) with a stable machine-readable code.
//   - OperationResult{success:false, message} is the action-layer contract:
//     any internal fault inside a gateway is caught at this boundary and
//     converted to the uniform record, so callers never see a raw fault.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrilink/agrifinance-backend/internal/http/middleware"
)

// ErrorResponse is the transport-level error envelope.
//
// Fields:
//   - RequestID: correlation ID echoed from X-Request-ID, used to match
//     server logs with client-side errors.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Message: a human-readable description safe to display to users.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"bad_request"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"language must be english or chichewa"`
}

// OperationResult is the uniform record every simulated action returns on
// failure, and the base of every success response. Exactly one failure kind
// exists per operation: "operation failed", with a generic per-operation
// message and no error code.
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message" example:"Failed to submit application"`
}

// fail aborts the request with a transport-level error envelope.
//
// Server errors (>=500) are logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failOp converts an internal gateway fault into the uniform
// {success:false, message} record. The underlying error is logged with
// request context and never surfaced to the caller.
func failOp(c *gin.Context, msg string, err error) {
	lg := middleware.LoggerFrom(c)
	lg.Error().Err(err).Str("message", msg).Msg("operation failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, OperationResult{
		Success: false,
		Message: msg,
	})
}

// ok writes a success JSON response with the given status.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
