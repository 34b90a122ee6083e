// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// These constants are the stable `code` values carried by ErrorResponse (see
// response.go). Generic codes mirror common HTTP status semantics; the
// simulated gateways themselves never emit a code: their single failure
// kind is the uniform {success:false, message} record.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
