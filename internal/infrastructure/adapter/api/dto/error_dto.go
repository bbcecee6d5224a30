package dto

// ErrorResponse is the uniform error body returned by every ledger endpoint.
// Code carries the numeric ledger error code, not the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
