package mws

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by single-entity lookups (GetOrder, product
// categories, recommendations) when the service reports no matching data.
// Batch lookups never return it; they omit identifiers with no data instead.
var ErrNotFound = errors.New("not found")

// ErrUnknownOperation is returned when an operation name has no entry in the
// endpoint registry. Operation names are case-sensitive literals defined by
// the MWS API.
var ErrUnknownOperation = errors.New("unknown operation")

// ConfigError reports an invalid or missing client configuration field.
// It is returned by New before any request is made.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// ValidationError reports caller input rejected before any network call,
// such as an oversized identifier list or an empty search query.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Reason
}

// APIError reports a non-2xx response from the MWS endpoint. Message carries
// the human-readable text extracted from the ErrorResponse envelope when the
// body contains one, otherwise the raw body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mws: request failed (status %d): %s", e.StatusCode, e.Message)
}
