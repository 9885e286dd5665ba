package octo

import (
	"fmt"
	"net/http"
)

// FailureKind classifies per-profile creation failures. They are never
// fatal to the batch: the driver records them and moves on.
type FailureKind string

const (
	// KindAuth covers rejected or missing API tokens (401/403).
	KindAuth FailureKind = "auth"
	// KindRateLimit covers 429 responses.
	KindRateLimit FailureKind = "ratelimit"
	// KindValidation covers payloads the API refused (400/422).
	KindValidation FailureKind = "validation"
	// KindServer covers 5xx responses.
	KindServer FailureKind = "server"
	// KindNetwork covers transport-level failures before any
	// HTTP status was received.
	KindNetwork FailureKind = "network"
)

// APIError is a typed creation failure reported by the Octo API or the
// transport underneath it.
type APIError struct {
	// Kind is the failure class.
	Kind FailureKind
	// Status is the HTTP status code, or 0 for network failures.
	Status int
	// Body is a truncated copy of the response body, for diagnostics.
	Body string
	// Err is the underlying transport error, if any.
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Err.Error())
	}
	if e.Body != "" {
		return fmt.Sprintf("%s error (HTTP %d): %s", e.Kind, e.Status, e.Body)
	}
	return fmt.Sprintf("%s error (HTTP %d)", e.Kind, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// classifyStatus maps an HTTP error status to a failure kind.
func classifyStatus(status int) FailureKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}
