package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes of the assembly pipeline. Controllers
// map these onto HTTP statuses; nothing in this package retries.
var (
	// ErrProviderUnavailable means a required API credential is not configured.
	ErrProviderUnavailable = errors.New("provider credential not configured")

	// ErrUpstreamTimeout means an external API call exceeded its deadline.
	ErrUpstreamTimeout = errors.New("upstream request timed out")

	// ErrParse means no parseable JSON object could be extracted from the
	// generator's response text.
	ErrParse = errors.New("could not parse generated content")

	// ErrInvalidDraft means the generated JSON was missing required fields.
	ErrInvalidDraft = errors.New("generated content is incomplete")
)

// UpstreamError carries a non-success response from an external API.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: status %d: %s", e.Provider, e.Status, e.Body)
}
