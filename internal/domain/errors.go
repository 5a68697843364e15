package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParameter is returned before any upstream call when a required input is absent
	ErrMissingParameter = errors.New("missing required parameters")

	// ErrInvalidParameter marks a present but malformed input
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotAuthenticated means no token is on record for the shop; OAuth must be restarted
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidSignature is returned when the OAuth callback HMAC does not verify
	ErrInvalidSignature = errors.New("invalid callback signature")
)

// UpstreamAuthError is returned when the token endpoint rejects a code exchange
type UpstreamAuthError struct {
	Status int
	Body   string
}

func (e *UpstreamAuthError) Error() string {
	return fmt.Sprintf("token exchange failed: status %d, body: %s", e.Status, e.Body)
}

// UpstreamFetchError aborts a paginated fetch on any non-success page
type UpstreamFetchError struct {
	Status   int
	Resource string
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("Shopify API error: %d", e.Status)
}
