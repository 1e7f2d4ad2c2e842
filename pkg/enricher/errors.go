package enricher

import "errors"

// Typed webhook failures. Auth and bad-request failures must surface to
// the user; the rest are fallback-eligible (see IsFallbackEligible).
var (
	ErrAuthFailed      = errors.New("authentication failed: invalid or expired token")
	ErrBadRequest      = errors.New("enrichment service rejected the request")
	ErrNotFound        = errors.New("enrichment webhook endpoint not found, check that the workflow is active")
	ErrStatus          = errors.New("enrichment webhook returned an error status")
	ErrEmptyResponse   = errors.New("enrichment webhook returned an empty response")
	ErrInvalidResponse = errors.New("enrichment webhook returned a response that is not valid JSON")
	ErrUnreachable     = errors.New("enrichment webhook is unreachable")
)

// IsFallbackEligible reports whether the failure should trigger local
// enrichment instead of surfacing. Network, malformed-response and
// server-side failures qualify; auth failures and rejected requests never
// do, so an expired session is not papered over by a silent insert.
func IsFallbackEligible(err error) bool {
	switch {
	case errors.Is(err, ErrAuthFailed), errors.Is(err, ErrBadRequest):
		return false
	case errors.Is(err, ErrUnreachable),
		errors.Is(err, ErrEmptyResponse),
		errors.Is(err, ErrInvalidResponse),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrStatus):
		return true
	}
	return false
}
