package driven

import "context"

// TokenProvider provides bearer tokens for authenticated API calls.
// Implementations handle caching and refresh transparently; the first
// acquisition may block on interactive user action (device-code flow).
type TokenProvider interface {
	// GetToken returns a valid access token.
	// If the cached token is expired, it is refreshed automatically.
	GetToken(ctx context.Context) (string, error)
}
