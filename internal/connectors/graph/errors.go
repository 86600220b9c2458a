package graph

import (
	"errors"
	"fmt"
)

// ErrMissingID indicates a listing item without the required "id"
// field. Listings with malformed items fail fast at the boundary.
var ErrMissingID = errors.New("graph: listing item missing id")

// APIError represents a non-success Graph API response.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph: API error %d: %s (URL: %s)", e.StatusCode, e.Body, e.URL)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401
	}
	return false
}

// IsThrottled checks if the error indicates Graph throttling.
func IsThrottled(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}
