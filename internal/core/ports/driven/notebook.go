package driven

import (
	"context"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
)

// NotebookReader fetches sections and pages from the remote document
// service. Enumeration is lazy: each iterator follows the service's
// pagination cursor internally and issues fresh requests on every
// traversal (iterators are single-pass and not restartable).
type NotebookReader interface {
	// Sections enumerates all sections visible to the authenticated user.
	Sections(ctx context.Context) SectionIterator

	// Pages enumerates all pages belonging to a section.
	Pages(ctx context.Context, sectionID string) PageIterator

	// PageContent fetches the raw HTML content of a page.
	PageContent(ctx context.Context, pageID string) (string, error)
}

// SectionIterator walks a paginated section listing, one item at a time.
// Usage follows the bufio.Scanner pattern: call Next until it returns
// false, then check Err.
type SectionIterator interface {
	// Next advances to the next section, fetching further response
	// pages as needed. It returns false at the end of the listing or
	// on error.
	Next() bool

	// Section returns the current section. Valid only after a call to
	// Next that returned true.
	Section() domain.Section

	// Err returns the error that stopped iteration, if any.
	Err() error
}

// PageIterator walks a paginated page listing for one section.
type PageIterator interface {
	Next() bool
	Page() domain.Page
	Err() error
}
