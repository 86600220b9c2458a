package driven

import "context"

// VectorRecord is one stored entry of the semantic index.
type VectorRecord struct {
	// ID is the stable upsert key (the section ID).
	ID string

	// Text is the normalised section document.
	Text string

	// Embedding is the vector representation of Text.
	Embedding []float32

	// Metadata carries the section name, ID, and corpus file path.
	Metadata map[string]string
}

// VectorStore persists embedding records keyed by ID.
// Backed by SQLite, scoped to a named collection.
type VectorStore interface {
	// Upsert inserts or replaces the record for its ID.
	// Re-invoking with the same ID leaves exactly one record
	// (last-write-wins).
	Upsert(ctx context.Context, rec VectorRecord) error

	// Get retrieves a record by ID. Returns domain.ErrNotFound if the
	// ID has never been upserted.
	Get(ctx context.Context, id string) (*VectorRecord, error)

	// Count returns the number of records in the collection.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

// SemanticIndex accepts (identity, text, metadata) triples and performs
// an idempotent insert-or-update into the persistent embedding index.
type SemanticIndex interface {
	// Upsert embeds text and stores it under id, replacing any prior
	// entry for the same id. Failures of the embedding service or the
	// store wrap domain.ErrIndexUnavailable and are not retried.
	Upsert(ctx context.Context, id, text string, metadata map[string]string) error
}
