package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// For a fixed model the embedding is a pure function of the input;
// identical text is re-embedded on every run by design.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request. Used at startup to fail before any pipeline work.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
