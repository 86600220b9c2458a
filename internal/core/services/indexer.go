package services

import (
	"context"
	"fmt"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/logger"
)

// Ensure SemanticIndexer implements the interface.
var _ driven.SemanticIndex = (*SemanticIndexer)(nil)

// SemanticIndexer pairs an embedding service with a vector store to
// form the semantic index. Embeddings are recomputed on every upsert;
// there is no cache keyed on unchanged text.
type SemanticIndexer struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewSemanticIndexer creates a semantic indexer.
func NewSemanticIndexer(embedder driven.EmbeddingService, store driven.VectorStore) *SemanticIndexer {
	return &SemanticIndexer{embedder: embedder, store: store}
}

// Upsert embeds text and inserts or replaces the record for id. From
// the caller's perspective this is a single atomic operation: either
// the record is fully replaced or the previous one is left intact.
func (x *SemanticIndexer) Upsert(ctx context.Context, id, text string, metadata map[string]string) error {
	embedding, err := x.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("%w: embed %s: %w", domain.ErrIndexUnavailable, id, err)
	}

	logger.Debug("embedded %s: %d dimensions (model %s)", id, len(embedding), x.embedder.ModelName())

	rec := driven.VectorRecord{
		ID:        id,
		Text:      text,
		Embedding: embedding,
		Metadata:  metadata,
	}
	if err := x.store.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("%w: store %s: %w", domain.ErrIndexUnavailable, id, err)
	}
	return nil
}
