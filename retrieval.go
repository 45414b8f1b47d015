package presrag

import "context"

// RetrievalResult represents a chunk matched by a similarity query,
// ordered by descending score. Results are transient and never persisted.
type RetrievalResult struct {
	Chunk Chunk   `json:"chunk"`
	Score float64 `json:"score"`
}

// Embedder converts text into an opaque numeric vector using an external
// embedding service. The pipeline never inspects vector contents.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// VectorIndex stores chunk embeddings and supports similarity search.
// Implementations are external collaborators; the pipeline treats them as
// opaque.
type VectorIndex interface {
	// Add stores a chunk's vector keyed by the chunk's (Path, Index)
	// identity, alongside its text.
	Add(ctx context.Context, chunk Chunk, vector []float32) error

	// Search returns the top-k results ranked by descending similarity
	// score. Ties are broken by ascending chunk ordinal so result order
	// is stable.
	Search(ctx context.Context, vector []float32, k int) ([]RetrievalResult, error)
}

// Retriever produces the context text for a question. The two
// implementations are the indexed retriever (top-k similarity search) and
// the full-corpus fallback used when no index is available; the choice is
// made once at pipeline construction, never per call.
type Retriever interface {
	Retrieve(ctx context.Context, question string) (string, error)
}
