// Package chromem provides a vector index backed by chromem-go, an
// embeddable pure-Go vector database. The index lives in memory for the
// duration of a session, matching the corpus it is built from.
package chromem

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/fwojciec/presrag"
	chromem "github.com/philippgille/chromem-go"
)

const collectionName = "presrag"

// Ensure Index implements presrag.VectorIndex at compile time.
var _ presrag.VectorIndex = (*Index)(nil)

// Index stores chunk embeddings and performs cosine-similarity search.
type Index struct {
	collection *chromem.Collection
}

// NewIndex creates an empty in-memory index.
func NewIndex() (*Index, error) {
	db := chromem.NewDB()
	collection, err := db.CreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}
	return &Index{collection: collection}, nil
}

// Add stores a chunk's vector keyed by the chunk's (Path, Index) identity.
func (ix *Index) Add(ctx context.Context, chunk presrag.Chunk, vector []float32) error {
	doc := chromem.Document{
		ID:        fmt.Sprintf("%s#%d", chunk.Path, chunk.Index),
		Content:   chunk.Text,
		Embedding: vector,
		Metadata: map[string]string{
			"path":  chunk.Path,
			"index": strconv.Itoa(chunk.Index),
		},
	}
	if err := ix.collection.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("adding chunk %s#%d: %w", chunk.Path, chunk.Index, err)
	}
	return nil
}

// Search returns the top-k results ranked by descending similarity score,
// ties broken by ascending chunk ordinal.
func (ix *Index) Search(ctx context.Context, vector []float32, k int) ([]presrag.RetrievalResult, error) {
	if k <= 0 {
		return nil, presrag.Errorf(presrag.EINVALID, "k must be positive, got %d", k)
	}

	count := ix.collection.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	matches, err := ix.collection.QueryEmbedding(ctx, vector, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}

	results := make([]presrag.RetrievalResult, 0, len(matches))
	for _, m := range matches {
		ordinal, err := strconv.Atoi(m.Metadata["index"])
		if err != nil {
			return nil, presrag.Errorf(presrag.EINTERNAL, "malformed chunk ordinal %q", m.Metadata["index"])
		}
		results = append(results, presrag.RetrievalResult{
			Chunk: presrag.Chunk{
				Text:  m.Content,
				Path:  m.Metadata["path"],
				Index: ordinal,
			},
			Score: float64(m.Similarity),
		})
	}

	// chromem orders by similarity; make tie order deterministic.
	slices.SortStableFunc(results, func(a, b presrag.RetrievalResult) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		case a.Chunk.Index != b.Chunk.Index:
			return a.Chunk.Index - b.Chunk.Index
		default:
			return 0
		}
	})

	return results, nil
}
