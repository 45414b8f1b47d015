// Package rag provides retrieval-augmented question answering over a
// document corpus. It coordinates loading, chunking, embedding, retrieval,
// and answer generation.
package rag

import (
	"context"

	"github.com/fwojciec/presrag"
)

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 4

// Ensure retriever implementations satisfy presrag.Retriever at compile time.
var (
	_ presrag.Retriever = (*Indexed)(nil)
	_ presrag.Retriever = (*FullCorpus)(nil)
)

// Indexed retrieves context by similarity search over a vector index.
type Indexed struct {
	Embedder presrag.Embedder
	Index    presrag.VectorIndex
	TopK     int
}

// Retrieve embeds the question, searches the index, and returns the
// matched chunk texts joined into a single context string.
func (r *Indexed) Retrieve(ctx context.Context, question string) (string, error) {
	k := r.TopK
	if k <= 0 {
		k = DefaultTopK
	}

	vector, err := r.Embedder.Embed(ctx, question)
	if err != nil {
		return "", err
	}

	results, err := r.Index.Search(ctx, vector, k)
	if err != nil {
		return "", err
	}

	return presrag.FormatResults(results), nil
}

// FullCorpus returns the entire corpus as context for every question. It is
// the fallback when no vector index is available.
type FullCorpus struct {
	Context string
}

// Retrieve returns the stored corpus text regardless of the question.
func (r *FullCorpus) Retrieve(_ context.Context, _ string) (string, error) {
	return r.Context, nil
}
