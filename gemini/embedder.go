// Package gemini provides embedding and text generation using the Google
// Gemini API.
package gemini

import (
	"context"

	"github.com/fwojciec/presrag"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is used when no embedding model is configured.
const DefaultEmbeddingModel = "gemini-embedding-001"

// Ensure Embedder implements presrag.Embedder at compile time.
var _ presrag.Embedder = (*Embedder)(nil)

// Embedder implements presrag.Embedder using Gemini embeddings.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultEmbeddingModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &Embedder{client: client, model: model}
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, presrag.Errorf(presrag.EINVALID, "text required")
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, presrag.Errorf(presrag.EUNAVAILABLE, "gemini embedding failed: %v", err)
	}
	if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, presrag.Errorf(presrag.EINTERNAL, "gemini returned no embedding")
	}

	return result.Embeddings[0].Values, nil
}
