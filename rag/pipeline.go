package rag

import (
	"context"
	"log/slog"

	"github.com/fwojciec/presrag"
)

// Ensure Pipeline implements presrag.Answerer at compile time.
var _ presrag.Answerer = (*Pipeline)(nil)

// Config holds the collaborators and tuning parameters for a Pipeline.
// Loader and Generator are required. When Embedder and Index are both set
// the pipeline answers from top-k similarity search; otherwise it falls
// back to passing the entire corpus as context.
type Config struct {
	Loader       presrag.DocumentLoader
	Embedder     presrag.Embedder
	Index        presrag.VectorIndex
	Generator    presrag.Generator
	TokenCounter presrag.TokenCounter
	Template     string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
	Logger       *slog.Logger
}

// Pipeline answers questions about a document corpus. Build must be called
// before Answer.
type Pipeline struct {
	config    Config
	splitter  *presrag.Splitter
	logger    *slog.Logger
	retriever presrag.Retriever
}

// NewPipeline validates the configuration and creates a Pipeline.
func NewPipeline(config Config) (*Pipeline, error) {
	if config.Loader == nil {
		return nil, presrag.Errorf(presrag.EINVALID, "document loader required")
	}
	if config.Generator == nil {
		return nil, presrag.Errorf(presrag.EINVALID, "generator required")
	}

	if config.Template == "" {
		config.Template = presrag.DefaultPromptTemplate
	}
	if config.ChunkSize <= 0 {
		config.ChunkSize = presrag.DefaultChunkSize
	}
	if config.ChunkOverlap < 0 {
		config.ChunkOverlap = presrag.DefaultChunkOverlap
	}

	splitter, err := presrag.NewSplitter(config.ChunkSize, config.ChunkOverlap)
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{config: config, splitter: splitter, logger: logger}, nil
}

// Build loads the corpus from dir and prepares the retriever. When an
// embedder and index are configured each document is chunked and indexed;
// otherwise the full corpus is held as fallback context.
func (p *Pipeline) Build(ctx context.Context, dir string) error {
	docs, err := p.config.Loader.Load(ctx, dir)
	if err != nil {
		return err
	}

	p.logger.Info("corpus loaded", "documents", len(docs))

	if p.config.TokenCounter != nil {
		p.reportTokens(ctx, docs)
	}

	if p.config.Embedder == nil || p.config.Index == nil {
		p.retriever = &FullCorpus{Context: presrag.FormatDocuments(docs)}
		p.logger.Info("no vector index configured, using full corpus context")
		return nil
	}

	indexed := 0
	for _, doc := range docs {
		for chunk := range p.splitter.Split(doc) {
			vector, err := p.embedChunk(ctx, chunk)
			if err != nil {
				if ctx.Err() != nil {
					return err
				}
				p.logger.Warn("chunk skipped", "path", chunk.Path, "index", chunk.Index, "error", err)
				continue
			}
			if err := p.config.Index.Add(ctx, chunk, vector); err != nil {
				return err
			}
			indexed++
		}
	}

	if indexed == 0 {
		p.retriever = &FullCorpus{Context: presrag.FormatDocuments(docs)}
		p.logger.Info("no chunks indexed, using full corpus context")
		return nil
	}

	p.retriever = &Indexed{
		Embedder: p.config.Embedder,
		Index:    p.config.Index,
		TopK:     p.config.TopK,
	}
	p.logger.Info("index built", "chunks", indexed)

	return nil
}

// Answer answers a question using the retriever prepared by Build.
func (p *Pipeline) Answer(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", presrag.Errorf(presrag.EINVALID, "question required")
	}
	if p.retriever == nil {
		return "", presrag.Errorf(presrag.EINTERNAL, "pipeline not built")
	}

	contextText, err := p.retriever.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}

	prompt, err := presrag.FillPrompt(p.config.Template, contextText, question)
	if err != nil {
		return "", err
	}

	return p.config.Generator.Generate(ctx, prompt)
}

// embedChunk embeds a chunk, retrying once unless the context is done.
func (p *Pipeline) embedChunk(ctx context.Context, chunk presrag.Chunk) ([]float32, error) {
	vector, err := p.config.Embedder.Embed(ctx, chunk.Text)
	if err == nil {
		return vector, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}

	p.logger.Warn("embedding failed, retrying", "path", chunk.Path, "index", chunk.Index, "error", err)
	return p.config.Embedder.Embed(ctx, chunk.Text)
}

func (p *Pipeline) reportTokens(ctx context.Context, docs []*presrag.Document) {
	total := 0
	for _, doc := range docs {
		n, err := p.config.TokenCounter.CountTokens(ctx, doc.Text)
		if err != nil {
			p.logger.Warn("token count failed", "path", doc.Path, "error", err)
			return
		}
		total += n
	}
	p.logger.Info("corpus size", "tokens", total)
}
