package mock

import (
	"context"

	"github.com/fwojciec/presrag"
)

var _ presrag.ScrapedDocumentWriter = (*ScrapedDocumentWriter)(nil)

// ScrapedDocumentWriter is a mock implementation of
// presrag.ScrapedDocumentWriter.
type ScrapedDocumentWriter struct {
	WriteFn func(ctx context.Context, doc *presrag.ScrapedDocument) (string, error)
}

func (w *ScrapedDocumentWriter) Write(ctx context.Context, doc *presrag.ScrapedDocument) (string, error) {
	return w.WriteFn(ctx, doc)
}
