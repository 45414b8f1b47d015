package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/presrag"
)

// Ensure Writer implements presrag.ScrapedDocumentWriter at compile time.
var _ presrag.ScrapedDocumentWriter = (*Writer)(nil)

// Writer writes scraped documents as UTF-8 text files to a directory.
// Each document is written exactly once: a fixed three-line header followed
// by the body.
type Writer struct {
	outDir string
}

// NewWriter creates a new Writer that writes into outDir.
func NewWriter(outDir string) *Writer {
	return &Writer{outDir: outDir}
}

// FormatScrapedDocument renders the on-disk representation of a document:
// a Date line, a Title line, a separator line, then a blank line and the
// body text.
func FormatScrapedDocument(doc *presrag.ScrapedDocument) string {
	var b strings.Builder
	b.WriteString("Date: ")
	b.WriteString(doc.Date)
	b.WriteString("\nTitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 80))
	b.WriteString("\n\n")
	b.WriteString(doc.Body)
	return b.String()
}

// Write stores the document under its deterministic filename and returns
// that filename.
func (w *Writer) Write(ctx context.Context, doc *presrag.ScrapedDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return "", err
	}

	filename := doc.Filename()
	content := FormatScrapedDocument(doc)
	if err := os.WriteFile(filepath.Join(w.outDir, filename), []byte(content), 0644); err != nil {
		return "", err
	}

	return filename, nil
}
