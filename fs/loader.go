// Package fs provides filesystem-based corpus loading and scraped document
// storage.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fwojciec/presrag"
)

// Ensure Loader implements presrag.DocumentLoader at compile time.
var _ presrag.DocumentLoader = (*Loader)(nil)

// Loader loads documents from a directory tree, delegating text extraction
// to a presrag.TextExtractor.
type Loader struct {
	extractor presrag.TextExtractor
	ext       string
}

// NewLoader creates a Loader that recognizes files with the ".docx"
// extension.
func NewLoader(extractor presrag.TextExtractor) *Loader {
	return &Loader{extractor: extractor, ext: ".docx"}
}

// Load recursively finds all recognized files under dir and returns one
// Document per file, in traversal order. Returns ENOTFOUND when the tree
// contains no matching files.
func (l *Loader) Load(ctx context.Context, dir string) ([]*presrag.Document, error) {
	var docs []*presrag.Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), l.ext) {
			return nil
		}

		text, err := l.extractor.Extract(path)
		if err != nil {
			return fmt.Errorf("extracting %s: %w", path, err)
		}

		name := d.Name()
		docs = append(docs, &presrag.Document{
			Path:  path,
			Text:  text,
			Title: strings.TrimSuffix(name, filepath.Ext(name)),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, presrag.Errorf(presrag.ENOTFOUND, "no %s files found in %q", l.ext, dir)
	}

	return docs, nil
}
