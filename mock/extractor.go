package mock

import "github.com/fwojciec/presrag"

var _ presrag.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of presrag.TextExtractor.
type TextExtractor struct {
	ExtractFn func(path string) (string, error)
}

func (e *TextExtractor) Extract(path string) (string, error) {
	return e.ExtractFn(path)
}
