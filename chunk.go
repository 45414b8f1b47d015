package presrag

import (
	"iter"
	"slices"
)

// Default splitting parameters, in characters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 100
)

// Chunk represents a bounded substring of a source document, the unit sent
// to the embedding service. A chunk has no identity beyond (Path, Index).
type Chunk struct {
	// Text is a contiguous substring of exactly one document's text.
	Text string `json:"text"`

	// Path identifies the source document.
	Path string `json:"path"`

	// Index is the chunk's ordinal within the source document.
	Index int `json:"index"`
}

// Splitter splits documents into fixed-size overlapping chunks.
// Splitting is pure and deterministic: the same document and parameters
// always yield the same chunk sequence.
type Splitter struct {
	size    int
	overlap int
}

// NewSplitter creates a Splitter producing chunks of size characters with
// the given overlap between consecutive chunks. Returns EINVALID if size is
// not positive or overlap is not in [0, size).
func NewSplitter(size, overlap int) (*Splitter, error) {
	if size <= 0 {
		return nil, Errorf(EINVALID, "chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, Errorf(EINVALID, "chunk overlap must be in [0, size), got %d", overlap)
	}
	return &Splitter{size: size, overlap: overlap}, nil
}

// Split returns a lazy sequence of chunks covering the document's full text
// with no gaps. Chunk i starts at i*(size-overlap) and spans size characters;
// the final chunk is truncated to the remaining text. Empty text yields an
// empty sequence. The sequence is restartable: ranging over it twice yields
// identical chunks.
func (s *Splitter) Split(doc *Document) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		text := doc.Text
		if text == "" {
			return
		}
		step := s.size - s.overlap
		for i, start := 0, 0; ; i, start = i+1, start+step {
			end := min(start+s.size, len(text))
			if !yield(Chunk{Text: text[start:end], Path: doc.Path, Index: i}) {
				return
			}
			if end == len(text) {
				return
			}
		}
	}
}

// SplitAll collects the chunk sequence for a document into a slice.
func (s *Splitter) SplitAll(doc *Document) []Chunk {
	return slices.Collect(s.Split(doc))
}
