package presrag

import "context"

// Document represents a single plain-text document loaded from the corpus
// folder. Documents are immutable once loaded; they exist only long enough
// to be split into chunks or formatted as LLM context.
type Document struct {
	// Path is the filesystem path the document was loaded from.
	Path string `json:"path"`

	// Text is the extracted plain text content.
	Text string `json:"text"`

	// Title is optional display metadata (file name stem when absent).
	Title string `json:"title,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	return nil
}

// TextExtractor extracts plain text from a structured document file.
// Implementations hide the binary format (e.g., DOCX parsing).
type TextExtractor interface {
	// Extract reads the file at path and returns its plain text content.
	Extract(path string) (string, error)
}

// DocumentLoader loads a corpus of documents from a directory tree.
type DocumentLoader interface {
	// Load recursively finds all recognized document files under dir and
	// returns one Document per file, in traversal order. The order is not
	// guaranteed to be stable across platforms.
	//
	// Returns ENOTFOUND if the tree contains no matching files.
	Load(ctx context.Context, dir string) ([]*Document, error)
}
