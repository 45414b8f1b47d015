// Package docx extracts plain text from Office Open XML word-processor
// documents. A .docx file is a ZIP archive whose main content lives in
// word/document.xml; text runs are collected in document order.
package docx

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/presrag"
)

const documentPart = "word/document.xml"

// Ensure Extractor implements presrag.TextExtractor at compile time.
var _ presrag.TextExtractor = (*Extractor)(nil)

// Extractor reads the text content of .docx files.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its plain text content.
// Paragraphs are separated by newlines; tabs and line breaks within a
// paragraph are preserved.
func (e *Extractor) Extract(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening %s in %s: %w", documentPart, path, err)
		}
		defer rc.Close()

		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(rc); err != nil {
			return "", fmt.Errorf("parsing %s in %s: %w", documentPart, path, err)
		}

		root := doc.Root()
		if root == nil {
			return "", presrag.Errorf(presrag.EINVALID, "%s has an empty %s", path, documentPart)
		}

		var sb strings.Builder
		collectText(root, &sb)
		return strings.TrimRight(sb.String(), "\n"), nil
	}

	return "", presrag.Errorf(presrag.EINVALID, "%s is not a DOCX file: missing %s", path, documentPart)
}

// collectText walks the element tree accumulating run text. Local names are
// matched so the extractor is independent of the namespace prefix.
func collectText(el *etree.Element, sb *strings.Builder) {
	switch el.Tag {
	case "t":
		sb.WriteString(el.Text())
		return
	case "tab":
		sb.WriteString("\t")
		return
	case "br", "cr":
		sb.WriteString("\n")
		return
	}

	for _, child := range el.ChildElements() {
		collectText(child, sb)
	}

	if el.Tag == "p" {
		sb.WriteString("\n")
	}
}
