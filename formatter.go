package presrag

import "strings"

// FormatDocuments concatenates the full corpus for use as LLM context.
// Documents are separated by blank lines.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.Text)
	}

	return strings.Join(parts, "\n\n")
}

// FormatResults concatenates retrieved chunk texts for use as LLM context.
// Chunks are separated by blank lines, in retrieval order.
func FormatResults(results []RetrievalResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, res := range results {
		parts = append(parts, res.Chunk.Text)
	}

	return strings.Join(parts, "\n\n")
}
