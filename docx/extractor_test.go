package docx_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/presrag"
	"github.com/fwojciec/presrag/docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocx creates a minimal .docx file containing the given document.xml.
func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return path
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts paragraph text", func(t *testing.T) {
		t.Parallel()

		path := writeDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Alice went to the store.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Bob stayed </w:t></w:r><w:r><w:t>home.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

		text, err := docx.NewExtractor().Extract(path)

		require.NoError(t, err)
		assert.Equal(t, "Alice went to the store.\nBob stayed home.", text)
	})

	t.Run("preserves tabs and breaks within a paragraph", func(t *testing.T) {
		t.Parallel()

		path := writeDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>left</w:t><w:tab/><w:t>right</w:t><w:br/><w:t>below</w:t></w:r></w:p>
  </w:body>
</w:document>`)

		text, err := docx.NewExtractor().Extract(path)

		require.NoError(t, err)
		assert.Equal(t, "left\tright\nbelow", text)
	})

	t.Run("returns EINVALID for a zip without document.xml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "empty.docx")
		f, err := os.Create(path)
		require.NoError(t, err)
		zw := zip.NewWriter(f)
		require.NoError(t, zw.Close())
		require.NoError(t, f.Close())

		_, err = docx.NewExtractor().Extract(path)

		assert.Equal(t, presrag.EINVALID, presrag.ErrorCode(err))
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := docx.NewExtractor().Extract(filepath.Join(t.TempDir(), "nope.docx"))

		assert.Error(t, err)
	})
}
