package mock

import "github.com/fwojciec/presrag"

var _ presrag.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of presrag.DocumentExtractor.
type DocumentExtractor struct {
	ExtractDocumentFn func(html string) (string, string, error)
	WaitSelectorFn    func() string
}

func (e *DocumentExtractor) ExtractDocument(html string) (string, string, error) {
	return e.ExtractDocumentFn(html)
}

func (e *DocumentExtractor) WaitSelector() string {
	if e.WaitSelectorFn == nil {
		return ""
	}
	return e.WaitSelectorFn()
}

var _ presrag.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor is a mock implementation of presrag.BodyExtractor.
type BodyExtractor struct {
	ExtractBodyFn func(html string) (string, error)
}

func (e *BodyExtractor) ExtractBody(html string) (string, error) {
	return e.ExtractBodyFn(html)
}
