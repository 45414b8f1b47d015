package scrape

import "github.com/fwojciec/presrag"

var _ presrag.BodyExtractor = (FallbackChain)(nil)

// FallbackChain tries each extractor in order and returns the first
// non-empty body. Extractor errors are swallowed so a broken extractor
// never blocks the next one.
type FallbackChain []presrag.BodyExtractor

// ExtractBody returns the first non-empty body produced by the chain, or
// "" when every extractor comes up empty.
func (c FallbackChain) ExtractBody(html string) (string, error) {
	for _, extractor := range c {
		body, err := extractor.ExtractBody(html)
		if err == nil && body != "" {
			return body, nil
		}
	}
	return "", nil
}
