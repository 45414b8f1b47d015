package mock

import "github.com/fwojciec/presrag"

var _ presrag.SeenFilter = (*SeenFilter)(nil)

// SeenFilter is a mock implementation of presrag.SeenFilter.
type SeenFilter struct {
	AddFn  func(url string)
	TestFn func(url string) bool
}

func (f *SeenFilter) Add(url string) {
	if f.AddFn != nil {
		f.AddFn(url)
	}
}

func (f *SeenFilter) Test(url string) bool {
	if f.TestFn == nil {
		return false
	}
	return f.TestFn(url)
}
