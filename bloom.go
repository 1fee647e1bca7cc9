//go:build bloom

package setlike

import (
	"github.com/bits-and-blooms/bloom/v3"
)

// BloomFilter - is a probabilistic membership container. Has may report a
// false positive for an element that was never inserted, but never a false
// negative for one that was. Removal and exact counting are structurally
// impossible for this representation, so Remove and Len return
// ErrUnsupportedOperation; callers needing them must use an exact container.
type BloomFilter struct {
	filter *bloom.BloomFilter
}

var _ Setlike[string] = (*BloomFilter)(nil)

// NewBloomFilter creates a filter sized for n expected elements at the
// target false-positive rate fp. The parameters are part of the membership
// contract, not an optimization, so there is no capacity-hint constructor.
func NewBloomFilter(n uint, fp float64) *BloomFilter {
	return &BloomFilter{
		filter: bloom.NewWithEstimates(n, fp),
	}
}

func (f *BloomFilter) Has(item string) bool {
	return f.filter.TestString(item)
}

// Insert reports the container as modified when the item was not already
// (probably) present, the strongest statement the representation can make.
func (f *BloomFilter) Insert(item string) (modified bool) {
	return !f.filter.TestOrAddString(item)
}

func (f *BloomFilter) Remove(_ string) (bool, error) {
	return false, ErrUnsupportedOperation
}

func (f *BloomFilter) Len() (int, error) {
	return 0, ErrUnsupportedOperation
}

// ApproximateLen estimates the number of distinct inserted elements. It is
// an estimate only and is deliberately not the interface Len.
func (f *BloomFilter) ApproximateLen() int {
	return int(f.filter.ApproximatedSize())
}

func (f *BloomFilter) Clear() {
	f.filter.ClearAll()
}
