package setlike

import (
	"github.com/bits-and-blooms/bitset"
)

// BitSet - is an exact set of unsigned integers backed by a bit vector.
// Space is proportional to the largest inserted value rather than to the
// number of members, which is the trade-off a caller chooses this container
// for.
type BitSet struct {
	bits *bitset.BitSet
}

var _ Setlike[uint] = (*BitSet)(nil)

func NewBitSet() *BitSet {
	return &BitSet{
		bits: bitset.New(0),
	}
}

// NewBitSetWithCapacity pre-allocates a bit vector covering indices up to k.
// The vector still grows on demand for larger indices.
func NewBitSetWithCapacity(k int) *BitSet {
	if k < 0 {
		k = 0
	}
	return &BitSet{
		bits: bitset.New(uint(k)),
	}
}

func (s *BitSet) Has(item uint) bool {
	return s.bits.Test(item)
}

func (s *BitSet) Insert(item uint) (modified bool) {
	if s.bits.Test(item) {
		return false
	}

	s.bits.Set(item)
	return true
}

func (s *BitSet) Remove(item uint) (bool, error) {
	if !s.bits.Test(item) {
		return false, nil
	}

	s.bits.Clear(item)
	return true, nil
}

func (s *BitSet) Len() (int, error) {
	return int(s.bits.Count()), nil
}

func (s *BitSet) Clear() {
	s.bits.ClearAll()
}

func (s *BitSet) Items() []uint {
	items := make([]uint, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		items = append(items, i)
	}
	return items
}

func (s *BitSet) InsertSlice(items []uint) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
