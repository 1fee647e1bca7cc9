package setlike

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const btreeDegree = 32

// SortedSet - is an exact set backed by a balanced B-tree. Items returns
// elements in ascending comparator order.
type SortedSet[T any] struct {
	tree *btree.BTreeG[T]
}

var _ Setlike[int] = (*SortedSet[int])(nil)

func NewSortedSet[T constraints.Ordered]() *SortedSet[T] {
	return NewSortedSetFunc[T](func(a, b T) bool {
		return a < b
	})
}

// NewSortedSetFunc creates a SortedSet ordered by the given less function.
func NewSortedSetFunc[T any](less func(a, b T) bool) *SortedSet[T] {
	return &SortedSet[T]{
		tree: btree.NewG[T](btreeDegree, btree.LessFunc[T](less)),
	}
}

// NewSortedSetWithCapacity exists for uniformity with the other
// constructors. The tree has no notion of pre-sized allocation, so the hint
// is ignored and an equivalent empty set is returned.
func NewSortedSetWithCapacity[T constraints.Ordered](_ int) *SortedSet[T] {
	return NewSortedSet[T]()
}

func (s *SortedSet[T]) Has(item T) bool {
	return s.tree.Has(item)
}

func (s *SortedSet[T]) Insert(item T) (modified bool) {
	_, found := s.tree.ReplaceOrInsert(item)
	return !found
}

func (s *SortedSet[T]) Remove(item T) (bool, error) {
	_, found := s.tree.Delete(item)
	return found, nil
}

func (s *SortedSet[T]) Len() (int, error) {
	return s.tree.Len(), nil
}

func (s *SortedSet[T]) Clear() {
	s.tree.Clear(false)
}

func (s *SortedSet[T]) Items() []T {
	items := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

func (s *SortedSet[T]) InsertSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
