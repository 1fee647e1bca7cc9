package setlike

import (
	"github.com/denismitr/dll"
)

// OrderedSet - is an exact set that remembers first-insertion order. Items
// returns elements in the order they were inserted; removals do not disturb
// the order of the survivors.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ Setlike[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

// NewOrderedSetWithCapacity pre-sizes the lookup index for k elements. The
// list itself has no pre-sized form.
func NewOrderedSetWithCapacity[T comparable](k int) *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T], k),
		list: dll.New[T](),
	}
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		newEl := dll.NewElement(item)
		s.m[item] = newEl
		s.list.PushTail(newEl)
		modified = true
	}

	return modified
}

func (s *OrderedSet[T]) Remove(item T) (bool, error) {
	if el, found := s.m[item]; found {
		delete(s.m, item)
		s.list.Remove(el)
		return true, nil
	}

	return false, nil
}

func (s *OrderedSet[T]) Len() (int, error) {
	return len(s.m), nil
}

func (s *OrderedSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]*dll.Element[T])
	s.list = nil
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[T]) InsertSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
