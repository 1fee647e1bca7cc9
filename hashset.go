package setlike

// HashSet - is an unordered exact set backed by a native map.
type HashSet[T comparable] struct {
	m map[T]struct{}
}

var _ Setlike[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]struct{}),
	}
}

// NewHashSetWithCapacity creates an empty HashSet pre-sized for k elements.
// The hint only reduces rehashing; it is never a correctness requirement.
func NewHashSetWithCapacity[T comparable](k int) *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]struct{}, k),
	}
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if _, found := s.m[item]; !found {
		s.m[item] = struct{}{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Remove(item T) (bool, error) {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true, nil
	}

	return false, nil
}

func (s *HashSet[T]) Len() (int, error) {
	return len(s.m), nil
}

func (s *HashSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]struct{})
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

func (s *HashSet[T]) InsertSlice(items []T) (modified bool) {
	for _, item := range items {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}
