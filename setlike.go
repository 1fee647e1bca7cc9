// Package setlike defines a minimal capability interface over set-like
// containers.
//
// A Setlike guarantees at most one logical copy of each distinct element and
// supports membership tests, insertion and, where the underlying
// representation allows it, removal and exact counting. Containers that
// cannot support an operation report ErrUnsupportedOperation instead of
// returning a misleading result.
//
// Containers are not safe for concurrent use; callers sharing an instance
// across goroutines must synchronize externally.
package setlike

type Setlike[T any] interface {
	// Has reports whether item is currently considered a member. Exact
	// containers never misreport; a probabilistic filter may report a
	// false positive but never a false negative.
	Has(item T) bool

	// Insert adds item and reports whether the container was modified,
	// i.e. whether item was not already present.
	Insert(item T) (modified bool)

	// Remove deletes item and reports whether it was present. Containers
	// whose representation cannot remove return ErrUnsupportedOperation.
	Remove(item T) (bool, error)

	// Len returns the number of distinct members. Containers without a
	// well-defined exact count return ErrUnsupportedOperation.
	Len() (int, error)
}
