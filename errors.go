package setlike

import "errors"

var (
	// ErrUnsupportedOperation is returned when a container is asked to
	// perform an operation its representation cannot support, such as
	// removal or an exact count on a probabilistic filter.
	ErrUnsupportedOperation = errors.New("operation not supported by this container")
)
