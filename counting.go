package pullstreams

// CountingSource yields a copy of the same value a fixed number of times,
// then exhausts permanently. The internal count only ever moves towards
// maxCount; it never resets.
//
// out -- v -- v -- v -- ... -- v --| (maxCount times)
type CountingSource[T any] struct {
	value    T
	maxCount int
	count    int
}

// Verify CountingSource satisfies the Streamable interface.
var _ Streamable[int] = (*CountingSource[int])(nil)

// NewCountingSource returns a new CountingSource instance.
// A maxCount of zero or less yields nothing.
func NewCountingSource[T any](value T, maxCount int) *CountingSource[T] {
	return &CountingSource[T]{value: value, maxCount: maxCount}
}

// Next returns a copy of the stored value until maxCount copies were handed out.
func (cs *CountingSource[T]) Next() Option[T] {
	if cs.count >= cs.maxCount {
		return None[T]()
	}
	cs.count++
	return Some(cs.value)
}
