package pullstreams

// DrainingSource repeatedly removes and yields the first element of the
// caller's slice, shrinking it as a side effect. The slice must not be
// touched by anything else while the pipeline runs.
type DrainingSource[T any] struct {
	values *[]T
}

// Verify DrainingSource satisfies the Streamable interface.
var _ Streamable[int] = (*DrainingSource[int])(nil)

// NewDrainingSource returns a new DrainingSource instance.
func NewDrainingSource[T any](values *[]T) *DrainingSource[T] {
	return &DrainingSource[T]{values: values}
}

// Next pops and returns the first remaining element of the slice.
func (ds *DrainingSource[T]) Next() Option[T] {
	if len(*ds.values) == 0 {
		return None[T]()
	}
	value := (*ds.values)[0]
	*ds.values = (*ds.values)[1:]
	return Some(value)
}
