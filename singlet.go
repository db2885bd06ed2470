package pullstreams

// SingletSource yields exactly one stored value, then exhausts permanently.
type SingletSource[T any] struct {
	value T
	done  bool
}

// Verify SingletSource satisfies the Streamable interface.
var _ Streamable[int] = (*SingletSource[int])(nil)

// NewSingletSource returns a new SingletSource instance.
func NewSingletSource[T any](value T) *SingletSource[T] {
	return &SingletSource[T]{value: value}
}

// Next returns the stored value on the first call and None afterwards.
func (st *SingletSource[T]) Next() Option[T] {
	if st.done {
		return None[T]()
	}
	st.done = true
	return Some(st.value)
}
