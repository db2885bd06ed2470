package pullstreams

import "iter"

// SliceSource streams the elements of a slice in order. It does not copy
// the slice; the caller must keep the backing array alive and unchanged
// while the pipeline runs.
type SliceSource[T any] struct {
	values []T
	pos    int
}

// Verify SliceSource satisfies the Streamable interface.
var _ Streamable[int] = (*SliceSource[int])(nil)

// NewSliceSource returns a new SliceSource instance.
func NewSliceSource[T any](values []T) *SliceSource[T] {
	return &SliceSource[T]{values: values}
}

// Next returns the next element of the slice.
func (ss *SliceSource[T]) Next() Option[T] {
	if ss.pos >= len(ss.values) {
		return None[T]()
	}
	value := ss.values[ss.pos]
	ss.pos++
	return Some(value)
}

// OwningSource streams the elements of its own copy of a slice, so the
// caller's slice may be mutated or dropped after construction.
type OwningSource[T any] struct {
	values []T
	pos    int
}

// Verify OwningSource satisfies the Streamable interface.
var _ Streamable[int] = (*OwningSource[int])(nil)

// NewOwningSource returns a new OwningSource instance holding a copy of values.
func NewOwningSource[T any](values []T) *OwningSource[T] {
	owned := make([]T, len(values))
	copy(owned, values)
	return &OwningSource[T]{values: owned}
}

// Next returns the next element of the owned slice.
func (os *OwningSource[T]) Next() Option[T] {
	if os.pos >= len(os.values) {
		return None[T]()
	}
	value := os.values[os.pos]
	os.pos++
	return Some(value)
}

// ReverseSource streams the elements of a slice from last to first. Like
// SliceSource it does not copy; the caller keeps the slice alive.
type ReverseSource[T any] struct {
	values []T
	pos    int
}

// Verify ReverseSource satisfies the Streamable interface.
var _ Streamable[int] = (*ReverseSource[int])(nil)

// NewReverseSource returns a new ReverseSource instance.
func NewReverseSource[T any](values []T) *ReverseSource[T] {
	return &ReverseSource[T]{values: values, pos: len(values) - 1}
}

// Next returns the next element, walking the slice backwards.
func (rs *ReverseSource[T]) Next() Option[T] {
	if rs.pos < 0 {
		return None[T]()
	}
	value := rs.values[rs.pos]
	rs.pos--
	return Some(value)
}

// SeqSource streams the elements of an iter.Seq, bridging push-style
// iterators into the pull protocol.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// Verify SeqSource satisfies the Streamable interface.
var _ Streamable[int] = (*SeqSource[int])(nil)

// NewSeqSource returns a new SeqSource instance.
func NewSeqSource[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{next: next, stop: stop}
}

// Next returns the next element of the sequence.
func (qs *SeqSource[T]) Next() Option[T] {
	if qs.done {
		return None[T]()
	}
	value, ok := qs.next()
	if !ok {
		qs.done = true
		qs.stop()
		return None[T]()
	}
	return Some(value)
}
