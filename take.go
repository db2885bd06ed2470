package pullstreams

// Take yields upstream elements while its predicate holds and latches
// into a permanently exhausted state at the first failure, even if a
// later element would satisfy the predicate again. The element that
// failed the predicate is consumed from upstream but never yielded.
//
// in  -- 1 -- 2 -- 3 -- 1 -- 1 --   (predicate: < 3)
//        |    |
// out -- 1 -- 2 --|
type Take[T any] struct {
	TakeF FilterFunc[T]
	src   Streamable[T]
	done  bool
}

// Verify Take satisfies the Streamable interface.
var _ Streamable[int] = (*Take[int])(nil)

// NewTake returns a new Take instance.
func NewTake[T any](src Streamable[T], predicate FilterFunc[T]) *Take[T] {
	return &Take[T]{
		TakeF: predicate,
		src:   src,
	}
}

// Next pulls upstream while the predicate holds.
func (t *Take[T]) Next() Option[T] {
	if t.done {
		return None[T]()
	}
	elem, ok := t.src.Next().Get()
	if !ok || !t.TakeF(elem) {
		t.done = true
		return None[T]()
	}
	return Some(elem)
}
