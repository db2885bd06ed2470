package pullstreams

// Drop suppresses the longest upstream prefix satisfying its predicate,
// then passes every later element through, including ones the predicate
// would match again.
//
// in  -- 1 -- 1 -- 2 -- 3 -- 1 --   (predicate: < 2)
//                  |    |    |
// out ------------ 2 -- 3 -- 1 --
type Drop[T any] struct {
	DropF    FilterFunc[T]
	src      Streamable[T]
	dropping bool
}

// Verify Drop satisfies the Streamable interface.
var _ Streamable[int] = (*Drop[int])(nil)

// NewDrop returns a new Drop instance.
func NewDrop[T any](src Streamable[T], predicate FilterFunc[T]) *Drop[T] {
	return &Drop[T]{
		DropF:    predicate,
		src:      src,
		dropping: true,
	}
}

// Next discards matching elements until the prefix ends, then passes
// everything through.
func (d *Drop[T]) Next() Option[T] {
	for {
		elem := d.src.Next()
		if elem.IsNone() {
			return elem
		}
		if d.dropping {
			if d.DropF(elem.Unwrap()) {
				continue
			}
			d.dropping = false
		}
		return elem
	}
}
