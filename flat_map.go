package pullstreams

// FlatMapFunc is a FlatMap transformation function producing a stream of
// zero or more elements per input element.
type FlatMapFunc[T, R any] func(T) Stream[R]

// FlatMapper takes one element and produces zero, one, or more elements.
//
// in  -- 1 -- 2 ---- 3 -- 4 ------ 5 --
//        |    |      |    |        |
//    [---------- FlatMapFunc ----------]
//        |    |           |   |    |
// out -- 1' - 2' -------- 4'- 4''- 5' -
//
// Each produced stream is drained fully, in order, before the next
// upstream element is pulled. An infinite inner stream therefore pins
// the stage on that element.
type FlatMapper[T, R any] struct {
	FlatMapF FlatMapFunc[T, R]
	src      Streamable[T]
	inner    Streamable[R]
}

// Verify FlatMapper satisfies the Streamable interface.
var _ Streamable[string] = (*FlatMapper[int, string])(nil)

// NewFlatMapper returns a new FlatMapper instance.
// flatMapFunc is the FlatMap transformation function.
func NewFlatMapper[T, R any](src Streamable[T], flatMapFunc FlatMapFunc[T, R]) *FlatMapper[T, R] {
	return &FlatMapper[T, R]{
		FlatMapF: flatMapFunc,
		src:      src,
	}
}

// Next returns the next element of the current inner stream, pulling and
// transforming upstream elements whenever the inner stream runs dry.
func (fm *FlatMapper[T, R]) Next() Option[R] {
	for {
		if fm.inner != nil {
			if elem := fm.inner.Next(); elem.IsSome() {
				return elem
			}
			fm.inner = nil
		}
		elem, ok := fm.src.Next().Get()
		if !ok {
			return None[R]()
		}
		fm.inner = fm.FlatMapF(elem)
	}
}
