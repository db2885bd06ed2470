package pullstreams

// FilterFunc is a filter predicate function.
type FilterFunc[T any] func(T) bool

// Filter filters the incoming elements using a predicate.
// If the predicate returns true the element is passed downstream,
// if it returns false the element is discarded.
//
// in  -- 1 -- 2 ---- 3 -- 4 ------ 5 --
//        |    |      |    |        |
//    [---------- FilterFunc -----------]
//        |    |                    |
// out -- 1 -- 2 ------------------ 5 --
type Filter[T any] struct {
	FilterF FilterFunc[T]
	src     Streamable[T]
}

// Verify Filter satisfies the Streamable interface.
var _ Streamable[int] = (*Filter[int])(nil)

// NewFilter returns a new Filter instance.
// filterFunc is the filter predicate function.
func NewFilter[T any](src Streamable[T], filterFunc FilterFunc[T]) *Filter[T] {
	return &Filter[T]{
		FilterF: filterFunc,
		src:     src,
	}
}

// Next pulls upstream until an element satisfies the predicate or
// upstream exhausts.
func (f *Filter[T]) Next() Option[T] {
	for {
		elem := f.src.Next()
		if elem.IsNone() {
			return elem
		}
		if f.FilterF(elem.Unwrap()) {
			return elem
		}
	}
}
