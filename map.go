package pullstreams

// MapFunc is a Map transformation function.
type MapFunc[T, R any] func(T) R

// Mapper takes one element and produces one element, possibly of a
// different type.
//
// in  -- 1 -- 2 ---- 3 -- 4 ------ 5 --
//        |    |      |    |        |
//    [----------- MapFunc -------------]
//        |    |      |    |        |
// out -- 1' - 2' --- 3' - 4' ----- 5' -
type Mapper[T, R any] struct {
	MapF MapFunc[T, R]
	src  Streamable[T]
}

// Verify Mapper satisfies the Streamable interface.
var _ Streamable[string] = (*Mapper[int, string])(nil)

// NewMapper returns a new Mapper instance.
// mapFunc is the Map transformation function.
func NewMapper[T, R any](src Streamable[T], mapFunc MapFunc[T, R]) *Mapper[T, R] {
	return &Mapper[T, R]{
		MapF: mapFunc,
		src:  src,
	}
}

// Next pulls one upstream element and applies the transformation.
func (m *Mapper[T, R]) Next() Option[R] {
	elem, ok := m.src.Next().Get()
	if !ok {
		return None[R]()
	}
	return Some(m.MapF(elem))
}
