package pullstreams

// PeekFunc is a side effect invoked on every element passing through a Peek.
type PeekFunc[T any] func(T)

// Peek produces the received element as is, invoking a side effect on
// each one as it passes through.
//
// in  -- 1 -- 2 ---- 3 -- 4 ------ 5 --
//        |    |      |    |        |
//    [----------- PeekFunc ------------]
//        |    |      |    |        |
// out -- 1 -- 2 ---- 3 -- 4 ------ 5 --
type Peek[T any] struct {
	PeekF PeekFunc[T]
	src   Streamable[T]
}

// Verify Peek satisfies the Streamable interface.
var _ Streamable[int] = (*Peek[int])(nil)

// NewPeek returns a new Peek instance.
func NewPeek[T any](src Streamable[T], peekFunc PeekFunc[T]) *Peek[T] {
	return &Peek[T]{
		PeekF: peekFunc,
		src:   src,
	}
}

// Next pulls one upstream element and hands it to the side effect before
// passing it on unchanged.
func (p *Peek[T]) Next() Option[T] {
	elem := p.src.Next()
	if elem.IsSome() {
		p.PeekF(elem.Unwrap())
	}
	return elem
}
