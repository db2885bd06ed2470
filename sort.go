package pullstreams

import "golang.org/x/exp/slices"

// LessFunc reports whether a orders before b.
type LessFunc[T any] func(a, b T) bool

// Sort re-orders its upstream by a comparator. It is the only stage that
// is not incremental: the first pull drains the entire upstream into a
// buffer and sorts it, later pulls replay the buffer. The sort is not
// stable; the relative order of elements the comparator considers equal
// is unspecified.
type Sort[T any] struct {
	LessF  LessFunc[T]
	src    Streamable[T]
	buf    []T
	pos    int
	sorted bool
}

// Verify Sort satisfies the Streamable interface.
var _ Streamable[int] = (*Sort[int])(nil)

// NewSort returns a new Sort instance.
// lessFunc is the comparator ordering the elements.
func NewSort[T any](src Streamable[T], lessFunc LessFunc[T]) *Sort[T] {
	return &Sort[T]{
		LessF: lessFunc,
		src:   src,
	}
}

// Next drains and sorts the upstream on the first pull, then yields from
// the sorted buffer.
func (s *Sort[T]) Next() Option[T] {
	if !s.sorted {
		for {
			elem, ok := s.src.Next().Get()
			if !ok {
				break
			}
			s.buf = append(s.buf, elem)
		}
		slices.SortFunc(s.buf, s.LessF)
		s.sorted = true
	}
	if s.pos >= len(s.buf) {
		return None[T]()
	}
	value := s.buf[s.pos]
	s.pos++
	return Some(value)
}
