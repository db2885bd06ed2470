package pullstreams

// Limit yields at most a fixed number of elements, then latches into a
// permanently exhausted state without pulling upstream any further.
type Limit[T any] struct {
	src       Streamable[T]
	remaining int
}

// Verify Limit satisfies the Streamable interface.
var _ Streamable[int] = (*Limit[int])(nil)

// NewLimit returns a new Limit instance.
// A maxCount of zero or less yields nothing.
func NewLimit[T any](src Streamable[T], maxCount int) *Limit[T] {
	return &Limit[T]{src: src, remaining: maxCount}
}

// Next pulls upstream while the remaining count allows it.
func (l *Limit[T]) Next() Option[T] {
	if l.remaining <= 0 {
		return None[T]()
	}
	elem := l.src.Next()
	if elem.IsNone() {
		l.remaining = 0
		return elem
	}
	l.remaining--
	return elem
}
