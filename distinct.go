package pullstreams

// Dedup suppresses elements equal to any previously yielded element,
// preserving first-occurrence order. Requires comparable elements.
//
// in  -- 1 -- 2 -- 2 -- 3 -- 1 --
//        |    |         |
// out -- 1 -- 2 ------- 3 -------
type Dedup[T comparable] struct {
	src  Streamable[T]
	seen map[T]struct{}
}

// Verify Dedup satisfies the Streamable interface.
var _ Streamable[int] = (*Dedup[int])(nil)

// NewDedup returns a new Dedup instance.
func NewDedup[T comparable](src Streamable[T]) *Dedup[T] {
	return &Dedup[T]{
		src:  src,
		seen: make(map[T]struct{}),
	}
}

// Next pulls upstream until an element not seen before turns up or
// upstream exhausts.
func (d *Dedup[T]) Next() Option[T] {
	for {
		elem, ok := d.src.Next().Get()
		if !ok {
			return None[T]()
		}
		if _, dup := d.seen[elem]; dup {
			continue
		}
		d.seen[elem] = struct{}{}
		return Some(elem)
	}
}
