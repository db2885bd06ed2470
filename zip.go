package pullstreams

// Pair holds the two values produced for one pull of a Zipper or FlatZipper.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Zipper applies two transformations to every upstream element and
// produces one pair per element, in lockstep with upstream.
//
// in  -- 1 ------- 2 ------- 3 -------
//        |         |         |
//    [------ LeftF / RightF ----------]
//        |         |         |
// out -- (l1,r1) - (l2,r2) - (l3,r3) -
type Zipper[T, L, R any] struct {
	LeftF  MapFunc[T, L]
	RightF MapFunc[T, R]
	src    Streamable[T]
}

// Verify Zipper satisfies the Streamable interface.
var _ Streamable[Pair[int, string]] = (*Zipper[int, int, string])(nil)

// NewZipper returns a new Zipper instance.
// leftFunc and rightFunc produce the left and right half of each pair.
func NewZipper[T, L, R any](src Streamable[T], leftFunc MapFunc[T, L], rightFunc MapFunc[T, R]) *Zipper[T, L, R] {
	return &Zipper[T, L, R]{
		LeftF:  leftFunc,
		RightF: rightFunc,
		src:    src,
	}
}

// Next pulls one upstream element and applies both transformations to it.
func (z *Zipper[T, L, R]) Next() Option[Pair[L, R]] {
	elem, ok := z.src.Next().Get()
	if !ok {
		return None[Pair[L, R]]()
	}
	return Some(Pair[L, R]{z.LeftF(elem), z.RightF(elem)})
}

// FlatZipper applies two stream-producing transformations to every
// upstream element and yields pairs from the two inner streams in
// lockstep. Pairs are produced while both inner streams yield; once
// either exhausts the stage advances to the next upstream element.
// Infinite inner streams pin the stage, as with FlatMapper.
type FlatZipper[T, L, R any] struct {
	LeftF  FlatMapFunc[T, L]
	RightF FlatMapFunc[T, R]
	src    Streamable[T]
	left   Streamable[L]
	right  Streamable[R]
}

// Verify FlatZipper satisfies the Streamable interface.
var _ Streamable[Pair[int, string]] = (*FlatZipper[int, int, string])(nil)

// NewFlatZipper returns a new FlatZipper instance.
func NewFlatZipper[T, L, R any](src Streamable[T], leftFunc FlatMapFunc[T, L], rightFunc FlatMapFunc[T, R]) *FlatZipper[T, L, R] {
	return &FlatZipper[T, L, R]{
		LeftF:  leftFunc,
		RightF: rightFunc,
		src:    src,
	}
}

// Next returns the next lockstep pair of the current inner streams,
// advancing to the next upstream element when either side runs dry.
func (fz *FlatZipper[T, L, R]) Next() Option[Pair[L, R]] {
	for {
		if fz.left != nil {
			left, lok := fz.left.Next().Get()
			right, rok := fz.right.Next().Get()
			if lok && rok {
				return Some(Pair[L, R]{left, right})
			}
			fz.left, fz.right = nil, nil
		}
		elem, ok := fz.src.Next().Get()
		if !ok {
			return None[Pair[L, R]]()
		}
		fz.left = fz.LeftF(elem)
		fz.right = fz.RightF(elem)
	}
}
