package pullstreams

// Chain yields every element of its first upstream, in order, then every
// element of its second.
//
// in A -- 1 -- 2 --|
// in B ------------- 3 -- 4 --|
// out  -- 1 -- 2 --- 3 -- 4 --|
type Chain[T any] struct {
	first  Streamable[T]
	second Streamable[T]
}

// Verify Chain satisfies the Streamable interface.
var _ Streamable[int] = (*Chain[int])(nil)

// NewChain returns a new Chain instance.
func NewChain[T any](first, second Streamable[T]) *Chain[T] {
	return &Chain[T]{first: first, second: second}
}

// Next pulls from the first upstream until it exhausts, then from the second.
func (c *Chain[T]) Next() Option[T] {
	if elem := c.first.Next(); elem.IsSome() {
		return elem
	}
	return c.second.Next()
}
