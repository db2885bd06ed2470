package pullstreams

// Collect drains the stream into a new slice holding every remaining
// element in order. An exhausted stream collects to an empty slice.
func (s Stream[T]) Collect() []T {
	result := []T{}
	for {
		elem, ok := s.src.Next().Get()
		if !ok {
			return result
		}
		result = append(result, elem)
	}
}

// CollectInto drains the stream into dst, stopping once dst is full, and
// returns the number of elements written. Elements beyond the capacity of
// dst stay unpulled in the stream.
func (s Stream[T]) CollectInto(dst []T) int {
	n := 0
	for n < len(dst) {
		elem, ok := s.src.Next().Get()
		if !ok {
			break
		}
		dst[n] = elem
		n++
	}
	return n
}

// CollectMap drains the stream into a map, deriving each key and value
// from the element with the two mappers. A later element with the same
// key overwrites the earlier entry.
func CollectMap[T any, K comparable, V any](s Stream[T], keyFunc MapFunc[T, K], valueFunc MapFunc[T, V]) map[K]V {
	result := make(map[K]V)
	for {
		elem, ok := s.src.Next().Get()
		if !ok {
			return result
		}
		result[keyFunc(elem)] = valueFunc(elem)
	}
}

// Evaluate drains the stream into an owned buffer and returns a new
// stream over it. The returned stream is backed by materialized data, so
// the work of the pipeline up to this point is performed exactly once.
func (s Stream[T]) Evaluate() Stream[T] {
	return Wrap[T](NewSliceSource(s.Collect()))
}
