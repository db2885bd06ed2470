package pullstreams

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Stream wraps a streamable and exposes the combinator surface over it.
// Intermediate operations (Filter, Limit, Chain, ...) attach a new stage
// and return a new stream without consuming anything; terminal operations
// (Collect, Reduce, ForEach, ...) pull elements through the whole chain.
//
// Combinators that change the element type or need extra type constraints
// are package-level functions taking the stream as their first argument
// (Map, FlatMap, Zip, Distinct, Sorted, Sum, ...), since Go methods cannot
// introduce type parameters.
//
// A Stream is single-consumer: copying one copies a handle to the same
// underlying state, and a terminal operation consumes every copy.
type Stream[T any] struct {
	src Streamable[T]
}

// Verify Stream satisfies the Streamable interface, so streams can be
// nested into other streams.
var _ Streamable[int] = Stream[int]{}

// Wrap returns a Stream over an arbitrary streamable.
func Wrap[T any](src Streamable[T]) Stream[T] {
	return Stream[T]{src}
}

// Next pulls the next element of the wrapped streamable.
func (s Stream[T]) Next() Option[T] {
	return s.src.Next()
}

// Entry points

// From streams the elements of a slice the caller keeps alive.
func From[T any](values []T) Stream[T] {
	return Wrap[T](NewSliceSource(values))
}

// Of streams its arguments.
func Of[T any](values ...T) Stream[T] {
	return Wrap[T](NewSliceSource(values))
}

// Owning copies the slice and streams the copy, so the caller's slice may
// change or go away after the call.
func Owning[T any](values []T) Stream[T] {
	return Wrap[T](NewOwningSource(values))
}

// Reverse streams the elements of a slice from last to first.
func Reverse[T any](values []T) Stream[T] {
	return Wrap[T](NewReverseSource(values))
}

// Draining streams by repeatedly removing the first element of the
// caller's slice; the slice shrinks as the stream is consumed.
func Draining[T any](values *[]T) Stream[T] {
	return Wrap[T](NewDrainingSource(values))
}

// Singlet streams exactly one value.
func Singlet[T any](value T) Stream[T] {
	return Wrap[T](NewSingletSource(value))
}

// Counting streams a copy of value, count times.
func Counting[T any](value T, count int) Stream[T] {
	return Wrap[T](NewCountingSource(value, count))
}

// FromSeq streams the elements of an iter.Seq.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return Wrap[T](NewSeqSource(seq))
}

// Intermediate operations

// Filter keeps the elements satisfying the predicate.
func (s Stream[T]) Filter(predicate FilterFunc[T]) Stream[T] {
	return Wrap[T](NewFilter(s.src, predicate))
}

// Peek invokes a side effect on every element passing through, without
// altering the stream.
func (s Stream[T]) Peek(peekFunc PeekFunc[T]) Stream[T] {
	return Wrap[T](NewPeek(s.src, peekFunc))
}

// DropWhile discards the longest prefix satisfying the predicate, then
// yields everything after it.
func (s Stream[T]) DropWhile(predicate FilterFunc[T]) Stream[T] {
	return Wrap[T](NewDrop(s.src, predicate))
}

// TakeWhile yields elements while the predicate holds and exhausts
// permanently at the first failure.
func (s Stream[T]) TakeWhile(predicate FilterFunc[T]) Stream[T] {
	return Wrap[T](NewTake(s.src, predicate))
}

// SortedFunc re-orders the stream by the comparator. The entire upstream
// is drained on the first pull; equal-ordering elements end up in an
// unspecified relative order.
func (s Stream[T]) SortedFunc(lessFunc LessFunc[T]) Stream[T] {
	return Wrap[T](NewSort(s.src, lessFunc))
}

// Limit yields at most maxCount elements.
func (s Stream[T]) Limit(maxCount int) Stream[T] {
	return Wrap[T](NewLimit(s.src, maxCount))
}

// Chain appends the other stream: this stream's elements first, then the
// other's.
func (s Stream[T]) Chain(other Stream[T]) Stream[T] {
	return Wrap[T](NewChain(s.src, other.src))
}

// PreChain prepends the other stream: the other stream's elements first,
// then this stream's.
func (s Stream[T]) PreChain(other Stream[T]) Stream[T] {
	return Wrap[T](NewChain(other.src, s.src))
}

// Map transforms every element of the stream, changing the element type.
func Map[T, R any](s Stream[T], mapFunc MapFunc[T, R]) Stream[R] {
	return Wrap[R](NewMapper(s.src, mapFunc))
}

// FlatMap transforms every element into a stream and yields each produced
// stream fully, in order.
func FlatMap[T, R any](s Stream[T], flatMapFunc FlatMapFunc[T, R]) Stream[R] {
	return Wrap[R](NewFlatMapper(s.src, flatMapFunc))
}

// Zip applies two transformations to every element and yields one pair
// per element, in lockstep.
func Zip[T, L, R any](s Stream[T], leftFunc MapFunc[T, L], rightFunc MapFunc[T, R]) Stream[Pair[L, R]] {
	return Wrap[Pair[L, R]](NewZipper(s.src, leftFunc, rightFunc))
}

// FlatZip applies two stream-producing transformations to every element
// and yields lockstep pairs from the two produced streams.
func FlatZip[T, L, R any](s Stream[T], leftFunc FlatMapFunc[T, L], rightFunc FlatMapFunc[T, R]) Stream[Pair[L, R]] {
	return Wrap[Pair[L, R]](NewFlatZipper(s.src, leftFunc, rightFunc))
}

// Distinct suppresses repeated elements, keeping first occurrences in order.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return Wrap[T](NewDedup(s.src))
}

// Sorted re-orders the stream by the natural ascending order of its
// element type.
func Sorted[T constraints.Ordered](s Stream[T]) Stream[T] {
	return s.SortedFunc(func(a, b T) bool { return a < b })
}

// FilterNotNil keeps the non-nil pointers of a pointer-valued stream.
func FilterNotNil[T any](s Stream[*T]) Stream[*T] {
	return s.Filter(func(value *T) bool { return value != nil })
}

// Deref maps a pointer-valued stream to the pointed-to values. Every
// pointer must be non-nil; use DerefNotNil when that is not guaranteed.
func Deref[T any](s Stream[*T]) Stream[T] {
	return Map(s, func(value *T) T { return *value })
}

// DerefNotNil drops nil pointers and dereferences the rest.
func DerefNotNil[T any](s Stream[*T]) Stream[T] {
	return Deref(FilterNotNil(s))
}

// Terminal operations

// ReduceFunc combines an accumulated value with the next element.
type ReduceFunc[T any] func(acc, value T) T

// Skip advances past up to n elements, discarding them, and returns the
// same stream. Stops early if the stream exhausts first.
func (s Stream[T]) Skip(n int) Stream[T] {
	for i := 0; i < n; i++ {
		if s.src.Next().IsNone() {
			break
		}
	}
	return s
}

// FindFirst returns the next element, or None on an exhausted stream.
func (s Stream[T]) FindFirst() Option[T] {
	return s.src.Next()
}

// FindLast drains the stream and returns the last element seen, or None
// on an exhausted stream.
func (s Stream[T]) FindLast() Option[T] {
	elem := s.src.Next()
	for elem.IsSome() {
		next := s.src.Next()
		if next.IsNone() {
			break
		}
		elem = next
	}
	return elem
}

// Reduce left-folds the stream with the given function. The first element
// seeds the accumulator; an empty stream reduces to None.
func (s Stream[T]) Reduce(reduceFunc ReduceFunc[T]) Option[T] {
	acc, ok := s.src.Next().Get()
	if !ok {
		return None[T]()
	}
	for {
		elem, ok := s.src.Next().Get()
		if !ok {
			return Some(acc)
		}
		acc = reduceFunc(acc, elem)
	}
}

// Count drains the stream and returns the number of elements seen.
func (s Stream[T]) Count() int {
	count := 0
	for s.src.Next().IsSome() {
		count++
	}
	return count
}

// ForEach drains the stream, invoking the function on every element.
func (s Stream[T]) ForEach(f func(T)) {
	for {
		elem, ok := s.src.Next().Get()
		if !ok {
			return
		}
		f(elem)
	}
}

// ForEachIndexed drains the stream, invoking the function on every
// element together with its zero-based position.
func (s Stream[T]) ForEachIndexed(f func(i int, value T)) {
	for i := 0; ; i++ {
		elem, ok := s.src.Next().Get()
		if !ok {
			return
		}
		f(i, elem)
	}
}

// AllMatch reports whether every element satisfies the predicate,
// stopping at the first one that does not. True on an empty stream.
func (s Stream[T]) AllMatch(predicate FilterFunc[T]) bool {
	for {
		elem, ok := s.src.Next().Get()
		if !ok {
			return true
		}
		if !predicate(elem) {
			return false
		}
	}
}

// AnyMatch reports whether any element satisfies the predicate, stopping
// at the first one that does. False on an empty stream.
func (s Stream[T]) AnyMatch(predicate FilterFunc[T]) bool {
	for {
		elem, ok := s.src.Next().Get()
		if !ok {
			return false
		}
		if predicate(elem) {
			return true
		}
	}
}

// NoneMatch reports whether no element satisfies the predicate, stopping
// at the first one that does. True on an empty stream.
func (s Stream[T]) NoneMatch(predicate FilterFunc[T]) bool {
	return !s.AnyMatch(predicate)
}

// Seq exposes the remaining elements as an iterator sequence for
// range-over-func consumption. Breaking out of the range leaves the
// stream positioned after the last yielded element.
func (s Stream[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := s.src.Next().Get()
			if !ok || !yield(elem) {
				return
			}
		}
	}
}

// Addable constrains element types supporting the + operator.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Sum adds every remaining element, or returns None on an empty stream.
func Sum[T Addable](s Stream[T]) Option[T] {
	return s.Reduce(func(acc, value T) T { return acc + value })
}

// Min drains the stream and returns its smallest element, or None on an
// empty stream.
func Min[T constraints.Ordered](s Stream[T]) Option[T] {
	return s.Reduce(func(acc, value T) T {
		if value < acc {
			return value
		}
		return acc
	})
}

// Max drains the stream and returns its largest element, or None on an
// empty stream.
func Max[T constraints.Ordered](s Stream[T]) Option[T] {
	return s.Reduce(func(acc, value T) T {
		if acc < value {
			return value
		}
		return acc
	})
}
