// Package pullstreams provides lazy, pull-based sequence combinators.
//
// Pipelines are built from a leaf source (a slice, a single value, a
// repeated value, a draining reference, an iter.Seq) and a chain of stage
// wrappers (filter, map, flat-map, zip, chain, limit, distinct, sort, ...),
// each of which consumes one streamable and presents another. Nothing is
// evaluated until a terminal operation (Collect, Reduce, ForEach, ...)
// pulls elements through the chain, one at a time.
//
// Pipelines are single-pass and single-consumer: every stage exclusively
// owns its upstream, and a terminal operation consumes the stream it runs
// on. Abandoning a pipeline needs no cleanup; just stop pulling.
package pullstreams

// Streamable is a type that produces elements one pull at a time.
// Implemented by every source and stage, and by Stream itself.
type Streamable[T any] interface {
	// Next returns the next element, or None once exhausted. After
	// exhaustion every further call keeps returning None; it is never
	// an error to keep pulling.
	Next() Option[T]
}
