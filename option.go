package pullstreams

// Option is a single value container that either holds a value or is empty.
// It is the return type of every Next call: Some carries the next element,
// None signals exhaustion or an absent result.
type Option[T any] struct {
	value  T
	isSome bool
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Some returns an Option holding the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value, true}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

// Unwrap returns the held value or panics if the option is empty.
func (o Option[T]) Unwrap() T {
	if !o.isSome {
		panic("tried to unwrap empty option")
	}
	return o.value
}

// OrElse returns the held value, or fallback if the option is empty.
func (o Option[T]) OrElse(fallback T) T {
	if !o.isSome {
		return fallback
	}
	return o.value
}
