package usecase

// Optional is a two-variant result for lookups that may legitimately find
// nothing. Making absence a distinct variant (rather than a nil pointer)
// keeps the HTTP adapter's 200/404 mapping exhaustive.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Present reports whether a value is held.
func (o Optional[T]) Present() bool {
	return o.present
}

// MustGet returns the held value; it must only be called after Present.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("optional: MustGet on absent value")
	}

	return o.value
}
