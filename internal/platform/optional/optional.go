// Package optional provides a small generic wrapper for values that may be
// absent, so "not set" is distinguishable from a zero value at the type level.
package optional

// Value holds a T that may or may not be set. The zero Value is unset.
type Value[T any] struct {
	val   T
	isSet bool
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, isSet: true}
}

// None returns an unset Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSet reports whether a value is present.
func (o Value[T]) IsSet() bool {
	return o.isSet
}

// Get returns the held value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.val, o.isSet
}

// OrElse returns the held value, or fallback when unset.
func (o Value[T]) OrElse(fallback T) T {
	if !o.isSet {
		return fallback
	}
	return o.val
}
