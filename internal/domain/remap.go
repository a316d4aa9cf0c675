package domain

import "golang.org/x/exp/constraints"

// Number is any type that supports the four arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is a closed interval [Lo, Hi].
type Range[T Number] struct {
	Lo T
	Hi T
}

// MapRange linearly maps s from the from interval onto the to interval.
// The result is not clamped, and a zero-width from interval is not guarded:
// with floats it yields Inf or NaN.
func MapRange[T Number](from, to Range[T], s T) T {
	return to.Lo + (s-from.Lo)*(to.Hi-to.Lo)/(from.Hi-from.Lo)
}
