package rangealloc

import "golang.org/x/exp/constraints"

// Number is the set of domain types an [Allocator] can be instantiated with.
//
// Every fixed-width signed and unsigned integer and every floating point type
// is accepted. Anything else fails to compile.
type Number interface {
	constraints.Integer | constraints.Float
}

// isZero reports whether v is the zero value of its domain.
func isZero[T Number](v T) bool {
	return v == 0
}

// add returns a + b, wrapping on overflow for integer domains.
func add[T Number](a, b T) T {
	return a + b
}

// sub returns a - b, wrapping on underflow for integer domains.
func sub[T Number](a, b T) T {
	return a - b
}
