package rangealloc

import "fmt"

// Span represents the half-open interval [Left, Right).
//
// A Span with Left == Right is empty. A Span with Left > Right is not well
// formed; it can be constructed, but an [Allocator] rejects it.
type Span[T Number] struct {
	Left  T
	Right T
}

// NewSpan creates the span [left, right).
func NewSpan[T Number](left, right T) Span[T] {
	return Span[T]{
		Left:  left,
		Right: right,
	}
}

// FromLength creates the span [index, index+length).
//
// For integer domains an index+length that overflows wraps around, producing
// a span that is not well formed.
func FromLength[T Number](index, length T) Span[T] {
	return Span[T]{
		Left:  index,
		Right: add(index, length),
	}
}

// Index returns the first point of the span.
func (s Span[T]) Index() T {
	return s.Left
}

// Length returns Right - Left.
func (s Span[T]) Length() T {
	return sub(s.Right, s.Left)
}

// WellFormed returns true if s.Left <= s.Right.
func (s Span[T]) WellFormed() bool {
	return s.Left <= s.Right
}

// Empty returns true if the span covers no points.
//
// Equal bounds are checked first, since Inf-Inf is NaN for float domains.
func (s Span[T]) Empty() bool {
	return s.Left == s.Right || isZero(s.Length())
}

// Equal returns true if both spans have the same bounds.
func (s Span[T]) Equal(other Span[T]) bool {
	return s.Left == other.Left && s.Right == other.Right
}

// Contains returns true if other lies strictly inside s, touching neither of
// its bounds.
func (s Span[T]) Contains(other Span[T]) bool {
	return s.Left < other.Left && s.Right > other.Right
}

// ContainsOrEqual returns true if other lies inside s, possibly sharing one
// or both of its bounds.
func (s Span[T]) ContainsOrEqual(other Span[T]) bool {
	return s.Left <= other.Left && s.Right >= other.Right
}

// Within returns true if s lies strictly inside other.
func (s Span[T]) Within(other Span[T]) bool {
	return other.Contains(s)
}

// WithinOrEqual returns true if s lies inside other, possibly sharing one or
// both of its bounds.
func (s Span[T]) WithinOrEqual(other Span[T]) bool {
	return other.ContainsOrEqual(s)
}

// SliceLeft returns the part of s before inner, [s.Left, inner.Left).
//
// inner must be contained in s.
func (s Span[T]) SliceLeft(inner Span[T]) Span[T] {
	s.mustContain(inner)

	return Span[T]{
		Left:  s.Left,
		Right: inner.Left,
	}
}

// SliceRight returns the part of s after inner, [inner.Right, s.Right).
//
// inner must be contained in s.
func (s Span[T]) SliceRight(inner Span[T]) Span[T] {
	s.mustContain(inner)

	return Span[T]{
		Left:  inner.Right,
		Right: s.Right,
	}
}

// mustContain panics if inner is not a well formed span inside s. Slicing
// outside the parent span can only happen when the allocator tree is broken.
func (s Span[T]) mustContain(inner Span[T]) {
	if !inner.WellFormed() || !s.ContainsOrEqual(inner) {
		panic(fmt.Sprintf("rangealloc: cannot slice %v around %v", s, inner))
	}
}

// String implements [fmt.Stringer].
func (s Span[T]) String() string {
	return fmt.Sprintf("[%v, %v)", s.Left, s.Right)
}
