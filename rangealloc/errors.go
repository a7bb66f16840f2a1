package rangealloc

import "errors"

var (
	// ErrInvalidRange indicates a request whose left bound is past its right
	// bound.
	ErrInvalidRange = errors.New("rangealloc: invalid range")

	// ErrOutOfUniverse indicates a request that reaches outside the universe
	// the allocator was created with.
	ErrOutOfUniverse = errors.New("rangealloc: range outside universe")

	// ErrConflict indicates a request that overlaps space which has already
	// been allocated.
	ErrConflict = errors.New("rangealloc: range already allocated")
)
