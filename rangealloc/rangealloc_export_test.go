package rangealloc

// Validate checks the structural invariants of the allocator tree.
func (a *Allocator[T]) Validate() error {
	return a.root.validate()
}

// Depth returns the number of levels in the allocator tree.
func (a *Allocator[T]) Depth() int {
	return a.root.depth()
}

// IsZero reexports the internal [isZero] helper.
func IsZero[T Number](v T) bool {
	return isZero(v)
}

// Add reexports the internal [add] helper.
func Add[T Number](a, b T) T {
	return add(a, b)
}

// Sub reexports the internal [sub] helper.
func Sub[T Number](a, b T) T {
	return sub(a, b)
}
