package rangealloc

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Allocator hands out non-overlapping spans of a fixed universe.
//
// It tracks free space only, as a binary tree of free extents. A request
// that shares a bound with the free extent it lands in shrinks that extent;
// any other request bisects the extent into two children around the
// allocated middle. When a request consumes one child exactly, the parent
// takes over the sibling and the level disappears again.
//
// Allocator is not safe for concurrent use. Callers sharing an instance must
// serialize access themselves.
type Allocator[T Number] struct {
	root *node[T]

	universe Span[T]
}

// node is one free extent of the allocator tree.
//
// A leaf tracks the free space of its extent. An internal node keeps the
// extent it had when it was bisected; this is the hull of everything free
// below it, and only its children describe the actual free space.
type node[T Number] struct {
	Extent Span[T]
	Sub    *subtree[T]
}

// subtree holds the two halves of a bisected extent. Left is the free space
// before the allocation that caused the bisection, Right the free space
// after it.
type subtree[T Number] struct {
	Left  *node[T]
	Right *node[T]
}

// New creates an allocator whose universe, and initial free space, is
// universe.
//
// New panics if universe is not well formed.
func New[T Number](universe Span[T]) *Allocator[T] {
	if !universe.WellFormed() {
		panic(fmt.Sprintf("rangealloc: universe %v is not well formed", universe))
	}

	return &Allocator[T]{
		root: &node[T]{
			Extent: universe,
		},
		universe: universe,
	}
}

// NewFromLength creates an allocator over [index, index+length).
func NewFromLength[T Number](index, length T) *Allocator[T] {
	return New(FromLength(index, length))
}

// Universe returns the span the allocator was created with. It is not
// affected by allocations.
func (a *Allocator[T]) Universe() Span[T] {
	return a.universe
}

// Alloc marks span as allocated and returns true if all of it is currently
// free. Otherwise it returns false and leaves the allocator unchanged.
//
// An empty span always succeeds without changing anything.
func (a *Allocator[T]) Alloc(span Span[T]) bool {
	return a.TryAlloc(span) == nil
}

// AllocLength is Alloc for the span [index, index+length).
func (a *Allocator[T]) AllocLength(index, length T) bool {
	return a.Alloc(FromLength(index, length))
}

// TryAlloc is Alloc, reporting why a request was rejected.
//
// The returned error wraps [ErrInvalidRange], [ErrOutOfUniverse] or
// [ErrConflict].
func (a *Allocator[T]) TryAlloc(span Span[T]) error {
	if !span.WellFormed() {
		return fmt.Errorf("%w: %v", ErrInvalidRange, span)
	}

	if span.Empty() {
		return nil
	}

	if !a.universe.ContainsOrEqual(span) {
		return fmt.Errorf("%w: %v is not inside %v", ErrOutOfUniverse, span, a.universe)
	}

	// Every check below happens before the single mutation that ends the
	// walk, so a rejected request leaves the tree untouched.
	current := a.root

	for {
		if !current.Extent.ContainsOrEqual(span) {
			return fmt.Errorf("%w: %v", ErrConflict, span)
		}

		if current.Sub == nil {
			current.take(span)

			return nil
		}

		child, sibling := current.Sub.Left, current.Sub.Right

		if !child.Extent.ContainsOrEqual(span) {
			child, sibling = sibling, child
		}

		// The request consumes a whole leaf child, so the level collapses.
		if child.Sub == nil && child.Extent.Equal(span) {
			current.collapse(sibling)

			return nil
		}

		// Either span lies in child, or in neither child and the next
		// iteration rejects it.
		current = child
	}
}

// take removes span from the free extent of a leaf.
//
// span must be non-empty and inside the leaf's extent.
func (n *node[T]) take(span Span[T]) {
	switch {
	case span.Right == n.Extent.Right:
		n.Extent = n.Extent.SliceLeft(span)
	case span.Left == n.Extent.Left:
		n.Extent = n.Extent.SliceRight(span)
	default:
		n.Sub = &subtree[T]{
			Left:  &node[T]{Extent: n.Extent.SliceLeft(span)},
			Right: &node[T]{Extent: n.Extent.SliceRight(span)},
		}
	}
}

// collapse replaces n with the surviving child of its subtree. If sibling is
// itself bisected, its children move up with it.
func (n *node[T]) collapse(sibling *node[T]) {
	n.Extent = sibling.Extent
	n.Sub = sibling.Sub
}

// FreeSpans returns an iterator over the non-empty free extents, in
// ascending order.
func (a *Allocator[T]) FreeSpans() iter.Seq[Span[T]] {
	return func(yield func(Span[T]) bool) {
		a.root.walkLeaves(yield)
	}
}

// Free returns the non-empty free extents, in ascending order.
func (a *Allocator[T]) Free() []Span[T] {
	return slices.Collect(a.FreeSpans())
}

// FreeLength returns the total length of the free extents.
func (a *Allocator[T]) FreeLength() T {
	var total T

	for span := range a.FreeSpans() {
		total = add(total, span.Length())
	}

	return total
}

// walkLeaves calls yield for every non-empty leaf extent below n, left to
// right. It returns false once yield has asked to stop.
func (n *node[T]) walkLeaves(yield func(Span[T]) bool) bool {
	if n.Sub == nil {
		if n.Extent.Empty() {
			return true
		}

		return yield(n.Extent)
	}

	return n.Sub.Left.walkLeaves(yield) && n.Sub.Right.walkLeaves(yield)
}

// depth returns the number of levels below and including n.
func (n *node[T]) depth() int {
	if n.Sub == nil {
		return 1
	}

	return 1 + max(n.Sub.Left.depth(), n.Sub.Right.depth())
}

// validate checks the structural invariants of the subtree rooted at n.
func (n *node[T]) validate() error {
	if !n.Extent.WellFormed() {
		return fmt.Errorf("extent %v is not well formed", n.Extent)
	}

	if n.Sub == nil {
		return nil
	}

	left, right := n.Sub.Left, n.Sub.Right

	if left == nil || right == nil {
		return fmt.Errorf("internal node %v is missing a child", n.Extent)
	}

	if !n.Extent.ContainsOrEqual(left.Extent) || !n.Extent.ContainsOrEqual(right.Extent) {
		return fmt.Errorf("children %v and %v escape parent %v", left.Extent, right.Extent, n.Extent)
	}

	if left.Extent.Right >= right.Extent.Left {
		return fmt.Errorf("children %v and %v are not separated by an allocation", left.Extent, right.Extent)
	}

	for _, child := range []*node[T]{left, right} {
		if child.Sub == nil && child.Extent.Empty() {
			return fmt.Errorf("internal node %v has an empty leaf child", n.Extent)
		}
	}

	return errors.Join(left.validate(), right.validate())
}
