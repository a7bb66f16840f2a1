// Package rangealloc tracks which parts of a bounded numeric domain have been
// handed out, without keeping a bitmap of the domain.
//
// An [Allocator] is created over a universe [Span] and grants requests for
// sub-spans of it. Only free space is recorded: a binary tree whose leaves
// are the free extents. The cost of a request depends on the depth of that
// tree, which grows by one for each allocation landing strictly inside a free
// extent, and not on the size of the universe.
//
//	a := rangealloc.NewFromLength[uint32](0, 100)
//	a.AllocLength(25, 50) // true, free space is now [0, 25) and [75, 100)
//	a.AllocLength(30, 5)  // false, already allocated
//
// There is no way to release a span once it has been granted.
package rangealloc
