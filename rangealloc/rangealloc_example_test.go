package rangealloc_test

import (
	"errors"
	"fmt"

	"github.com/crystalix007/range-alloc/rangealloc"
)

func Example() {
	extents := rangealloc.NewFromLength[uint32](0, 100)

	fmt.Printf("Allocated [25, 75): %t\n", extents.AllocLength(25, 50))
	fmt.Printf("Allocated [30, 35): %t\n", extents.AllocLength(30, 5))
	fmt.Printf("Free: %v\n", extents.Free())

	// Output:
	// Allocated [25, 75): true
	// Allocated [30, 35): false
	// Free: [[0, 25) [75, 100)]
}

func ExampleAllocator_TryAlloc() {
	ids := rangealloc.NewFromLength[int64](1000, 24)

	for _, span := range []rangealloc.Span[int64]{
		rangealloc.FromLength[int64](1000, 8),
		rangealloc.FromLength[int64](1004, 8),
		rangealloc.FromLength[int64](1020, 8),
	} {
		err := ids.TryAlloc(span)

		switch {
		case err == nil:
			fmt.Printf("%v: granted\n", span)
		case errors.Is(err, rangealloc.ErrConflict):
			fmt.Printf("%v: taken\n", span)
		case errors.Is(err, rangealloc.ErrOutOfUniverse):
			fmt.Printf("%v: out of range\n", span)
		}
	}

	// Output:
	// [1000, 1008): granted
	// [1004, 1012): taken
	// [1020, 1028): out of range
}

func ExampleAllocator_String() {
	extents := rangealloc.NewFromLength(0, 100)

	extents.AllocLength(25, 50)
	extents.AllocLength(80, 5)

	fmt.Print(extents)

	// Output:
	// [0, 100) sub
	//   [0, 25) leaf
	//   [75, 100) sub
	//     [75, 80) leaf
	//     [85, 100) leaf
}
