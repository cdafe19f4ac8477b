// Package itersort provides an in-place, iterative quicksort.
//
// The driver never recurses. Pending sub-ranges are kept on an explicit
// work-list, so sort depth does not depend on the goroutine stack and
// adversarial inputs cannot grow it.
//
// # Algorithm
//
// Each step pops an Interval, partitions it around a pivot and pushes the two
// sides back when they still hold at least two elements. Two partition schemes
// are provided:
//   - Hoare: pivot taken from the low end, holes filled from both sides
//   - Lomuto: pivot taken from the high end, single forward scan
//
// Any function with the PartitionFunc signature can be plugged into SortFunc.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-itersort/itersort"
//
//	func Process(data []int) {
//	    itersort.Sort(data, itersort.Hoare)
//	}
//
//	func Check(data []int) bool {
//	    return itersort.IsSorted(data)
//	}
//
// The sort is not stable. The work-list allocates; nothing else does.
package itersort
