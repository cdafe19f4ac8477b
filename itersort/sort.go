// Copyright 2025 go-itersort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package itersort

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort sorts data in place, in ascending order, partitioning with strategy s.
// It panics if s is not a built-in strategy.
func Sort[T constraints.Ordered](data []T, s Strategy) {
	SortFunc(data, Partition[T](s))
}

// SortHoare sorts data in place using Hoare partitioning.
func SortHoare[T constraints.Ordered](data []T) {
	SortFunc(data, PartitionHoare[T])
}

// SortLomuto sorts data in place using Lomuto partitioning.
func SortLomuto[T constraints.Ordered](data []T) {
	SortFunc(data, PartitionLomuto[T])
}

// SortFunc sorts data in place with a caller-supplied partition function.
func SortFunc[T constraints.Ordered](data []T, partition PartitionFunc[T]) {
	sortImpl(data, partition, nil)
}

// SortTrace is SortFunc that calls trace after every partition with the
// interval that was partitioned and the split index it produced.
func SortTrace[T constraints.Ordered](data []T, partition PartitionFunc[T], trace func(iv Interval, split int)) {
	sortImpl(data, partition, trace)
}

// sortImpl is the work-list driver shared by every entry point.
func sortImpl[T constraints.Ordered](data []T, partition PartitionFunc[T], trace func(Interval, int)) {
	n := len(data)
	if n <= 1 {
		return
	}

	depth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		depth++
	}
	work := newWorklist(depth)
	work.push(Interval{Low: 0, High: n - 1})

	// Each partition fixes one pivot and only intervals of two or more
	// elements are queued, so n-1 partitions always suffice.
	budget := n - 1

	for {
		last, ok := work.pop()
		if !ok {
			return
		}
		if budget == 0 {
			panic(fmt.Sprintf("itersort: more than %d partitions for %d elements, %d intervals pending",
				n-1, n, work.len()+1))
		}
		budget--

		middle := partition(data, last.Low, last.High)
		if middle < last.Low || middle > last.High {
			panic(fmt.Sprintf("itersort: split index %d outside interval %v", middle, last))
		}
		if trace != nil {
			trace(last, middle)
		}
		work.expand(middle, last)
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T constraints.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
