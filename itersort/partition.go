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

import "golang.org/x/exp/constraints"

// PartitionFunc rearranges data[low:high+1] around a pivot and returns the
// pivot's final index m, with data[low:m+1] <= data[m] <= data[m:high+1].
// Callers guarantee 0 <= low <= high < len(data).
type PartitionFunc[T constraints.Ordered] func(data []T, low, high int) int

// Swap exchanges data[a] and data[b].
func Swap[T any](data []T, a, b int) {
	data[a], data[b] = data[b], data[a]
}

// PartitionHoare partitions data[low:high+1] around data[low].
//
// The pivot is copied out and its slot becomes a hole. The high cursor moves
// down to the first element smaller than the pivot and drops it into the hole,
// then the low cursor moves up to the first element larger than the pivot and
// drops it into the new hole at the high end. When the cursors meet, the pivot
// goes into the last hole.
func PartitionHoare[T constraints.Ordered](data []T, low, high int) int {
	l, h := low, high
	mid := data[l]
	for {
		for l < h && mid <= data[h] {
			h--
		}
		if l == h {
			break
		}
		data[l] = data[h]
		l++

		for l < h && data[l] <= mid {
			l++
		}
		if l == h {
			break
		}
		data[h] = data[l]
		h--
	}
	data[l] = mid
	return l
}

// PartitionLomuto partitions data[low:high+1] around data[high].
// Elements strictly less than the pivot are swapped to the front; the pivot
// is then swapped to the first position after them.
func PartitionLomuto[T constraints.Ordered](data []T, low, high int) int {
	mid := data[high]
	i := low
	for j := low; j <= high; j++ {
		if data[j] < mid {
			Swap(data, i, j)
			i++
		}
	}
	Swap(data, i, high)
	return i
}
