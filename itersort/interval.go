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

import "fmt"

// Interval is an inclusive index range [Low, High] still waiting to be
// partitioned.
type Interval struct {
	Low  int
	High int
}

// Len returns the number of elements in the interval.
func (i Interval) Len() int {
	return i.High - i.Low + 1
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Low, i.High)
}

// worklist is the driver's stack of pending intervals. It stands in for the
// call frames of a recursive quicksort.
type worklist struct {
	stack []Interval
}

func newWorklist(capacity int) *worklist {
	return &worklist{stack: make([]Interval, 0, capacity)}
}

func (w *worklist) push(i Interval) {
	w.stack = append(w.stack, i)
}

func (w *worklist) pop() (Interval, bool) {
	n := len(w.stack)
	if n == 0 {
		return Interval{}, false
	}
	i := w.stack[n-1]
	w.stack = w.stack[:n-1]
	return i, true
}

func (w *worklist) len() int {
	return len(w.stack)
}

// expand pushes the two sides of last around the split index middle.
// A side is pushed only when it holds at least two elements.
func (w *worklist) expand(middle int, last Interval) {
	if middle > 0 && last.Low < middle-1 {
		w.push(Interval{Low: last.Low, High: middle - 1})
	}
	if last.High > middle+1 {
		w.push(Interval{Low: middle + 1, High: last.High})
	}
}
