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
	"encoding/binary"
	"slices"
	"testing"

	"github.com/ajroetker/go-itersort/internal/lcg"
)

// TestSortRandomVectors sorts 10,000 generated vectors with short lengths and
// a tiny value range, so duplicates are everywhere, and checks every adjacent
// pair of the result.
func TestSortRandomVectors(t *testing.T) {
	length := lcg.Range{Min: 2, Max: 30}
	values := lcg.Range{Min: 0, Max: 5}

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			rnd := lcg.New(lcg.DefaultSeed)
			for run := range 10000 {
				v := rnd.Vector(length, values)
				orig := slices.Clone(v)
				Sort(v, s)
				for n := 0; n+1 < len(v); n++ {
					if v[n] > v[n+1] {
						t.Fatalf("run %d: index [%d]=%d > [%d]=%d\n  unsorted=%v\n  sorted  =%v",
							run, n, v[n], n+1, v[n+1], orig, v)
					}
				}
				if !sameMultiset(orig, v) {
					t.Fatalf("run %d: elements changed: %v -> %v", run, orig, v)
				}
			}
		})
	}
}

// FuzzSort decodes the input as little-endian int16 values and compares both
// strategies against slices.Sort.
func FuzzSort(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 0})
	f.Add([]byte{1, 0, 0, 0})
	f.Add([]byte{7, 0, 7, 0, 8, 0, 34, 0, 1, 0})
	f.Add([]byte{0xff, 0xff, 0, 0x80, 0xff, 0x7f, 2, 0, 2, 0})

	f.Fuzz(func(t *testing.T, raw []byte) {
		data := make([]int16, len(raw)/2)
		for i := range data {
			data[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
		}
		want := slices.Clone(data)
		slices.Sort(want)

		for _, s := range Strategies() {
			got := slices.Clone(data)
			Sort(got, s)
			if !slices.Equal(want, got) {
				t.Errorf("Sort(%v, %v) = %v, want %v", data, s, got, want)
			}
		}
	})
}
