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
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Strategy selects one of the built-in partition schemes.
type Strategy int

const (
	// Hoare takes the pivot from the low end of each interval.
	Hoare Strategy = iota

	// Lomuto takes the pivot from the high end of each interval.
	Lomuto
)

// Strategies returns every built-in strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{Hoare, Lomuto}
}

// String returns the lower-case name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Hoare:
		return "hoare"
	case Lomuto:
		return "lomuto"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to a Strategy. Matching ignores case;
// "a" and "b" are accepted as aliases for Hoare and Lomuto.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hoare", "a":
		return Hoare, nil
	case "lomuto", "b":
		return Lomuto, nil
	default:
		return 0, errors.Errorf("unknown partition strategy %q", name)
	}
}

// Partition returns the partition function implementing strategy s.
// It panics if s is not a built-in strategy.
func Partition[T constraints.Ordered](s Strategy) PartitionFunc[T] {
	switch s {
	case Hoare:
		return PartitionHoare[T]
	case Lomuto:
		return PartitionLomuto[T]
	default:
		panic("itersort: unknown strategy " + s.String())
	}
}
