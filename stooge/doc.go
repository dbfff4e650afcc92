// Copyright 2026 stoogesort Authors
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

// Package stooge sorts slices in place using stooge sort, a deliberately
// inefficient recursive comparison sort with worst-case time complexity
// O(n^(log 3 / log 1.5)) ≈ O(n^2.7095).
//
// The API mirrors the standard library's slices package:
//   - Sort(x) sorts a slice of any ordered element type ascending.
//   - SortFunc(x, cmp) sorts with a caller-supplied three-way comparator.
//   - SortByKey(x, key) sorts by an ordered key extracted from each element.
//
// # Example Usage
//
//	import "github.com/multiplealiases/stoogesort/stooge"
//
//	v := []int{-5, 4, 1, -3, 2}
//	stooge.Sort(v)
//	// v is now [-5, -3, 1, 2, 4]
//
//	floats := []float64{5, 4, 1, 3, 2}
//	stooge.SortFunc(floats, func(a, b float64) int {
//	    return cmp.Compare(a, b)
//	})
//
// # Caveats
//
// The sort is not stable: equal elements may be reordered relative to each
// other. Call stack depth grows as log(n)/log(1.5); no heap allocation is
// performed beyond recursion frames. The slice must not be read or written
// by other goroutines while a sort is in progress. This package exists for
// demonstration; use the slices package for real workloads.
package stooge
