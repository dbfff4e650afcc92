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

package stooge

import "golang.org/x/exp/constraints"

// Sort sorts a slice of any ordered type in ascending order using stooge
// sort. It is defined entirely in terms of SortFunc with the natural
// ordering of E, so the two entry points cannot diverge in behavior.
//
// Empty and single-element slices return immediately without any
// comparison.
func Sort[S ~[]E, E constraints.Ordered](x S) {
	SortFunc(x, compare[E])
}

// SortFunc sorts the slice x in place as determined by the cmp function.
// cmp(a, b) should return a negative number when a < b, a positive number
// when a > b, and zero when a == b.
//
// cmp must define a total ordering over the elements of x for the result to
// be fully specified; if it does not, the final order of incomparable
// elements is unspecified, but the sort still terminates and x still holds
// the same elements. If cmp panics, the panic propagates to the caller and
// x may be left partially reordered.
func SortFunc[S ~[]E, E any](x S, cmp func(a, b E) int) {
	stoogeSort(x, 0, len(x), cmp)
}

// SortByKey sorts the slice x in place, ordering elements ascending by the
// key returned from the key function. The key is recomputed on every
// comparison; given stooge sort's complexity, an expensive key function
// hurts far more here than it would with an O(n log n) sort.
func SortByKey[S ~[]E, E any, K constraints.Ordered](x S, key func(E) K) {
	SortFunc(x, func(a, b E) int {
		return compare(key(a), key(b))
	})
}

func compare[E constraints.Ordered](a, b E) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

// stoogeSort sorts x[lo:hi] in place.
//
// Ranges of length 0 or 1 are already sorted. Otherwise the ends of the
// range are compare-and-swapped, which fully sorts ranges of length 2.
// Longer ranges recurse on the first two-thirds, the last two-thirds, and
// the first two-thirds again; the overlap between the passes is what moves
// elements across the one-third boundaries, so all three calls are load
// bearing.
func stoogeSort[E any](x []E, lo, hi int, cmp func(a, b E) int) {
	n := hi - lo
	if n <= 1 {
		return
	}
	if cmp(x[lo], x[hi-1]) > 0 {
		x[lo], x[hi-1] = x[hi-1], x[lo]
	}
	if n < 3 {
		return
	}
	third := n / 3
	stoogeSort(x, lo, hi-third, cmp)
	stoogeSort(x, lo+third, hi, cmp)
	stoogeSort(x, lo, hi-third, cmp)
}
