// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

// gatherKeys shuffles up to want pairwise-distinct values to the front of
// a[:n] in ascending order, and returns how many were found. The elements
// passed over keep their relative order.
//
// It maintains a sorted window a[h0:h0+h] of the keys collected so far. A
// candidate a[u] is binary-searched in the window; if absent, the window is
// rotated to abut u and the candidate rotated into its slot. A final
// rotation moves the window to the front.
func (less lessFunc[E]) gatherKeys(a []E, n, want int) int {
	h, h0 := 1, 0
	for u := 1; u < n && h < want; u++ {
		r := less.lowerBound(a, h0, h, a[u])
		// lowerBound guarantees a[h0+r] >= a[u], so one comparison
		// decides distinctness.
		if r == h || less(a[u], a[h0+r]) {
			rotate(a, h0, h, u-(h0+h))
			h0 = u - h
			rotate(a, h0+r, h-r, 1)
			h++
		}
	}
	rotate(a, 0, h0, h)
	return h
}
