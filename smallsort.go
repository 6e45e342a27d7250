// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

// lessFunc carries the comparison through the engine. All internal phases
// are methods on it so that the ordered and func-based entry points share
// one implementation.
type lessFunc[E any] func(a, b E) bool

// compare reports -1, 0 or 1. Equality is the two-way derivation
// !less(a,b) && !less(b,a).
func (less lessFunc[E]) compare(a, b E) int {
	if less(a, b) {
		return -1
	}
	if less(b, a) {
		return 1
	}
	return 0
}

// blockSwap exchanges a[x:x+n] and a[y:y+n] elementwise.
// The regions must not overlap.
func blockSwap[E any](a []E, x, y, n int) {
	for i := 0; i < n; i++ {
		a[x+i], a[y+i] = a[y+i], a[x+i]
	}
}

// blockMove copies a[from:from+n] onto a[to:to+n] front to back.
// Overlap is fine as long as to <= from.
func blockMove[E any](a []E, to, from, n int) {
	for i := 0; i < n; i++ {
		a[to+i] = a[from+i]
	}
}

// rotate exchanges the adjacent regions a[p:p+l] and a[p+l:p+l+r] in place,
// reducing the smaller side into the larger by block swaps.
func rotate[E any](a []E, p, l, r int) {
	for l != 0 && r != 0 {
		if l <= r {
			blockSwap(a, p, p+l, l)
			p += l
			r -= l
		} else {
			blockSwap(a, p+l-r, p+l, r)
			l -= r
		}
	}
}

// lowerBound returns the first i in [0,n) with a[p+i] >= key, or n.
func (less lessFunc[E]) lowerBound(a []E, p, n int, key E) int {
	low, high := 0, n
	for low < high {
		m := int(uint(low+high) / 2)
		if less(a[p+m], key) {
			low = m + 1
		} else {
			high = m
		}
	}
	return high
}

// upperBound returns the first i in [0,n) with a[p+i] > key, or n.
func (less lessFunc[E]) upperBound(a []E, p, n int, key E) int {
	low, high := 0, n
	for low < high {
		m := int(uint(low+high) / 2)
		if less(key, a[p+m]) {
			high = m
		} else {
			low = m + 1
		}
	}
	return high
}

// insertionSortClassic is the guarded insertion sort for short slices.
func (less lessFunc[E]) insertionSortClassic(s []E) {
	for i := 1; i < len(s); i++ {
		tmp := s[i]
		j := i - 1
		for ; j >= 0 && less(tmp, s[j]); j-- {
			s[j+1] = s[j]
		}
		s[j+1] = tmp
	}
}

// unguardedInsert inserts s[i] into the sorted prefix s[:i]. The caller
// guarantees s[0] <= s[i], which removes the j >= 0 guard.
func (less lessFunc[E]) unguardedInsert(s []E, i int) {
	tmp := s[i]
	j := i - 1
	for ; less(tmp, s[j]); j-- {
		s[j+1] = s[j]
	}
	s[j+1] = tmp
}

// sinkMin rotates the first minimum of s to position 0.
func (less lessFunc[E]) sinkMin(s []E) {
	min := 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[min]) {
			min = i
		}
	}
	tmp := s[min]
	for i := min; i > 0; i-- {
		s[i] = s[i-1]
	}
	s[0] = tmp
}

// insertionSort is the stable insertion sort. For eight elements and up it
// establishes the minimum as a sentinel at position 0 first, so every
// following insert can run unguarded.
func (less lessFunc[E]) insertionSort(s []E) {
	if len(s) < 8 {
		less.insertionSortClassic(s)
		return
	}
	less.sinkMin(s)
	for i := 1; i < len(s); i++ {
		less.unguardedInsert(s, i)
	}
}

// insertionSortUnstable establishes the sentinel with a pairwise swap at
// each step instead of a minimum scan. Equal elements may be reordered;
// the engine only applies it to pairwise-distinct values.
func (less lessFunc[E]) insertionSortUnstable(s []E) {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[0]) {
			s[0], s[i] = s[i], s[0]
		}
		less.unguardedInsert(s, i)
	}
}
