// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grailsort sorts slices stably, in place, in O(n log n) time and
// O(1) auxiliary space.
//
// The engine is a block-merge sort: it extracts a prefix of pairwise
// distinct values to serve as both a key array and a working buffer,
// builds small sorted runs against that buffer, then repeatedly doubles
// the run length by splitting adjacent runs into fixed-size blocks,
// selection-sorting the blocks by first element while the keys record
// their origin, and merging them in a single forward sweep. The buffer is
// reinserted at the end, restoring stability.
//
// An optional caller-supplied scratch buffer turns the innermost swap
// loops into plain moves. It is never required: behavior is identical for
// any scratch length, including zero.
package grailsort

import "golang.org/x/exp/constraints"

// Sort sorts s in ascending order, stably and in place, performing no
// allocations.
func Sort[E constraints.Ordered](s []E) {
	lessFunc[E](lessOrdered[E]).sort(s, nil)
}

// SortFunc sorts s stably and in place using less to compare elements.
// less must describe a strict weak ordering.
func SortFunc[E any](s []E, less func(a, b E) bool) {
	lessFunc[E](less).sort(s, nil)
}

// SortWithBuffer sorts s like Sort, using buf as external merge scratch.
// buf must not overlap s (SortWithBuffer panics if it does); its contents
// on entry and exit are undefined. Larger buffers reduce the number of
// in-place rotations; see BufferLen for the recommended size.
func SortWithBuffer[E constraints.Ordered](s, buf []E) {
	checkBuffer(s, buf)
	lessFunc[E](lessOrdered[E]).sort(s, buf)
}

// SortWithBufferFunc sorts s like SortFunc, using buf as external merge
// scratch. buf must not overlap s.
func SortWithBufferFunc[E any](s, buf []E, less func(a, b E) bool) {
	checkBuffer(s, buf)
	lessFunc[E](less).sort(s, buf)
}

// IsSorted reports whether s is in ascending order.
func IsSorted[E constraints.Ordered](s []E) bool {
	return IsSortedFunc(s, lessOrdered[E])
}

// IsSortedFunc reports whether s is in ascending order under less.
func IsSortedFunc[E any](s []E, less func(a, b E) bool) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

func lessOrdered[E constraints.Ordered](a, b E) bool { return a < b }

// sort is the orchestrator. It designates the key and buffer regions,
// builds the initial runs, doubles the run length until it covers the
// value region, and finally folds the key/buffer prefix back in.
func (less lessFunc[E]) sort(a, ext []E) {
	n := len(a)
	if n < 16 {
		less.insertionSort(a)
		return
	}

	blockLen := 4
	for blockLen*blockLen < n {
		blockLen *= 2
	}
	keyCount := 1 + (n-1)/blockLen
	desired := keyCount + blockLen
	found := less.gatherKeys(a, n, desired)
	haveBuf := found >= desired

	if !haveBuf {
		if found < 4 {
			less.lazyMergeSort(a)
			return
		}
		// Not enough keys for a dedicated buffer: shrink the key
		// array to a power of two and run buffer-less.
		keyCount = blockLen
		for keyCount > found {
			keyCount /= 2
		}
		blockLen = 0
	}

	offset := blockLen + keyCount
	m := n - offset
	runLen := blockLen
	if !haveBuf {
		runLen = keyCount
	}
	if haveBuf {
		less.buildBlocks(a, offset, m, runLen, ext)
	} else {
		less.buildBlocks(a, offset, m, runLen, nil)
	}

	for {
		runLen *= 2
		if m <= runLen {
			break
		}
		b := blockLen
		pass := haveBuf
		if !haveBuf {
			if keyCount > 4 && keyCount/8*keyCount >= runLen {
				// The key array is rich enough to promote half
				// of it to a buffer for this pass.
				b = keyCount / 2
				pass = true
			} else {
				nk := 1
				for s := int64(runLen) * int64(keyCount) / 2; nk < keyCount && s != 0; s /= 8 {
					nk *= 2
				}
				b = (2 * runLen) / nk
			}
		} else if len(ext) != 0 {
			for b > len(ext) && b*b > 2*runLen {
				b /= 2
			}
		}
		useExt := pass && b <= len(ext)
		less.combineBlocks(a, 0, offset, m, runLen, b, pass, useExt, ext)
	}

	// The prefix holds pairwise distinct values, so stability is not
	// needed to put it back in order.
	less.insertionSortUnstable(a[:offset])
	less.mergeInPlace(a, 0, offset, m)
}
