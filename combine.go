// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

// mergeBuffersForward is the forward sweep of one combine chunk: it walks
// blockCount sorted blocks of blockLen at a[p:], flushing pending blocks of
// the same origin with block swaps and smart-merging across origin changes.
// keys and med are absolute indices of the key array and the median key;
// extra trailing blocks (extraCount of them) belong with the tail merge of
// length tail. Without a buffer everything degrades to rotations.
func (less lessFunc[E]) mergeBuffersForward(a []E, keys, med, p, blockCount, blockLen int, haveBuf bool, extraCount, tail int) {
	if blockCount == 0 {
		l := extraCount * blockLen
		if haveBuf {
			less.mergeForward(a, p, l, tail, p-blockLen)
		} else {
			less.mergeInPlace(a, p, l, tail)
		}
		return
	}

	lrest := blockLen
	frest := 0
	if !less(a[keys], a[med]) {
		frest = 1
	}
	pidx := p + blockLen
	for c := 1; c < blockCount; c++ {
		prest := pidx - lrest
		fnext := 0
		if !less(a[keys+c], a[med]) {
			fnext = 1
		}
		if fnext == frest {
			if haveBuf {
				blockSwap(a, prest-blockLen, prest, lrest)
			}
			lrest = blockLen
		} else {
			if haveBuf {
				lrest, frest = less.smartMerge(a, prest, lrest, frest, blockLen, blockLen)
			} else {
				lrest, frest = less.smartMergeInPlace(a, prest, lrest, frest, blockLen)
			}
		}
		pidx += blockLen
	}
	prest := pidx - lrest
	if tail != 0 {
		if frest != 0 {
			if haveBuf {
				blockSwap(a, prest-blockLen, prest, lrest)
			}
			prest = pidx
			lrest = blockLen * extraCount
			frest = 0
		} else {
			lrest += blockLen * extraCount
		}
		if haveBuf {
			less.mergeForward(a, prest, lrest, tail, prest-blockLen)
		} else {
			less.mergeInPlace(a, prest, lrest, tail)
		}
	} else if haveBuf {
		blockSwap(a, prest, prest-blockLen, lrest)
	}
}

// mergeBuffersForwardExternal is mergeBuffersForward with move semantics:
// the scratch image lives in the external buffer, so pending blocks and
// merges write by plain moves.
func (less lessFunc[E]) mergeBuffersForwardExternal(a []E, keys, med, p, blockCount, blockLen, extraCount, tail int) {
	if blockCount == 0 {
		less.mergeForwardExternal(a, p, extraCount*blockLen, tail, p-blockLen)
		return
	}

	lrest := blockLen
	frest := 0
	if !less(a[keys], a[med]) {
		frest = 1
	}
	pidx := p + blockLen
	for c := 1; c < blockCount; c++ {
		prest := pidx - lrest
		fnext := 0
		if !less(a[keys+c], a[med]) {
			fnext = 1
		}
		if fnext == frest {
			blockMove(a, prest-blockLen, prest, lrest)
			lrest = blockLen
		} else {
			lrest, frest = less.smartMergeExternal(a, prest, lrest, frest, blockLen, blockLen)
		}
		pidx += blockLen
	}
	prest := pidx - lrest
	if tail != 0 {
		if frest != 0 {
			blockMove(a, prest-blockLen, prest, lrest)
			prest = pidx
			lrest = blockLen * extraCount
			frest = 0
		} else {
			lrest += blockLen * extraCount
		}
		less.mergeForwardExternal(a, prest, lrest, tail, prest-blockLen)
	} else {
		blockMove(a, prest-blockLen, prest, lrest)
	}
}

// combineBlocks runs one doubling pass over the value region a[p:p+m]:
// every chunk of two adjacent runs of length runLen is cut into blocks of
// blockLen, the blocks are selection-sorted by first element (origin
// recorded in the key array, ties broken by key order so the pass stays
// stable), and a forward sweep merges them. A trailing fragment no longer
// than runLen is already sorted and is left for the next pass.
//
// useExt selects the move-based sweep: the blockLen scratch elements in
// front of the region are parked in ext for the duration of the pass.
func (less lessFunc[E]) combineBlocks(a []E, keys, p, m, runLen, blockLen int, haveBuf bool, useExt bool, ext []E) {
	merged := 2 * runLen
	chunks := m / merged
	rest := m % merged
	if rest <= runLen {
		m -= rest
		rest = 0
	}
	if useExt {
		copy(ext[:blockLen], a[p-blockLen:p])
	}

	for i := 0; i <= chunks; i++ {
		last := i == chunks
		if last && rest == 0 {
			break
		}
		base := p + i*merged
		count := merged / blockLen
		extraKey := 0
		if last {
			count = rest / blockLen
			extraKey = 1
		}
		less.insertionSort(a[keys : keys+count+extraKey])

		median := runLen / blockLen
		for u := 1; u < count; u++ {
			t := u - 1
			for v := u; v < count; v++ {
				c := less.compare(a[base+t*blockLen], a[base+v*blockLen])
				if c > 0 || (c == 0 && less(a[keys+v], a[keys+t])) {
					t = v
				}
			}
			if t != u-1 {
				blockSwap(a, base+(u-1)*blockLen, base+t*blockLen, blockLen)
				a[keys+u-1], a[keys+t] = a[keys+t], a[keys+u-1]
				if median == u-1 || median == t {
					median ^= (u - 1) ^ t
				}
			}
		}

		extraCount, tail := 0, 0
		if last {
			tail = rest % blockLen
		}
		if tail != 0 {
			// Trailing blocks that outrank the partial run's head
			// are folded into the tail merge.
			for extraCount < count && less(a[base+count*blockLen], a[base+(count-extraCount-1)*blockLen]) {
				extraCount++
			}
		}

		if useExt {
			less.mergeBuffersForwardExternal(a, keys, keys+median, base, count-extraCount, blockLen, extraCount, tail)
		} else {
			less.mergeBuffersForward(a, keys, keys+median, base, count-extraCount, blockLen, haveBuf, extraCount, tail)
		}
	}

	// The buffered sweeps left the output one blockLen to the left;
	// slide it back and restore the scratch prefix.
	if useExt {
		for q := m - 1; q >= 0; q-- {
			a[p+q] = a[p+q-blockLen]
		}
		copy(a[p-blockLen:p], ext[:blockLen])
	} else if haveBuf {
		for q := m - 1; q >= 0; q-- {
			a[p+q], a[p+q-blockLen] = a[p+q-blockLen], a[p+q]
		}
	}
}
