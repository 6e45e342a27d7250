// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

// buildBlocks turns the value region a[p:p+m] into sorted runs of length
// 2*k, using the k buffer elements at a[p-k:p] as merge scratch. When an
// external buffer is supplied, the first passes move instead of swap: the
// u internal-buffer elements nearest the region (u a power of two) are
// parked in ext and the runs are merged by plain moves until the run
// length reaches u.
//
// The region's origin shifts left by the run length after each pass (the
// merges write their output one run-length to the left); the shifts sum to
// k, and the trailing backward-merge pass walks the runs back into place,
// leaving the buffer in front again.
func (less lessFunc[E]) buildBlocks(a []E, p, m, k int, ext []E) {
	u := len(ext)
	if u > k {
		u = k
	}
	// Largest power of two <= u. The pair pass clobbers two buffer
	// slots, so a single-element scratch cannot be used.
	for u&(u-1) != 0 {
		u &= u - 1
	}
	if u < 2 {
		u = 0
	}

	o := p
	h := 2
	if u != 0 {
		copy(ext[:u], a[o-u:o])
		for j := 1; j < m; j += 2 {
			g := 0
			if less(a[o+j], a[o+j-1]) {
				g = 1
			}
			a[o+j-3] = a[o+j-1+g]
			a[o+j-2] = a[o+j-g]
		}
		if m&1 != 0 {
			a[o+m-3] = a[o+m-1]
		}
		o -= 2
		for ; h < u; h *= 2 {
			next := 2 * h
			p0 := 0
			for ; p0 <= m-next; p0 += next {
				less.mergeForwardExternal(a, o+p0, h, h, o+p0-h)
			}
			if rest := m - p0; rest > h {
				less.mergeForwardExternal(a, o+p0, h, rest-h, o+p0-h)
			} else {
				for ; p0 < m; p0++ {
					a[o+p0-h] = a[o+p0]
				}
			}
			o -= h
		}
		copy(a[o+m:o+m+u], ext[:u])
	} else {
		for j := 1; j < m; j += 2 {
			g := 0
			if less(a[o+j], a[o+j-1]) {
				g = 1
			}
			a[o+j-3], a[o+j-1+g] = a[o+j-1+g], a[o+j-3]
			a[o+j-2], a[o+j-g] = a[o+j-g], a[o+j-2]
		}
		if m&1 != 0 {
			a[o+m-1], a[o+m-3] = a[o+m-3], a[o+m-1]
		}
		o -= 2
	}

	for ; h < k; h *= 2 {
		next := 2 * h
		p0 := 0
		for ; p0 <= m-next; p0 += next {
			less.mergeForward(a, o+p0, h, h, o+p0-h)
		}
		if rest := m - p0; rest > h {
			less.mergeForward(a, o+p0, h, rest-h, o+p0-h)
		} else {
			rotate(a, o+p0-h, h, rest)
		}
		o -= h
	}

	// Walk back right by k, pairing the 2k-runs with backward merges.
	// A short trailing run rotates into place instead.
	k2 := 2 * k
	rest := m % k2
	q := m - rest
	if rest <= k {
		rotate(a, o+q, rest, k)
	} else {
		less.mergeBackward(a, o+q, k, rest-k, k)
	}
	for q > 0 {
		q -= k2
		less.mergeBackward(a, o+q, k, k, k)
	}
}
