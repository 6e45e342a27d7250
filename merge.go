// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

// The primitive merges below operate on two adjacent sorted runs
// a[p:p+l1] and a[p+l1:p+l1+l2]. The buffered variants additionally use a
// scratch region elsewhere in a: the forward ones write through index m
// (normally p minus the buffer length), the backward one through a slot
// d positions to the right of the merged region. Buffered merges swap, so
// the scratch contents survive as a permutation; the external variants
// overwrite and are only used when the destination is saved elsewhere.

// mergeForward merges left to right, swapping the smaller head into the
// scratch slot at m. Ties take the left run.
func (less lessFunc[E]) mergeForward(a []E, p, l1, l2, m int) {
	i := p
	j := p + l1
	end := j + l2
	for j < end {
		if i == p+l1 || less(a[j], a[i]) {
			a[m], a[j] = a[j], a[m]
			j++
		} else {
			a[m], a[i] = a[i], a[m]
			i++
		}
		m++
	}
	if m != i {
		blockSwap(a, m, i, p+l1-i)
	}
}

// mergeBackward merges right to left, swapping the larger tail into the
// scratch slot d positions past the region. Ties take the right run.
func (less lessFunc[E]) mergeBackward(a []E, p, l1, l2, d int) {
	i := p + l1 - 1
	j := p + l1 + l2 - 1
	q := j + d
	for i >= p {
		if j < p+l1 || less(a[j], a[i]) {
			a[q], a[i] = a[i], a[q]
			i--
		} else {
			a[q], a[j] = a[j], a[q]
			j--
		}
		q--
	}
	if j != q {
		for j >= p+l1 {
			a[q], a[j] = a[j], a[q]
			q--
			j--
		}
	}
}

// mergeForwardExternal is mergeForward writing by move into a[m:], for use
// when the scratch contents are parked in the external buffer.
func (less lessFunc[E]) mergeForwardExternal(a []E, p, l1, l2, m int) {
	i := p
	j := p + l1
	end := j + l2
	for j < end {
		if i == p+l1 || less(a[j], a[i]) {
			a[m] = a[j]
			j++
		} else {
			a[m] = a[i]
			i++
		}
		m++
	}
	if m != i {
		for i < p+l1 {
			a[m] = a[i]
			m++
			i++
		}
	}
}

// mergeInPlace merges with rotations only, iterating over whichever side is
// smaller so that every step retires at least one element of it.
func (less lessFunc[E]) mergeInPlace(a []E, p, l1, l2 int) {
	if l1 < l2 {
		less.mergeLeftInPlace(a, p, l1, l2)
	} else {
		less.mergeRightInPlace(a, p, l1, l2)
	}
}

func (less lessFunc[E]) mergeLeftInPlace(a []E, p, l1, l2 int) {
	for l1 != 0 {
		t := less.lowerBound(a, p+l1, l2, a[p])
		if t != 0 {
			rotate(a, p, l1, t)
			p += t
			l2 -= t
		}
		if l2 == 0 {
			break
		}
		for {
			p++
			l1--
			if l1 == 0 || less(a[p+l1], a[p]) {
				break
			}
		}
	}
}

func (less lessFunc[E]) mergeRightInPlace(a []E, p, l1, l2 int) {
	for l2 != 0 {
		t := less.upperBound(a, p, l1, a[p+l1+l2-1])
		if t != l1 {
			rotate(a, p+t, l1-t, l2)
			l1 = t
		}
		if l1 == 0 {
			break
		}
		for {
			l2--
			if l2 == 0 || less(a[p+l1+l2-1], a[p+l1-1]) {
				break
			}
		}
	}
}

// smartMerge merges two runs whose block-of-origin type the caller tracks
// externally. typ is the type of the left run; ties resolve so that the
// combined output stays stable for either origin order. It returns the
// length and type of the leftover fragment. The scratch buffer occupies
// the nb slots before p.
func (less lessFunc[E]) smartMerge(a []E, p, l1, typ, l2, nb int) (int, int) {
	q := p - nb
	i := p
	mid := p + l1
	j := mid
	end := mid + l2
	ft := 1 - typ
	for i < mid && j < end {
		if less.compare(a[i], a[j])-ft < 0 {
			a[q], a[i] = a[i], a[q]
			i++
		} else {
			a[q], a[j] = a[j], a[q]
			j++
		}
		q++
	}
	if i < mid {
		// Left fragment remains: park it at the very end.
		l1 = mid - i
		for i < mid {
			mid--
			end--
			a[mid], a[end] = a[end], a[mid]
		}
		return l1, typ
	}
	return end - j, ft
}

// smartMergeInPlace is smartMerge via rotations, used when no buffer is
// available.
func (less lessFunc[E]) smartMergeInPlace(a []E, p, l1, typ, l2 int) (int, int) {
	if l2 == 0 {
		return l1, typ
	}
	ft := 1 - typ
	if l1 != 0 && less.compare(a[p+l1-1], a[p+l1])-ft >= 0 {
		for l1 != 0 {
			var t int
			if ft != 0 {
				t = less.lowerBound(a, p+l1, l2, a[p])
			} else {
				t = less.upperBound(a, p+l1, l2, a[p])
			}
			if t != 0 {
				rotate(a, p, l1, t)
				p += t
				l2 -= t
			}
			if l2 == 0 {
				return l1, typ
			}
			for {
				p++
				l1--
				if l1 == 0 || less.compare(a[p], a[p+l1])-ft >= 0 {
					break
				}
			}
		}
	}
	return l2, ft
}

// smartMergeExternal is smartMerge writing by move into the external
// scratch image before p.
func (less lessFunc[E]) smartMergeExternal(a []E, p, l1, typ, l2, nb int) (int, int) {
	q := p - nb
	i := p
	mid := p + l1
	j := mid
	end := mid + l2
	ft := 1 - typ
	for i < mid && j < end {
		if less.compare(a[i], a[j])-ft < 0 {
			a[q] = a[i]
			i++
		} else {
			a[q] = a[j]
			j++
		}
		q++
	}
	if i < mid {
		l1 = mid - i
		for i < mid {
			mid--
			end--
			a[end] = a[mid]
		}
		return l1, typ
	}
	return end - j, ft
}
