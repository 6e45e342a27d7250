// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

import "unsafe"

// StaticBufferLen is a scratch length suited to a stack-style fixed
// buffer: var buf [grailsort.StaticBufferLen]T; SortWithBuffer(s, buf[:]).
const StaticBufferLen = 512

// overlaps reports whether the backing arrays of a and b share storage.
func overlaps[E any](a, b []E) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(&a[0]))
	a1 := uintptr(unsafe.Pointer(&a[len(a)-1]))
	b0 := uintptr(unsafe.Pointer(&b[0]))
	b1 := uintptr(unsafe.Pointer(&b[len(b)-1]))
	return a0 <= b1 && b0 <= a1
}

func checkBuffer[E any](s, buf []E) {
	if overlaps(s, buf) {
		panic("grailsort: buffer overlaps input")
	}
}

// BufferLen returns the scratch length that lets every merge pass of a
// sort of n elements run move-based: the smallest power of two whose
// square reaches n. It returns 0 when n is below the insertion-sort
// threshold and no scratch would be consulted at all.
func BufferLen(n int) int {
	if n < 16 {
		return 0
	}
	b := 4
	for b*b < n {
		b *= 2
	}
	return b
}

// NewBuffer allocates a scratch buffer sized by BufferLen, for callers
// that prefer the allocating convenience over owning the buffer:
//
//	grailsort.SortWithBuffer(s, grailsort.NewBuffer[T](len(s)))
func NewBuffer[E any](n int) []E {
	return make([]E, BufferLen(n))
}
