// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

import (
	"math/rand"
	"testing"
)

func distinctCount(s []int) int {
	seen := make(map[int]bool)
	for _, v := range s {
		seen[v] = true
	}
	return len(seen)
}

func TestGatherKeys(t *testing.T) {
	less := lessFunc[int](intLess)
	rng := rand.New(rand.NewSource(31))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(200)
		mod := 1 + rng.Intn(40)
		want := 1 + rng.Intn(30)
		a := make([]int, n)
		for i := range a {
			a[i] = rng.Intn(mod)
		}
		before := multiset(a)
		distinct := distinctCount(a)

		g := less.gatherKeys(a, n, want)

		if wantG := min(want, distinct); g != wantG {
			t.Fatalf("n=%d want=%d distinct=%d: g=%d, want %d", n, want, distinct, g, wantG)
		}
		// The key prefix is sorted and pairwise distinct.
		for i := 1; i < g; i++ {
			if a[i] <= a[i-1] {
				t.Fatalf("key prefix not strictly increasing: %v", a[:g])
			}
		}
		if !sameMultiset(before, multiset(a)) {
			t.Fatalf("gatherKeys changed the multiset")
		}
	}
}

func TestGatherKeysPreservesRemainderOrder(t *testing.T) {
	// Duplicates passed over by the scan keep their relative order: the
	// rotations slide the window without disturbing the middle.
	less := lessFunc[intPair](intPairLess)
	a := intPairs{{3, 0}, {1, 1}, {3, 2}, {1, 3}, {2, 4}, {1, 5}, {3, 6}}
	g := less.gatherKeys(a, len(a), 2)
	if g != 2 {
		t.Fatalf("g = %d, want 2", g)
	}
	// First occurrences of 3 and 1 form the key window; everything else
	// must still read 3,1,2,1,3 by original tag order.
	rest := a[2:]
	wantTags := []int{2, 3, 4, 5, 6}
	for i, p := range rest {
		if p.b != wantTags[i] {
			t.Fatalf("remainder reordered: %v", a)
		}
	}
}
