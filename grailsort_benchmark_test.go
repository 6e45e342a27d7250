// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

import (
	"math/rand"
	"sort"
	"testing"
)

// These benchmarks compare stable-sorting a large slice of int with
// sort.Stable vs. the block-merge engine, with and without scratch.

func makeRandomInts(n int) []int {
	rand.Seed(42)
	ints := make([]int, n)
	for i := 0; i < n; i++ {
		ints[i] = rand.Intn(n)
	}
	return ints
}

func makeSortedInts(n int) []int {
	ints := make([]int, n)
	for i := 0; i < n; i++ {
		ints[i] = i
	}
	return ints
}

func makeReversedInts(n int) []int {
	ints := make([]int, n)
	for i := 0; i < n; i++ {
		ints[i] = n - i
	}
	return ints
}

const benchN = 100_000

func BenchmarkSortStable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(benchN)
		b.StartTimer()
		sort.Stable(sort.IntSlice(ints))
	}
}

func BenchmarkGrailSort(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(benchN)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkGrailSortWithStaticBuffer(b *testing.B) {
	buf := make([]int, StaticBufferLen)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(benchN)
		b.StartTimer()
		SortWithBuffer(ints, buf)
	}
}

func BenchmarkGrailSortWithFullBuffer(b *testing.B) {
	buf := NewBuffer[int](benchN)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(benchN)
		b.StartTimer()
		SortWithBuffer(ints, buf)
	}
}

func BenchmarkGrailSortSorted(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeSortedInts(benchN)
		b.StartTimer()
		Sort(ints)
	}
}

func BenchmarkGrailSortReversed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeReversedInts(benchN)
		b.StartTimer()
		Sort(ints)
	}
}

// Since we're benchmarking these sorts against each other, make sure that
// they generate identical results.
func TestAgainstStdlibStable(t *testing.T) {
	ints := makeRandomInts(200)
	ints2 := make([]int, len(ints))
	copy(ints2, ints)

	sort.Stable(sort.IntSlice(ints))
	Sort(ints2)

	for i := range ints {
		if ints[i] != ints2[i] {
			t.Fatalf("ints2 mismatch at %d; %d != %d", i, ints[i], ints2[i])
		}
	}
}
