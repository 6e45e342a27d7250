// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grailsort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferLen(t *testing.T) {
	for _, tt := range []struct {
		n, want int
	}{
		{0, 0},
		{1, 0},
		{15, 0},
		{16, 4},
		{17, 8},
		{64, 8},
		{65, 16},
		{256, 16},
		{1024, 32},
		{1025, 64},
		{100000, 512},
	} {
		require.Equal(t, tt.want, BufferLen(tt.n), "n=%d", tt.n)
	}
}

func TestBufferLenSquareCoversN(t *testing.T) {
	for n := 16; n < 1<<20; n = n*7/4 + 1 {
		b := BufferLen(n)
		require.GreaterOrEqual(t, b*b, n, "n=%d", n)
		require.Less(t, (b/2)*(b/2), n, "n=%d", n)
	}
}

func TestNewBuffer(t *testing.T) {
	require.Len(t, NewBuffer[int](1024), 32)
	require.Empty(t, NewBuffer[string](8))
	require.Equal(t, 512, StaticBufferLen)
}

func TestOverlappingBufferPanics(t *testing.T) {
	backing := make([]int, 100)
	require.Panics(t, func() { SortWithBuffer(backing[:60], backing[50:]) })
	require.Panics(t, func() {
		SortWithBufferFunc(backing[:60], backing[59:60], intLess)
	})

	// Disjoint halves of one allocation are fine.
	require.NotPanics(t, func() { SortWithBuffer(backing[:50], backing[50:]) })
	require.NotPanics(t, func() { SortWithBuffer(backing[:50], nil) })

	require.False(t, overlaps(backing[:50], backing[50:]))
	require.False(t, overlaps[int](nil, backing))
	require.True(t, overlaps(backing, backing[99:]))
}
