// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerators(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, dist := range []string{"random", "sorted", "reversed", "equal", "fewkeys", "sawtooth"} {
		gen, err := generator(dist)
		require.NoError(t, err, dist)
		s := gen(rng, 100)
		require.Len(t, s, 100, dist)
	}
	_, err := generator("bogus")
	require.Error(t, err)
}

func TestBufferLenFlag(t *testing.T) {
	for _, tt := range []struct {
		in   string
		n    int
		want int
	}{
		{"none", 1000, 0},
		{"", 1000, 0},
		{"static", 1000, 512},
		{"sqrt", 1024, 32},
		{"123", 1000, 123},
	} {
		got, err := bufferLen(tt.in, tt.n)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
	_, err := bufferLen("-5", 10)
	require.Error(t, err)
	_, err = bufferLen("abc", 10)
	require.Error(t, err)
}

func TestRunSmoke(t *testing.T) {
	logger := zap.NewNop()
	for _, dist := range []string{"random", "equal", "fewkeys"} {
		cfg := config{n: 2000, dist: dist, buf: "sqrt", runs: 2, seed: 7}
		require.NoError(t, run(cfg, logger), dist)
	}
	require.Error(t, run(config{n: 0, dist: "random", buf: "none", runs: 1}, logger))
	require.Error(t, run(config{n: 10, dist: "random", buf: "wat", runs: 1}, logger))
}
