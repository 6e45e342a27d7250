// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Grailbench exercises the grailsort engine over assorted input
// distributions and scratch-buffer sizes, reporting timings and
// comparison counts.
//
// Usage:
//
//	grailbench [-n 100000] [-dist random] [-buf sqrt] [-runs 10] [-seed 1]
//
// -dist is one of random, sorted, reversed, equal, fewkeys or sawtooth;
// -buf is none, static, sqrt, or an explicit element count.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"golang.org/x/grailsort"
	"golang.org/x/grailsort/internal/stats"
)

func main() {
	var cfg config
	flag.IntVar(&cfg.n, "n", 100000, "number of elements per run")
	flag.StringVar(&cfg.dist, "dist", "random", "input distribution: random, sorted, reversed, equal, fewkeys, sawtooth")
	flag.StringVar(&cfg.buf, "buf", "none", "scratch buffer: none, static, sqrt, or an element count")
	flag.IntVar(&cfg.runs, "runs", 10, "number of timed runs")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("bench failed", zap.Error(err))
	}
}

type config struct {
	n    int
	dist string
	buf  string
	runs int
	seed int64
}

func run(cfg config, logger *zap.Logger) error {
	if cfg.n <= 0 || cfg.runs <= 0 {
		return fmt.Errorf("n and runs must be positive (n=%d, runs=%d)", cfg.n, cfg.runs)
	}
	gen, err := generator(cfg.dist)
	if err != nil {
		return err
	}
	bufLen, err := bufferLen(cfg.buf, cfg.n)
	if err != nil {
		return err
	}

	logger.Info("bench start",
		zap.String("dist", cfg.dist),
		zap.String("n", humanize.Comma(int64(cfg.n))),
		zap.Int("buffer", bufLen),
		zap.Int("runs", cfg.runs),
	)

	buf := make([]int, bufLen)
	times := make([]float64, 0, cfg.runs)
	comps := make([]float64, 0, cfg.runs)
	rng := rand.New(rand.NewSource(cfg.seed))

	for i := 0; i < cfg.runs; i++ {
		data := gen(rng, cfg.n)
		counts := make(map[int]int, len(data))
		for _, v := range data {
			counts[v]++
		}
		var count int64
		less := func(a, b int) bool {
			count++
			return a < b
		}
		start := time.Now()
		grailsort.SortWithBufferFunc(data, buf, less)
		elapsed := time.Since(start)

		if !grailsort.IsSorted(data) {
			return fmt.Errorf("run %d: output not sorted", i)
		}
		for _, v := range data {
			counts[v]--
		}
		for v, c := range counts {
			if c != 0 {
				return fmt.Errorf("run %d: output not a permutation of the input (value %d off by %d)", i, v, c)
			}
		}
		times = append(times, elapsed.Seconds())
		comps = append(comps, float64(count))
		logger.Debug("run",
			zap.Int("i", i),
			zap.Duration("elapsed", elapsed),
			zap.String("comparisons", humanize.Comma(count)),
		)
	}

	mean, stddev := stats.MeanAndStdDev(times)
	q := stats.Quantiles(times, 0.5, 0.99)
	logger.Info("timing",
		zap.Duration("mean", secs(mean)),
		zap.Duration("stddev", secs(stddev)),
		zap.Duration("p50", secs(q[0])),
		zap.Duration("p99", secs(q[1])),
	)
	logger.Info("comparisons",
		zap.String("mean", humanize.Comma(int64(stats.Mean(comps)))),
		zap.String("per-element", fmt.Sprintf("%.2f", stats.Mean(comps)/float64(cfg.n))),
	)
	return nil
}

func secs(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }

// bufferLen resolves the -buf flag against the input size.
func bufferLen(s string, n int) (int, error) {
	switch s {
	case "none", "0", "":
		return 0, nil
	case "static":
		return grailsort.StaticBufferLen, nil
	case "sqrt":
		return grailsort.BufferLen(n), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid -buf %q", s)
	}
	return v, nil
}

// generator returns the input builder for a distribution name. Every
// builder produces a fresh slice so runs never observe each other.
func generator(dist string) (func(*rand.Rand, int) []int, error) {
	switch dist {
	case "random":
		return func(rng *rand.Rand, n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = rng.Intn(n)
			}
			return s
		}, nil
	case "sorted":
		return func(_ *rand.Rand, n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i
			}
			return s
		}, nil
	case "reversed":
		return func(_ *rand.Rand, n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = n - i
			}
			return s
		}, nil
	case "equal":
		return func(_ *rand.Rand, n int) []int {
			return make([]int, n)
		}, nil
	case "fewkeys":
		// Four distinct values: forces the engine's no-buffer mode.
		return func(rng *rand.Rand, n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = rng.Intn(4)
			}
			return s
		}, nil
	case "sawtooth":
		return func(_ *rand.Rand, n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i % 101
			}
			return s
		}, nil
	}
	return nil, fmt.Errorf("unknown distribution %q", dist)
}
