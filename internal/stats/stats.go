// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the descriptive statistics the grailbench command
// reports over its timing and comparison-count samples.
package stats

import (
	"math"

	"golang.org/x/grailsort"
)

// Mean returns the arithmetic mean of values.
// It panics on an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		panic("stats: empty slice")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanAndStdDev returns the arithmetic mean and the sample standard
// deviation of values. The standard deviation of a single sample is 0.
// It panics on an empty slice.
func MeanAndStdDev(values []float64) (float64, float64) {
	mean := Mean(values)
	if len(values) == 1 {
		return mean, 0
	}
	sq := 0.0
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)-1))
}

// Median returns the median of values.
func Median(values []float64) float64 { return Quantiles(values, 0.5)[0] }

// Quantiles returns one interpolated quantile per element of quantiles,
// using the Hyndman and Fan "R-7" method. A quantile of 0 is the minimum
// of values, 1 the maximum. It panics on an empty slice or a quantile
// outside [0, 1].
func Quantiles(values []float64, quantiles ...float64) []float64 {
	if len(values) == 0 {
		panic("stats: empty slice")
	}
	if !grailsort.IsSorted(values) {
		sorted := make([]float64, len(values))
		copy(sorted, values)
		grailsort.Sort(sorted)
		values = sorted
	}
	res := make([]float64, len(quantiles))
	for i, q := range quantiles {
		if !(0 <= q && q <= 1) {
			panic("stats: quantile outside [0, 1]")
		}
		h := float64(len(values)-1) * q
		lo := int(math.Floor(h))
		hi := int(math.Ceil(h))
		res[i] = values[lo] + (h-math.Floor(h))*(values[hi]-values[lo])
	}
	return res
}
