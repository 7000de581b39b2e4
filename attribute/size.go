// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"math"

	"cogentcore.org/mapview/mapopts"
	"gonum.org/v1/gonum/floats"
)

const (
	// BaseSize is the size of points with the default size factor
	// and no size property.
	BaseSize = 10.0

	// DefaultFactor is the default size factor.
	DefaultFactor = 50.0

	// MinSizeScale and MaxSizeScale bound the scaling of [BaseSize]
	// by the size property.
	MinSizeScale = 0.3
	MaxSizeScale = 2.0
)

// SizeScaler maps the size property values, or a constant when
// there is no size property, onto point sizes. It must be monotonic.
type SizeScaler func(v Value[float64], so *mapopts.SizeOptions) Value[float64]

// ScaleSizes is the default [SizeScaler]. Values are transformed
// according to the size mode, normalized to [0, 1] (reversed if
// requested), and mapped onto [MinSizeScale, MaxSizeScale] times
// [BaseSize] times the relative size factor. Values the mode cannot
// transform, such as the log of a negative value, get the minimum size.
func ScaleSizes(v Value[float64], so *mapopts.SizeOptions) Value[float64] {
	base := BaseSize * so.Factor / DefaultFactor
	if !v.IsArray() {
		return NewConstant(base)
	}
	tr := make([]float64, v.Len())
	for i, x := range v.Values() {
		tr[i] = transformSize(x, so.Mode)
	}
	n := normalize(tr, 0, 1)
	sizes := make([]float64, len(n))
	for i, x := range n {
		if so.Reverse && isFinite(tr[i]) {
			x = 1 - x
		}
		sizes[i] = base * (MinSizeScale + (MaxSizeScale-MinSizeScale)*x)
	}
	return NewArray(sizes)
}

func transformSize(x float64, mode mapopts.SizeModes) float64 {
	switch mode {
	case mapopts.SizeLog:
		if x <= 0 {
			return math.NaN()
		}
		return math.Log(x)
	case mapopts.SizeSqrt:
		if x < 0 {
			return math.NaN()
		}
		return math.Sqrt(x)
	case mapopts.SizeInverse:
		if x == 0 {
			return math.NaN()
		}
		return 1 / x
	}
	return x
}

// normalize maps the finite values linearly onto [lo, hi].
// Non-finite values map to lo, and every value maps to the middle
// of the interval when all finite values are equal.
func normalize(values []float64, lo, hi float64) []float64 {
	finite := make([]float64, 0, len(values))
	for _, x := range values {
		if isFinite(x) {
			finite = append(finite, x)
		}
	}
	out := make([]float64, len(values))
	if len(finite) == 0 {
		for i := range out {
			out[i] = lo
		}
		return out
	}
	mn, mx := floats.Min(finite), floats.Max(finite)
	for i, x := range values {
		switch {
		case !isFinite(x):
			out[i] = lo
		case mx == mn:
			out[i] = 0.5 * (lo + hi)
		default:
			out[i] = lo + (hi-lo)*(x-mn)/(mx-mn)
		}
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
