// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"cogentcore.org/core/math32/minmax"
)

// Geometry is a basic [Introspector] for render surfaces that
// keep track of their axis ranges and plot area size.
type Geometry struct {
	// Ranges are the visible ranges of the axes.
	Ranges [AxesN]minmax.F64 `json:"ranges"`

	// Types are the scale types of the axes.
	Types [AxesN]AxisTypes `json:"types"`

	// Width and Height of the plot area in pixels.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (g *Geometry) Range(ax Axes) minmax.F64 {
	return g.Ranges[ax]
}

func (g *Geometry) AxisType(ax Axes) AxisTypes {
	return g.Types[ax]
}

func (g *Geometry) Size() (width, height float64) {
	return g.Width, g.Height
}

// Norm returns the position of v along given axis, normalized
// so that the visible range maps onto [0, 1].
func (g *Geometry) Norm(ax Axes, v float64) float64 {
	rng := g.Ranges[ax]
	lo, hi := rng.Min, rng.Max
	if g.Types[ax] == Log {
		// log axes ranges are in log10 units, as on the surface
		v = math.Log10(v)
	}
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func (g *Geometry) ToPixel(ax Axes, v float64) float64 {
	n := g.Norm(ax, v)
	if ax == Y {
		return g.Height * (1 - n)
	}
	return g.Width * n
}

// ToSurfaceRange converts a range in data units into the units of
// the surface axis range: log10 units for log axes.
func ToSurfaceRange(rng minmax.F64, typ AxisTypes) minmax.F64 {
	if typ == Log {
		return minmax.F64{Min: math.Log10(rng.Min), Max: math.Log10(rng.Max)}
	}
	return rng
}

// FromSurfaceRange converts a surface axis range into data units,
// see [ToSurfaceRange].
func FromSurfaceRange(rng minmax.F64, typ AxisTypes) minmax.F64 {
	if typ == Log {
		return minmax.F64{Min: math.Pow(10, rng.Min), Max: math.Pow(10, rng.Max)}
	}
	return rng
}
