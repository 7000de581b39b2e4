// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbols maps category indexes to the marker shapes
// supported by the planar and volumetric scatter traces.
package symbols

//go:generate core generate

// Shapes are marker shapes. The value of each shape is its
// symbol code in the planar scatter trace, and its string is
// the symbol name used by the volumetric scatter trace.
type Shapes int32 //enums:enum -transform kebab

const (
	// Circle is a filled circle, the default shape.
	Circle Shapes = iota

	// Square is a filled square.
	Square

	// Diamond is a filled diamond.
	Diamond

	// Cross is a plus sign.
	Cross

	// X is a big X.
	X

	TriangleUp
	TriangleDown
	TriangleLeft
	TriangleRight
	TriangleNe
	TriangleSe
	TriangleSw
	TriangleNw
	Pentagon
	Hexagon
	Hexagon2
	Octagon
	Star
	Hexagram
	StarTriangleUp
	StarTriangleDown
	StarSquare
	StarDiamond
	DiamondTall
	DiamondWide
	Hourglass
	Bowtie
)

const (
	// CircleOpen is the outline of a circle.
	CircleOpen Shapes = 100 + iota

	// SquareOpen is the outline of a square.
	SquareOpen

	// DiamondOpen is the outline of a diamond.
	DiamondOpen
)

// NumPlanar is the number of distinct shapes used for categories
// in planar (2D) mode.
const NumPlanar = int(Bowtie) + 1

// volumetric are the shapes supported by the volumetric scatter,
// in the order they are assigned to categories.
var volumetric = []Shapes{Circle, Square, Diamond, Cross, X, CircleOpen, SquareOpen, DiamondOpen}

// NumVolumetric is the number of distinct shapes used for
// categories in volumetric (3D) mode.
var NumVolumetric = len(volumetric)

// Planar returns the shape of category index i in 2D mode.
// Categories wrap around once all shapes are used.
func Planar(i int) Shapes {
	return Shapes(i % NumPlanar)
}

// Volumetric returns the shape of category index i in 3D mode,
// reducing indexes beyond the 3D shape budget modulo its size.
func Volumetric(i int) Shapes {
	return volumetric[i%NumVolumetric]
}

// For returns the shape of category index i for given dimensionality.
func For(i int, is3D bool) Shapes {
	if is3D {
		return Volumetric(i)
	}
	return Planar(i)
}

// Code returns the planar symbol code of the shape.
func (s Shapes) Code() int {
	return int(s)
}

// Encode returns the value sent to the render surface for
// the shape: the symbol code in 2D, the symbol name in 3D.
func (s Shapes) Encode(is3D bool) any {
	if is3D {
		return s.String()
	}
	return s.Code()
}

// EncodeAll encodes all given shapes, see [Shapes.Encode].
func EncodeAll(shapes []Shapes, is3D bool) any {
	if is3D {
		names := make([]string, len(shapes))
		for i, s := range shapes {
			names[i] = s.String()
		}
		return names
	}
	codes := make([]int, len(shapes))
	for i, s := range shapes {
		codes[i] = s.Code()
	}
	return codes
}
