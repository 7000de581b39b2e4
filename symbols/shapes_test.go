// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanar(t *testing.T) {
	assert.Equal(t, Circle, Planar(0))
	assert.Equal(t, Diamond, Planar(2))
	assert.Equal(t, Bowtie, Planar(NumPlanar-1))
	assert.Equal(t, Circle, Planar(NumPlanar))
	assert.Equal(t, 4, X.Code())
}

func TestVolumetric(t *testing.T) {
	assert.Equal(t, 8, NumVolumetric)
	assert.Equal(t, Circle, Volumetric(0))
	assert.Equal(t, CircleOpen, Volumetric(5))
	assert.Equal(t, DiamondOpen, Volumetric(7))
	// reduction beyond the 3D shape budget
	assert.Equal(t, Circle, Volumetric(8))
	assert.Equal(t, Diamond, Volumetric(10))
	assert.Equal(t, Volumetric(3), For(3, true))
	assert.Equal(t, Planar(12), For(12, false))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "triangle-up", TriangleUp.String())
	assert.Equal(t, "circle-open", CircleOpen.String())
	assert.Equal(t, 5, TriangleUp.Encode(false))
	assert.Equal(t, "triangle-up", TriangleUp.Encode(true))

	shapes := []Shapes{Circle, Square, CircleOpen}
	assert.Equal(t, []int{0, 1, 100}, EncodeAll(shapes, false))
	assert.Equal(t, []string{"circle", "square", "circle-open"}, EncodeAll(shapes, true))

	var s Shapes
	assert.NoError(t, s.SetString("hexagon2"))
	assert.Equal(t, Hexagon2, s)
}
