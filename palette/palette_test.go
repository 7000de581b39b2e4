// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"encoding/json"
	"fmt"
	"testing"

	"cogentcore.org/core/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	pl, err := Get("viridis")
	require.NoError(t, err)
	assert.Equal(t, "#440154", pl.At(0).Hex())
	assert.Equal(t, "#fde725", pl.At(1).Hex())
	assert.Equal(t, "#fde725", pl.At(3).Hex())

	_, err = Get("rainbow")
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, Names(), "inferno")
	assert.Len(t, Names(), 9)
}

func TestColorscale(t *testing.T) {
	pl, err := Get("rwb")
	require.NoError(t, err)
	cs := pl.Colorscale()
	require.Len(t, cs, NumStops)
	assert.Equal(t, Stop{0.0, "#ff0000"}, cs[0])
	assert.Equal(t, Stop{0.5, "#ffffff"}, cs[5])
	assert.Equal(t, Stop{1.0, "#0000ff"}, cs[NumStops-1])

	b, err := json.Marshal(cs[:1])
	require.NoError(t, err)
	assert.Equal(t, `[[0,"#ff0000"]]`, string(b))
}

func TestMarkerColor(t *testing.T) {
	seen := map[string]bool{}
	for i := range 16 {
		c := MarkerColor(i)
		assert.Len(t, c, 7)
		assert.Equal(t, byte('#'), c[0])
		seen[c] = true
	}
	assert.Len(t, seen, 16)
	assert.Equal(t, MarkerColor(3), MarkerColor(3))

	c := colors.Spaced(1)
	assert.Equal(t, fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), MarkerColor(1))
}
