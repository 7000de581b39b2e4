// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"testing"

	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/partition"
	"cogentcore.org/mapview/property"
	"cogentcore.org/mapview/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResolver(t *testing.T) *Resolver {
	st, err := property.NewStore(map[property.Modes]map[string]property.Input{
		property.Structure: {
			"energy": {Values: []float64{1, 5, 9, 2}},
			"volume": {Values: []float64{10, 20, 30, 40}},
			"phase":  property.FromStrings([]string{"solid", "liquid", "solid", "gas"}),
		},
	})
	require.NoError(t, err)
	opts := mapopts.New()
	opts.X.Property = "energy"
	opts.Y.Property = "volume"
	energy := []float64{1, 5, 9, 2}
	pt, err := partition.Compute(4, func(i int) float64 { return energy[i] }, partition.Filter{Enabled: true, Operator: partition.Greater, Cutoff: 4})
	require.NoError(t, err)
	return &Resolver{
		Context: Context{Partition: pt, Selected: []int{2, 0}, Active: 1},
		Options: opts,
		Lookup: func(name string) (*property.Property, error) {
			return st.Get(property.Structure, name)
		},
	}
}

func TestResolveConstant(t *testing.T) {
	ctx := &Context{Partition: partition.All(3), Selected: []int{1}}
	set := Resolve(ctx, NewConstant(7), nil)
	for _, v := range set {
		assert.Equal(t, Constant, v.Kind())
		assert.Equal(t, 7, v.Constant())
	}

	set = Resolve(ctx, NewConstant(7), []int{9})
	assert.Equal(t, []int{9}, set[Selected].Values())
	assert.Equal(t, 7, set[Main].Constant())
}

func TestResolveArray(t *testing.T) {
	ctx := &Context{Partition: partition.Partition{Main: []int{1, 2}, Background: []int{0, 3}}, Selected: []int{3, 1}}
	src := NewArray([]string{"a", "b", "c", "d"})
	set := Resolve(ctx, src, nil)
	assert.Equal(t, []string{"b", "c"}, set[Main].Values())
	assert.Equal(t, []string{"a", "d"}, set[Background].Values())
	assert.Equal(t, []string{"d", "b"}, set[Selected].Values())

	assert.Equal(t, []string{"a", "d"}, ResolveRole(ctx, src, Background, nil).Values())
	assert.Equal(t, []string{"x"}, ResolveRole(ctx, src, Selected, []string{"x"}).Values())
}

func TestCoordinates(t *testing.T) {
	r := testResolver(t)
	x, err := r.Coordinates(mapopts.X)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 9}, x[Main].Values())
	assert.Equal(t, []float64{1, 2}, x[Background].Values())
	assert.Equal(t, []float64{9, 1}, x[Selected].Values())

	z, err := r.Coordinates(mapopts.Z)
	require.NoError(t, err)
	for _, v := range z {
		assert.Equal(t, Unused, v.Kind())
		assert.Nil(t, v.Encode())
	}

	_, err = r.Coordinates(mapopts.Color)
	assert.Error(t, err)

	r.Options.X.Property = "missing"
	_, err = r.Coordinates(mapopts.X)
	assert.ErrorIs(t, err, property.ErrUnknownProperty)
}

func TestColors(t *testing.T) {
	r := testResolver(t)
	set, err := r.Colors()
	require.NoError(t, err)
	for _, v := range set {
		assert.Equal(t, Constant, v.Kind())
		assert.Equal(t, NeutralColor, v.Constant())
	}

	r.Options.Color.Property = "volume"
	set, err = r.Colors()
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30}, set[Main].Values())

	rng, err := r.ColorRange(r.Partition.Main)
	require.NoError(t, err)
	assert.Equal(t, 20.0, rng.Min)
	assert.Equal(t, 30.0, rng.Max)
	rng, err = r.ColorRange([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 10.0, rng.Min)
	assert.Equal(t, 40.0, rng.Max)
}

func TestLines(t *testing.T) {
	r := testResolver(t)
	lc := r.LineColors()
	assert.Equal(t, LineColor2D, lc[Main].Constant())
	assert.Equal(t, LineColor2D, lc[Background].Constant())
	assert.Equal(t, SelectedLineColor2D, lc[Selected].Constant())
	lw := r.LineWidths()
	assert.Equal(t, LineWidth2D, lw[Main].Constant())

	r.Is3D = true
	lc = r.LineColors()
	for _, v := range lc {
		assert.Equal(t, LineColor3D, v.Constant())
	}
	lw3 := r.LineWidths()
	for role := range lw3 {
		assert.LessOrEqual(t, lw3[role].Constant(), lw[role].Constant())
	}
}

func TestSizes(t *testing.T) {
	r := testResolver(t)
	set, err := r.Sizes()
	require.NoError(t, err)
	assert.Equal(t, BaseSize, set[Main].Constant())

	r.Options.Size.Property = "energy"
	set, err = r.Sizes()
	require.NoError(t, err)
	main := set[Main].Values()
	assert.Less(t, main[0], main[1])
	assert.InDelta(t, BaseSize*MaxSizeScale, main[1], 1e-9)

	r.Is3D = true
	set, err = r.Sizes()
	require.NoError(t, err)
	assert.Equal(t, []float64{InactiveSize3D, ActiveSize3D}, set[Selected].Values())
	assert.Equal(t, main, set[Main].Values())
}

func TestSymbols(t *testing.T) {
	r := testResolver(t)
	set, err := r.Symbols()
	require.NoError(t, err)
	assert.Equal(t, symbols.Circle, set[Main].Constant())
	lg, err := r.Legend()
	require.NoError(t, err)
	assert.Nil(t, lg)

	r.Options.Symbol = "phase"
	set, err = r.Symbols()
	require.NoError(t, err)
	// solid, liquid, solid, gas -> main is liquid, solid
	assert.Equal(t, []symbols.Shapes{symbols.Square, symbols.Circle}, set[Main].Values())
	lg, err = r.Legend()
	require.NoError(t, err)
	assert.Equal(t, []LegendEntry{{"solid", symbols.Circle}, {"liquid", symbols.Square}, {"gas", symbols.Diamond}}, lg)

	r.Options.Symbol = "energy"
	_, err = r.Symbols()
	assert.ErrorIs(t, err, ErrNotCategorical)
}

func TestOpacities(t *testing.T) {
	r := testResolver(t)
	set, err := r.Opacities()
	require.NoError(t, err)
	assert.Equal(t, 1.0, set[Main].Constant())
	assert.Equal(t, BackgroundOpacity, set[Background].Constant())
	assert.Equal(t, 1.0, set[Selected].Constant())

	r.Options.Opacity = "volume"
	set, err = r.Opacities()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.4, 0.7}, set[Main].Values(), 1e-9)
	assert.InDeltaSlice(t, []float64{0.1 * BackgroundOpacity, 1 * BackgroundOpacity}, set[Background].Values(), 1e-9)

	r.Is3D = true
	set, err = r.Opacities()
	require.NoError(t, err)
	assert.InDelta(t, 0.55, set[Main].Constant(), 1e-9)
	assert.Equal(t, Constant, set[Background].Kind())
}
