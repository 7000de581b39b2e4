// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides the continuous color palettes of the
// color channel and the spaced colors of selection markers.
package palette

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/core/base/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknown is returned for unknown palette names.
var ErrUnknown = errors.New("palette: unknown palette")

// NumStops is the number of stops of generated colorscales.
const NumStops = 11

// Palette is a continuous color palette, defined by evenly spaced
// control colors interpolated in the CIE L*a*b* space.
type Palette struct {
	// Name of the palette.
	Name string

	// Colors are the control colors, from low to high values.
	Colors []colorful.Color
}

// Stop is one stop of a colorscale, encoded as [position, "#rrggbb"].
type Stop [2]any

// Colorscale is a list of stops, as consumed by the render surface
// color axis.
type Colorscale []Stop

var palettes = map[string]*Palette{}

func add(name string, hexes ...string) {
	pl := &Palette{Name: name}
	for _, h := range hexes {
		pl.Colors = append(pl.Colors, errors.Must1(colorful.Hex(h)))
	}
	palettes[name] = pl
}

func init() {
	add("inferno", "#000004", "#420a68", "#932667", "#dd513a", "#fca50a", "#fcffa4")
	add("viridis", "#440154", "#414487", "#2a788e", "#22a884", "#7ad151", "#fde725")
	add("magma", "#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf")
	add("plasma", "#0d0887", "#6a00a8", "#b12a90", "#e16462", "#fca636", "#f0f921")
	add("cividis", "#00224e", "#35456c", "#666970", "#948e77", "#c8b866", "#fee838")
	add("seismic", "#00004c", "#0000ff", "#ffffff", "#ff0000", "#800000")
	add("brg", "#0000ff", "#ff0000", "#00ff00")
	add("hsv", "#ff0000", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00ff", "#ff0000")
	add("rwb", "#ff0000", "#ffffff", "#0000ff")
}

// Get returns the palette with given name.
func Get(name string) (*Palette, error) {
	pl, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return pl, nil
}

// Names returns the sorted names of all palettes.
func Names() []string {
	return slices.Sorted(maps.Keys(palettes))
}

// At returns the color at normalized position v in [0, 1],
// clipping v outside of this range.
func (pl *Palette) At(v float64) colorful.Color {
	n := len(pl.Colors)
	if v <= 0 || n == 1 {
		return pl.Colors[0]
	}
	if v >= 1 {
		return pl.Colors[n-1]
	}
	p := v * float64(n-1)
	i := int(p)
	return pl.Colors[i].BlendLab(pl.Colors[i+1], p-float64(i)).Clamped()
}

// Colorscale returns the palette sampled at [NumStops] evenly
// spaced positions.
func (pl *Palette) Colorscale() Colorscale {
	cs := make(Colorscale, NumStops)
	for i := range cs {
		pos := float64(i) / float64(NumStops-1)
		cs[i] = Stop{pos, pl.At(pos).Hex()}
	}
	return cs
}
