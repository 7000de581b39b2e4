// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attribute resolves the options of a map and the values
// of its properties into the per-point attributes of every trace:
// coordinates, colors, sizes, symbols, outlines and opacity.
package attribute

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/property"
	"cogentcore.org/mapview/symbols"
)

// ErrNotCategorical is returned when a numeric property drives
// the symbol channel.
var ErrNotCategorical = errors.New("attribute: symbol property is not categorical")

const (
	// NeutralColor is the color value of every point when no
	// property drives the color channel: the middle of the palette.
	NeutralColor = 0.5

	// LineColor2D is the outline of the main and background points in 2D.
	LineColor2D = "rgba(1, 1, 1, 0.3)"

	// SelectedLineColor2D is the outline of selected points in 2D,
	// contrasting with the overlay markers.
	SelectedLineColor2D = "black"

	// LineColor3D is the outline of every point in 3D. Translucent
	// outlines break the depth sorting of the volumetric scatter.
	LineColor3D = "black"

	// LineWidth2D is the outline width of main and background points in 2D.
	LineWidth2D = 1.0

	// LineWidth3D is the outline width of main and background points in 3D.
	LineWidth3D = 0.5

	// SelectedLineWidth is the outline width of selected points.
	SelectedLineWidth = 2.0

	// ActiveSize3D is the size of the active marker point in 3D.
	ActiveSize3D = 20.0

	// InactiveSize3D is the size of the other marker points in 3D.
	InactiveSize3D = 12.0

	// MinOpacity is the opacity of the points with the lowest
	// value of the opacity property.
	MinOpacity = 0.1

	// BackgroundOpacity multiplies the opacity of background points.
	BackgroundOpacity = 0.2
)

// Lookup returns the property with given name.
type Lookup func(name string) (*property.Property, error)

// LegendEntry is the legend placeholder of one symbol category.
type LegendEntry struct {
	// Label of the category.
	Label string

	// Shape of the category markers.
	Shape symbols.Shapes
}

// Resolver resolves the attributes of every trace role from the
// current options and properties. The per-point attributes are
// always derived in full from the current state.
type Resolver struct {
	Context

	// Options of the map.
	Options *mapopts.Options

	// Lookup returns properties by name.
	Lookup Lookup

	// Is3D is whether the map is in 3D mode.
	Is3D bool

	// SizeScale scales the size property values; [ScaleSizes] if nil.
	SizeScale SizeScaler
}

// values returns the values of given property, unused if name is empty.
func (r *Resolver) values(name string) (Value[float64], error) {
	if name == "" {
		return NewUnused[float64](), nil
	}
	p, err := r.Lookup(name)
	if err != nil {
		return Value[float64]{}, err
	}
	return NewArray(p.Values), nil
}

// Coordinates returns the positions along given axis. An axis
// without property, such as z in 2D, is unused in every role.
func (r *Resolver) Coordinates(ch mapopts.Channels) (Set[float64], error) {
	ax := r.Options.Axis(ch)
	if ax == nil {
		return Set[float64]{}, fmt.Errorf("attribute: %v is not a position axis", ch)
	}
	if ch == mapopts.Z && !r.Is3D {
		return Resolve(&r.Context, NewUnused[float64](), nil), nil
	}
	v, err := r.values(ax.Property)
	if err != nil {
		return Set[float64]{}, err
	}
	return Resolve(&r.Context, v, nil), nil
}

// Colors returns the color values, mapped onto the palette by
// the render surface color axis. Without color property every
// point gets [NeutralColor].
func (r *Resolver) Colors() (Set[float64], error) {
	if r.Options.Color.Property == "" {
		return Resolve(&r.Context, NewConstant(NeutralColor), nil), nil
	}
	v, err := r.values(r.Options.Color.Property)
	if err != nil {
		return Set[float64]{}, err
	}
	return Resolve(&r.Context, v, nil), nil
}

// ColorRange returns the range of the color property over given
// point indexes, invalid if there is no color property or no
// such point.
func (r *Resolver) ColorRange(indexes []int) (minmax.F64, error) {
	var rng minmax.F64
	rng.SetInfinity()
	if r.Options.Color.Property == "" {
		return rng, nil
	}
	v, err := r.values(r.Options.Color.Property)
	if err != nil {
		return rng, err
	}
	property.Range(property.Values(gather(v.Values(), indexes)), &rng)
	return rng, nil
}

// LineColors returns the outline colors.
func (r *Resolver) LineColors() Set[string] {
	if r.Is3D {
		return Resolve(&r.Context, NewConstant(LineColor3D), nil)
	}
	set := Resolve(&r.Context, NewConstant(LineColor2D), nil)
	set[Selected] = NewConstant(SelectedLineColor2D)
	return set
}

// LineWidths returns the outline widths.
func (r *Resolver) LineWidths() Set[float64] {
	w := LineWidth2D
	if r.Is3D {
		w = LineWidth3D
	}
	set := Resolve(&r.Context, NewConstant(w), nil)
	set[Selected] = NewConstant(SelectedLineWidth)
	return set
}

// Sizes returns the point sizes, scaled from the size property.
// In 3D the selected role uses [ActiveSize3D] for the active marker
// and [InactiveSize3D] for the others, whatever the property.
func (r *Resolver) Sizes() (Set[float64], error) {
	v, err := r.values(r.Options.Size.Property)
	if err != nil {
		return Set[float64]{}, err
	}
	scale := r.SizeScale
	if scale == nil {
		scale = ScaleSizes
	}
	scaled := scale(v, &r.Options.Size)
	var override []float64
	if r.Is3D {
		override = r.markerSizes()
	}
	return Resolve(&r.Context, scaled, override), nil
}

// markerSizes returns the fixed 3D sizes of the selected role.
func (r *Resolver) markerSizes() []float64 {
	sizes := make([]float64, len(r.Selected))
	for i := range sizes {
		if i == r.Active {
			sizes[i] = ActiveSize3D
		} else {
			sizes[i] = InactiveSize3D
		}
	}
	return sizes
}

// symbolProperty returns the categorical property of the symbol
// channel, nil if there is none.
func (r *Resolver) symbolProperty() (*property.Property, error) {
	if r.Options.Symbol == "" {
		return nil, nil
	}
	p, err := r.Lookup(r.Options.Symbol)
	if err != nil {
		return nil, err
	}
	if !p.IsCategorical() {
		return nil, fmt.Errorf("%w: %q", ErrNotCategorical, p.Name)
	}
	return p, nil
}

// Symbols returns the marker shapes: circles without symbol
// property, and the shape of the category of each point otherwise.
func (r *Resolver) Symbols() (Set[symbols.Shapes], error) {
	p, err := r.symbolProperty()
	if err != nil {
		return Set[symbols.Shapes]{}, err
	}
	if p == nil {
		return Resolve(&r.Context, NewConstant(symbols.Circle), nil), nil
	}
	shapes := make([]symbols.Shapes, p.Len())
	for i := range shapes {
		shapes[i] = symbols.For(p.LabelIndex(i), r.Is3D)
	}
	return Resolve(&r.Context, NewArray(shapes), nil), nil
}

// Legend returns one legend placeholder per symbol category,
// nil without symbol property.
func (r *Resolver) Legend() ([]LegendEntry, error) {
	p, err := r.symbolProperty()
	if p == nil || err != nil {
		return nil, err
	}
	entries := make([]LegendEntry, len(p.Labels))
	for i, lb := range p.Labels {
		entries[i] = LegendEntry{Label: lb, Shape: symbols.For(i, r.Is3D)}
	}
	return entries, nil
}

// Opacities returns the point opacities. The opacity property is
// normalized onto [MinOpacity, 1], background points are dimmed by
// [BackgroundOpacity] and selected points are always opaque.
// The volumetric scatter only supports one opacity per trace, so
// in 3D each role gets the mean opacity of its points.
func (r *Resolver) Opacities() (Set[float64], error) {
	v, err := r.values(r.Options.Opacity)
	if err != nil {
		return Set[float64]{}, err
	}
	var base Value[float64]
	if v.IsArray() {
		base = NewArray(normalize(v.Values(), MinOpacity, 1))
	} else {
		base = NewConstant(1.0)
	}
	set := Resolve(&r.Context, base, nil)
	set[Background] = Map(set[Background], func(o float64) float64 { return o * BackgroundOpacity })
	set[Selected] = NewConstant(1.0)
	if r.Is3D {
		set[Main] = NewConstant(mean(set[Main], 1))
		set[Background] = NewConstant(mean(set[Background], BackgroundOpacity))
	}
	return set, nil
}

// mean returns the mean of the values, def for an empty array.
func mean(v Value[float64], def float64) float64 {
	if !v.IsArray() {
		return v.Constant()
	}
	if v.Len() == 0 {
		return def
	}
	sum := 0.0
	for _, x := range v.Values() {
		sum += x
	}
	return sum / float64(v.Len())
}
