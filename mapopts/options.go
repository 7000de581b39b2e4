// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapopts holds the options of a map: which property drives
// each visual channel, axis scales and ranges, color palette, size
// scaling and the filter. Every change is notified to listeners
// together with its [Origins].
package mapopts

//go:generate core generate

import (
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mapview/partition"
)

// Channels are the visual channels of a map, plus the filter.
type Channels int32 //enums:enum

const (
	X Channels = iota
	Y
	Z
	Color
	Size
	Symbol
	Opacity

	// Filter is the point filter, driven by one property.
	Filter
)

// Attrs are the attributes of a channel that can change.
type Attrs int32 //enums:enum

const (
	// Property is the name of the property driving the channel.
	Property Attrs = iota

	// Scale is the axis scale.
	Scale

	// Range is the axis or color range.
	Range

	// Controls is the enabled state of the scale and range controls.
	Controls

	// Palette is the color palette.
	Palette

	// Mode is the size scaling mode.
	Mode

	// Factor is the size factor.
	Factor

	// Reverse reverses the size scaling.
	Reverse

	// Enabled turns the filter on or off.
	Enabled

	// Operator is the filter operator.
	Operator

	// Cutoff is the filter cutoff value.
	Cutoff
)

// Field identifies one attribute of one channel.
type Field struct {
	Channel Channels
	Attr    Attrs
}

// F returns the Field for given channel and attribute.
func F(ch Channels, attr Attrs) Field {
	return Field{Channel: ch, Attr: attr}
}

func (f Field) String() string {
	return f.Channel.String() + "." + f.Attr.String()
}

// Origins tell where an options change comes from.
type Origins int32 //enums:enum

const (
	// User changes come from user edits.
	User Origins = iota

	// Surface changes re-read state from the render surface,
	// such as the axis range after a zoom. They must never
	// be pushed back to the surface.
	Surface

	// Loaded changes come from applying saved settings.
	Loaded

	// Engine changes are made by the map itself, such as
	// enabling the z axis controls in 3D mode.
	Engine
)

// Scales are the axis scale kinds.
type Scales int32 //enums:enum -transform lower

const (
	Linear Scales = iota
	Log
)

// SizeModes are the scaling modes of the size channel.
type SizeModes int32 //enums:enum -trim-prefix Size -transform lower

const (
	// SizeLinear scales sizes linearly with the property.
	SizeLinear SizeModes = iota

	// SizeLog scales sizes with the log of the property.
	SizeLog

	// SizeSqrt scales sizes with the square root of the property.
	SizeSqrt

	// SizeInverse scales sizes with the inverse of the property.
	SizeInverse
)

// AxisOptions are the options of one position axis.
type AxisOptions struct { //types:add

	// Property drives the axis; empty if the axis is unused.
	Property string

	// Scale of the axis.
	Scale Scales

	// Range is the visible range of the axis.
	Range minmax.F64 `display:"inline"`

	// Disabled reports that the scale and range controls are disabled,
	// as for the z axis in 2D mode.
	Disabled bool
}

// ColorOptions are the options of the color channel.
type ColorOptions struct { //types:add

	// Property drives the color; empty for a uniform color.
	Property string

	// Range is the property range mapped onto the palette.
	Range minmax.F64 `display:"inline"`

	// Palette is the name of the color palette.
	Palette string `default:"inferno"`
}

// SizeOptions are the options of the size channel.
type SizeOptions struct { //types:add

	// Property drives the size; empty for a constant size.
	Property string

	// Mode is the scaling applied to the property values.
	Mode SizeModes

	// Factor multiplies every size.
	Factor float64 `min:"1" max:"100" default:"50"`

	// Reverse makes the largest values the smallest points.
	Reverse bool
}

// FilterOptions are the options of the point filter.
type FilterOptions struct { //types:add

	// Enabled turns the filter on.
	Enabled bool

	// Property is compared to Cutoff.
	Property string

	// Operator compares the property with Cutoff.
	Operator partition.Operators

	// Cutoff value of the filter.
	Cutoff float64
}

// Filter returns the partition filter for these options.
func (fo *FilterOptions) Filter() partition.Filter {
	return partition.Filter{Enabled: fo.Enabled, Operator: fo.Operator, Cutoff: fo.Cutoff}
}

// Options are all the options of a map.
type Options struct {
	X, Y, Z AxisOptions

	Color ColorOptions

	Size SizeOptions

	// Symbol is the categorical property driving the marker shapes.
	Symbol string

	// Opacity is the property driving the marker opacity.
	Opacity string

	Filter FilterOptions

	listeners Listeners
}

// New returns new Options with defaults applied.
func New() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Defaults sets defaults if unset values are present.
func (o *Options) Defaults() {
	if o.Color.Palette == "" {
		o.Color.Palette = "inferno"
	}
	if o.Size.Factor == 0 {
		o.Size.Factor = 50
	}
}

// Axis returns the options of given position axis,
// nil for non-position channels.
func (o *Options) Axis(ch Channels) *AxisOptions {
	switch ch {
	case X:
		return &o.X
	case Y:
		return &o.Y
	case Z:
		return &o.Z
	}
	return nil
}

// PropertyOf returns the property driving given channel.
func (o *Options) PropertyOf(ch Channels) string {
	switch ch {
	case X, Y, Z:
		return o.Axis(ch).Property
	case Color:
		return o.Color.Property
	case Size:
		return o.Size.Property
	case Symbol:
		return o.Symbol
	case Opacity:
		return o.Opacity
	case Filter:
		return o.Filter.Property
	}
	return ""
}

// Is3D returns whether the z axis is used.
func (o *Options) Is3D() bool {
	return o.Z.Property != ""
}
