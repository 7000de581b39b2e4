// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapopts

import (
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mapview/partition"
)

// set assigns v to *ptr and notifies listeners of f,
// unless the value is unchanged.
func set[T comparable](o *Options, ptr *T, v T, f Field, origin Origins) {
	if *ptr == v {
		return
	}
	*ptr = v
	o.notify(f, origin)
}

// SetProperty sets the property driving given channel.
func (o *Options) SetProperty(ch Channels, name string, origin Origins) {
	var ptr *string
	switch ch {
	case X, Y, Z:
		ptr = &o.Axis(ch).Property
	case Color:
		ptr = &o.Color.Property
	case Size:
		ptr = &o.Size.Property
	case Symbol:
		ptr = &o.Symbol
	case Opacity:
		ptr = &o.Opacity
	case Filter:
		ptr = &o.Filter.Property
	default:
		return
	}
	set(o, ptr, name, F(ch, Property), origin)
}

// SetScale sets the scale of given position axis.
func (o *Options) SetScale(ch Channels, sc Scales, origin Origins) {
	if ax := o.Axis(ch); ax != nil {
		set(o, &ax.Scale, sc, F(ch, Scale), origin)
	}
}

// SetRange sets the range of given position axis or of the color channel.
func (o *Options) SetRange(ch Channels, rng minmax.F64, origin Origins) {
	switch ch {
	case X, Y, Z:
		set(o, &o.Axis(ch).Range, rng, F(ch, Range), origin)
	case Color:
		set(o, &o.Color.Range, rng, F(ch, Range), origin)
	}
}

// SetDisabled sets whether the scale and range controls of given
// position axis are disabled.
func (o *Options) SetDisabled(ch Channels, disabled bool, origin Origins) {
	if ax := o.Axis(ch); ax != nil {
		set(o, &ax.Disabled, disabled, F(ch, Controls), origin)
	}
}

// SetPalette sets the color palette.
func (o *Options) SetPalette(name string, origin Origins) {
	set(o, &o.Color.Palette, name, F(Color, Palette), origin)
}

// SetSizeMode sets the size scaling mode.
func (o *Options) SetSizeMode(mode SizeModes, origin Origins) {
	set(o, &o.Size.Mode, mode, F(Size, Mode), origin)
}

// SetSizeFactor sets the size factor.
func (o *Options) SetSizeFactor(factor float64, origin Origins) {
	set(o, &o.Size.Factor, factor, F(Size, Factor), origin)
}

// SetSizeReverse sets whether the size scaling is reversed.
func (o *Options) SetSizeReverse(reverse bool, origin Origins) {
	set(o, &o.Size.Reverse, reverse, F(Size, Reverse), origin)
}

// SetFilterEnabled turns the filter on or off.
func (o *Options) SetFilterEnabled(on bool, origin Origins) {
	set(o, &o.Filter.Enabled, on, F(Filter, Enabled), origin)
}

// SetFilterOperator sets the filter operator.
func (o *Options) SetFilterOperator(op partition.Operators, origin Origins) {
	set(o, &o.Filter.Operator, op, F(Filter, Operator), origin)
}

// SetFilterCutoff sets the filter cutoff.
func (o *Options) SetFilterCutoff(cutoff float64, origin Origins) {
	set(o, &o.Filter.Cutoff, cutoff, F(Filter, Cutoff), origin)
}
