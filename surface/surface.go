// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the render surface that draws the traces
// of a map, and the [Adapter] through which the map updates it.
package surface

//go:generate core generate

import (
	"cogentcore.org/core/math32/minmax"
)

// Axes are the position axes of the render surface.
type Axes int32 //enums:enum -transform lower

const (
	X Axes = iota
	Y
	Z
)

// AxisTypes are the scale types of a render surface axis.
type AxisTypes int32 //enums:enum -transform lower

const (
	Linear AxisTypes = iota
	Log
)

// TraceTypes are the kinds of scatter traces.
type TraceTypes int32 //enums:enum -transform lower

const (
	// Scattergl is the planar scatter trace of 2D mode.
	Scattergl TraceTypes = iota

	// Scatter3d is the volumetric scatter trace of 3D mode.
	Scatter3d
)

// EventTypes are the events reported by a render surface.
type EventTypes int32 //enums:enum -transform lower

const (
	// Click is sent when the user clicks on a point.
	Click EventTypes = iota

	// AfterPlot is sent after every render pass, including the
	// ones caused by pans and zooms.
	AfterPlot
)

// Trace holds the attributes of one trace, keyed by attribute
// path such as "marker.size".
type Trace map[string]any

// Layout holds (partial) layout attributes, keyed by attribute
// path such as "xaxis.range".
type Layout map[string]any

// Update holds partial trace attributes for several traces, keyed
// by attribute path, with one value per updated trace in the order
// of the trace indexes. A nil value unsets the attribute.
type Update map[string][]any

// Config is the static configuration of the render surface.
type Config struct {
	Responsive     bool `json:"responsive"`
	DisplayModeBar bool `json:"displayModeBar"`
	ScrollZoom     bool `json:"scrollZoom"`
}

// Event is an event reported by the render surface.
type Event struct {
	Type EventTypes `json:"type"`

	// Trace is the index of the clicked trace.
	Trace int `json:"trace"`

	// Point is the index of the clicked point within its trace.
	Point int `json:"point"`
}

// Result reports the completion of a surface operation: it receives
// nil on success, or the error of the operation. It may be nil
// for operations known to have succeeded.
type Result <-chan error

// Done returns a Result already completed with given error.
func Done(err error) Result {
	c := make(chan error, 1)
	c <- err
	close(c)
	return c
}

// Introspector gives synchronous read access to the currently
// rendered geometry of the surface.
type Introspector interface {
	// Range returns the currently visible range of given axis.
	Range(ax Axes) minmax.F64

	// AxisType returns the scale type of given axis.
	AxisType(ax Axes) AxisTypes

	// Size returns the width and height of the plot area, in pixels.
	Size() (width, height float64)

	// ToPixel returns the pixel position within the plot area of
	// value v along given axis: from the left edge for X,
	// from the top edge for Y.
	ToPixel(ax Axes, v float64) float64
}

// Surface is the render surface of a map. Operations do not block
// on rendering: their completion is reported through the returned
// [Result]. Event handlers are called on the goroutine driving the
// map.
type Surface interface {
	Introspector

	// Create creates the plot with given traces, layout and config.
	Create(traces []Trace, layout Layout, config Config) Result

	// Restyle updates the given attributes of given traces.
	Restyle(update Update, traces ...int) Result

	// Relayout updates the given layout attributes.
	Relayout(layout Layout) Result

	// On registers a handler for given event type.
	On(typ EventTypes, handler func(ev Event))
}

// AxisKey returns the layout key of given attribute of given axis:
// "xaxis.range" in 2D, "scene.xaxis.range" in 3D.
func AxisKey(ax Axes, is3D bool, attr string) string {
	key := ax.String() + "axis." + attr
	if is3D {
		return "scene." + key
	}
	return key
}
