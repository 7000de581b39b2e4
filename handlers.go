// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapview

import (
	"log/slog"
	"math"

	"cogentcore.org/core/math32/minmax"

	"cogentcore.org/mapview/attribute"
	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/overlay"
	"cogentcore.org/mapview/palette"
	"cogentcore.org/mapview/surface"
)

// listen registers the handlers of options changes. Handlers of
// the same field run in the order they are registered here.
func (m *Map) listen() {
	o := m.Options
	for _, ch := range []mapopts.Channels{mapopts.X, mapopts.Y, mapopts.Z} {
		o.On(mapopts.F(ch, mapopts.Property), func(c mapopts.Change) { m.axisPropertyChanged(ch) })
		o.On(mapopts.F(ch, mapopts.Scale), func(c mapopts.Change) { m.axisScaleChanged(ch) })
		o.On(mapopts.F(ch, mapopts.Range), func(c mapopts.Change) { m.axisRangeChanged(ch, c.Origin) })
	}
	o.On(mapopts.F(mapopts.Color, mapopts.Property), func(c mapopts.Change) { m.colorPropertyChanged() })
	o.On(mapopts.F(mapopts.Color, mapopts.Range), func(c mapopts.Change) { m.colorRangeChanged() })
	o.On(mapopts.F(mapopts.Color, mapopts.Palette), func(c mapopts.Change) { m.paletteChanged() })
	for _, attr := range []mapopts.Attrs{mapopts.Property, mapopts.Mode, mapopts.Factor, mapopts.Reverse} {
		o.On(mapopts.F(mapopts.Size, attr), func(c mapopts.Change) { m.restyle("marker.size") })
	}
	o.On(mapopts.F(mapopts.Symbol, mapopts.Property), func(c mapopts.Change) { m.symbolChanged() })
	o.On(mapopts.F(mapopts.Opacity, mapopts.Property), func(c mapopts.Change) { m.restyle("marker.opacity") })
	for _, attr := range []mapopts.Attrs{mapopts.Property, mapopts.Enabled, mapopts.Operator, mapopts.Cutoff} {
		o.On(mapopts.F(mapopts.Filter, attr), func(c mapopts.Change) { m.filterChanged(attr) })
	}
}

// restyle resolves the given attributes and updates them
// on the role traces.
func (m *Map) restyle(keys ...string) {
	attrs, err := m.attributes()
	if err != nil {
		m.fail(err)
		return
	}
	m.Adapter.Restyle(update(attrs, keys...), roleTraces...)
}

// restyleSelected updates the given attributes on the selected trace.
func (m *Map) restyleSelected(keys ...string) {
	attrs, err := m.attributes()
	if err != nil {
		m.fail(err)
		return
	}
	up := surface.Update{}
	for _, key := range keys {
		up[key] = []any{attrs[key][attribute.Selected]}
	}
	m.Adapter.Restyle(up, SelectedTrace)
}

func (m *Map) axisPropertyChanged(ch mapopts.Channels) {
	// the range of the previous property does not apply
	m.Options.SetRange(ch, minmax.F64{}, mapopts.Engine)
	if ch == mapopts.Z && m.Options.Is3D() != m.is3D {
		if m.is3D {
			m.switchTo2D()
		} else {
			m.switchTo3D()
		}
		return
	}
	if ch == mapopts.Z && !m.is3D {
		return
	}
	m.restyle(surfaceAxis(ch).String())
	// a new property has a new extent
	ax := surfaceAxis(ch)
	m.Adapter.Relayout(surface.Layout{
		surface.AxisKey(ax, m.is3D, "title.text"): m.Options.Axis(ch).Property,
		surface.AxisKey(ax, m.is3D, "autorange"):  true,
	})
}

func (m *Map) axisScaleChanged(ch mapopts.Channels) {
	if ch == mapopts.Z && !m.is3D {
		return
	}
	layout := surface.Layout{}
	m.axisLayout(layout, ch)
	m.Adapter.Relayout(layout)
}

func (m *Map) axisRangeChanged(ch mapopts.Channels, origin mapopts.Origins) {
	// the surface already shows the ranges it reported
	if origin == mapopts.Surface {
		return
	}
	if ch == mapopts.Z && !m.is3D {
		return
	}
	layout := surface.Layout{}
	m.rangeLayout(layout, ch)
	m.Adapter.Relayout(layout)
}

func (m *Map) colorPropertyChanged() {
	// TODO: the manual reset in ResetColorRange uses all the points;
	// align both once the intended behavior is decided.
	m.resetColorRange(m.partition.Main, mapopts.Engine)
	m.restyle("marker.color")
	layout := surface.Layout{
		"coloraxis.colorbar.title.text": m.Options.Color.Property,
		"coloraxis.showscale":           m.Options.Color.Property != "",
	}
	m.colorRangeLayout(layout)
	m.Adapter.Relayout(layout)
}

func (m *Map) colorRangeChanged() {
	layout := surface.Layout{}
	m.colorRangeLayout(layout)
	m.Adapter.Relayout(layout)
}

func (m *Map) paletteChanged() {
	pl, err := palette.Get(m.Options.Color.Palette)
	if err != nil {
		m.fail(err)
		return
	}
	m.Adapter.Relayout(surface.Layout{"coloraxis.colorscale": pl.Colorscale()})
}

func (m *Map) symbolChanged() {
	m.restyle("marker.symbol")
	m.restyleLegend()
	m.Adapter.Relayout(surface.Layout{"coloraxis.colorbar.len": m.colorbarLen()})
}

// restyleLegend updates the legend placeholder traces.
func (m *Map) restyleLegend() {
	if m.numLegend == 0 {
		return
	}
	up, err := m.legendUpdate()
	if err != nil {
		m.fail(err)
		return
	}
	m.Adapter.Restyle(up, m.legendTraces()...)
}

// filterChanged recomputes the partition, and every attribute of
// the main and background traces with it.
func (m *Map) filterChanged(attr mapopts.Attrs) {
	if attr != mapopts.Enabled && !m.Options.Filter.Enabled {
		return
	}
	if err := m.computePartition(); err != nil {
		m.fail(err)
		return
	}
	m.restyle(m.attributeKeys()...)
}

// attributeKeys returns the paths of all the role attributes of
// the current mode.
func (m *Map) attributeKeys() []string {
	keys := []string{"x", "y", "marker.color", "marker.size", "marker.symbol",
		"marker.opacity", "marker.line.color", "marker.line.width"}
	if m.is3D {
		keys = append(keys, "z")
	}
	return keys
}

// afterPlot reprojects the overlay and reads back the axis ranges
// after every 2D render pass, which may follow a pan or a zoom.
func (m *Map) afterPlot(ev surface.Event) {
	// mid-switch renders may still show the axes of the previous mode
	if m.is3D || m.switching {
		return
	}
	m.reproject()
	for _, ch := range []mapopts.Channels{mapopts.X, mapopts.Y} {
		ax := surfaceAxis(ch)
		srng, typ := m.surface.Range(ax), m.surface.AxisType(ax)
		// log axes do not convert back exactly
		if sameRange(surface.ToSurfaceRange(m.Options.Axis(ch).Range, typ), srng) {
			continue
		}
		m.Options.SetRange(ch, surface.FromSurfaceRange(srng, typ), mapopts.Surface)
	}
}

// sameRange returns whether two ranges are equal up to rounding.
func sameRange(a, b minmax.F64) bool {
	tol := 1e-9 * max(1, math.Abs(b.Max-b.Min))
	return math.Abs(a.Min-b.Min) <= tol && math.Abs(a.Max-b.Max) <= tol
}

// reproject positions the overlay markers over their points.
func (m *Map) reproject() {
	if m.is3D {
		return
	}
	xp, err := m.lookup(m.Options.X.Property)
	if err != nil {
		m.fail(err)
		return
	}
	yp, err := m.lookup(m.Options.Y.Property)
	if err != nil {
		m.fail(err)
		return
	}
	m.Overlay.Reproject(m.surface, func(i int) (float64, float64) {
		return xp.Float1D(i), yp.Float1D(i)
	})
}

// clicked handles clicks on the points of the surface.
func (m *Map) clicked(ev surface.Event) {
	index, ok := m.pointIndex(ev.Trace, ev.Point)
	if !ok {
		return
	}
	if m.Overlay.Active() != nil {
		if err := m.Select(index); err != nil {
			m.fail(err)
			return
		}
	}
	if m.OnSelect != nil {
		m.OnSelect(index)
	}
}

// pointIndex returns the environment index of a point of a trace.
func (m *Map) pointIndex(trace, point int) (int, bool) {
	var idx []int
	switch trace {
	case MainTrace:
		idx = m.partition.Main
	case BackgroundTrace:
		idx = m.partition.Background
	case SelectedTrace:
		idx = m.Overlay.Indices()
	default:
		return 0, false
	}
	if point < 0 || point >= len(idx) {
		slog.Warn("mapview: click on unknown point", "trace", trace, "point", point)
		return 0, false
	}
	return idx[point], true
}

// markerClicked handles clicks on the overlay marker elements.
func (m *Map) markerClicked(mk *overlay.Marker) {
	if err := m.SetActive(mk.GUID); err != nil {
		m.fail(err)
		return
	}
	if m.OnActiveChanged != nil {
		m.OnActiveChanged(mk.GUID)
	}
}
