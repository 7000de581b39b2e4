// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapview keeps an interactive 2D / 3D scatter map of
// environment properties in sync with its render surface.
//
// A [Map] resolves the [mapopts.Options] and the properties into the
// attributes of its traces, partitions the points with the filter,
// keeps the selection markers of its [overlay.Overlay] aligned with
// the surface across pans and zooms, and switches between 2D and 3D
// without losing any user choice. All updates are partial and fire
// and forget: surface failures are reported to
// [surface.Adapter.OnFailure] and never corrupt the state of the map.
//
// A Map is not safe for concurrent use: options changes, selection
// calls and surface events must all happen on the same goroutine.
package mapview

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mapview/attribute"
	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/overlay"
	"cogentcore.org/mapview/palette"
	"cogentcore.org/mapview/partition"
	"cogentcore.org/mapview/property"
	"cogentcore.org/mapview/surface"
	"cogentcore.org/mapview/symbols"
	"github.com/google/uuid"
)

// The indexes of the traces of a map. The legend placeholder
// traces follow the selected trace.
const (
	MainTrace = iota
	BackgroundTrace
	SelectedTrace
	FirstLegendTrace
)

const (
	// LegendItemHeight is the fraction of the plot height taken by
	// one symbol legend entry, removed from the colorbar length.
	LegendItemHeight = 0.045

	// LegendPad3D is the extra colorbar room left to the legend in 3D.
	LegendPad3D = 0.05

	// MinColorbarLen is the minimum colorbar length.
	MinColorbarLen = 0.3
)

// ErrSettings is returned when applying settings that do not
// match the properties of the map.
var ErrSettings = errors.New("mapview: invalid settings")

// roleTraces are the traces of the attribute roles, in role order.
var roleTraces = []int{MainTrace, BackgroundTrace, SelectedTrace}

// Map is an interactive scatter map of the properties of one
// display mode of a [property.Store].
type Map struct {
	// Options of the map. Changes made through its setters are
	// pushed to the surface as they happen.
	Options *mapopts.Options

	// Store holds the properties.
	Store *property.Store

	// Mode is the display mode of the properties.
	Mode property.Modes

	// Adapter makes the calls into the render surface.
	Adapter *surface.Adapter

	// Overlay holds the selection markers.
	Overlay *overlay.Overlay

	// SizeScale scales the size property; [attribute.ScaleSizes] if nil.
	SizeScale attribute.SizeScaler

	// Config is the static configuration of the surface.
	Config surface.Config

	// OnSelect is called with the environment index when the user
	// clicks on a point, after the active marker moved to it.
	OnSelect func(index int)

	// OnActiveChanged is called when the user activates a marker by
	// clicking on its overlay element.
	OnActiveChanged func(guid uuid.UUID)

	// OnError is called with the errors of options changes that
	// cannot be applied, such as an unknown property set directly
	// on the options. The default logs the error.
	OnError func(err error)

	surface   surface.Surface
	partition partition.Partition
	is3D      bool
	switching bool

	// numLegend is the number of legend placeholder traces: the
	// largest number of labels of a categorical property.
	numLegend int
}

// New returns a new Map of the properties of given mode, drawn on
// given surface with its selection markers drawn by host, and
// creates its plot. The options must only reference properties of
// the store, with the x and y axes always set.
func New(store *property.Store, mode property.Modes, opts *mapopts.Options, sf surface.Surface, host overlay.Host) (*Map, error) {
	m := &Map{
		Options: opts,
		Store:   store,
		Mode:    mode,
		Adapter: surface.NewAdapter(sf),
		Overlay: overlay.New(host),
		Config:  surface.Config{Responsive: true, ScrollZoom: true},
		surface: sf,
	}
	opts.Defaults()
	if err := m.validate(opts.Save()); err != nil {
		return nil, err
	}
	for _, name := range store.Categorical(mode) {
		p, _ := store.Get(mode, name)
		m.numLegend = max(m.numLegend, len(p.Labels))
	}
	if err := m.computePartition(); err != nil {
		return nil, err
	}
	m.is3D = opts.Is3D()
	opts.SetDisabled(mapopts.Z, !m.is3D, mapopts.Engine)
	if opts.Color.Property != "" && opts.Color.Range == (minmax.F64{}) {
		m.resetColorRange(m.partition.Main, mapopts.Engine)
	}
	if m.is3D {
		m.Overlay.Hide()
	}
	m.Overlay.OnClick = m.markerClicked

	traces, err := m.traces()
	if err != nil {
		return nil, err
	}
	layout, err := m.layout()
	if err != nil {
		return nil, err
	}
	m.listen()
	sf.On(surface.Click, m.clicked)
	sf.On(surface.AfterPlot, m.afterPlot)
	m.Adapter.Create(traces, layout, m.Config)
	return m, nil
}

// Is3D returns whether the map is in 3D mode.
func (m *Map) Is3D() bool {
	return m.is3D
}

// Partition returns the current partition of the points.
func (m *Map) Partition() partition.Partition {
	return m.partition
}

// Len returns the number of points.
func (m *Map) Len() int {
	return m.Store.Len(m.Mode)
}

func (m *Map) lookup(name string) (*property.Property, error) {
	return m.Store.Get(m.Mode, name)
}

// fail reports an error of an options change.
func (m *Map) fail(err error) {
	if err == nil {
		return
	}
	if m.OnError != nil {
		m.OnError(err)
		return
	}
	errors.Log(err)
}

// context returns the current resolution context.
func (m *Map) context() attribute.Context {
	ctx := attribute.Context{Partition: m.partition, Selected: m.Overlay.Indices(), Active: -1}
	for i, mk := range m.Overlay.Markers() {
		if mk.IsActive() {
			ctx.Active = i
		}
	}
	return ctx
}

// resolver returns an attribute resolver for the current state.
func (m *Map) resolver() *attribute.Resolver {
	return &attribute.Resolver{
		Context:   m.context(),
		Options:   m.Options,
		Lookup:    m.lookup,
		Is3D:      m.is3D,
		SizeScale: m.SizeScale,
	}
}

// computePartition recomputes the partition from the filter.
// An enabled filter without property keeps every point.
func (m *Map) computePartition() error {
	f := m.Options.Filter.Filter()
	n := m.Len()
	if !f.Enabled || m.Options.Filter.Property == "" {
		m.partition = partition.All(n)
		return nil
	}
	p, err := m.lookup(m.Options.Filter.Property)
	if err != nil {
		return err
	}
	pt, err := partition.Compute(n, p.Float1D, f)
	if err != nil {
		return err
	}
	m.partition = pt
	return nil
}

// resetColorRange sets the color range to the range of the color
// property over given points, if any.
func (m *Map) resetColorRange(indexes []int, origin mapopts.Origins) {
	rng, err := m.resolver().ColorRange(indexes)
	if err != nil {
		m.fail(err)
		return
	}
	if rng.IsValid() {
		m.Options.SetRange(mapopts.Color, rng, origin)
	}
}

// ResetColorRange resets the color range to the range of the
// color property over all the points, main and background.
func (m *Map) ResetColorRange() {
	all := make([]int, 0, m.Len())
	all = append(all, m.partition.Main...)
	all = append(all, m.partition.Background...)
	m.resetColorRange(all, mapopts.User)
}

// traceType returns the current trace type.
func (m *Map) traceType() string {
	if m.is3D {
		return surface.Scatter3d.String()
	}
	return surface.Scattergl.String()
}

// roleNames are the names of the role traces.
var roleNames = [attribute.RolesN]string{"main", "background", "selected"}

// attributes returns the per-role values of every trace attribute,
// keyed by attribute path.
func (m *Map) attributes() (map[string][attribute.RolesN]any, error) {
	r := m.resolver()
	attrs := map[string][attribute.RolesN]any{}
	for _, ch := range []mapopts.Channels{mapopts.X, mapopts.Y, mapopts.Z} {
		set, err := r.Coordinates(ch)
		if err != nil {
			return nil, err
		}
		attrs[surfaceAxis(ch).String()] = encode(set)
	}
	colors, err := r.Colors()
	if err != nil {
		return nil, err
	}
	attrs["marker.color"] = encode(colors)
	sizes, err := r.Sizes()
	if err != nil {
		return nil, err
	}
	attrs["marker.size"] = encode(sizes)
	shapes, err := r.Symbols()
	if err != nil {
		return nil, err
	}
	attrs["marker.symbol"] = m.encodeShapes(shapes)
	opacities, err := r.Opacities()
	if err != nil {
		return nil, err
	}
	attrs["marker.opacity"] = encode(opacities)
	attrs["marker.line.color"] = encode(r.LineColors())
	attrs["marker.line.width"] = encode(r.LineWidths())
	return attrs, nil
}

// traces returns all the traces of the map.
func (m *Map) traces() ([]surface.Trace, error) {
	attrs, err := m.attributes()
	if err != nil {
		return nil, err
	}
	traces := make([]surface.Trace, FirstLegendTrace, FirstLegendTrace+m.numLegend)
	for _, role := range attribute.RolesValues() {
		tr := surface.Trace{
			"type":             m.traceType(),
			"name":             roleNames[role],
			"mode":             "markers",
			"showlegend":       false,
			"marker.coloraxis": "coloraxis",
		}
		if role == attribute.Selected {
			tr["hoverinfo"] = "none"
		}
		for key, vals := range attrs {
			if vals[role] != nil {
				tr[key] = vals[role]
			}
		}
		traces[role] = tr
	}
	legend, err := m.legendUpdate()
	if err != nil {
		return nil, err
	}
	for i := range m.numLegend {
		tr := surface.Trace{"mode": "markers", "marker.color": "black"}
		for key, vals := range legend {
			if v := vals[i]; v != nil {
				tr[key] = v
			}
		}
		traces = append(traces, tr)
	}
	return traces, nil
}

// legendTraces returns the indexes of the legend traces.
func (m *Map) legendTraces() []int {
	idx := make([]int, m.numLegend)
	for i := range idx {
		idx[i] = FirstLegendTrace + i
	}
	return idx
}

// legendUpdate returns the update of the legend placeholder
// traces: one per label of the symbol property, the others hidden.
func (m *Map) legendUpdate() (surface.Update, error) {
	entries, err := m.resolver().Legend()
	if err != nil {
		return nil, err
	}
	up := surface.Update{}
	for i := range m.numLegend {
		// an empty point keeps the trace out of the plot
		var empty any = []any{nil}
		up["type"] = append(up["type"], m.traceType())
		up["x"] = append(up["x"], empty)
		up["y"] = append(up["y"], empty)
		if m.is3D {
			up["z"] = append(up["z"], empty)
		} else {
			up["z"] = append(up["z"], nil)
		}
		if i < len(entries) {
			up["name"] = append(up["name"], entries[i].Label)
			up["marker.symbol"] = append(up["marker.symbol"], entries[i].Shape.Encode(m.is3D))
			up["visible"] = append(up["visible"], true)
			up["showlegend"] = append(up["showlegend"], true)
			continue
		}
		up["name"] = append(up["name"], "")
		up["marker.symbol"] = append(up["marker.symbol"], nil)
		up["visible"] = append(up["visible"], false)
		up["showlegend"] = append(up["showlegend"], false)
	}
	return up, nil
}

// colorbarLen returns the length of the colorbar, leaving room
// for the symbol legend entries.
func (m *Map) colorbarLen() float64 {
	entries, err := m.resolver().Legend()
	if err != nil || len(entries) == 0 {
		return 1
	}
	l := 1 - LegendItemHeight*float64(len(entries))
	if m.is3D {
		l -= LegendPad3D
	}
	return max(l, MinColorbarLen)
}

// layout returns the full layout of the map.
func (m *Map) layout() (surface.Layout, error) {
	pl, err := palette.Get(m.Options.Color.Palette)
	if err != nil {
		return nil, err
	}
	layout := surface.Layout{
		"hovermode":                     "closest",
		"showlegend":                    true,
		"legend.itemclick":              false,
		"coloraxis.colorscale":          pl.Colorscale(),
		"coloraxis.colorbar.len":        m.colorbarLen(),
		"coloraxis.colorbar.title.text": m.Options.Color.Property,
		"coloraxis.showscale":           m.Options.Color.Property != "",
	}
	m.colorRangeLayout(layout)
	for _, ch := range m.axes() {
		m.axisLayout(layout, ch)
	}
	return layout, nil
}

// axes returns the position axes of the current mode.
func (m *Map) axes() []mapopts.Channels {
	if m.is3D {
		return []mapopts.Channels{mapopts.X, mapopts.Y, mapopts.Z}
	}
	return []mapopts.Channels{mapopts.X, mapopts.Y}
}

// surfaceAxis returns the surface axis of a position channel.
func surfaceAxis(ch mapopts.Channels) surface.Axes {
	return surface.Axes(ch - mapopts.X)
}

// axisTypeOf returns the surface axis type of a scale.
func axisTypeOf(sc mapopts.Scales) surface.AxisTypes {
	if sc == mapopts.Log {
		return surface.Log
	}
	return surface.Linear
}

// axisLayout adds the title, type and range of a position axis.
func (m *Map) axisLayout(layout surface.Layout, ch mapopts.Channels) {
	ao := m.Options.Axis(ch)
	ax := surfaceAxis(ch)
	layout[surface.AxisKey(ax, m.is3D, "title.text")] = ao.Property
	layout[surface.AxisKey(ax, m.is3D, "type")] = axisTypeOf(ao.Scale).String()
	m.rangeLayout(layout, ch)
}

// rangeLayout adds the range of a position axis, or turns on
// autorange when the range is empty, or not positive on a log axis.
func (m *Map) rangeLayout(layout surface.Layout, ch mapopts.Channels) {
	ao := m.Options.Axis(ch)
	ax := surfaceAxis(ch)
	if ao.Range.Min >= ao.Range.Max || (ao.Scale == mapopts.Log && ao.Range.Min <= 0) {
		layout[surface.AxisKey(ax, m.is3D, "autorange")] = true
		return
	}
	rng := surface.ToSurfaceRange(ao.Range, axisTypeOf(ao.Scale))
	layout[surface.AxisKey(ax, m.is3D, "range")] = []float64{rng.Min, rng.Max}
	layout[surface.AxisKey(ax, m.is3D, "autorange")] = false
}

// colorRangeLayout adds the color axis range, if any. Without
// color property the range is [0, 1], around [attribute.NeutralColor].
func (m *Map) colorRangeLayout(layout surface.Layout) {
	rng := m.Options.Color.Range
	if m.Options.Color.Property == "" {
		rng = minmax.F64{Min: 0, Max: 1}
	}
	if rng.Min > rng.Max {
		return
	}
	layout["coloraxis.cmin"] = rng.Min
	layout["coloraxis.cmax"] = rng.Max
}

// encode returns the surface encoding of every role value.
func encode[T any](set attribute.Set[T]) [attribute.RolesN]any {
	var out [attribute.RolesN]any
	for i, v := range set {
		out[i] = v.Encode()
	}
	return out
}

// encodeShapes returns the surface encoding of every role value
// of the symbols, for the current mode.
func (m *Map) encodeShapes(set attribute.Set[symbols.Shapes]) [attribute.RolesN]any {
	var out [attribute.RolesN]any
	for i, v := range set {
		switch {
		case v.IsArray():
			out[i] = symbols.EncodeAll(v.Values(), m.is3D)
		case v.Kind() == attribute.Constant:
			out[i] = v.Constant().Encode(m.is3D)
		}
	}
	return out
}

// update returns the restyle update of the role traces for given
// attribute paths.
func update(attrs map[string][attribute.RolesN]any, keys ...string) surface.Update {
	up := surface.Update{}
	for _, key := range keys {
		vals := attrs[key]
		up[key] = vals[:]
	}
	return up
}

// String returns a short description of the map.
func (m *Map) String() string {
	dim := "2D"
	if m.is3D {
		dim = "3D"
	}
	return fmt.Sprintf("%s map of %d %v points (%d main)", dim, m.Len(), m.Mode, len(m.partition.Main))
}
