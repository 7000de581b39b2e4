// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapview

import (
	"log/slog"

	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/surface"
)

// The mode switches are sequences of partial updates: the surface
// may render the intermediate states, as between the change of
// trace type and the change of symbols. The color scale and range,
// the partition, the markers and the axis options are kept.

// switchTo3D switches to the volumetric scatter, once the z axis
// has a property.
func (m *Map) switchTo3D() {
	slog.Debug("mapview: switching to 3D", "z", m.Options.Z.Property)
	m.Options.SetDisabled(mapopts.Z, false, mapopts.Engine)
	m.is3D = true
	m.switchTraces()
	// selection markers are drawn by the selected trace in 3D
	m.Overlay.Hide()
	m.restyle("marker.line.color", "marker.line.width", "marker.size", "marker.opacity")
	m.relayoutMode()
}

// switchTo2D switches back to the planar scatter, once the z axis
// has no property.
func (m *Map) switchTo2D() {
	slog.Debug("mapview: switching to 2D")
	m.switching = true
	defer func() { m.switching = false }()
	m.Options.SetDisabled(mapopts.Z, true, mapopts.Engine)
	m.is3D = false
	m.switchTraces()
	m.Overlay.Show()
	m.restyle("marker.line.color", "marker.line.width", "marker.size", "marker.opacity")
	m.relayoutMode()
	m.reproject()
}

// switchTraces remaps the symbols, then changes the trace type
// and the coordinates of every trace.
func (m *Map) switchTraces() {
	m.restyle("marker.symbol")
	m.restyleLegend()
	attrs, err := m.attributes()
	if err != nil {
		m.fail(err)
		return
	}
	up := update(attrs, "x", "y", "z")
	up["type"] = []any{m.traceType()}
	m.Adapter.Restyle(up, roleTraces...)
}

// relayoutMode updates the colorbar and the axes for the
// current mode.
func (m *Map) relayoutMode() {
	layout := surface.Layout{"coloraxis.colorbar.len": m.colorbarLen()}
	for _, ch := range m.axes() {
		m.axisLayout(layout, ch)
	}
	m.Adapter.Relayout(layout)
}
