// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recorder

import (
	"cogentcore.org/mapview/surface"
)

// Pan moves the visible 2D ranges by given pixel deltas, as a drag
// of the plot by the user, and renders.
func (rc *Recorder) Pan(dx, dy float64) {
	xr, yr := rc.Ranges[surface.X], rc.Ranges[surface.Y]
	ox := -dx * xr.Range() / rc.Width
	oy := dy * yr.Range() / rc.Height
	rc.setUserRange(surface.X, xr.Min+ox, xr.Max+ox)
	rc.setUserRange(surface.Y, yr.Min+oy, yr.Max+oy)
	rc.Render()
}

// Zoom scales the visible 2D ranges around their midpoints,
// as a scroll of the plot by the user, and renders. A scale
// above 1 zooms out.
func (rc *Recorder) Zoom(xsc, ysc float64) {
	for ax, sc := range map[surface.Axes]float64{surface.X: xsc, surface.Y: ysc} {
		rng := rc.Ranges[ax]
		mid, half := rng.Midpoint(), 0.5*rng.Range()*sc
		rc.setUserRange(ax, mid-half, mid+half)
	}
	rc.Render()
}

// setUserRange sets an axis range as changed directly on the
// surface, without going through [Recorder.Relayout].
func (rc *Recorder) setUserRange(ax surface.Axes, mn, mx float64) {
	key := surface.AxisKey(ax, false, "")
	rc.Layout[key+"range"] = []float64{mn, mx}
	rc.Layout[key+"autorange"] = false
}
