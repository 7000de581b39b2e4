// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recorder provides an in-memory render surface that records
// every operation, for tests and headless use. It applies layout
// changes to its geometry, simulates autorange, pans and zooms, and
// reports an [surface.AfterPlot] event after every render pass.
package recorder

import (
	"fmt"
	"maps"
	"math"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mapview/surface"
)

// AutorangePad is the fraction of the data range added on each side
// of an autoranged axis.
const AutorangePad = 0.05

// Call is one recorded surface operation.
type Call struct {
	// Op is "create", "restyle" or "relayout".
	Op string

	// Traces are the restyled trace indexes.
	Traces []int

	Update surface.Update

	Layout surface.Layout
}

// Recorder is a recording [surface.Surface].
type Recorder struct {
	surface.Geometry

	// Traces are the current traces.
	Traces []surface.Trace

	// Layout is the current flat layout.
	Layout surface.Layout

	// Config is the config given to Create.
	Config surface.Config

	// Calls are all the operations, in order.
	Calls []Call

	// Fail, if set, makes every operation fail with it, without
	// changing the surface state.
	Fail error

	// Renders counts the render passes.
	Renders int

	// Manual disables rendering after every operation;
	// call [Recorder.Render] explicitly instead.
	Manual bool

	handlers map[surface.EventTypes][]func(ev surface.Event)
}

// New returns a new Recorder with a plot area of given size.
func New(width, height float64) *Recorder {
	rc := &Recorder{Layout: surface.Layout{}}
	rc.Width, rc.Height = width, height
	return rc
}

func (rc *Recorder) Create(traces []surface.Trace, layout surface.Layout, config surface.Config) surface.Result {
	rc.Calls = append(rc.Calls, Call{Op: "create", Layout: layout})
	if rc.Fail != nil {
		return surface.Done(rc.Fail)
	}
	rc.Traces = make([]surface.Trace, len(traces))
	for i, tr := range traces {
		rc.Traces[i] = maps.Clone(tr)
	}
	rc.Layout = maps.Clone(layout)
	rc.Config = config
	rc.render()
	return surface.Done(nil)
}

func (rc *Recorder) Restyle(update surface.Update, traces ...int) surface.Result {
	rc.Calls = append(rc.Calls, Call{Op: "restyle", Traces: traces, Update: update})
	if rc.Fail != nil {
		return surface.Done(rc.Fail)
	}
	for _, ti := range traces {
		if ti < 0 || ti >= len(rc.Traces) {
			return surface.Done(fmt.Errorf("recorder: restyle of unknown trace %d", ti))
		}
	}
	for key, vals := range update {
		for j, ti := range traces {
			v := vals[0]
			if len(vals) > 1 {
				v = vals[j]
			}
			if v == nil {
				delete(rc.Traces[ti], key)
				continue
			}
			rc.Traces[ti][key] = v
		}
	}
	rc.render()
	return surface.Done(nil)
}

func (rc *Recorder) Relayout(layout surface.Layout) surface.Result {
	rc.Calls = append(rc.Calls, Call{Op: "relayout", Layout: layout})
	if rc.Fail != nil {
		return surface.Done(rc.Fail)
	}
	for key, v := range layout {
		rc.Layout[key] = v
		// an explicit range turns autorange off, as on the real surface
		if ax, ok := axisOf(key, ".range"); ok {
			rc.Layout[ax+".autorange"] = false
		}
	}
	rc.render()
	return surface.Done(nil)
}

func (rc *Recorder) On(typ surface.EventTypes, handler func(ev surface.Event)) {
	if rc.handlers == nil {
		rc.handlers = make(map[surface.EventTypes][]func(surface.Event))
	}
	rc.handlers[typ] = append(rc.handlers[typ], handler)
}

// Emit calls the handlers of the event type, in registration order.
func (rc *Recorder) Emit(ev surface.Event) {
	for _, h := range rc.handlers[ev.Type] {
		h(ev)
	}
}

// Click emits a click on given point of given trace.
func (rc *Recorder) Click(trace, point int) {
	rc.Emit(surface.Event{Type: surface.Click, Trace: trace, Point: point})
}

// Render updates the geometry from the layout and data, and emits
// an [surface.AfterPlot] event.
func (rc *Recorder) Render() {
	rc.Renders++
	for _, ax := range []surface.Axes{surface.X, surface.Y} {
		key := surface.AxisKey(ax, false, "")
		typ := surface.Linear
		if t, ok := rc.Layout[key+"type"].(string); ok {
			typ.SetString(t)
		}
		rc.Types[ax] = typ
		if auto, ok := rc.Layout[key+"autorange"].(bool); ok && auto {
			rng := rc.dataRange(ax, typ)
			rc.Ranges[ax] = rng
			rc.Layout[key+"range"] = []float64{rng.Min, rng.Max}
			continue
		}
		if r, ok := rc.Layout[key+"range"].([]float64); ok && len(r) == 2 {
			rc.Ranges[ax] = minmax.F64{Min: r[0], Max: r[1]}
		}
	}
	rc.Emit(surface.Event{Type: surface.AfterPlot})
}

func (rc *Recorder) render() {
	if !rc.Manual {
		rc.Render()
	}
}

// dataRange returns the padded range of the data of all visible
// 2D traces along given axis, in surface units.
func (rc *Recorder) dataRange(ax surface.Axes, typ surface.AxisTypes) minmax.F64 {
	var rng minmax.F64
	rng.SetInfinity()
	for _, tr := range rc.Traces {
		if vis, ok := tr["visible"].(bool); ok && !vis {
			continue
		}
		vals, _ := tr[ax.String()].([]float64)
		for _, v := range vals {
			if typ == surface.Log {
				v = math.Log10(v)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			rng.FitValInRange(v)
		}
	}
	if !rng.IsValid() {
		return minmax.F64{Min: -1, Max: 1}
	}
	pad := AutorangePad * rng.Range()
	if pad == 0 {
		pad = 1
	}
	return minmax.F64{Min: rng.Min - pad, Max: rng.Max + pad}
}

// axisOf returns the axis prefix of a layout key ending with suffix.
func axisOf(key, suffix string) (string, bool) {
	n := len(key) - len(suffix)
	if n <= 0 || key[n:] != suffix {
		return "", false
	}
	return key[:n], true
}

// Ops returns the recorded operation names.
func (rc *Recorder) Ops() []string {
	ops := make([]string, len(rc.Calls))
	for i, c := range rc.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset clears the recorded calls.
func (rc *Recorder) Reset() {
	rc.Calls = nil
}
