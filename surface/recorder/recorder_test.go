// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recorder

import (
	"errors"
	"testing"

	"cogentcore.org/mapview/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func create(t *testing.T, rc *Recorder) {
	traces := []surface.Trace{
		{"x": []float64{0, 10}, "y": []float64{-5, 5}},
		{"x": []float64{100}, "y": []float64{100}, "visible": false},
	}
	layout := surface.Layout{"xaxis.autorange": true, "yaxis.autorange": true}
	require.NoError(t, <-rc.Create(traces, layout, surface.Config{Responsive: true}))
}

func TestAutorange(t *testing.T) {
	rc := New(400, 300)
	plots := 0
	rc.On(surface.AfterPlot, func(ev surface.Event) { plots++ })
	create(t, rc)
	assert.Equal(t, 1, plots)
	assert.InDelta(t, -0.5, rc.Range(surface.X).Min, 1e-9)
	assert.InDelta(t, 10.5, rc.Range(surface.X).Max, 1e-9)
	assert.InDelta(t, 5.5, rc.Range(surface.Y).Max, 1e-9)

	require.NoError(t, <-rc.Relayout(surface.Layout{"xaxis.range": []float64{2, 4}}))
	assert.Equal(t, false, rc.Layout["xaxis.autorange"])
	assert.Equal(t, 2.0, rc.Range(surface.X).Min)
	assert.Equal(t, 2, plots)

	require.NoError(t, <-rc.Relayout(surface.Layout{"yaxis.type": "log", "yaxis.autorange": true}))
	assert.Equal(t, surface.Log, rc.AxisType(surface.Y))
	// the non positive value is dropped, leaving log10(5) padded by 1
	assert.InDelta(t, 1.699, rc.Range(surface.Y).Max, 0.001)
}

func TestRestyle(t *testing.T) {
	rc := New(400, 300)
	create(t, rc)
	require.NoError(t, <-rc.Restyle(surface.Update{"marker.size": {5, 7}, "name": {"all"}}, 0, 1))
	assert.Equal(t, 5, rc.Traces[0]["marker.size"])
	assert.Equal(t, 7, rc.Traces[1]["marker.size"])
	assert.Equal(t, "all", rc.Traces[1]["name"])

	require.NoError(t, <-rc.Restyle(surface.Update{"name": {nil}}, 1))
	assert.NotContains(t, rc.Traces[1], "name")

	assert.Error(t, <-rc.Restyle(surface.Update{"name": {"x"}}, 4))
	assert.Equal(t, []string{"create", "restyle", "restyle", "restyle"}, rc.Ops())
}

func TestFail(t *testing.T) {
	rc := New(400, 300)
	create(t, rc)
	rc.Fail = errors.New("lost")
	assert.Error(t, <-rc.Relayout(surface.Layout{"title": "x"}))
	assert.NotContains(t, rc.Layout, "title")
	assert.Equal(t, 1, rc.Renders)
}

func TestPanZoom(t *testing.T) {
	rc := New(100, 100)
	create(t, rc)
	require.NoError(t, <-rc.Relayout(surface.Layout{"xaxis.range": []float64{0, 10}, "yaxis.range": []float64{0, 10}}))

	var seen []float64
	rc.On(surface.AfterPlot, func(ev surface.Event) {
		seen = append(seen, rc.Range(surface.X).Min)
	})
	rc.Pan(50, 0)
	assert.InDelta(t, -5, rc.Range(surface.X).Min, 1e-9)
	assert.InDelta(t, 5, rc.Range(surface.X).Max, 1e-9)
	assert.Equal(t, []float64{-5}, seen)

	rc.Zoom(2, 1)
	assert.InDelta(t, -10, rc.Range(surface.X).Min, 1e-9)
	assert.InDelta(t, 10, rc.Range(surface.X).Max, 1e-9)
	assert.InDelta(t, 0, rc.Range(surface.Y).Min, 1e-9)
	assert.Equal(t, []float64{0, 10}, rc.Layout["yaxis.range"])
}

func TestClick(t *testing.T) {
	rc := New(100, 100)
	var got surface.Event
	rc.On(surface.Click, func(ev surface.Event) { got = ev })
	rc.Click(2, 7)
	assert.Equal(t, surface.Event{Type: surface.Click, Trace: 2, Point: 7}, got)
}
