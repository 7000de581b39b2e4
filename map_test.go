// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapview

import (
	"errors"
	"path/filepath"
	"testing"

	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mapview/attribute"
	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/overlay"
	"cogentcore.org/mapview/palette"
	"cogentcore.org/mapview/partition"
	"cogentcore.org/mapview/property"
	"cogentcore.org/mapview/surface"
	"cogentcore.org/mapview/surface/recorder"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type element struct {
	x, y    float64
	visible bool
	active  bool
	removed bool
	click   func()
}

func (e *element) Move(x, y float64)       { e.x, e.y = x, y }
func (e *element) SetVisible(visible bool) { e.visible = visible }
func (e *element) SetActive(active bool)   { e.active = active }
func (e *element) Remove()                 { e.removed = true }

type host map[uuid.UUID]*element

func (h host) NewElement(guid uuid.UUID, color string, onClick func()) overlay.Element {
	e := &element{click: onClick}
	h[guid] = e
	return e
}

var energy = []float64{1, 5, 9, 2}

func testStore(t *testing.T) *property.Store {
	st, err := property.NewStore(map[property.Modes]map[string]property.Input{
		property.Structure: {
			"energy":  {Values: energy},
			"volume":  {Values: []float64{10, 20, 30, 40}},
			"density": {Values: []float64{0.5, 1.5, 2.5, 3.5}},
			"kind":    property.FromStrings([]string{"a", "b", "a", "c"}),
		},
	})
	require.NoError(t, err)
	return st
}

// testMap returns a new map of energy against volume, with the
// options modified by setup if non-nil.
func testMap(t *testing.T, setup func(o *mapopts.Options)) (*Map, *recorder.Recorder, host) {
	opts := mapopts.New()
	opts.X.Property = "energy"
	opts.Y.Property = "volume"
	if setup != nil {
		setup(opts)
	}
	rc := recorder.New(400, 300)
	h := host{}
	m, err := New(testStore(t), property.Structure, opts, rc, h)
	require.NoError(t, err)
	return m, rc, h
}

func TestNew(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	require.Len(t, rc.Traces, FirstLegendTrace+3)
	assert.Equal(t, []string{"create"}, rc.Ops())

	main := rc.Traces[MainTrace]
	assert.Equal(t, "scattergl", main["type"])
	assert.Equal(t, energy, main["x"])
	assert.Equal(t, []float64{10, 20, 30, 40}, main["y"])
	assert.NotContains(t, main, "z")
	assert.Equal(t, 0, main["marker.symbol"])
	assert.Equal(t, []float64{}, rc.Traces[BackgroundTrace]["x"])
	assert.Equal(t, false, rc.Traces[FirstLegendTrace]["visible"])

	assert.True(t, m.Options.Z.Disabled)
	assert.False(t, m.Is3D())
	// autoranged axes are read back from the surface
	assert.InDelta(t, 0.6, m.Options.X.Range.Min, 1e-9)
	assert.InDelta(t, 9.4, m.Options.X.Range.Max, 1e-9)
	assert.InDelta(t, 8.5, m.Options.Y.Range.Min, 1e-9)
}

func TestNewInvalid(t *testing.T) {
	opts := mapopts.New()
	opts.X.Property = "energy"
	_, err := New(testStore(t), property.Structure, opts, recorder.New(10, 10), host{})
	assert.ErrorIs(t, err, ErrSettings)

	opts.Y.Property = "volum"
	_, err = New(testStore(t), property.Structure, opts, recorder.New(10, 10), host{})
	assert.ErrorIs(t, err, property.ErrUnknownProperty)
	assert.ErrorContains(t, err, `did you mean "volume"`)
}

func TestFilter(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	m.Options.SetProperty(mapopts.Filter, "energy", mapopts.User)
	m.Options.SetFilterCutoff(4, mapopts.User)
	assert.False(t, m.Partition().IsFiltered())

	m.Options.SetFilterEnabled(true, mapopts.User)
	pt := m.Partition()
	assert.Equal(t, []int{1, 2}, pt.Main)
	assert.Equal(t, []int{0, 3}, pt.Background)
	assert.Equal(t, []float64{5, 9}, rc.Traces[MainTrace]["x"])
	assert.Equal(t, []float64{1, 2}, rc.Traces[BackgroundTrace]["x"])
	assert.Equal(t, []float64{10, 40}, rc.Traces[BackgroundTrace]["y"])

	m.Options.SetFilterOperator(partition.Equal, mapopts.User)
	m.Options.SetFilterCutoff(9, mapopts.User)
	assert.Equal(t, []int{2}, m.Partition().Main)

	m.Options.SetFilterEnabled(false, mapopts.User)
	assert.Equal(t, partition.All(4), m.Partition())
	assert.Equal(t, energy, rc.Traces[MainTrace]["x"])
}

func TestColors(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	for _, ti := range roleTraces {
		assert.Equal(t, 0.5, rc.Traces[ti]["marker.color"])
	}
	assert.Equal(t, false, rc.Layout["coloraxis.showscale"])
	assert.Equal(t, 0.0, rc.Layout["coloraxis.cmin"])
	assert.Equal(t, 1.0, rc.Layout["coloraxis.cmax"])

	m.Options.SetProperty(mapopts.Filter, "energy", mapopts.User)
	m.Options.SetFilterCutoff(4, mapopts.User)
	m.Options.SetFilterEnabled(true, mapopts.User)

	require.NoError(t, m.SetProperty(mapopts.Color, "energy"))
	// automatic reset from the main points only
	assert.Equal(t, minmax.F64{Min: 5, Max: 9}, m.Options.Color.Range)
	assert.Equal(t, 5.0, rc.Layout["coloraxis.cmin"])
	assert.Equal(t, []float64{5, 9}, rc.Traces[MainTrace]["marker.color"])
	assert.Equal(t, true, rc.Layout["coloraxis.showscale"])

	m.ResetColorRange()
	assert.Equal(t, minmax.F64{Min: 1, Max: 9}, m.Options.Color.Range)
	assert.Equal(t, 1.0, rc.Layout["coloraxis.cmin"])

	require.NoError(t, m.SetPalette("viridis"))
	cs := rc.Layout["coloraxis.colorscale"].(palette.Colorscale)
	assert.Equal(t, "#440154", cs[0][1])
	assert.ErrorIs(t, m.SetPalette("nope"), palette.ErrUnknown)
}

func TestFeedbackGuard(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	var origins []mapopts.Origins
	m.Options.On(mapopts.F(mapopts.X, mapopts.Range), func(c mapopts.Change) {
		origins = append(origins, c.Origin)
	})

	rc.Reset()
	rc.Pan(40, 0)
	assert.Empty(t, rc.Calls)
	assert.Equal(t, []mapopts.Origins{mapopts.Surface}, origins)
	assert.Equal(t, rc.Range(surface.X), m.Options.X.Range)

	m.Options.SetRange(mapopts.X, minmax.F64{Min: 0, Max: 3}, mapopts.User)
	require.Len(t, rc.Calls, 1)
	assert.Equal(t, "relayout", rc.Calls[0].Op)
	assert.Equal(t, []float64{0, 3}, rc.Calls[0].Layout["xaxis.range"])
	assert.Equal(t, 3.0, rc.Range(surface.X).Max)
	assert.Equal(t, []mapopts.Origins{mapopts.Surface, mapopts.User}, origins)
}

func TestLogAxis(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	m.Options.SetScale(mapopts.Y, mapopts.Log, mapopts.User)
	assert.Equal(t, "log", rc.Layout["yaxis.type"])
	m.Options.SetRange(mapopts.Y, minmax.F64{Min: 1, Max: 100}, mapopts.User)
	assert.InDelta(t, 2, rc.Range(surface.Y).Max, 1e-9)
	assert.InDelta(t, 100, m.Options.Y.Range.Max, 1e-9)
}

func TestAxisProperty(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	require.NoError(t, m.SetProperty(mapopts.X, "density"))
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, rc.Traces[MainTrace]["x"])
	assert.Equal(t, "density", rc.Layout["xaxis.title.text"])
	assert.InDelta(t, 0.35, m.Options.X.Range.Min, 1e-9)

	assert.ErrorIs(t, m.SetProperty(mapopts.X, ""), ErrSettings)
	assert.ErrorIs(t, m.SetProperty(mapopts.Symbol, "energy"), ErrSettings)
	assert.Equal(t, "density", m.Options.X.Property)
}

func TestModeRoundTrip(t *testing.T) {
	m, rc, h := testMap(t, func(o *mapopts.Options) {
		o.Symbol = "kind"
		o.Opacity = "density"
		o.Size.Property = "volume"
	})
	guid := uuid.New()
	require.NoError(t, m.AddMarker(guid, "red", 1))
	m.Options.SetProperty(mapopts.Filter, "energy", mapopts.User)
	m.Options.SetFilterCutoff(4, mapopts.User)
	m.Options.SetFilterEnabled(true, mapopts.User)

	keys := []string{"type", "marker.symbol", "marker.line.color", "marker.line.width",
		"marker.opacity", "marker.size", "x", "y", "z"}
	snapshot := func() []map[string]any {
		var snap []map[string]any
		for _, tr := range rc.Traces {
			s := map[string]any{}
			for _, k := range keys {
				s[k] = tr[k]
			}
			snap = append(snap, s)
		}
		return snap
	}
	before := snapshot()
	colorbar := rc.Layout["coloraxis.colorbar.len"]
	assert.InDelta(t, 1-3*LegendItemHeight, colorbar, 1e-9)
	xrange := m.Options.X.Range
	pt := m.Partition()

	require.NoError(t, m.SetProperty(mapopts.Z, "density"))
	assert.True(t, m.Is3D())
	assert.False(t, m.Options.Z.Disabled)
	main := rc.Traces[MainTrace]
	assert.Equal(t, "scatter3d", main["type"])
	assert.Equal(t, []float64{1.5, 2.5}, main["z"])
	assert.Equal(t, []string{"square", "circle"}, main["marker.symbol"])
	assert.Equal(t, "black", main["marker.line.color"])
	assert.Equal(t, 0.5, main["marker.line.width"])
	assert.IsType(t, 0.0, main["marker.opacity"])
	assert.Equal(t, []float64{attribute.ActiveSize3D}, rc.Traces[SelectedTrace]["marker.size"])
	assert.Equal(t, "scatter3d", rc.Traces[FirstLegendTrace]["type"])
	assert.InDelta(t, 1-3*LegendItemHeight-LegendPad3D, rc.Layout["coloraxis.colorbar.len"], 1e-9)
	assert.Equal(t, "density", rc.Layout["scene.zaxis.title.text"])
	assert.False(t, h[guid].visible)

	require.NoError(t, m.SetProperty(mapopts.Z, ""))
	assert.False(t, m.Is3D())
	assert.True(t, m.Options.Z.Disabled)
	assert.Equal(t, before, snapshot())
	assert.Equal(t, colorbar, rc.Layout["coloraxis.colorbar.len"])
	assert.Equal(t, xrange, m.Options.X.Range)
	assert.Equal(t, pt, m.Partition())
	assert.Equal(t, guid, m.ActiveMarker().GUID)
	assert.True(t, h[guid].visible)
}

func TestAxisProperty3D(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	rc.Pan(40, 0)
	panned := m.Options.X.Range
	assert.Equal(t, false, rc.Layout["xaxis.autorange"])

	require.NoError(t, m.SetProperty(mapopts.Z, "density"))
	require.NoError(t, m.SetProperty(mapopts.X, "volume"))
	assert.Equal(t, minmax.F64{}, m.Options.X.Range)
	assert.Equal(t, true, rc.Layout["scene.xaxis.autorange"])

	m.Options.SetScale(mapopts.X, mapopts.Log, mapopts.User)
	assert.Equal(t, "log", rc.Layout["scene.xaxis.type"])
	assert.Equal(t, true, rc.Layout["scene.xaxis.autorange"])

	require.NoError(t, m.SetProperty(mapopts.Z, ""))
	assert.False(t, m.Is3D())
	assert.Equal(t, true, rc.Layout["xaxis.autorange"])
	rng := surface.FromSurfaceRange(rc.Range(surface.X), surface.Log)
	assert.LessOrEqual(t, rng.Min, 10.0)
	assert.GreaterOrEqual(t, rng.Max, 40.0)
	assert.NotEqual(t, panned, m.Options.X.Range)

	// the next render reports the new extent
	rc.Render()
	assert.InDelta(t, rng.Min, m.Options.X.Range.Min, 1e-9)
	assert.InDelta(t, rng.Max, m.Options.X.Range.Max, 1e-9)
}

func TestSelection(t *testing.T) {
	m, rc, h := testMap(t, nil)
	m1, m2 := uuid.New(), uuid.New()

	require.NoError(t, m.AddMarker(m1, "red", 2))
	assert.Equal(t, m1, m.ActiveMarker().GUID)
	require.NoError(t, m.AddMarker(m2, "blue", 0))
	assert.Equal(t, m2, m.ActiveMarker().GUID)
	assert.Equal(t, []float64{9, 1}, rc.Traces[SelectedTrace]["x"])

	require.NoError(t, m.RemoveMarker(m2))
	assert.Equal(t, m1, m.ActiveMarker().GUID)
	assert.True(t, h[m2].removed)
	assert.Equal(t, []float64{9}, rc.Traces[SelectedTrace]["x"])

	require.NoError(t, m.Select(1))
	assert.Equal(t, 1, m.ActiveMarker().Index)
	assert.Equal(t, []float64{5}, rc.Traces[SelectedTrace]["x"])
	assert.True(t, h[m1].visible)
	wantX := 400 - rc.ToPixel(surface.X, 5)
	assert.InDelta(t, wantX, h[m1].x, 1)
	assert.InDelta(t, rc.ToPixel(surface.Y, 20), h[m1].y, 1)

	assert.ErrorIs(t, m.RemoveMarker(uuid.New()), overlay.ErrUnknownMarker)
	assert.ErrorIs(t, m.SetActive(uuid.New()), overlay.ErrUnknownMarker)
	assert.Error(t, m.AddMarker(uuid.New(), "red", 4))
	require.NoError(t, m.RemoveMarker(m1))
	assert.ErrorIs(t, m.Select(0), overlay.ErrNoActiveMarker)
}

func TestMarkerBound(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	assert.Equal(t, overlay.DefaultMax, m.Overlay.Max)
	for i := range overlay.DefaultMax {
		require.NoError(t, m.AddMarker(uuid.New(), "red", i%4))
	}
	last := m.ActiveMarker().GUID
	assert.ErrorIs(t, m.AddMarker(uuid.New(), "red", 0), overlay.ErrFull)
	assert.Equal(t, overlay.DefaultMax, m.Overlay.Len())
	assert.Equal(t, last, m.ActiveMarker().GUID)
	assert.Len(t, rc.Traces[SelectedTrace]["x"], overlay.DefaultMax)
}

func TestClicks(t *testing.T) {
	m, rc, h := testMap(t, nil)
	var selected []int
	m.OnSelect = func(index int) { selected = append(selected, index) }
	var activated []uuid.UUID
	m.OnActiveChanged = func(guid uuid.UUID) { activated = append(activated, guid) }

	rc.Click(MainTrace, 3)
	assert.Equal(t, []int{3}, selected)

	m1, m2 := uuid.New(), uuid.New()
	require.NoError(t, m.AddMarker(m1, "red", 0))
	require.NoError(t, m.AddMarker(m2, "blue", 1))

	m.Options.SetProperty(mapopts.Filter, "energy", mapopts.User)
	m.Options.SetFilterCutoff(4, mapopts.User)
	m.Options.SetFilterEnabled(true, mapopts.User)
	rc.Click(BackgroundTrace, 1)
	assert.Equal(t, []int{3, 3}, selected)
	assert.Equal(t, 3, m.ActiveMarker().Index)

	rc.Click(SelectedTrace, 0)
	assert.Equal(t, []int{3, 3, 0}, selected)
	rc.Click(FirstLegendTrace, 0)
	rc.Click(MainTrace, 7)
	assert.Len(t, selected, 3)

	h[m1].click()
	assert.Equal(t, []uuid.UUID{m1}, activated)
	assert.Equal(t, m1, m.ActiveMarker().GUID)
	assert.True(t, h[m1].active)
	assert.False(t, h[m2].active)
}

func TestActive3D(t *testing.T) {
	m, rc, _ := testMap(t, func(o *mapopts.Options) {
		o.Z.Property = "density"
	})
	assert.True(t, m.Is3D())
	assert.Equal(t, "scatter3d", rc.Traces[MainTrace]["type"])
	m1, m2 := uuid.New(), uuid.New()
	require.NoError(t, m.AddMarker(m1, "red", 0))
	require.NoError(t, m.AddMarker(m2, "blue", 1))
	assert.Equal(t, []float64{12, 20}, rc.Traces[SelectedTrace]["marker.size"])

	require.NoError(t, m.SetActive(m1))
	assert.Equal(t, []float64{20, 12}, rc.Traces[SelectedTrace]["marker.size"])
	assert.Equal(t, []float64{0.5, 1.5}, rc.Traces[SelectedTrace]["z"])
}

func TestSurfaceFailure(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	var failures []string
	m.Adapter.OnFailure = func(op string, err error) {
		failures = append(failures, op+": "+err.Error())
	}
	rc.Fail = errors.New("lost")

	guid := uuid.New()
	require.NoError(t, m.AddMarker(guid, "red", 2))
	m.Options.SetProperty(mapopts.Filter, "energy", mapopts.User)
	m.Options.SetFilterCutoff(4, mapopts.User)
	m.Options.SetFilterEnabled(true, mapopts.User)
	assert.Equal(t, []string{"restyle: lost", "restyle: lost"}, failures)
	assert.Equal(t, []int{1, 2}, m.Partition().Main)
	assert.Equal(t, guid, m.ActiveMarker().GUID)

	rc.Fail = nil
	m.Options.SetFilterCutoff(1, mapopts.User)
	assert.Equal(t, []float64{5, 9, 2}, rc.Traces[MainTrace]["x"])
	assert.Equal(t, []float64{9}, rc.Traces[SelectedTrace]["x"])
	assert.Len(t, failures, 2)
}

func TestSettingsRoundTrip(t *testing.T) {
	m, _, _ := testMap(t, func(o *mapopts.Options) {
		o.Symbol = "kind"
	})
	m.Options.SetProperty(mapopts.Color, "energy", mapopts.User)
	m.Options.SetPalette("magma", mapopts.User)
	m.Options.SetSizeMode(mapopts.SizeSqrt, mapopts.User)
	m.Options.SetScale(mapopts.Y, mapopts.Log, mapopts.User)
	m.Options.SetProperty(mapopts.Filter, "volume", mapopts.User)
	m.Options.SetFilterOperator(partition.Less, mapopts.User)
	m.Options.SetFilterCutoff(25, mapopts.User)
	m.Options.SetFilterEnabled(true, mapopts.User)

	saved := m.SaveSettings()
	require.NoError(t, m.ApplySettings(saved))
	assert.Equal(t, saved, m.SaveSettings())

	other, _, _ := testMap(t, nil)
	require.NoError(t, other.ApplySettings(saved))
	assert.Equal(t, saved, other.SaveSettings())
	assert.Equal(t, []int{0, 1}, other.Partition().Main)
	assert.Equal(t, m.Options.Color.Range, other.Options.Color.Range)

	for _, ext := range []string{".json", ".toml", ".yaml"} {
		fn := filepath.Join(t.TempDir(), "settings"+ext)
		require.NoError(t, m.SaveSettingsFile(fn))
		third, _, _ := testMap(t, nil)
		require.NoError(t, third.OpenSettings(fn))
		assert.Equal(t, saved, third.SaveSettings(), ext)
	}
}

func TestApplyInvalidSettings(t *testing.T) {
	m, _, _ := testMap(t, nil)
	before := m.SaveSettings()

	s := before
	s.Color.Property = "enrgy"
	s.Symbol = "volume"
	err := m.ApplySettings(s)
	assert.ErrorIs(t, err, ErrSettings)
	assert.ErrorIs(t, err, property.ErrUnknownProperty)
	assert.ErrorContains(t, err, "not categorical")

	s = before
	s.Filter.Operator = partition.OperatorsN
	assert.ErrorIs(t, m.ApplySettings(s), partition.ErrUnsupportedOperator)
	assert.Equal(t, before, m.SaveSettings())
}

func TestSettings3D(t *testing.T) {
	m, rc, _ := testMap(t, nil)
	s := m.SaveSettings()
	s.Z.Property = "density"
	require.NoError(t, m.ApplySettings(s))
	assert.True(t, m.Is3D())
	assert.Equal(t, "scatter3d", rc.Traces[BackgroundTrace]["type"])
}
