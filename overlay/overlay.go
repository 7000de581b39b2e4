// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlay manages the selection markers of a map: persistent
// markers, each tracking one environment, drawn as elements positioned
// over the render surface in 2D mode.
package overlay

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/mapview/surface"
	"github.com/google/uuid"
)

var (
	// ErrUnknownMarker is returned for a marker GUID that is not in the overlay.
	ErrUnknownMarker = errors.New("overlay: unknown marker")

	// ErrNoActiveMarker is returned when selecting with no active marker.
	ErrNoActiveMarker = errors.New("overlay: no active marker")

	// ErrDuplicateMarker is returned when adding a GUID already in the overlay.
	ErrDuplicateMarker = errors.New("overlay: duplicate marker")

	// ErrFull is returned when adding a marker to a full overlay.
	ErrFull = errors.New("overlay: too many markers")
)

const (
	// Buffer is the distance in pixels outside of the plot area
	// within which markers are still shown.
	Buffer = 10

	// DefaultMax is the default maximum number of markers.
	DefaultMax = 16
)

// Host creates the elements drawn over the render surface.
type Host interface {
	// NewElement returns a new element for the marker of given GUID,
	// drawn with given color. onClick must be called when the user
	// clicks on the element.
	NewElement(guid uuid.UUID, color string, onClick func()) Element
}

// Element is a marker element drawn over the render surface.
type Element interface {
	// Move moves the center of the element to given position
	// in pixels, relative to the plot area.
	Move(x, y float64)

	SetVisible(visible bool)

	SetActive(active bool)

	// Remove destroys the element.
	Remove()
}

// Marker is a persistent selection marker.
type Marker struct {
	// GUID identifies the marker.
	GUID uuid.UUID

	// Color is the color of the marker.
	Color string

	// Index is the index of the environment the marker tracks.
	Index int

	active  bool
	visible bool
	x, y    float64
	elem    Element
}

// IsActive returns whether this is the active marker.
func (m *Marker) IsActive() bool { return m.active }

// IsVisible returns whether the element of the marker is shown.
func (m *Marker) IsVisible() bool { return m.visible }

// Position returns the last position of the element.
func (m *Marker) Position() (x, y float64) { return m.x, m.y }

func (m *Marker) setVisible(visible bool) {
	m.visible = visible
	m.elem.SetVisible(visible)
}

func (m *Marker) setActive(active bool) {
	m.active = active
	m.elem.SetActive(active)
}

// Overlay is the set of selection markers, with at most one
// active marker.
type Overlay struct {
	// Host creates the marker elements.
	Host Host

	// Max is the maximum number of markers, if > 0;
	// [DefaultMax] for a new overlay.
	Max int

	// OnClick is called when the user clicks on the element of a marker.
	OnClick func(m *Marker)

	// markers in insertion order
	markers []*Marker
	active  *Marker
	hidden  bool
}

// New returns a new Overlay using given host.
func New(host Host) *Overlay {
	return &Overlay{Host: host, Max: DefaultMax}
}

// Add adds a new marker tracking the environment at index,
// and makes it the active marker.
func (o *Overlay) Add(guid uuid.UUID, color string, index int) (*Marker, error) {
	if _, err := o.Get(guid); err == nil {
		return nil, fmt.Errorf("%w %s", ErrDuplicateMarker, guid)
	}
	if o.Max > 0 && len(o.markers) >= o.Max {
		return nil, fmt.Errorf("%w: at most %d", ErrFull, o.Max)
	}
	m := &Marker{GUID: guid, Color: color, Index: index, visible: !o.hidden}
	m.elem = o.Host.NewElement(guid, color, func() {
		if o.OnClick != nil {
			o.OnClick(m)
		}
	})
	m.elem.SetVisible(m.visible)
	o.markers = append(o.markers, m)
	o.activate(m)
	return m, nil
}

// Remove removes the marker of given GUID and destroys its element.
// If it was the active marker, the first remaining marker becomes active.
func (o *Overlay) Remove(guid uuid.UUID) error {
	i := o.indexOf(guid)
	if i < 0 {
		return fmt.Errorf("%w %s", ErrUnknownMarker, guid)
	}
	m := o.markers[i]
	o.markers = append(o.markers[:i], o.markers[i+1:]...)
	m.elem.Remove()
	if o.active == m {
		o.active = nil
		if len(o.markers) > 0 {
			o.activate(o.markers[0])
		}
	}
	return nil
}

// SetActive makes the marker of given GUID the active marker.
func (o *Overlay) SetActive(guid uuid.UUID) error {
	m, err := o.Get(guid)
	if err != nil {
		return err
	}
	o.activate(m)
	return nil
}

func (o *Overlay) activate(m *Marker) {
	if o.active != nil && o.active != m {
		o.active.setActive(false)
	}
	o.active = m
	m.setActive(true)
}

// Active returns the active marker, or nil if there are no markers.
func (o *Overlay) Active() *Marker {
	return o.active
}

// Select makes the active marker track the environment at index.
func (o *Overlay) Select(index int) error {
	if o.active == nil {
		return ErrNoActiveMarker
	}
	o.active.Index = index
	return nil
}

// Get returns the marker of given GUID.
func (o *Overlay) Get(guid uuid.UUID) (*Marker, error) {
	i := o.indexOf(guid)
	if i < 0 {
		return nil, fmt.Errorf("%w %s", ErrUnknownMarker, guid)
	}
	return o.markers[i], nil
}

func (o *Overlay) indexOf(guid uuid.UUID) int {
	for i, m := range o.markers {
		if m.GUID == guid {
			return i
		}
	}
	return -1
}

// Markers returns the markers, in insertion order.
func (o *Overlay) Markers() []*Marker {
	return o.markers
}

// Len returns the number of markers.
func (o *Overlay) Len() int {
	return len(o.markers)
}

// Indices returns the environment indexes tracked by the markers,
// in insertion order.
func (o *Overlay) Indices() []int {
	idx := make([]int, len(o.markers))
	for i, m := range o.markers {
		idx[i] = m.Index
	}
	return idx
}

// Hide hides all the elements, for the 3D mode where markers are
// drawn by the render surface itself.
func (o *Overlay) Hide() {
	o.hidden = true
	for _, m := range o.markers {
		m.setVisible(false)
	}
}

// Show shows the elements again after [Overlay.Hide]. They are
// positioned by the next [Overlay.Reproject].
func (o *Overlay) Show() {
	o.hidden = false
	for _, m := range o.markers {
		m.setVisible(true)
	}
}

// Hidden returns whether the elements are hidden by [Overlay.Hide].
func (o *Overlay) Hidden() bool {
	return o.hidden
}

// Reproject positions the element of every marker over its
// environment, using the current geometry of the render surface.
// coords returns the data coordinates of the environment at index.
// Markers outside of the plot area plus [Buffer] are hidden.
func (o *Overlay) Reproject(in surface.Introspector, coords func(index int) (x, y float64)) {
	if o.hidden {
		return
	}
	w, h := in.Size()
	for _, m := range o.markers {
		x, y := coords(m.Index)
		px, py := in.ToPixel(surface.X, x), in.ToPixel(surface.Y, y)
		if !inside(px, w) || !inside(py, h) {
			m.setVisible(false)
			continue
		}
		// the planar scatter is drawn mirrored horizontally
		m.x, m.y = w-px, py
		m.elem.Move(m.x, m.y)
		m.setVisible(true)
	}
}

func inside(p, size float64) bool {
	if math.IsNaN(p) {
		return false
	}
	return p >= -Buffer && p <= size+Buffer
}
