// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapview

import (
	"fmt"

	"cogentcore.org/mapview/overlay"
	"github.com/google/uuid"
)

// selectedKeys are the attributes of the selected trace that
// depend on the markers. z is unset in 2D.
var selectedKeys = []string{"x", "y", "z", "marker.color", "marker.size",
	"marker.symbol", "marker.opacity"}

// checkIndex returns an error for environment indexes out of range.
func (m *Map) checkIndex(index int) error {
	if index < 0 || index >= m.Len() {
		return fmt.Errorf("mapview: environment index %d out of range [0, %d)", index, m.Len())
	}
	return nil
}

// AddMarker adds a selection marker of given color tracking the
// environment at index, and makes it the active marker.
func (m *Map) AddMarker(guid uuid.UUID, color string, index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	if _, err := m.Overlay.Add(guid, color, index); err != nil {
		return err
	}
	m.markersChanged()
	return nil
}

// RemoveMarker removes the selection marker of given GUID.
// If it was the active marker, another marker becomes active.
func (m *Map) RemoveMarker(guid uuid.UUID) error {
	if err := m.Overlay.Remove(guid); err != nil {
		return err
	}
	m.markersChanged()
	return nil
}

// SetActive makes the marker of given GUID the active marker.
// In 3D, the active marker point is drawn larger than the others.
func (m *Map) SetActive(guid uuid.UUID) error {
	if err := m.Overlay.SetActive(guid); err != nil {
		return err
	}
	if m.is3D {
		m.restyleSelected("marker.size")
	}
	return nil
}

// Select moves the active marker to the environment at index.
// It is an error to select without active marker.
func (m *Map) Select(index int) error {
	if err := m.checkIndex(index); err != nil {
		return err
	}
	if err := m.Overlay.Select(index); err != nil {
		return err
	}
	m.markersChanged()
	return nil
}

// ActiveMarker returns the active marker, nil if there are no markers.
func (m *Map) ActiveMarker() *overlay.Marker {
	return m.Overlay.Active()
}

// markersChanged updates the selected trace and the overlay
// after a change of the markers.
func (m *Map) markersChanged() {
	m.restyleSelected(selectedKeys...)
	m.reproject()
}
