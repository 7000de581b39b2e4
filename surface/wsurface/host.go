// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wsurface

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/mapview/overlay"
	"cogentcore.org/mapview/surface"
	"github.com/google/uuid"
)

// markerCommand is a marker element command, sent as a
// "marker" operation.
type markerCommand struct {
	GUID   uuid.UUID `json:"guid"`
	Action string    `json:"action"`
	Color  string    `json:"color,omitempty"`

	// X and Y are the distances in pixels of the element center
	// from the right and top edges of the plot area.
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	Visible *bool `json:"visible,omitempty"`
	Active  *bool `json:"active,omitempty"`
}

// Host returns an [overlay.Host] whose marker elements are
// drawn by the client over the plot.
func (s *Surface) Host() overlay.Host {
	return (*host)(s)
}

type host Surface

func (h *host) NewElement(guid uuid.UUID, color string, onClick func()) overlay.Element {
	s := (*Surface)(h)
	s.clicks[guid] = onClick
	e := &element{s: s, guid: guid}
	e.send(&markerCommand{Action: "add", Color: color})
	return e
}

// element is a marker element drawn by the client.
type element struct {
	s    *Surface
	guid uuid.UUID
}

func (e *element) send(mc *markerCommand) {
	mc.GUID = e.guid
	logFailure(e.s.send(&command{Op: "marker", Marker: mc}))
}

func (e *element) Move(x, y float64) {
	e.send(&markerCommand{Action: "move", X: x, Y: y})
}

func (e *element) SetVisible(visible bool) {
	e.send(&markerCommand{Action: "visible", Visible: &visible})
}

func (e *element) SetActive(active bool) {
	e.send(&markerCommand{Action: "active", Active: &active})
}

func (e *element) Remove() {
	delete(e.s.clicks, e.guid)
	e.send(&markerCommand{Action: "remove"})
}

// logFailure logs the failure of a marker command.
func logFailure(res surface.Result) {
	select {
	case err := <-res:
		errors.Log(err)
	default:
		go func() {
			errors.Log(<-res)
		}()
	}
}
