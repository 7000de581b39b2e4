// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wsurface provides a [surface.Surface] drawn by a remote
// client, typically a browser page running the plotting library,
// connected over a WebSocket.
//
// Operations are sent as JSON commands with an id, which the client
// acknowledges with {"ack": id, "error": ""} once applied. The client
// reports events as {"event": "click", "trace": 0, "point": 3} and
// {"event": "afterplot", "geometry": {...}}, the latter carrying the
// rendered axis ranges and plot size. The selection marker elements
// of [Surface.Host] are also drawn by the client, which reports
// clicks on them as {"markerclick": guid}.
//
// Events are received on a background goroutine but are only handled
// when passed to [Surface.Dispatch], so that the handlers and the
// geometry are only ever used from the goroutine driving the map.
package wsurface

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/mapview/surface"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrClosed is reported for operations on a closed connection.
var ErrClosed = errors.New("wsurface: connection closed")

// Upgrader is the WebSocket upgrader used by [Accept].
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1 << 16,
}

// command is an operation sent to the client.
type command struct {
	ID     int             `json:"id"`
	Op     string          `json:"op"`
	Traces any             `json:"traces,omitempty"`
	Update surface.Update  `json:"update,omitempty"`
	Layout surface.Layout  `json:"layout,omitempty"`
	Config *surface.Config `json:"config,omitempty"`
	Marker *markerCommand  `json:"marker,omitempty"`
}

// message is a message received from the client.
type message struct {
	Ack      *int                `json:"ack,omitempty"`
	Error    string              `json:"error,omitempty"`
	Event    *surface.EventTypes `json:"event,omitempty"`
	Trace    int                 `json:"trace"`
	Point    int                 `json:"point"`
	Geometry *surface.Geometry   `json:"geometry,omitempty"`

	// MarkerClick is the GUID of a clicked marker element.
	MarkerClick *uuid.UUID `json:"markerclick,omitempty"`
}

// Incoming is an event received from the client, waiting
// to be dispatched.
type Incoming struct {
	Event surface.Event

	// Geometry is the rendered geometry, for AfterPlot events.
	Geometry *surface.Geometry

	// Marker is the GUID of a clicked marker element, in which
	// case Event is unused.
	Marker *uuid.UUID
}

// Surface is a render surface on the other end of a WebSocket.
type Surface struct {
	// Geometry is the last geometry reported by the client.
	surface.Geometry

	conn *websocket.Conn

	// writeMu serializes writes to conn.
	writeMu sync.Mutex

	// mu guards the fields below.
	mu      sync.Mutex
	nextID  int
	pending map[int]chan error
	closed  bool

	events   chan Incoming
	done     chan struct{}
	handlers map[surface.EventTypes][]func(ev surface.Event)

	// clicks are the click handlers of the marker elements.
	clicks map[uuid.UUID]func()
}

// New returns a new Surface for given connection, and starts
// reading from it.
func New(conn *websocket.Conn) *Surface {
	s := &Surface{
		conn:     conn,
		pending:  make(map[int]chan error),
		events:   make(chan Incoming, 64),
		done:     make(chan struct{}),
		handlers: make(map[surface.EventTypes][]func(surface.Event)),
		clicks:   make(map[uuid.UUID]func()),
	}
	go s.read()
	return s
}

// Accept upgrades an HTTP request to a WebSocket connection
// and returns its Surface.
func Accept(w http.ResponseWriter, r *http.Request) (*Surface, error) {
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}

// Handler returns an HTTP handler that accepts WebSocket connections
// and passes their surfaces to connected.
func Handler(connected func(s *Surface)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := Accept(w, r)
		if errors.Log(err) != nil {
			return
		}
		connected(s)
	})
}

// Events returns the channel of events received from the client.
// It is closed when the connection is closed.
func (s *Surface) Events() <-chan Incoming {
	return s.events
}

// Done returns a channel that is closed when the connection is closed.
func (s *Surface) Done() <-chan struct{} {
	return s.done
}

// Dispatch updates the geometry from an AfterPlot event and calls
// the event handlers, in registration order.
func (s *Surface) Dispatch(in Incoming) {
	if in.Marker != nil {
		if click := s.clicks[*in.Marker]; click != nil {
			click()
		}
		return
	}
	if in.Geometry != nil {
		s.Geometry = *in.Geometry
	}
	for _, h := range s.handlers[in.Event.Type] {
		h(in.Event)
	}
}

func (s *Surface) On(typ surface.EventTypes, handler func(ev surface.Event)) {
	s.handlers[typ] = append(s.handlers[typ], handler)
}

func (s *Surface) Create(traces []surface.Trace, layout surface.Layout, config surface.Config) surface.Result {
	return s.send(&command{Op: "create", Traces: traces, Layout: layout, Config: &config})
}

func (s *Surface) Restyle(update surface.Update, traces ...int) surface.Result {
	return s.send(&command{Op: "restyle", Traces: traces, Update: update})
}

func (s *Surface) Relayout(layout surface.Layout) surface.Result {
	return s.send(&command{Op: "relayout", Layout: layout})
}

// send sends a command, returning the result that its
// acknowledgement resolves.
func (s *Surface) send(cmd *command) surface.Result {
	res := make(chan error, 1)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return surface.Done(ErrClosed)
	}
	s.nextID++
	cmd.ID = s.nextID
	s.pending[cmd.ID] = res
	s.mu.Unlock()

	s.writeMu.Lock()
	err := s.conn.WriteJSON(cmd)
	s.writeMu.Unlock()
	if err != nil {
		s.resolve(cmd.ID, err)
	}
	return res
}

// resolve completes the pending operation of given id.
func (s *Surface) resolve(id int, err error) {
	s.mu.Lock()
	res, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()
	if !ok {
		slog.Warn("wsurface: acknowledgement of unknown operation", "id", id)
		return
	}
	res <- err
}

// read reads messages until the connection is closed.
func (s *Surface) read() {
	defer s.shutdown()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			return
		}
		var msg message
		if errors.Log(json.Unmarshal(data, &msg)) != nil {
			continue
		}
		switch {
		case msg.Ack != nil:
			var err error
			if msg.Error != "" {
				err = errors.New(msg.Error)
			}
			s.resolve(*msg.Ack, err)
		case msg.MarkerClick != nil:
			s.events <- Incoming{Marker: msg.MarkerClick}
		case msg.Event != nil:
			s.events <- Incoming{
				Event:    surface.Event{Type: *msg.Event, Trace: msg.Trace, Point: msg.Point},
				Geometry: msg.Geometry,
			}
		default:
			slog.Warn("wsurface: unknown message", "message", string(data))
		}
	}
}

// shutdown fails all pending operations and closes the channels.
func (s *Surface) shutdown() {
	s.mu.Lock()
	s.closed = true
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, res := range pending {
		res <- ErrClosed
	}
	close(s.events)
	close(s.done)
}

// Close cleanly closes the connection. The pending operations
// fail once the client has closed its end.
func (s *Surface) Close() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
