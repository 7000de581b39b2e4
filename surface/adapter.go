// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"log/slog"
)

// Adapter owns the calls into a [Surface]. Operations are fire and
// forget: they never block on the surface, and failures are reported
// to OnFailure instead of the caller, possibly from another goroutine.
type Adapter struct {
	// Surface is the render surface.
	Surface Surface

	// OnFailure is called when a surface operation fails. It is
	// called from another goroutine when the failure is reported
	// after the operation returned. The default logs a warning.
	OnFailure func(op string, err error)
}

// NewAdapter returns a new Adapter for given surface.
func NewAdapter(s Surface) *Adapter {
	return &Adapter{Surface: s}
}

// Create creates the plot.
func (a *Adapter) Create(traces []Trace, layout Layout, config Config) {
	a.watch("create", a.Surface.Create(traces, layout, config))
}

// Restyle updates the given attributes of given traces.
func (a *Adapter) Restyle(update Update, traces ...int) {
	if len(update) == 0 {
		return
	}
	a.watch("restyle", a.Surface.Restyle(update, traces...))
}

// Relayout updates the given layout attributes.
func (a *Adapter) Relayout(layout Layout) {
	if len(layout) == 0 {
		return
	}
	a.watch("relayout", a.Surface.Relayout(layout))
}

// watch reports the failure of an operation, right away if its
// result is already available, and asynchronously otherwise.
func (a *Adapter) watch(op string, res Result) {
	if res == nil {
		return
	}
	select {
	case err := <-res:
		a.report(op, err)
	default:
		go func() {
			a.report(op, <-res)
		}()
	}
}

func (a *Adapter) report(op string, err error) {
	if err == nil {
		return
	}
	if a.OnFailure != nil {
		a.OnFailure(op, err)
		return
	}
	slog.Warn("mapview: render surface operation failed", "op", op, "err", err)
}
