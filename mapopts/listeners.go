// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapopts

// Change describes one change of the options.
type Change struct {
	Field

	// Origin of the change.
	Origin Origins
}

// Listeners registers lists of listener functions to receive
// changes of different fields. Listeners are closures with all
// context captured.
type Listeners struct {
	fields map[Field][]func(ch Change)
	any    []func(ch Change)
}

// Add adds a function for given field.
func (ls *Listeners) Add(f Field, fun func(ch Change)) {
	if ls.fields == nil {
		ls.fields = make(map[Field][]func(Change))
	}
	ls.fields[f] = append(ls.fields[f], fun)
}

// AddAny adds a function called for changes of any field, after
// the functions registered for that field.
func (ls *Listeners) AddAny(fun func(ch Change)) {
	ls.any = append(ls.any, fun)
}

// Call calls all functions for given change, in the order
// they were added. Every function runs to completion before the
// next one starts.
func (ls *Listeners) Call(ch Change) {
	for _, fun := range ls.fields[ch.Field] {
		fun(ch)
	}
	for _, fun := range ls.any {
		fun(ch)
	}
}

// On registers a listener for changes of given field.
func (o *Options) On(f Field, fun func(ch Change)) {
	o.listeners.Add(f, fun)
}

// OnAny registers a listener for changes of any field.
func (o *Options) OnAny(fun func(ch Change)) {
	o.listeners.AddAny(fun)
}

// notify calls the listeners of given field.
func (o *Options) notify(f Field, origin Origins) {
	o.listeners.Call(Change{Field: f, Origin: origin})
}
