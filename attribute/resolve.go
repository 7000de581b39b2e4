// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"cogentcore.org/mapview/partition"
)

// Roles are the roles of the traces of a map.
type Roles int32 //enums:enum

const (
	// Main is the trace of the points passing the filter.
	Main Roles = iota

	// Background is the trace of the points failing the filter.
	Background

	// Selected is the trace of the points tracked by selection
	// markers, indexed by marker rather than by point.
	Selected
)

// Set holds the value of one attribute for every trace role.
type Set[T any] [RolesN]Value[T]

// Context is what the resolution of per-role values depends on.
type Context struct {
	// Partition of the points into main and background.
	Partition partition.Partition

	// Selected are the point indexes tracked by the selection
	// markers, in marker order.
	Selected []int

	// Active is the position of the active marker in Selected,
	// -1 if there is none.
	Active int
}

// Resolve returns the value of every role for given source value.
// A non-nil override replaces the values of the [Selected] role.
func Resolve[T any](ctx *Context, src Value[T], override []T) Set[T] {
	var set Set[T]
	for _, role := range RolesValues() {
		set[role] = ResolveRole(ctx, src, role, override)
	}
	return set
}

// ResolveRole returns the value of the given role for given source
// value. Unused and constant values are shared by every role.
// Arrays are indexed by the partition for the main and background
// roles, and by the markers for the selected role, unless
// override is non-nil.
func ResolveRole[T any](ctx *Context, src Value[T], role Roles, override []T) Value[T] {
	if role == Selected && override != nil {
		return NewArray(override)
	}
	if !src.IsArray() {
		return src
	}
	switch role {
	case Main:
		return NewArray(gather(src.values, ctx.Partition.Main))
	case Background:
		return NewArray(gather(src.values, ctx.Partition.Background))
	}
	return NewArray(gather(src.values, ctx.Selected))
}

// gather returns the values at given indexes.
func gather[T any](values []T, indexes []int) []T {
	out := make([]T, len(indexes))
	for i, idx := range indexes {
		out[i] = values[idx]
	}
	return out
}
