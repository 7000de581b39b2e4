// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

// Kinds are the kinds of a [Value].
type Kinds int32 //enums:enum

const (
	// Unused means the channel is not used: the render surface
	// must treat the attribute as absent.
	Unused Kinds = iota

	// Constant is a single value broadcast to every point.
	Constant

	// Array has one value per point.
	Array
)

// Value is either unused, a constant broadcast to every point,
// or one value per point. The kind is always explicit, and never
// inferred from the length of the values.
type Value[T any] struct {
	kind     Kinds
	constant T
	values   []T
}

// NewUnused returns an unused Value.
func NewUnused[T any]() Value[T] {
	return Value[T]{}
}

// NewConstant returns a constant Value.
func NewConstant[T any](v T) Value[T] {
	return Value[T]{kind: Constant, constant: v}
}

// NewArray returns a Value with one value per point.
// The slice is not copied.
func NewArray[T any](vs []T) Value[T] {
	return Value[T]{kind: Array, values: vs}
}

// Kind returns the kind of the value.
func (v Value[T]) Kind() Kinds {
	return v.kind
}

// IsArray returns whether the value has one value per point.
func (v Value[T]) IsArray() bool {
	return v.kind == Array
}

// Constant returns the constant value, only meaningful for
// [Constant] values.
func (v Value[T]) Constant() T {
	return v.constant
}

// Values returns the per-point values, nil unless the kind is [Array].
func (v Value[T]) Values() []T {
	return v.values
}

// Len returns the number of per-point values, 0 unless
// the kind is [Array].
func (v Value[T]) Len() int {
	return len(v.values)
}

// At returns the value of point i: the constant for constant
// values, and the zero value for unused ones.
func (v Value[T]) At(i int) T {
	switch v.kind {
	case Constant:
		return v.constant
	case Array:
		return v.values[i]
	}
	var zero T
	return zero
}

// Encode returns the value as sent to the render surface:
// nil when unused, the constant, or the slice of values.
func (v Value[T]) Encode() any {
	switch v.kind {
	case Constant:
		return v.constant
	case Array:
		return v.values
	}
	return nil
}

// Map returns the value with f applied to the constant or to
// every per-point value.
func Map[T, U any](v Value[T], f func(T) U) Value[U] {
	switch v.kind {
	case Constant:
		return NewConstant(f(v.constant))
	case Array:
		us := make([]U, len(v.values))
		for i, x := range v.values {
			us[i] = f(x)
		}
		return NewArray(us)
	}
	return NewUnused[U]()
}
