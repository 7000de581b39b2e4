// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package property holds the per-environment properties displayed
// in a map, normalized per display mode.
package property

//go:generate core generate

import (
	"fmt"
	"math"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32/minmax"
)

var (
	// ErrUnknownProperty is returned when a property name is not in the store.
	ErrUnknownProperty = errors.New("property: unknown property")

	// ErrInvalid is returned when property input data is inconsistent.
	ErrInvalid = errors.New("property: invalid property data")
)

// Modes are the display modes of a dataset: one point per
// structure, or one point per atom environment.
type Modes int32 //enums:enum

const (
	// Structure displays one point per structure.
	Structure Modes = iota

	// Atom displays one point per atom environment.
	Atom
)

// Valuer is the read-only view of per-point values.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D returns the float64 value at given index.
	Float1D(i int) float64

	// String1D returns the string value at given index.
	String1D(i int) string
}

// Values provides a minimal implementation of the [Valuer]
// interface using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}

// Property is one named property of every point in a dataset.
// It is immutable once created by a [Store].
type Property struct {
	// Name of the property.
	Name string

	// Values has one value per point. For categorical properties
	// the value is the index of the point label in Labels.
	Values []float64

	// Labels is the ordered set of distinct category labels,
	// nil for numeric properties.
	Labels []string
}

// Len returns the number of points.
func (p *Property) Len() int {
	return len(p.Values)
}

// Float1D returns the value of point i.
func (p *Property) Float1D(i int) float64 {
	return p.Values[i]
}

// String1D returns the label of point i for categorical properties,
// and the formatted value otherwise.
func (p *Property) String1D(i int) string {
	if p.IsCategorical() {
		return p.Labels[p.LabelIndex(i)]
	}
	return strconv.FormatFloat(p.Values[i], 'g', -1, 64)
}

// IsCategorical returns whether the property has category labels.
func (p *Property) IsCategorical() bool {
	return p.Labels != nil
}

// LabelIndex returns the category index of point i.
func (p *Property) LabelIndex(i int) int {
	return int(p.Values[i])
}

// Range returns the min / max range of the non-NaN values.
// The range is invalid (Min > Max) when there are no such values.
func (p *Property) Range() minmax.F64 {
	var rng minmax.F64
	rng.SetInfinity()
	Range(p, &rng)
	return rng
}

// Range updates given range with values from data, skipping NaN.
func Range(data Valuer, rng *minmax.F64) {
	for i := 0; i < data.Len(); i++ {
		v := data.Float1D(i)
		if math.IsNaN(v) {
			continue
		}
		rng.FitValInRange(v)
	}
}

// Input is the raw data of one property, as provided by the
// dataset loader.
type Input struct {
	// Values has one value per point; for categorical properties
	// it holds the label index of each point.
	Values []float64 `json:"values"`

	// Labels are the optional ordered category labels.
	Labels []string `json:"labels,omitempty"`
}

// FromStrings returns a categorical Input from one string per point.
// Labels are kept in the order they are first seen.
func FromStrings(strs []string) Input {
	in := Input{Values: make([]float64, len(strs)), Labels: []string{}}
	index := map[string]int{}
	for i, s := range strs {
		li, ok := index[s]
		if !ok {
			li = len(in.Labels)
			index[s] = li
			in.Labels = append(in.Labels, s)
		}
		in.Values[i] = float64(li)
	}
	return in
}

// newProperty validates the input and returns a Property owning
// copies of the input slices.
func newProperty(name string, in Input) (*Property, error) {
	p := &Property{Name: name, Values: make([]float64, len(in.Values))}
	copy(p.Values, in.Values)
	if in.Labels == nil {
		return p, nil
	}
	p.Labels = make([]string, len(in.Labels))
	copy(p.Labels, in.Labels)
	for i, v := range p.Values {
		li := int(v)
		if float64(li) != v || li < 0 || li >= len(p.Labels) {
			return nil, fmt.Errorf("%w: property %q point %d has label index %v outside of %d labels", ErrInvalid, name, i, v, len(p.Labels))
		}
	}
	return p, nil
}
