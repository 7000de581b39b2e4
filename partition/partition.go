// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition splits the points of a map into the main
// (emphasized) and background (de-emphasized) sets, according
// to a filter predicate over one property.
package partition

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrUnsupportedOperator is returned for filter operators other
// than [Greater], [Less] and [Equal].
var ErrUnsupportedOperator = errors.New("partition: unsupported filter operator")

// Operators are the comparison operators of a filter.
type Operators int32 //enums:enum

const (
	// Greater keeps points with value > cutoff.
	Greater Operators = iota

	// Less keeps points with value < cutoff.
	Less

	// Equal keeps points with value == cutoff.
	Equal
)

// Symbol returns the comparison symbol of the operator.
func (op Operators) Symbol() string {
	switch op {
	case Greater:
		return ">"
	case Less:
		return "<"
	case Equal:
		return "="
	}
	return "?"
}

// Filter is a predicate `value Operator Cutoff` over the values
// of one property.
type Filter struct {
	// Enabled turns the filter on. When off, every point is in Main.
	Enabled bool

	// Operator compares point values with Cutoff.
	Operator Operators

	// Cutoff is the value points are compared to.
	Cutoff float64
}

// Keep returns whether a point with value v satisfies the filter.
func (f *Filter) Keep(v float64) (bool, error) {
	switch f.Operator {
	case Greater:
		return v > f.Cutoff, nil
	case Less:
		return v < f.Cutoff, nil
	case Equal:
		return v == f.Cutoff, nil
	}
	return false, fmt.Errorf("%w %d", ErrUnsupportedOperator, f.Operator)
}

// Partition is a split of point indexes into two disjoint ordered
// sequences that together cover every index exactly once.
type Partition struct {
	// Main are the indexes of the points satisfying the filter.
	Main []int

	// Background are the indexes of the points failing the filter.
	Background []int
}

// All returns the trivial partition of n points: all main,
// no background.
func All(n int) Partition {
	pt := Partition{Main: make([]int, n), Background: []int{}}
	for i := range pt.Main {
		pt.Main[i] = i
	}
	return pt
}

// Compute returns the partition of n points for given filter,
// where value(i) returns the filtered property value of point i.
// A disabled filter returns [All].
func Compute(n int, value func(i int) float64, f Filter) (Partition, error) {
	if !f.Enabled {
		return All(n), nil
	}
	pt := Partition{Main: []int{}, Background: []int{}}
	for i := range n {
		keep, err := f.Keep(value(i))
		if err != nil {
			return Partition{}, err
		}
		if keep {
			pt.Main = append(pt.Main, i)
		} else {
			pt.Background = append(pt.Background, i)
		}
	}
	return pt, nil
}

// Len returns the total number of points in the partition.
func (pt Partition) Len() int {
	return len(pt.Main) + len(pt.Background)
}

// IsFiltered returns whether any point is in the background.
func (pt Partition) IsFiltered() bool {
	return len(pt.Background) > 0
}
