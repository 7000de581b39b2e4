// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"fmt"
	"slices"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum similarity for a property name
// to be suggested in an unknown property error.
const suggestThreshold = 0.5

// Store holds the properties of a dataset, one set per display mode.
// All the properties of a mode have the same number of points.
type Store struct {
	props map[Modes]map[string]*Property
	names map[Modes][]string
	sizes map[Modes]int
}

// NewStore returns a new Store from given raw inputs, one map
// of property name to Input per display mode.
func NewStore(inputs map[Modes]map[string]Input) (*Store, error) {
	st := &Store{
		props: make(map[Modes]map[string]*Property),
		names: make(map[Modes][]string),
		sizes: make(map[Modes]int),
	}
	for mode, ins := range inputs {
		if mode < 0 || mode >= ModesN {
			return nil, fmt.Errorf("%w: invalid display mode %d", ErrInvalid, mode)
		}
		props := make(map[string]*Property, len(ins))
		n := -1
		for name, in := range ins {
			if name == "" {
				return nil, fmt.Errorf("%w: empty property name in mode %v", ErrInvalid, mode)
			}
			p, err := newProperty(name, in)
			if err != nil {
				return nil, err
			}
			if n >= 0 && p.Len() != n {
				return nil, fmt.Errorf("%w: property %q has %d values, expected %d in mode %v", ErrInvalid, name, p.Len(), n, mode)
			}
			n = p.Len()
			props[name] = p
		}
		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		slices.Sort(names)
		st.props[mode] = props
		st.names[mode] = names
		st.sizes[mode] = max(n, 0)
	}
	return st, nil
}

// Get returns the property with given name in given mode.
// An unknown name returns an error wrapping [ErrUnknownProperty],
// with the closest known name as a suggestion.
func (st *Store) Get(mode Modes, name string) (*Property, error) {
	if p, ok := st.props[mode][name]; ok {
		return p, nil
	}
	if sg := st.suggest(mode, name); sg != "" {
		return nil, fmt.Errorf("%w %q in mode %v (did you mean %q?)", ErrUnknownProperty, name, mode, sg)
	}
	return nil, fmt.Errorf("%w %q in mode %v", ErrUnknownProperty, name, mode)
}

// Has returns whether a property with given name exists in given mode.
func (st *Store) Has(mode Modes, name string) bool {
	_, ok := st.props[mode][name]
	return ok
}

// Names returns the sorted property names of given mode.
func (st *Store) Names(mode Modes) []string {
	return slices.Clone(st.names[mode])
}

// Categorical returns the sorted names of the categorical
// properties of given mode, which can drive the symbol channel.
func (st *Store) Categorical(mode Modes) []string {
	var cats []string
	for _, name := range st.names[mode] {
		if st.props[mode][name].IsCategorical() {
			cats = append(cats, name)
		}
	}
	return cats
}

// Len returns the number of points in given mode.
func (st *Store) Len(mode Modes) int {
	return st.sizes[mode]
}

// suggest returns the known name most similar to name, or ""
// if none is similar enough.
func (st *Store) suggest(mode Modes, name string) string {
	best, bestSim := "", suggestThreshold
	lev := metrics.NewLevenshtein()
	for _, known := range st.names[mode] {
		sim := strutil.Similarity(name, known, lev)
		if sim >= bestSim {
			best, bestSim = known, sim
		}
	}
	return best
}
