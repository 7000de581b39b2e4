// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand/v2"

	"cogentcore.org/mapview/property"
)

// phases are the labels of the demo categorical property.
var phases = []string{"solid", "liquid", "gas", "plasma"}

// demoStore returns a store of n random structures, each with
// atoms environments, with correlated properties.
func demoStore(n, atoms int, seed uint64) (*property.Store, error) {
	rnd := rand.New(rand.NewPCG(seed, seed))
	energy := make([]float64, n)
	volume := make([]float64, n)
	density := make([]float64, n)
	phase := make([]string, n)
	for i := range n {
		volume[i] = 10 + 90*rnd.Float64()
		density[i] = math.Exp(rnd.NormFloat64())
		energy[i] = -0.05*volume[i] + density[i] + 0.5*rnd.NormFloat64()
		phase[i] = phases[rnd.IntN(len(phases))]
	}

	na := n * atoms
	charge := make([]float64, na)
	coordination := make([]float64, na)
	species := make([]string, na)
	for i := range na {
		charge[i] = rnd.NormFloat64()
		coordination[i] = float64(2 + rnd.IntN(7))
		species[i] = []string{"H", "C", "N", "O"}[rnd.IntN(4)]
	}

	return property.NewStore(map[property.Modes]map[string]property.Input{
		property.Structure: {
			"energy":  {Values: energy},
			"volume":  {Values: volume},
			"density": {Values: density},
			"phase":   property.FromStrings(phase),
		},
		property.Atom: {
			"charge":       {Values: charge},
			"coordination": {Values: coordination},
			"species":      property.FromStrings(species),
		},
	})
}
