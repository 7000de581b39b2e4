// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package partition

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valueOf(vals []float64) func(i int) float64 {
	return func(i int) float64 { return vals[i] }
}

func TestComputeEnergy(t *testing.T) {
	energy := []float64{1, 5, 9, 2}
	pt, err := Compute(len(energy), valueOf(energy), Filter{Enabled: true, Operator: Greater, Cutoff: 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, pt.Main)
	assert.Equal(t, []int{0, 3}, pt.Background)
	assert.True(t, pt.IsFiltered())
}

func TestComputeDisabled(t *testing.T) {
	vals := []float64{3, 1, 2}
	pt, err := Compute(len(vals), valueOf(vals), Filter{Operator: Less, Cutoff: 100})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, pt.Main)
	assert.Empty(t, pt.Background)
	assert.False(t, pt.IsFiltered())

	empty := All(0)
	assert.Empty(t, empty.Main)
	assert.Equal(t, 0, empty.Len())
}

func TestComputeUnsupported(t *testing.T) {
	vals := []float64{3, 1, 2}
	_, err := Compute(len(vals), valueOf(vals), Filter{Enabled: true, Operator: Operators(7)})
	assert.ErrorIs(t, err, ErrUnsupportedOperator)
}

func TestComputeComplement(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 2, 17, 200} {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = float64(rnd.IntN(5))
		}
		if n > 3 {
			vals[3] = math.NaN()
		}
		for _, op := range OperatorsValues() {
			for _, cut := range []float64{-1, 0, 2, 4, 10} {
				pt, err := Compute(n, valueOf(vals), Filter{Enabled: true, Operator: op, Cutoff: cut})
				require.NoError(t, err)
				assert.Equal(t, n, pt.Len())
				all := append(slices.Clone(pt.Main), pt.Background...)
				slices.Sort(all)
				for i := range all {
					assert.Equal(t, i, all[i], "op %v cutoff %v", op, cut)
				}
				assert.True(t, slices.IsSorted(pt.Main))
				assert.True(t, slices.IsSorted(pt.Background))
			}
		}
	}
}

func TestOperatorSymbol(t *testing.T) {
	assert.Equal(t, ">", Greater.Symbol())
	assert.Equal(t, "<", Less.Symbol())
	assert.Equal(t, "=", Equal.Symbol())
	assert.Equal(t, "Less", Less.String())
}
