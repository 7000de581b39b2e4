// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"cogentcore.org/mapview"
	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/property"
	"cogentcore.org/mapview/surface/recorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoStore(t *testing.T) {
	st, err := demoStore(50, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, 50, st.Len(property.Structure))
	assert.Equal(t, 150, st.Len(property.Atom))
	assert.Equal(t, []string{"phase"}, st.Categorical(property.Structure))

	again, err := demoStore(50, 3, 7)
	require.NoError(t, err)
	e1, _ := st.Get(property.Structure, "energy")
	e2, _ := again.Get(property.Structure, "energy")
	assert.Equal(t, e1.Values, e2.Values)
}

func TestDefaultOptions(t *testing.T) {
	st, err := demoStore(20, 2, 1)
	require.NoError(t, err)
	for _, mode := range property.ModesValues() {
		_, err := mapview.New(st, mode, defaultOptions(mode), recorder.New(400, 300), nil)
		assert.NoError(t, err, mode.String())
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	s := defaultOptions(property.Structure).Save()
	s.Y.Scale = mapopts.Log
	in := filepath.Join(dir, "in.json")
	require.NoError(t, s.SaveFile(in))

	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, convert(in, out))
	got, err := mapopts.Open(out)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	assert.ErrorIs(t, convert(in, filepath.Join(dir, "out.txt")), mapopts.ErrFormat)
	assert.Error(t, convert(filepath.Join(dir, "missing.json"), out))
}
