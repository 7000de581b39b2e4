// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapopts

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/mapview/partition"
	"github.com/jinzhu/copier"
)

// ErrFormat is returned for settings files with an unknown extension.
var ErrFormat = errors.New("mapopts: unknown settings file format")

// AxisSettings are the saved settings of one position axis.
type AxisSettings struct {
	Property string  `json:"property"`
	Scale    Scales  `json:"scale"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// ColorSettings are the saved settings of the color channel.
type ColorSettings struct {
	Property string  `json:"property"`
	Palette  string  `json:"palette"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// SizeSettings are the saved settings of the size channel.
type SizeSettings struct {
	Property string    `json:"property"`
	Mode     SizeModes `json:"mode"`
	Factor   float64   `json:"factor"`
	Reverse  bool      `json:"reverse"`
}

// FilterSettings are the saved settings of the filter.
type FilterSettings struct {
	Enabled  bool                `json:"enabled"`
	Property string              `json:"property"`
	Operator partition.Operators `json:"operator"`
	Cutoff   float64             `json:"cutoff"`
}

// Settings are the serializable settings of a map,
// see [Options.Save] and [Options.Apply].
type Settings struct {
	X       AxisSettings   `json:"x"`
	Y       AxisSettings   `json:"y"`
	Z       AxisSettings   `json:"z"`
	Color   ColorSettings  `json:"color"`
	Size    SizeSettings   `json:"size"`
	Symbol  string         `json:"symbol"`
	Opacity string         `json:"opacity"`
	Filter  FilterSettings `json:"filter"`
}

// Properties returns the non-empty property names referenced by
// the settings, for validation against a property store.
func (s *Settings) Properties() []string {
	var names []string
	for _, nm := range []string{s.X.Property, s.Y.Property, s.Z.Property, s.Color.Property,
		s.Size.Property, s.Symbol, s.Opacity, s.Filter.Property} {
		if nm != "" {
			names = append(names, nm)
		}
	}
	return names
}

func (as *AxisSettings) from(ao *AxisOptions) {
	errors.Log(copier.Copy(as, ao))
	as.Min, as.Max = ao.Range.Min, ao.Range.Max
}

// Save returns the current settings.
func (o *Options) Save() Settings {
	s := Settings{Symbol: o.Symbol, Opacity: o.Opacity}
	s.X.from(&o.X)
	s.Y.from(&o.Y)
	s.Z.from(&o.Z)
	errors.Log(copier.Copy(&s.Color, &o.Color))
	s.Color.Min, s.Color.Max = o.Color.Range.Min, o.Color.Range.Max
	errors.Log(copier.Copy(&s.Size, &o.Size))
	errors.Log(copier.Copy(&s.Filter, &o.Filter))
	return s
}

// Apply sets all the options from given settings, notifying
// listeners of every changed field with given origin.
// Properties are applied first, so that ranges applied
// afterwards are not reset by property changes.
func (o *Options) Apply(s Settings, origin Origins) {
	axes := []*AxisSettings{&s.X, &s.Y, &s.Z}
	for i, as := range axes {
		o.SetProperty(X+Channels(i), as.Property, origin)
	}
	o.SetProperty(Color, s.Color.Property, origin)
	o.SetProperty(Size, s.Size.Property, origin)
	o.SetProperty(Symbol, s.Symbol, origin)
	o.SetProperty(Opacity, s.Opacity, origin)
	o.SetProperty(Filter, s.Filter.Property, origin)

	for i, as := range axes {
		ch := X + Channels(i)
		o.SetScale(ch, as.Scale, origin)
		o.SetRange(ch, minmax.F64{Min: as.Min, Max: as.Max}, origin)
	}
	o.SetPalette(s.Color.Palette, origin)
	o.SetRange(Color, minmax.F64{Min: s.Color.Min, Max: s.Color.Max}, origin)
	o.SetSizeMode(s.Size.Mode, origin)
	o.SetSizeFactor(s.Size.Factor, origin)
	o.SetSizeReverse(s.Size.Reverse, origin)
	o.SetFilterOperator(s.Filter.Operator, origin)
	o.SetFilterCutoff(s.Filter.Cutoff, origin)
	o.SetFilterEnabled(s.Filter.Enabled, origin)
}

// Open reads settings from given file, in JSON, TOML or YAML
// format according to the file extension.
func Open(filename string) (Settings, error) {
	var s Settings
	var err error
	switch format(filename) {
	case ".json":
		err = jsonx.Open(&s, filename)
	case ".toml":
		err = tomlx.Open(&s, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&s, filename)
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, filename)
	}
	return s, err
}

// SaveFile writes the settings to given file, in JSON, TOML or YAML
// format according to the file extension.
func (s *Settings) SaveFile(filename string) error {
	switch format(filename) {
	case ".json":
		return jsonx.Save(s, filename)
	case ".toml":
		return tomlx.Save(s, filename)
	case ".yaml", ".yml":
		return yamlx.Save(s, filename)
	}
	return fmt.Errorf("%w: %q", ErrFormat, filename)
}

func format(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
