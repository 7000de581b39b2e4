// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapview

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/mapview/attribute"
	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/palette"
	"cogentcore.org/mapview/partition"
)

// SaveSettings returns the current settings of the map.
func (m *Map) SaveSettings() mapopts.Settings {
	return m.Options.Save()
}

// ApplySettings applies the given settings. Nothing is applied if
// the settings reference unknown properties, or are otherwise
// invalid for this map, and the error wraps [ErrSettings].
func (m *Map) ApplySettings(s mapopts.Settings) error {
	if err := m.validate(s); err != nil {
		return err
	}
	m.Options.Apply(s, mapopts.Loaded)
	return nil
}

// OpenSettings applies the settings saved in given file.
func (m *Map) OpenSettings(filename string) error {
	s, err := mapopts.Open(filename)
	if err != nil {
		return err
	}
	return m.ApplySettings(s)
}

// SaveSettingsFile saves the current settings in given file.
func (m *Map) SaveSettingsFile(filename string) error {
	s := m.SaveSettings()
	return s.SaveFile(filename)
}

// validate checks that the settings can be applied to the map.
func (m *Map) validate(s mapopts.Settings) error {
	var errs []error
	if s.X.Property == "" || s.Y.Property == "" {
		errs = append(errs, errors.New("the x and y axes must have a property"))
	}
	for _, name := range s.Properties() {
		if _, err := m.lookup(name); err != nil {
			errs = append(errs, err)
		}
	}
	if s.Symbol != "" {
		if p, err := m.lookup(s.Symbol); err == nil && !p.IsCategorical() {
			errs = append(errs, fmt.Errorf("%w: %q", attribute.ErrNotCategorical, s.Symbol))
		}
	}
	if _, err := palette.Get(s.Color.Palette); err != nil {
		errs = append(errs, err)
	}
	if s.Filter.Operator < 0 || s.Filter.Operator >= partition.OperatorsN {
		errs = append(errs, fmt.Errorf("%w %d", partition.ErrUnsupportedOperator, s.Filter.Operator))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrSettings, errors.Join(errs...))
	}
	return nil
}

// SetProperty sets the property driving given channel, after
// checking that it can drive it. An empty name unsets the channel,
// except for the x and y axes which must always be set.
func (m *Map) SetProperty(ch mapopts.Channels, name string) error {
	s := m.Options.Save()
	switch ch {
	case mapopts.X:
		s.X.Property = name
	case mapopts.Y:
		s.Y.Property = name
	case mapopts.Z:
		s.Z.Property = name
	case mapopts.Color:
		s.Color.Property = name
	case mapopts.Size:
		s.Size.Property = name
	case mapopts.Symbol:
		s.Symbol = name
	case mapopts.Opacity:
		s.Opacity = name
	case mapopts.Filter:
		s.Filter.Property = name
	}
	if err := m.validate(s); err != nil {
		return err
	}
	m.Options.SetProperty(ch, name, mapopts.User)
	return nil
}

// SetPalette sets the color palette, which must exist.
func (m *Map) SetPalette(name string) error {
	if _, err := palette.Get(name); err != nil {
		return err
	}
	m.Options.SetPalette(name, mapopts.User)
	return nil
}
