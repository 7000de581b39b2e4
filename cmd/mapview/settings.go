// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/property"
	"github.com/spf13/cobra"
)

var (
	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Manage map settings files",
	}

	convertCmd = &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert a settings file between the json, toml and yaml formats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(args[0], args[1])
		},
	}

	defaultsMode string

	defaultsCmd = &cobra.Command{
		Use:   "defaults <output>",
		Short: "Write the default settings of the served maps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode property.Modes
			if err := mode.SetString(defaultsMode); err != nil {
				return err
			}
			s := defaultOptions(mode).Save()
			return s.SaveFile(args[0])
		},
	}
)

func init() {
	defaultsCmd.Flags().StringVar(&defaultsMode, "mode", property.Structure.String(), "display mode: Structure or Atom")
	settingsCmd.AddCommand(convertCmd, defaultsCmd)
}

// convert reads the settings in the input file and writes
// them to the output file, each in the format of its extension.
func convert(in, out string) error {
	s, err := mapopts.Open(in)
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	if err := s.SaveFile(out); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
