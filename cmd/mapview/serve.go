// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/mapview"
	"cogentcore.org/mapview/mapopts"
	"cogentcore.org/mapview/palette"
	"cogentcore.org/mapview/property"
	"cogentcore.org/mapview/surface/wsurface"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

//go:embed client.html
var clientPage []byte

var (
	serveAddr     string
	servePoints   int
	serveAtoms    int
	serveSeed     uint64
	serveMode     string
	serveSettings string
	serveSave     string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve a map of a generated dataset to a browser",
		Long: `Serve a map of a generated dataset. Open the address in a browser
to display the map; one browser page is served at a time.

With --settings, the map settings are read from the given file,
and read again every time it changes.`,
		Args: cobra.NoArgs,
		RunE: serve,
	}
)

func init() {
	fs := serveCmd.Flags()
	fs.StringVar(&serveAddr, "addr", "localhost:8080", "address to listen on")
	fs.IntVar(&servePoints, "points", 1000, "number of structures of the dataset")
	fs.IntVar(&serveAtoms, "atoms", 4, "number of atoms per structure")
	fs.Uint64Var(&serveSeed, "seed", 1, "random seed of the dataset")
	fs.StringVar(&serveMode, "mode", property.Structure.String(), "display mode: Structure or Atom")
	fs.StringVar(&serveSettings, "settings", "", "settings file to apply and watch (.json, .toml or .yaml)")
	fs.StringVar(&serveSave, "save", "", "settings file to save when the page is closed")
}

func serve(cmd *cobra.Command, args []string) error {
	var mode property.Modes
	if err := mode.SetString(serveMode); err != nil {
		return err
	}
	store, err := demoStore(servePoints, serveAtoms, serveSeed)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conns := make(chan *wsurface.Surface)
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(clientPage)
	})
	mux.Handle("/ws", wsurface.Handler(func(s *wsurface.Surface) {
		select {
		case conns <- s:
		case <-ctx.Done():
			s.Close()
		}
	}))
	srv := &http.Server{Addr: serveAddr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			errors.Log(err)
			stop()
		}
	}()
	slog.Info("mapview: serving", "url", "http://"+serveAddr, "mode", mode, "points", store.Len(mode))

	for {
		select {
		case s := <-conns:
			errors.Log(session(ctx, s, store, mode))
		case <-ctx.Done():
			return srv.Shutdown(context.Background())
		}
	}
}

// defaultOptions returns the initial options of a map of given mode.
func defaultOptions(mode property.Modes) *mapopts.Options {
	opts := mapopts.New()
	switch mode {
	case property.Atom:
		opts.X.Property = "charge"
		opts.Y.Property = "coordination"
		opts.Symbol = "species"
	default:
		opts.X.Property = "energy"
		opts.Y.Property = "volume"
		opts.Color.Property = "density"
		opts.Symbol = "phase"
	}
	return opts
}

// session drives the map of one browser page until it is closed.
// All the map updates happen on this goroutine.
func session(ctx context.Context, s *wsurface.Surface, store *property.Store, mode property.Modes) error {
	m, err := mapview.New(store, mode, defaultOptions(mode), s, s.Host())
	if err != nil {
		s.Close()
		return err
	}
	markers := 0
	m.OnSelect = func(index int) {
		slog.Info("mapview: selected", "index", index)
		if m.ActiveMarker() != nil {
			return
		}
		errors.Log(m.AddMarker(uuid.New(), palette.MarkerColor(markers), index))
		markers++
	}
	m.OnActiveChanged = func(guid uuid.UUID) {
		slog.Info("mapview: active marker", "guid", guid)
	}

	var changes <-chan fsnotify.Event
	var watchErrs <-chan error
	if serveSettings != "" {
		errors.Log(m.OpenSettings(serveSettings))
		w, err := watch(serveSettings)
		if err != nil {
			s.Close()
			return err
		}
		defer w.Close()
		changes, watchErrs = w.Events, w.Errors
	}

	for {
		select {
		case in, ok := <-s.Events():
			if !ok {
				return saveSettings(m)
			}
			s.Dispatch(in)
		case ev := <-changes:
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				slog.Info("mapview: settings changed", "file", ev.Name)
				errors.Log(m.OpenSettings(serveSettings))
			}
		case err := <-watchErrs:
			errors.Log(err)
		case <-ctx.Done():
			s.Close()
			return saveSettings(m)
		}
	}
}

// watch returns a watcher of changes to given file.
func watch(filename string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filename); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// saveSettings saves the settings of the map, if requested.
func saveSettings(m *mapview.Map) error {
	if serveSave == "" {
		return nil
	}
	slog.Info("mapview: saving settings", "file", serveSave)
	return m.SaveSettingsFile(serveSave)
}
