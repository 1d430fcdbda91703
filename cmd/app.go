// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions
// for the lessons app.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/lessons/base/logx"
	"cogentcore.org/lessons/config"
	"cogentcore.org/lessons/host"
	"cogentcore.org/lessons/lessons"
	"cogentcore.org/lessons/window"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// App is the main app type that handles
// the logic for the lessons app.
type App struct {
	*config.Config

	// configFile is the path given with --config.
	configFile string

	// flags holds the command line values that override the config file.
	flags config.Config
}

// NewRoot returns the root command with all of the subcommands.
func NewRoot() *cobra.Command {
	a := &App{Config: config.New()}
	root := &cobra.Command{
		Use:           "lessons",
		Short:         "Interactive 3D graphics lessons",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (TOML or YAML)")
	pf.BoolVarP(&a.flags.Log.Verbose, "verbose", "v", false, "show informational messages")
	pf.BoolVar(&a.flags.Log.VeryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&a.flags.Log.Quiet, "quiet", "q", false, "only show errors")
	pf.IntVar(&a.flags.Width, "width", 0, "canvas width in pixels")
	pf.IntVar(&a.flags.Height, "height", 0, "canvas height in pixels")
	pf.StringVar(&a.flags.Params, "params", "", "parameter preset file (TOML or YAML)")

	root.AddCommand(a.listCmd(), a.runCmd(), a.snapshotCmd())
	return root
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	return NewRoot().ExecuteContext(ctx)
}

// load reads the config file, applies the changed flags over it
// and sets up logging.
func (a *App) load(cmd *cobra.Command) error {
	if a.configFile != "" {
		c, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		a.Config = c
	}
	fl := cmd.Flags()
	if fl.Changed("width") {
		a.Width = a.flags.Width
	}
	if fl.Changed("height") {
		a.Height = a.flags.Height
	}
	if fl.Changed("params") {
		a.Params = a.flags.Params
	}
	if fl.Changed("fps") {
		a.FPS = a.flags.FPS
	}
	if fl.Changed("frames") {
		a.Snapshot.Frames = a.flags.Snapshot.Frames
	}
	if fl.Changed("out") {
		a.Snapshot.OutDir = a.flags.Snapshot.OutDir
	}
	if fl.Changed("overlay") {
		a.Snapshot.Overlay = a.flags.Snapshot.Overlay
	}
	if fl.Changed("jobs") {
		a.Snapshot.Jobs = a.flags.Snapshot.Jobs
	}
	a.Log.Verbose = a.Log.Verbose || a.flags.Log.Verbose
	a.Log.VeryVerbose = a.Log.VeryVerbose || a.flags.Log.VeryVerbose
	a.Log.Quiet = a.Log.Quiet || a.flags.Log.Quiet
	logx.UserLevel = logx.LevelFromFlags(a.Log.VeryVerbose, a.Log.Verbose, a.Log.Quiet)
	logx.SetDefaultLogger()
	return a.Validate()
}

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the lesson names and titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, ls := range lessons.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", ls.Name, ls.Title)
			}
			return nil
		},
	}
}

func (a *App) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <lesson>",
		Short: "Open a lesson in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := lessons.Lookup(args[0])
			if err != nil {
				return err
			}
			return window.Run(ls, window.Options{Width: a.Width, Height: a.Height, FPS: a.FPS, Params: a.Params})
		},
	}
	cmd.Flags().IntVar(&a.flags.FPS, "fps", 0, "frames per second")
	return cmd
}

func (a *App) snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [lessons...]",
		Short: "Render lessons headless and write PNG files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.snapshot(cmd.Context(), args)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&a.flags.Snapshot.Frames, "frames", 0, "number of frames to render before saving")
	fl.StringVarP(&a.flags.Snapshot.OutDir, "out", "o", "", "output directory")
	fl.BoolVar(&a.flags.Snapshot.Overlay, "overlay", false, "draw the parameter panel over the image")
	fl.IntVarP(&a.flags.Snapshot.Jobs, "jobs", "j", 0, "maximum number of lessons rendered at once")
	return cmd
}

// snapshot renders the named lessons in parallel, or all of them
// if no names are given in the arguments or the config.
func (a *App) snapshot(ctx context.Context, names []string) error {
	if len(names) == 0 {
		names = a.Snapshot.Lessons
	}
	if len(names) == 0 {
		names = lessons.Names()
	}
	all := make([]lessons.Lesson, len(names))
	for i, name := range names {
		ls, err := lessons.Lookup(name)
		if err != nil {
			return err
		}
		all[i] = ls
	}
	if err := os.MkdirAll(a.Snapshot.OutDir, 0o755); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.Snapshot.Jobs)
	for _, ls := range all {
		g.Go(func() error {
			return a.snapshotLesson(ctx, ls)
		})
	}
	return g.Wait()
}

// snapshotLesson renders one lesson headless and saves its last frame.
func (a *App) snapshotLesson(ctx context.Context, ls lessons.Lesson) error {
	hl := host.NewHeadless()
	d := ls.New(hl, a.Width, a.Height)
	defer d.Dispose()
	if a.Params != "" && d.Params != nil {
		if err := d.Params.LoadFile(a.Params); err != nil {
			return err
		}
	}
	if err := hl.Run(ctx, a.Snapshot.Frames, 0); err != nil {
		return fmt.Errorf("snapshot %s: %w", ls.Name, err)
	}
	return host.Snapshot(d, filepath.Join(a.Snapshot.OutDir, ls.Name+".png"), a.Snapshot.Overlay)
}
