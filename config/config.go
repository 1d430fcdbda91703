// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the lessons app.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/lessons/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the main config struct
// that contains all of the configuration
// options for the lessons app.
type Config struct {

	// [def: 800] the canvas width in pixels
	Width int `toml:"width" yaml:"width"`

	// [def: 600] the canvas height in pixels
	Height int `toml:"height" yaml:"height"`

	// [def: 60] frames per second of the window and the headless loop
	FPS int `toml:"fps" yaml:"fps"`

	// the parameter preset file (TOML or YAML) applied to the lesson panel
	// and reloaded when it changes
	Params string `toml:"params" yaml:"params"`

	// [view: add-fields] the configuration options for the snapshot command
	Snapshot Snapshot `toml:"snapshot" yaml:"snapshot"`

	// [view: add-fields] the logging options
	Log Log `toml:"log" yaml:"log"`
}

type Snapshot struct {

	// [def: 30] the number of frames to render before saving
	Frames int `toml:"frames" yaml:"frames"`

	// [def: snapshots] the directory the PNG files are written to
	OutDir string `toml:"out_dir" yaml:"out_dir"`

	// draw the parameter panel over the image
	Overlay bool `toml:"overlay" yaml:"overlay"`

	// [def: 4] the maximum number of lessons rendered at once
	Jobs int `toml:"jobs" yaml:"jobs"`

	// the lessons to render when none are given on the command line;
	// all of them if empty
	Lessons []string `toml:"lessons" yaml:"lessons"`
}

type Log struct {

	// show informational messages
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// show debug messages
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose"`

	// only show errors
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.Width = 800
	c.Height = 600
	c.FPS = 60
	c.Snapshot.Frames = 30
	c.Snapshot.OutDir = "snapshots"
	c.Snapshot.Jobs = 4
}

// New returns a new config with the default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Load returns the defaults overridden by the given TOML or YAML file,
// chosen by its extension.
func Load(path string) (*Config, error) {
	c := New()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Decode(b, filepath.Ext(path)); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Decode decodes data in the format of the given file extension
// (.toml, .yaml or .yml) into the config, then validates it.
func (c *Config) Decode(data []byte, ext string) error {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	return c.Validate()
}

// Validate returns an error for every out of range value.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid fps %d", c.FPS))
	}
	if c.Snapshot.Frames < 1 {
		errs = append(errs, fmt.Errorf("invalid snapshot frames %d", c.Snapshot.Frames))
	}
	if c.Snapshot.Jobs < 1 {
		errs = append(errs, fmt.Errorf("invalid snapshot jobs %d", c.Snapshot.Jobs))
	}
	return errors.Join(errs...)
}
