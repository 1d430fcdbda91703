// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cogentcore.org/lessons/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Apply sets the parameters named in the map, which may hold numbers
// or bools. Unknown names and bad values are all reported in the
// returned error, while the valid entries are still applied.
func (pn *Panel) Apply(values map[string]any) error {
	names := make([]string, 0, len(values))
	for nm := range values {
		names = append(names, nm)
	}
	sort.Strings(names)
	var errs []error
	for _, nm := range names {
		var err error
		switch v := values[nm].(type) {
		case bool:
			err = pn.SetBool(nm, v)
		case int:
			err = pn.Set(nm, float32(v))
		case int64:
			err = pn.Set(nm, float32(v))
		case float64:
			err = pn.Set(nm, float32(v))
		default:
			err = fmt.Errorf("params: %s: invalid value %v for %q", pn.Name, v, nm)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Decode decodes the preset data in the format named by ext,
// which is ".toml", ".yaml" or ".yml".
func Decode(data []byte, ext string) (map[string]any, error) {
	values := map[string]any{}
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &values)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	default:
		return nil, fmt.Errorf("params: unsupported preset format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

// LoadFile applies the preset file at the given path, in TOML or YAML
// format based on its extension.
func (pn *Panel) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("params: load %s: %w", path, err)
	}
	values, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("params: load %s: %w", path, err)
	}
	if err := pn.Apply(values); err != nil {
		return fmt.Errorf("params: load %s: %w", path, err)
	}
	slog.Debug("params: loaded preset", "panel", pn.Name, "path", path)
	return nil
}

// Watch applies the preset file now and again every time it is written,
// until the context is done. The directory is watched so that editors
// that replace the file are followed. Errors while reloading are logged.
func (pn *Panel) Watch(ctx context.Context, path string) error {
	if err := pn.LoadFile(path); err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("params: watch %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("params: watch %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("params: watch %s: %w", path, err)
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					errors.Log(pn.LoadFile(path))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return nil
}
