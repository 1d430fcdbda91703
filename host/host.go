// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides the headless host that runs lessons without a
// window, stepping their frames on a ticker and saving snapshots.
package host

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cogentcore.org/lessons/base/iox/imagex"
	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/lessons"
)

// Headless is a [lessons.Mount] with no window. Frames are stepped
// by [Headless.Run].
type Headless struct {
	*frame.Queue

	views []lessons.View
	mu    sync.Mutex
}

// NewHeadless returns a new headless host.
func NewHeadless() *Headless {
	return &Headless{Queue: frame.NewQueue()}
}

func (hl *Headless) Mount(v lessons.View) {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	hl.views = append(hl.views, v)
}

func (hl *Headless) Unmount(v lessons.View) {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	hl.views = slices.DeleteFunc(hl.views, func(o lessons.View) bool { return o == v })
}

// Views returns the mounted views.
func (hl *Headless) Views() []lessons.View {
	hl.mu.Lock()
	defer hl.mu.Unlock()
	return slices.Clone(hl.views)
}

// Run steps the given number of frames, one per interval, or as fast as
// possible if interval is 0. It stops early with the context error if
// the context is done, and returns early if no callbacks remain.
func (hl *Headless) Run(ctx context.Context, frames int, interval time.Duration) error {
	var tick <-chan time.Time
	if interval > 0 {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		tick = tk.C
	}
	for i := range frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if hl.Step(time.Now()) == 0 {
			slog.Debug("host: no frame callbacks left", "frame", i)
			return nil
		}
	}
	return nil
}

// Snapshot saves the view's canvas to the given path, as PNG, JPEG
// or BMP by extension,
// with the parameter panel drawn over it if overlay is set.
func Snapshot(v lessons.View, path string, overlay bool) error {
	img := imagex.CloneAsRGBA(v.Image())
	if pn := v.Panel(); overlay && pn != nil {
		DrawPanel(img, pn.Name, pn.Lines())
	}
	if err := imagex.Save(img, path); err != nil {
		return fmt.Errorf("host: snapshot %s: %w", path, err)
	}
	slog.Info("host: saved snapshot", "path", path)
	return nil
}
