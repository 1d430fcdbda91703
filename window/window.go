// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window provides the interactive host, an ebiten window
// (or browser canvas under wasm) showing one lesson.
package window

import (
	"context"
	"image"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cogentcore.org/lessons/frame"
	"cogentcore.org/lessons/host"
	"cogentcore.org/lessons/lessons"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window is a [lessons.Mount] that shows the most recently mounted
// view in an ebiten window, stepping frames on each game update.
type Window struct {
	*frame.Queue

	// Overlay draws the parameter panel over the canvas.
	Overlay bool

	views   []lessons.View
	input   host.Input
	canvas  *ebiten.Image
	scratch *image.RGBA
	width   int
	height  int
	mu      sync.Mutex
}

// New returns a new window host.
func New() *Window {
	return &Window{Queue: frame.NewQueue(), Overlay: true}
}

// Options are the settings of [Run].
type Options struct {

	// Width and Height are the initial window size in pixels.
	Width, Height int

	// FPS is the number of frames per second.
	FPS int

	// Params is an optional preset file applied to the lesson panel
	// and reloaded when it changes.
	Params string
}

// Run opens a window for the lesson and blocks until it is closed.
func Run(ls lessons.Lesson, opts Options) error {
	w := New()
	d := ls.New(w, opts.Width, opts.Height)
	defer d.Dispose()
	if opts.Params != "" && d.Params != nil {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := d.Params.Watch(ctx, opts.Params); err != nil {
			return err
		}
	}
	ebiten.SetWindowTitle(d.Title())
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.FPS)
	slog.Info("window: running", "lesson", ls.Name, "width", opts.Width, "height", opts.Height)
	return ebiten.RunGame(w)
}

func (w *Window) Mount(v lessons.View) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.views = append(w.views, v)
}

func (w *Window) Unmount(v lessons.View) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.views = slices.DeleteFunc(w.views, func(o lessons.View) bool { return o == v })
}

// view returns the view being shown, or nil.
func (w *Window) view() lessons.View {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.views) == 0 {
		return nil
	}
	return w.views[len(w.views)-1]
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v := w.view()
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	p := host.Pointer{
		X:     x,
		Y:     y,
		Left:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Wheel: float32(wy),
	}
	k := host.Keys{
		Up:    inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down:  inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Left:  inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Right: inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		w.Overlay = !w.Overlay
	}
	w.input.Apply(v, p, k, w.height)
	w.Step(time.Now())
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	v := w.view()
	if v == nil {
		return
	}
	src := v.Image()
	b := src.Bounds()
	if w.canvas == nil || w.scratch.Bounds() != b {
		if w.canvas != nil {
			w.canvas.Deallocate()
		}
		w.canvas = ebiten.NewImage(b.Dx(), b.Dy())
		w.scratch = image.NewRGBA(b)
	}
	copy(w.scratch.Pix, src.Pix)
	if pn := v.Panel(); w.Overlay && pn != nil {
		host.DrawPanel(w.scratch, pn.Name, pn.Lines())
	}
	w.canvas.WritePixels(w.scratch.Pix)
	screen.DrawImage(w.canvas, nil)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		if v := w.view(); v != nil {
			v.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
