// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a software renderer that draws an [xyz.Scene]
// through an [xyz.Camera] into an [image.RGBA] canvas, with a depth
// buffer, per-pixel lighting, line segments, transparency, fog and
// supersampled antialiasing.
package raster

import (
	"image"
	"image/color"
	"log/slog"
	"sort"
	"sync"

	"cogentcore.org/lessons/base/errors"
	"cogentcore.org/lessons/colors"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/xyz"
	"golang.org/x/image/draw"
)

// ErrDisposed is returned when rendering with a disposed [Renderer].
var ErrDisposed = errors.New("raster: renderer has been disposed")

// Options are the renderer settings.
type Options struct {

	// Antialias turns on supersampling, rendering at Samples times
	// the canvas size and scaling down.
	Antialias bool

	// Samples is the supersampling factor in each dimension when
	// Antialias is on; 2 if unset.
	Samples int

	// ClearColor is the color the canvas is cleared to before drawing,
	// unless the scene has its own background.
	ClearColor color.RGBA
}

// Stats counts what was drawn in the last [Renderer.Render].
type Stats struct {

	// Solids is the number of solids submitted.
	Solids int

	// Triangles is the number of triangles rasterized
	// (after clipping and culling).
	Triangles int

	// Lines is the number of line segments drawn.
	Lines int
}

// Renderer draws scenes into its canvas. It is the software
// equivalent of a WebGL renderer bound to a canvas element.
type Renderer struct {

	// Stats are the counts from the last Render.
	Stats Stats

	opts Options

	// size of the output canvas
	size image.Point

	// samples per dimension
	ss int

	// sw, sh are the supersampled buffer size
	sw, sh int

	// supersampled color and depth buffers
	color []math32.Vector3
	depth []float32

	// canvas is the output image at size
	canvas *image.RGBA

	// work is the supersampled image, nil when ss == 1
	work *image.RGBA

	disposed bool
	mu       sync.Mutex
}

// New returns a new renderer with a canvas of the given pixel size.
func New(width, height int, opts Options) *Renderer {
	rd := &Renderer{opts: opts}
	rd.ss = 1
	if opts.Antialias {
		rd.ss = opts.Samples
		if rd.ss < 2 {
			rd.ss = 2
		}
	}
	if rd.opts.ClearColor == (color.RGBA{}) {
		rd.opts.ClearColor = colors.Black
	}
	rd.SetSize(width, height)
	return rd
}

// SetSize sets the canvas size in pixels, reallocating the buffers.
// Sizes below 1 are raised to 1.
func (rd *Renderer) SetSize(width, height int) {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	width = max(width, 1)
	height = max(height, 1)
	rd.size = image.Pt(width, height)
	rd.sw = width * rd.ss
	rd.sh = height * rd.ss
	n := rd.sw * rd.sh
	rd.color = make([]math32.Vector3, n)
	rd.depth = make([]float32, n)
	rd.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
	if rd.ss > 1 {
		rd.work = image.NewRGBA(image.Rect(0, 0, rd.sw, rd.sh))
	} else {
		rd.work = nil
	}
}

// Size returns the canvas size in pixels.
func (rd *Renderer) Size() image.Point {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	return rd.size
}

// SetClearColor sets the color the canvas is cleared to.
func (rd *Renderer) SetClearColor(c color.RGBA) {
	rd.mu.Lock()
	rd.opts.ClearColor = c
	rd.mu.Unlock()
}

// ClearColor returns the current clear color.
func (rd *Renderer) ClearColor() color.RGBA {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	return rd.opts.ClearColor
}

// Image returns the canvas holding the last rendered frame.
// It is reused across renders and replaced by [Renderer.SetSize].
func (rd *Renderer) Image() *image.RGBA {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	return rd.canvas
}

// Dispose releases the buffers. Rendering afterward returns [ErrDisposed].
func (rd *Renderer) Dispose() {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	rd.color = nil
	rd.depth = nil
	rd.work = nil
	rd.disposed = true
}

// Render draws the scene as seen by the camera into the canvas.
func (rd *Renderer) Render(sc *xyz.Scene, cam *xyz.Camera) error {
	rd.mu.Lock()
	defer rd.mu.Unlock()
	if rd.disposed {
		return ErrDisposed
	}
	rd.Stats = Stats{}
	bg := rd.opts.ClearColor
	if sc.Background.A > 0 {
		bg = sc.Background
	}
	rd.clearBuffers(colors.ToVector3(bg))

	sc.UpdateWorldMatrices()
	ps := newPass(rd, sc, cam)

	var opaque, trans []*xyz.Solid
	for _, sld := range sc.Solids() {
		if sld.Mesh.AsMeshBase().IsDisposed() || sld.Material.IsDisposed() {
			continue
		}
		if sld.IsTransparent() {
			trans = append(trans, sld)
		} else {
			opaque = append(opaque, sld)
		}
	}
	// back to front by view depth of the solid origin
	sort.SliceStable(trans, func(i, j int) bool {
		return ps.viewDepth(trans[i].Pose.WorldPos()) > ps.viewDepth(trans[j].Pose.WorldPos())
	})
	for _, sld := range opaque {
		ps.drawSolid(sld)
	}
	for _, sld := range trans {
		ps.drawSolid(sld)
	}
	rd.resolve()
	return nil
}

func (rd *Renderer) clearBuffers(c math32.Vector3) {
	for i := range rd.color {
		rd.color[i] = c
		rd.depth[i] = math32.Infinity
	}
}

// resolve converts the float color buffer into the canvas,
// scaling down the supersampled image if needed.
func (rd *Renderer) resolve() {
	dst := rd.canvas
	if rd.work != nil {
		dst = rd.work
	}
	for i, c := range rd.color {
		px := colors.FromVector3(c)
		o := i * 4
		dst.Pix[o] = px.R
		dst.Pix[o+1] = px.G
		dst.Pix[o+2] = px.B
		dst.Pix[o+3] = 255
	}
	if rd.work != nil {
		draw.BiLinear.Scale(rd.canvas, rd.canvas.Bounds(), rd.work, rd.work.Bounds(), draw.Src, nil)
	}
	slog.Debug("raster: rendered", "size", rd.size, "solids", rd.Stats.Solids, "triangles", rd.Stats.Triangles, "lines", rd.Stats.Lines)
}
