// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Panel overlay style.
var (
	PanelBackground = color.RGBA{0x1A, 0x1A, 0x1A, 0xD0}
	PanelTitle      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	PanelText       = color.RGBA{0xEB, 0xEB, 0xEB, 0xFF}
)

const panelPad = 6

// DrawPanel draws the title and lines of a parameter panel in a box
// at the top right of the image.
func DrawPanel(img draw.Image, title string, lines []string) {
	face := basicfont.Face7x13
	lh := face.Metrics().Height.Ceil()
	dr := &font.Drawer{Dst: img, Face: face}

	w := dr.MeasureString(title).Ceil()
	for _, ln := range lines {
		w = max(w, dr.MeasureString(ln).Ceil())
	}
	h := lh * (len(lines) + 1)
	b := img.Bounds()
	box := image.Rect(b.Max.X-w-2*panelPad, b.Min.Y, b.Max.X, b.Min.Y+h+2*panelPad).Intersect(b)
	draw.Draw(img, box, image.NewUniform(PanelBackground), image.Point{}, draw.Over)

	x := box.Min.X + panelPad
	y := box.Min.Y + panelPad + face.Metrics().Ascent.Ceil()
	dr.Src = image.NewUniform(PanelTitle)
	dr.Dot = fixed.P(x, y)
	dr.DrawString(title)
	dr.Src = image.NewUniform(PanelText)
	for _, ln := range lines {
		y += lh
		dr.Dot = fixed.P(x, y)
		dr.DrawString(ln)
	}
}
