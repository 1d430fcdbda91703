// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and conversion helpers
// for scene materials, lights and the renderer.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/lessons/base/errors"
	"cogentcore.org/lessons/math32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Commonly used colors.
var (
	Black   = color.RGBA{0, 0, 0, 255}
	White   = color.RGBA{255, 255, 255, 255}
	Red     = color.RGBA{255, 0, 0, 255}
	Green   = color.RGBA{0, 255, 0, 255}
	Blue    = color.RGBA{0, 0, 255, 255}
	Gray    = color.RGBA{128, 128, 128, 255}
	Yellow  = color.RGBA{255, 255, 0, 255}
	Cyan    = color.RGBA{0, 255, 255, 255}
	Magenta = color.RGBA{255, 0, 255, 255}
)

// FromUint32 returns the opaque color for the given 0xRRGGBB value.
func FromUint32(hex uint32) color.RGBA {
	return color.RGBA{uint8(hex >> 16), uint8(hex >> 8), uint8(hex), 255}
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromHex parses the given hex color string (#RGB, #RRGGBB or #RRGGBBAA)
// and returns the resulting color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	case 8:
		c, err := colorful.Hex("#" + hex[:6])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
		}
		var a uint8
		if _, err := fmt.Sscanf(hex[6:], "%02x", &a); err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: alpha: %w", err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{r, g, b, a}, nil
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

// FromString returns a color value from the given string,
// which can be a hex value, a 0x-prefixed hex number or a CSS color name.
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	switch {
	case str == "":
		return color.RGBA{}, errors.New("colors.FromString: empty color")
	case str[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(strings.ToLower(str), "0x"):
		return FromHex(str[2:])
	default:
		return FromName(str)
	}
}

// AsHex returns the color as a standard
// 2-hexadecimal-digits-per-component string
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// ToVector3 returns the red, green and blue components of the
// color in the 0-1 range, without alpha premultiplication.
func ToVector3(c color.Color) math32.Vector3 {
	r := color.NRGBAModel.Convert(c).(color.NRGBA)
	return math32.Vec3(float32(r.R)/255, float32(r.G)/255, float32(r.B)/255)
}

// FromVector3 returns the opaque color with the given 0-1 red, green and blue
// components, clamped to range.
func FromVector3(v math32.Vector3) color.RGBA {
	return color.RGBA{channel(v.X), channel(v.Y), channel(v.Z), 255}
}

func channel(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}

// Blend returns a color that is the given percent blend between the first
// and second color -- 10 = 10% of the second and 90% of the first, etc --
// blending is done in RGB space, and alpha is taken from the first color.
func Blend(pct float32, x, y color.Color) color.RGBA {
	xc, _ := colorful.MakeColor(opaque(x))
	yc, _ := colorful.MakeColor(opaque(y))
	pct = math32.Clamp(pct, 0, 100)
	bc := xc.BlendRgb(yc, float64(pct)/100).Clamped()
	r, g, b := bc.RGB255()
	return color.RGBA{r, g, b, AsRGBA(x).A}
}

func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}
