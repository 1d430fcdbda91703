// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"cogentcore.org/lessons/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUint32(t *testing.T) {
	assert.Equal(t, color.RGBA{0xFF, 0xDF, 0x00, 255}, FromUint32(0xFFDF00))
	assert.Equal(t, color.RGBA{0xF6, 0x83, 0x1E, 255}, FromUint32(0xF6831E))
	assert.Equal(t, Black, FromUint32(0))
}

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#fff", White},
		{"#80FC66", FromUint32(0x80FC66)},
		{"0xA85F35", FromUint32(0xA85F35)},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}},
		{"red", Red},
		{"Gray", Gray},
	}
	for _, tt := range tests {
		c, err := FromString(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	for _, bad := range []string{"", "#12", "notacolor", "#GGGGGG"} {
		_, err := FromString(bad)
		assert.Error(t, err, bad)
	}
}

func TestVector3(t *testing.T) {
	assert.Equal(t, math32.Vec3(1, 0, 0), ToVector3(Red))
	assert.Equal(t, FromUint32(0x1F56A9), FromVector3(ToVector3(FromUint32(0x1F56A9))))
	assert.Equal(t, White, FromVector3(math32.Vec3(2, 1.5, 1)))
	assert.Equal(t, "#FFDF00FF", AsHex(FromUint32(0xFFDF00)))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, Black, Blend(0, Black, White))
	assert.Equal(t, White, Blend(100, Black, White))
	assert.Equal(t, Red, Blend(-10, Red, Blue))
}
