// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/lessons/lessons"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	hl := NewHeadless()
	ls, err := lessons.Lookup("gold-cube")
	require.NoError(t, err)
	d := ls.New(hl, 40, 30)
	require.Len(t, hl.Views(), 1)
	assert.Equal(t, 1, hl.Pending())

	require.NoError(t, hl.Run(context.Background(), 3, 0))
	assert.Equal(t, 1, hl.Pending())

	d.Dispose()
	assert.Empty(t, hl.Views())
	assert.Equal(t, 0, hl.Pending())
	assert.NoError(t, hl.Run(context.Background(), 3, 0))
}

func TestRunCancel(t *testing.T) {
	hl := NewHeadless()
	ls, err := lessons.Lookup("rgb-triangle")
	require.NoError(t, err)
	d := ls.New(hl, 16, 16)
	defer d.Dispose()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, hl.Run(ctx, 10, time.Millisecond), context.Canceled)
	assert.ErrorIs(t, hl.Run(ctx, 10, 0), context.Canceled)
}

func TestSnapshot(t *testing.T) {
	hl := NewHeadless()
	ls, err := lessons.Lookup("robot-arm")
	require.NoError(t, err)
	d := ls.New(hl, 200, 120)
	defer d.Dispose()
	require.NoError(t, hl.Run(context.Background(), 2, 0))

	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.png")
	require.NoError(t, Snapshot(d, plain, false))
	img, err := imgio.Open(plain)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 120), img.Bounds())

	over := filepath.Join(dir, "overlay.png")
	require.NoError(t, Snapshot(d, over, true))
	oimg, err := imgio.Open(over)
	require.NoError(t, err)
	r, g, b, _ := oimg.At(198, 2).RGBA()
	pr, pg, pb, _ := img.At(198, 2).RGBA()
	assert.NotEqual(t, [3]uint32{pr, pg, pb}, [3]uint32{r, g, b})

	assert.Error(t, Snapshot(d, filepath.Join(dir, "missing", "x.png"), false))
	_, err = os.Stat(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err))
}

func TestDrawPanel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 60))
	DrawPanel(img, "Panel", []string{"> a: 1", "  b: 2"})
	assert.NotEqual(t, color.RGBA{}, img.RGBAAt(99, 0))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 59))
}
