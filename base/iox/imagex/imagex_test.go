// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := range 6 {
		for x := range 8 {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpeg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat(".gif")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	img := testImage(color.RGBA{10, 200, 30, 255})
	fn := filepath.Join(dir, "img.png")
	require.NoError(t, Save(img, fn))
	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), got.Bounds())
	assert.Equal(t, img.RGBAAt(3, 3), AsRGBA(got).RGBAAt(3, 3))

	assert.Error(t, Save(img, filepath.Join(dir, "img.gif")))
	_, err = Open(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{15, 5, 10, 255}, 5))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{16, 10, 10, 255}, 5))
	d := AsRGBA(DiffImage(testImage(color.RGBA{10, 20, 30, 255}), testImage(color.RGBA{30, 20, 10, 255})))
	assert.Equal(t, color.RGBA{20, 0, 20, 255}, d.RGBAAt(0, 0))
}

type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
	img := testImage(color.RGBA{100, 100, 100, 255})
	rec := &recorder{}
	Assert(rec, img, "gray")
	assert.Empty(t, rec.errs)
	assert.FileExists(t, filepath.Join("testdata", "gray.png"))

	Assert(rec, testImage(color.RGBA{105, 95, 100, 255}), "gray")
	assert.Empty(t, rec.errs)

	Assert(rec, testImage(color.RGBA{200, 100, 100, 255}), "gray")
	assert.NotEmpty(t, rec.errs)
	assert.FileExists(t, filepath.Join("testdata", "gray.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "gray.diff.png"))

	rec.errs = nil
	Assert(rec, img, "gray")
	assert.Empty(t, rec.errs)
	_, err = os.Stat(filepath.Join("testdata", "gray.fail.png"))
	assert.True(t, os.IsNotExist(err))
}
