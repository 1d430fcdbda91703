// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image file helpers and golden image
// assertions for tests.
package imagex

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Formats are the supported image encoding / decoding formats.
type Formats int32

const (
	// None is no format.
	None Formats = iota

	// PNG is the lossless PNG format.
	PNG

	// JPEG is the lossy JPEG format.
	JPEG

	// BMP is the uncompressed BMP format.
	BMP
)

// JPEGQuality is the quality used when saving JPEG files.
var JPEGQuality = 90

// ExtToFormat returns the format for the given file extension,
// with or without the leading dot.
func ExtToFormat(ext string) (Formats, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	}
	return None, fmt.Errorf("imagex: unsupported image extension %q", ext)
}

// Open opens and decodes the image file.
func Open(filename string) (image.Image, error) {
	img, err := imgio.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("imagex: %w", err)
	}
	return img, nil
}

// Save encodes the image to the file, in the format
// given by its extension.
func Save(img image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	var enc imgio.Encoder
	switch f {
	case PNG:
		enc = imgio.PNGEncoder()
	case JPEG:
		enc = imgio.JPEGEncoder(JPEGQuality)
	case BMP:
		enc = imgio.BMPEncoder()
	}
	if err := imgio.Save(filename, img, enc); err != nil {
		return fmt.Errorf("imagex: %w", err)
	}
	return nil
}
