// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lvl := slog.LevelInfo
	lg := slog.New(NewHandler(&buf, lvl, termenv.WithProfile(termenv.Ascii)))

	lg.Debug("hidden")
	lg.Info("resized", "width", 640)
	lg.With("lesson", "robot-arm").WithGroup("panel").Warn("changed", "param", "bodyY")

	assert.Equal(t, "INFO resized width=640\nWARN changed lesson=robot-arm panel.param=bodyY\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
