// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/lessons/lessons"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list", "-q")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(lessons.All()))
	assert.True(t, strings.HasPrefix(lines[0], "gold-cube"))
	assert.Contains(t, lines[0], "Gold Cube")
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "snapshot", "-q", "--width", "48", "--height", "32", "--frames", "2", "-o", dir, "helices", "draw-polygon")
	require.NoError(t, err)
	for _, name := range []string{"helices", "draw-polygon"} {
		img, err := imgio.Open(filepath.Join(dir, name+".png"))
		require.NoError(t, err)
		assert.Equal(t, 48, img.Bounds().Dx())
		assert.Equal(t, 32, img.Bounds().Dy())
	}
}

func TestSnapshotConfig(t *testing.T) {
	dir := t.TempDir()
	preset := filepath.Join(dir, "robot.yaml")
	require.NoError(t, os.WriteFile(preset, []byte("bodyY: 45\n"), 0666))
	cfg := filepath.Join(dir, "lessons.toml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
width = 40
height = 30
params = "`+filepath.ToSlash(preset)+`"

[snapshot]
frames = 1
out_dir = "`+filepath.ToSlash(filepath.Join(dir, "out"))+`"
overlay = true
lessons = ["robot-arm"]
`), 0666))
	_, err := execute(t, "snapshot", "-q", "--config", cfg, "--height", "20")
	require.NoError(t, err)
	img, err := imgio.Open(filepath.Join(dir, "out", "robot-arm.png"))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "snapshot", "-q", "-o", t.TempDir(), "no-such-lesson")
	assert.ErrorContains(t, err, "no-such-lesson")

	_, err = execute(t, "snapshot", "-q", "--width=-1", "-o", t.TempDir(), "capsule")
	assert.Error(t, err)

	_, err = execute(t, "list", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = execute(t, "run")
	assert.Error(t, err)
}
