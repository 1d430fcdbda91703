// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored for the terminal it writes to.
type Handler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Leveler
	// attrs are preformatted " key=value" pairs from WithAttrs
	attrs  string
	groups []string
}

// NewHandler returns a new [Handler] writing to w at the given level.
// Additional termenv options (for example [termenv.WithProfile])
// control the color profile.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	return &Handler{
		out:   termenv.NewOutput(w, opts...),
		mu:    &sync.Mutex{},
		level: level,
	}
}

// SetDefaultLogger sets the default logger to be a [Handler] on
// [os.Stderr] with the level of [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &UserLevel)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	for _, a := range attrs {
		h.appendAttr(&sb, a)
	}
	nh := *h
	nh.attrs += sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

// appendAttr writes a as " key=value", qualified by the open groups.
func (h *Handler) appendAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", h.out.String(key).Faint(), a.Value.Resolve())
}

// levelString returns the colored label for the given level.
func (h *Handler) levelString(level slog.Level) string {
	st := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(h.out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		st = st.Foreground(h.out.Color("3")).Bold()
	case level >= slog.LevelInfo:
		st = st.Foreground(h.out.Color("4"))
	default:
		st = st.Faint()
	}
	return st.String()
}
