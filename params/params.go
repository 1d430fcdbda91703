// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params provides panels of named numeric sliders and boolean
// toggles that lessons read each frame, with presets loaded from
// TOML or YAML files.
package params

import (
	"fmt"
	"strconv"
	"sync"

	"cogentcore.org/lessons/base/keylist"
	"cogentcore.org/lessons/math32"
	"cogentcore.org/lessons/math32/minmax"
)

// Kinds are the kinds of parameters.
type Kinds int32

const (
	// Number is a numeric slider with a range and step.
	Number Kinds = iota

	// Toggle is a boolean checkbox, stored as 0 or 1.
	Toggle
)

func (k Kinds) String() string {
	if k == Toggle {
		return "Toggle"
	}
	return "Number"
}

// Param is one named parameter.
type Param struct {

	// Name is the key used in code and preset files.
	Name string

	// Label is the text shown in the panel.
	Label string

	Kind Kinds

	// Range is the min / max of a Number.
	Range minmax.F32

	// Step is the slider increment of a Number; 0 means continuous.
	Step float32

	// Value is the current value; 0 or 1 for a Toggle.
	Value float32
}

// Bool returns the value as a bool.
func (pr *Param) Bool() bool {
	return pr.Value != 0
}

// ValueString returns the value formatted for display.
func (pr *Param) ValueString() string {
	if pr.Kind == Toggle {
		return strconv.FormatBool(pr.Bool())
	}
	return strconv.FormatFloat(float64(pr.Value), 'g', 6, 32)
}

// set sets the value, clamped to the range and snapped to the step.
func (pr *Param) set(v float32) {
	if pr.Kind == Toggle {
		if v != 0 {
			pr.Value = 1
		} else {
			pr.Value = 0
		}
		return
	}
	if math32.IsNaN(v) {
		return
	}
	if pr.Step > 0 {
		v = pr.Range.Min + math32.Round((v-pr.Range.Min)/pr.Step)*pr.Step
	}
	pr.Value = pr.Range.ClipValue(v)
}

// Panel is an ordered set of parameters. It is safe for concurrent use.
type Panel struct {

	// Name is the title of the panel.
	Name string

	params   keylist.List[string, *Param]
	selected int

	// snapshot is the values at the last call to Changed, nil before the first
	snapshot []float32

	mu sync.RWMutex
}

// NewPanel returns a new empty panel with the given name.
func NewPanel(name string) *Panel {
	return &Panel{Name: name}
}

func (pn *Panel) add(pr *Param) {
	pn.mu.Lock()
	defer pn.mu.Unlock()
	if old, ok := pn.params.AtTry(pr.Name); ok {
		*old = *pr
		return
	}
	pn.params.Set(pr.Name, pr)
}

// AddNumber adds a numeric slider with the given range and step
// (0 for continuous). The initial value is clamped and snapped.
func (pn *Panel) AddNumber(name, label string, value, mn, mx, step float32) *Panel {
	pr := &Param{Name: name, Label: label, Kind: Number, Step: step}
	pr.Range.Set(mn, mx)
	pr.set(value)
	pn.add(pr)
	return pn
}

// AddToggle adds a boolean toggle.
func (pn *Panel) AddToggle(name, label string, value bool) *Panel {
	pr := &Param{Name: name, Label: label, Kind: Toggle}
	pr.Range.Set(0, 1)
	if value {
		pr.Value = 1
	}
	pn.add(pr)
	return pn
}

// Len returns the number of parameters.
func (pn *Panel) Len() int {
	pn.mu.RLock()
	defer pn.mu.RUnlock()
	return pn.params.Len()
}

// Params returns a copy of the parameters, in insertion order.
func (pn *Panel) Params() []Param {
	pn.mu.RLock()
	defer pn.mu.RUnlock()
	ps := make([]Param, pn.params.Len())
	for i, pr := range pn.params.Values {
		ps[i] = *pr
	}
	return ps
}

// Param returns a copy of the named parameter.
func (pn *Panel) Param(name string) (Param, error) {
	pn.mu.RLock()
	defer pn.mu.RUnlock()
	pr, ok := pn.params.AtTry(name)
	if !ok {
		return Param{}, fmt.Errorf("params: %s has no parameter named %q", pn.Name, name)
	}
	return *pr, nil
}

// Value returns the value of the named parameter, or 0 if there is none.
func (pn *Panel) Value(name string) float32 {
	pn.mu.RLock()
	defer pn.mu.RUnlock()
	if pr, ok := pn.params.AtTry(name); ok {
		return pr.Value
	}
	return 0
}

// Int returns the value of the named parameter rounded to an int.
func (pn *Panel) Int(name string) int {
	return int(math32.Round(pn.Value(name)))
}

// Bool returns whether the named parameter is non-zero.
func (pn *Panel) Bool(name string) bool {
	return pn.Value(name) != 0
}

// Set sets the named parameter, clamped to its range and snapped to its step.
func (pn *Panel) Set(name string, value float32) error {
	pn.mu.Lock()
	defer pn.mu.Unlock()
	pr, ok := pn.params.AtTry(name)
	if !ok {
		return fmt.Errorf("params: %s has no parameter named %q", pn.Name, name)
	}
	pr.set(value)
	return nil
}

// SetBool sets the named toggle.
func (pn *Panel) SetBool(name string, value bool) error {
	v := float32(0)
	if value {
		v = 1
	}
	return pn.Set(name, v)
}

// Changed reports whether any value differs from the values at the
// previous call, and records the current values. The first call
// reports true.
func (pn *Panel) Changed() bool {
	pn.mu.Lock()
	defer pn.mu.Unlock()
	changed := pn.snapshot == nil || len(pn.snapshot) != pn.params.Len()
	if !changed {
		for i, pr := range pn.params.Values {
			if pn.snapshot[i] != pr.Value {
				changed = true
				break
			}
		}
	}
	if changed {
		pn.snapshot = make([]float32, pn.params.Len())
		for i, pr := range pn.params.Values {
			pn.snapshot[i] = pr.Value
		}
	}
	return changed
}

// Selected returns the index of the selected parameter.
func (pn *Panel) Selected() int {
	pn.mu.RLock()
	defer pn.mu.RUnlock()
	return pn.selected
}

// Select moves the selection by delta, wrapping around.
func (pn *Panel) Select(delta int) {
	pn.mu.Lock()
	defer pn.mu.Unlock()
	n := pn.params.Len()
	if n == 0 {
		return
	}
	pn.selected = ((pn.selected+delta)%n + n) % n
}

// Nudge moves the selected parameter by the given number of steps.
// Toggles flip on any non-zero nudge. Continuous sliders move by
// one hundredth of their range per step.
func (pn *Panel) Nudge(steps int) {
	pn.mu.Lock()
	defer pn.mu.Unlock()
	if pn.params.Len() == 0 || steps == 0 {
		return
	}
	pr := pn.params.Values[pn.selected]
	if pr.Kind == Toggle {
		pr.set(1 - pr.Value)
		return
	}
	step := pr.Step
	if step <= 0 {
		step = pr.Range.Range() / 100
	}
	pr.set(pr.Value + float32(steps)*step)
}

// Lines returns one display line per parameter, with the selected
// parameter marked.
func (pn *Panel) Lines() []string {
	pn.mu.RLock()
	defer pn.mu.RUnlock()
	lines := make([]string, pn.params.Len())
	for i, pr := range pn.params.Values {
		mark := "  "
		if i == pn.selected {
			mark = "> "
		}
		label := pr.Label
		if label == "" {
			label = pr.Name
		}
		lines[i] = mark + label + ": " + pr.ValueString()
	}
	return lines
}
