// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueue(t *testing.T) {
	q := NewQueue()
	var got []string
	q.Request(func(Tick) { got = append(got, "a") })
	id := q.Request(func(Tick) { got = append(got, "b") })
	q.Request(func(Tick) { got = append(got, "c") })
	assert.Equal(t, 3, q.Pending())
	q.Cancel(id)
	q.Cancel(id)
	q.Cancel(999)

	t0 := time.Now()
	assert.Equal(t, 2, q.Step(t0))
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, 0, q.Step(t0))
}

func TestQueueLoop(t *testing.T) {
	q := NewQueue()
	var ticks []Tick
	var loop Func
	loop = func(tk Tick) {
		ticks = append(ticks, tk)
		// requests during a step run on the next step
		q.Request(loop)
	}
	q.Request(loop)
	t0 := time.Now()
	for i := range 3 {
		assert.Equal(t, 1, q.Step(t0.Add(time.Duration(i)*10*time.Millisecond)))
	}
	assert.Len(t, ticks, 3)
	assert.Equal(t, 3, ticks[2].Count)
	assert.Equal(t, 20*time.Millisecond, ticks[2].Time)
	assert.Equal(t, 10*time.Millisecond, ticks[2].Delta)
	assert.Equal(t, time.Duration(0), ticks[0].Delta)
}

func TestCancelDuringStep(t *testing.T) {
	q := NewQueue()
	ran := false
	var second ID
	q.Request(func(Tick) { q.Cancel(second) })
	second = q.Request(func(Tick) { ran = true })
	q.Step(time.Now())
	assert.False(t, ran)
}
