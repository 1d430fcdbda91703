// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides per-frame callback scheduling: a callback
// requested now runs once, at the next frame.
package frame

import (
	"sync"
	"time"
)

// ID identifies a requested callback. The zero ID is never issued.
type ID uint64

// Tick is the timing information passed to a frame callback.
type Tick struct {

	// Count is the number of frames stepped so far, starting at 1.
	Count int

	// Time is the time since the first frame.
	Time time.Duration

	// Delta is the time since the previous frame.
	Delta time.Duration
}

// Func is a frame callback.
type Func func(t Tick)

// Scheduler runs callbacks at the next frame.
type Scheduler interface {

	// Request schedules the function to run once at the next frame.
	Request(fn Func) ID

	// Cancel removes a pending request, which then never runs.
	// Cancelling an unknown or already run ID does nothing.
	Cancel(id ID)
}

type request struct {
	id ID
	fn Func
}

// Queue is a [Scheduler] that is stepped explicitly by a host, once per
// frame. Callbacks requested while a step is running go to the next step.
// It is safe for concurrent use.
type Queue struct {
	pending []request
	live    map[ID]bool
	lastID  ID

	count int
	start time.Time
	last  time.Time

	mu sync.Mutex
}

// NewQueue returns a new empty queue.
func NewQueue() *Queue {
	return &Queue{live: map[ID]bool{}}
}

func (q *Queue) Request(fn Func) ID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.live == nil {
		q.live = map[ID]bool{}
	}
	q.lastID++
	id := q.lastID
	q.pending = append(q.pending, request{id: id, fn: fn})
	q.live[id] = true
	return id
}

func (q *Queue) Cancel(id ID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.live, id)
}

// Pending returns the number of callbacks waiting for the next step.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.live)
}

// Step runs the callbacks requested before this call, in request order,
// with the given frame time. It returns the number of callbacks run.
func (q *Queue) Step(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.count++
	if q.count == 1 {
		q.start = now
		q.last = now
	}
	tk := Tick{Count: q.count, Time: now.Sub(q.start), Delta: now.Sub(q.last)}
	q.last = now
	q.mu.Unlock()

	n := 0
	for _, rq := range batch {
		q.mu.Lock()
		ok := q.live[rq.id]
		delete(q.live, rq.id)
		q.mu.Unlock()
		if !ok {
			continue
		}
		rq.fn(tk)
		n++
	}
	return n
}
