// Package timer runs delayed callbacks on the caller's goroutine.
//
// A Queue has no clock of its own: the frame loop advances it by the frame
// delta, and due callbacks fire in deadline order (ties in scheduling order)
// inside Advance. There is no cancel; callbacks check their own guards when
// they fire.
package timer

import "container/heap"

type entry struct {
	at  float64
	seq uint64
	fn  func()
}

type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)   { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry{}
	*h = old[:n-1]
	return e
}

// Queue is a single-threaded timer queue measured in seconds.
type Queue struct {
	now     float64
	seq     uint64
	pending entryHeap
}

// New creates an empty queue at time zero.
func New() *Queue {
	return &Queue{}
}

// Now returns the queue's current time in seconds.
func (q *Queue) Now() float64 {
	return q.now
}

// Len returns the number of callbacks that have not fired yet.
func (q *Queue) Len() int {
	return len(q.pending)
}

// After schedules fn to run once, delay seconds from now.
// A negative delay is treated as zero.
func (q *Queue) After(delay float64, fn func()) {
	if delay < 0 {
		delay = 0
	}
	q.seq++
	heap.Push(&q.pending, entry{at: q.now + delay, seq: q.seq, fn: fn})
}

// Advance moves time forward by dt seconds and fires every callback whose
// deadline is reached. While a callback runs, Now reports its deadline, so
// callbacks scheduled from inside it are relative to when it was due.
func (q *Queue) Advance(dt float64) {
	target := q.now + dt
	for len(q.pending) > 0 && q.pending[0].at <= target {
		e := heap.Pop(&q.pending).(entry)
		if e.at > q.now {
			q.now = e.at
		}
		e.fn()
	}
	q.now = target
}
