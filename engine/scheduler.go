package engine

import (
	"slices"
	"time"
)

// FrameID identifies a requested frame callback
type FrameID uint64

// Scheduler is the host's per-frame scheduling primitive
// All callbacks run on the single goroutine that drives the scheduler
type Scheduler interface {
	// RequestFrame runs fn once on the next frame
	RequestFrame(fn func(now time.Time)) FrameID

	// CancelFrame drops a pending frame callback, unknown ids are ignored
	CancelFrame(id FrameID)

	// AfterFunc runs fn once after d; cancel is idempotent
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type pendingFrame struct {
	id FrameID
	fn func(now time.Time)
}

type pendingTimer struct {
	id  uint64
	due time.Time
	fn  func()
}

// FrameQueue is a Scheduler driven by explicit Tick calls
// Hosts tick it from their own loop; tests tick it with synthetic times
type FrameQueue struct {
	tp        TimeProvider
	frames    []pendingFrame
	timers    []pendingTimer
	nextFrame FrameID
	nextTimer uint64

	// batch marks frames of the firing Tick, false once canceled mid-batch
	batch map[FrameID]bool
}

func NewFrameQueue(tp TimeProvider) *FrameQueue {
	return &FrameQueue{tp: tp}
}

func (q *FrameQueue) RequestFrame(fn func(now time.Time)) FrameID {
	q.nextFrame++
	q.frames = append(q.frames, pendingFrame{id: q.nextFrame, fn: fn})
	return q.nextFrame
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	q.frames = slices.DeleteFunc(q.frames, func(f pendingFrame) bool { return f.id == id })
	if _, ok := q.batch[id]; ok {
		q.batch[id] = false
	}
}

func (q *FrameQueue) AfterFunc(d time.Duration, fn func()) func() {
	q.nextTimer++
	id := q.nextTimer
	q.timers = append(q.timers, pendingTimer{id: id, due: q.tp.Now().Add(d), fn: fn})
	return func() {
		q.timers = slices.DeleteFunc(q.timers, func(t pendingTimer) bool { return t.id == id })
	}
}

// Tick fires due timers in deadline order, then the frames pending at entry
// Frames requested from inside a callback wait for the next Tick
func (q *FrameQueue) Tick(now time.Time) {
	for {
		idx := -1
		for i, t := range q.timers {
			if !t.due.After(now) && (idx < 0 || t.due.Before(q.timers[idx].due)) {
				idx = i
			}
		}
		if idx < 0 {
			break
		}
		t := q.timers[idx]
		q.timers = slices.Delete(q.timers, idx, idx+1)
		t.fn()
	}

	frames := q.frames
	q.frames = nil
	q.batch = make(map[FrameID]bool, len(frames))
	for _, f := range frames {
		q.batch[f.id] = true
	}
	for _, f := range frames {
		if q.batch[f.id] {
			f.fn(now)
		}
	}
	q.batch = nil
}

func (q *FrameQueue) PendingFrames() int { return len(q.frames) }

func (q *FrameQueue) PendingTimers() int { return len(q.timers) }
