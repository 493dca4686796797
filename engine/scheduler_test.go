package engine

import (
	"slices"
	"testing"
	"time"
)

func newTestQueue() (*FrameQueue, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewFrameQueue(mock), mock
}

func TestFrameQueueRunsFramesOnce(t *testing.T) {
	q, mock := newTestQueue()

	var calls []string
	q.RequestFrame(func(time.Time) { calls = append(calls, "a") })
	q.RequestFrame(func(time.Time) { calls = append(calls, "b") })

	q.Tick(mock.Now())
	q.Tick(mock.Now())

	if !slices.Equal(calls, []string{"a", "b"}) {
		t.Errorf("calls = %v, want [a b]", calls)
	}
	if q.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d, want 0", q.PendingFrames())
	}
}

func TestFrameQueueReentrantRequestWaitsForNextTick(t *testing.T) {
	q, mock := newTestQueue()

	count := 0
	var frame func(time.Time)
	frame = func(time.Time) {
		count++
		q.RequestFrame(frame)
	}
	q.RequestFrame(frame)

	q.Tick(mock.Now())
	if count != 1 {
		t.Fatalf("count after first tick = %d, want 1", count)
	}
	q.Tick(mock.Now())
	if count != 2 {
		t.Errorf("count after second tick = %d, want 2", count)
	}
	if q.PendingFrames() != 1 {
		t.Errorf("PendingFrames = %d, want 1", q.PendingFrames())
	}
}

func TestFrameQueueCancel(t *testing.T) {
	q, mock := newTestQueue()

	ran := false
	id := q.RequestFrame(func(time.Time) { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(FrameID(999))
	q.Tick(mock.Now())

	if ran {
		t.Error("canceled frame ran")
	}
}

func TestFrameQueueCancelWithinBatch(t *testing.T) {
	q, mock := newTestQueue()

	ran := false
	var second FrameID
	q.RequestFrame(func(time.Time) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Time) { ran = true })
	q.Tick(mock.Now())

	if ran {
		t.Error("frame canceled by an earlier frame of the same tick ran")
	}
}

func TestFrameQueueTimersFireInDeadlineOrder(t *testing.T) {
	q, mock := newTestQueue()

	var order []int
	q.AfterFunc(30*time.Millisecond, func() { order = append(order, 30) })
	q.AfterFunc(10*time.Millisecond, func() { order = append(order, 10) })
	cancel := q.AfterFunc(20*time.Millisecond, func() { order = append(order, 20) })
	cancel()
	cancel()

	q.Tick(mock.Advance(5 * time.Millisecond))
	if len(order) != 0 {
		t.Fatalf("timers fired early: %v", order)
	}

	q.Tick(mock.Advance(30 * time.Millisecond))
	if !slices.Equal(order, []int{10, 30}) {
		t.Errorf("order = %v, want [10 30]", order)
	}
	if q.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, want 0", q.PendingTimers())
	}
}

func TestFrameQueueTimersBeforeFrames(t *testing.T) {
	q, mock := newTestQueue()

	var order []string
	q.RequestFrame(func(time.Time) { order = append(order, "frame") })
	q.AfterFunc(0, func() { order = append(order, "timer") })
	q.Tick(mock.Now())

	if !slices.Equal(order, []string{"timer", "frame"}) {
		t.Errorf("order = %v, want [timer frame]", order)
	}
}

func TestDebouncerSupersedes(t *testing.T) {
	q, mock := newTestQueue()
	d := NewDebouncer(q, 150*time.Millisecond)

	var got []int
	d.Trigger(func() { got = append(got, 1) })
	q.Tick(mock.Advance(100 * time.Millisecond))
	d.Trigger(func() { got = append(got, 2) })
	q.Tick(mock.Advance(100 * time.Millisecond))

	if len(got) != 0 {
		t.Fatalf("superseded call fired: %v", got)
	}
	if !d.Pending() {
		t.Fatal("expected a pending call")
	}

	q.Tick(mock.Advance(60 * time.Millisecond))
	if !slices.Equal(got, []int{2}) {
		t.Errorf("got = %v, want [2]", got)
	}
	if d.Pending() {
		t.Error("debouncer still pending after firing")
	}
}
