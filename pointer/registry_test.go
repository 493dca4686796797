package pointer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type fixedElement struct{ rect Rect }

func (e *fixedElement) Bounds() Rect { return e.rect }

type recorder struct {
	enters, moves, leaves int
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnEnter: func(*Tracker) { r.enters++ },
		OnMove:  func(*Tracker) { r.moves++ },
		OnLeave: func(*Tracker) { r.leaves++ },
	}
}

func TestRegistrySharesOneSubscription(t *testing.T) {
	feed := NewFeed()
	reg := NewRegistry(feed)

	a := reg.Register(&fixedElement{Rect{0, 0, 100, 100}}, Handlers{})
	b := reg.Register(&fixedElement{Rect{200, 0, 100, 100}}, Handlers{})

	if feed.Subscribers() != 1 {
		t.Fatalf("Expected one shared subscription, got %d", feed.Subscribers())
	}

	a.Dispose()
	if feed.Subscribers() != 1 || !reg.Listening() {
		t.Fatal("Subscription must survive while a tracker remains")
	}

	b.Dispose()
	if feed.Subscribers() != 0 || reg.Listening() {
		t.Errorf("Last dispose should unsubscribe, subscribers=%d", feed.Subscribers())
	}

	// double dispose is harmless
	b.Dispose()
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0", reg.Len())
	}
}

func TestRegistryFanOutByBounds(t *testing.T) {
	feed := NewFeed()
	reg := NewRegistry(feed)

	var ra, rb recorder
	a := reg.Register(&fixedElement{Rect{0, 0, 100, 50}}, ra.handlers())
	b := reg.Register(&fixedElement{Rect{200, 0, 100, 50}}, rb.handlers())

	feed.Move(25, 10)
	if !a.Hover || b.Hover {
		t.Fatalf("Hover a=%v b=%v, want only a", a.Hover, b.Hover)
	}
	if ra.enters != 1 || ra.moves != 1 {
		t.Errorf("a enters=%d moves=%d", ra.enters, ra.moves)
	}
	if want := (mgl64.Vec2{25, 10}); a.Position != want {
		t.Errorf("Position = %v, want %v", a.Position, want)
	}
	if want := (mgl64.Vec2{-0.5, 0.6}); !a.NPosition.ApproxEqual(want) {
		t.Errorf("NPosition = %v, want %v", a.NPosition, want)
	}

	feed.Move(30, 10)
	if ra.enters != 1 || ra.moves != 2 {
		t.Errorf("Second move should not re-enter: enters=%d moves=%d", ra.enters, ra.moves)
	}

	feed.Move(250, 25)
	if a.Hover || !b.Hover {
		t.Fatalf("Hover a=%v b=%v, want only b", a.Hover, b.Hover)
	}
	if ra.leaves != 1 || rb.enters != 1 {
		t.Errorf("a leaves=%d b enters=%d", ra.leaves, rb.enters)
	}
	if !b.NPosition.ApproxEqual(mgl64.Vec2{0, 0}) {
		t.Errorf("Center of b should map to NDC origin, got %v", b.NPosition)
	}
}

func TestRegistrySourceLeave(t *testing.T) {
	feed := NewFeed()
	reg := NewRegistry(feed)

	var r recorder
	tr := reg.Register(&fixedElement{Rect{0, 0, 10, 10}}, r.handlers())

	feed.Leave()
	if r.leaves != 0 {
		t.Error("Leave without hover must not fire")
	}

	feed.Move(5, 5)
	feed.Leave()
	if tr.Hover || r.leaves != 1 {
		t.Errorf("Hover=%v leaves=%d, want false/1", tr.Hover, r.leaves)
	}
}

func TestFeedTrackLeavesOnce(t *testing.T) {
	feed := NewFeed()
	reg := NewRegistry(feed)

	var r recorder
	tr := reg.Register(&fixedElement{Rect{0, 0, 10, 10}}, r.handlers())

	feed.Track(5, 5, false)
	if r.moves != 0 || r.leaves != 0 || feed.Inside() {
		t.Fatalf("Sample outside before any move should be silent: moves=%d leaves=%d", r.moves, r.leaves)
	}

	feed.Track(5, 5, true)
	if !tr.Hover || r.moves != 1 || !feed.Inside() {
		t.Fatalf("Hover=%v moves=%d, want true/1", tr.Hover, r.moves)
	}

	// focus lost while the last reported position is still inside the element
	feed.Track(5, 5, false)
	feed.Track(5, 5, false)
	if tr.Hover || r.leaves != 1 || feed.Inside() {
		t.Errorf("Hover=%v leaves=%d, want false/1", tr.Hover, r.leaves)
	}
	if r.moves != 1 {
		t.Errorf("Samples outside must not move, moves=%d", r.moves)
	}
}

func TestDisposeDuringDelivery(t *testing.T) {
	feed := NewFeed()
	reg := NewRegistry(feed)

	var tr *Tracker
	tr = reg.Register(&fixedElement{Rect{0, 0, 10, 10}}, Handlers{
		OnMove: func(*Tracker) { tr.Dispose() },
	})
	other := reg.Register(&fixedElement{Rect{0, 0, 10, 10}}, Handlers{})

	feed.Move(1, 1)
	if reg.Len() != 1 || !other.Hover {
		t.Errorf("Len=%d other hover=%v", reg.Len(), other.Hover)
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	for _, p := range [][2]float64{{10, 20}, {40, 60}, {25, 30}} {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Expected %v inside %+v", p, r)
		}
	}
	if r.Contains(9.9, 30) || r.Contains(25, 60.1) {
		t.Error("Points outside edges reported inside")
	}
}
