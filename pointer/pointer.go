// Package pointer tracks a shared host pointer across registered surfaces
//
// A Registry is owned by the host and passed to every consumer. It holds a
// single move/leave subscription on the host Source for as long as at least
// one surface is registered, and fans each event out by bounding-rect
// containment.
package pointer

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Rect is a surface's bounding rectangle in host pixel coordinates
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64 { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains is inclusive on every edge
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right() && y >= r.Top && y <= r.Bottom()
}

// Element is a tracked surface
type Element interface {
	Bounds() Rect
}

// Source delivers raw host pointer events
// Subscribe returns the function that removes the subscription
type Source interface {
	Subscribe(onMove func(x, y float64), onLeave func()) (unsubscribe func())
}

// Handlers are invoked synchronously from event delivery
type Handlers struct {
	OnEnter func(*Tracker)
	OnMove  func(*Tracker)
	OnLeave func(*Tracker)
}

// Tracker is one registered surface's pointer state
type Tracker struct {
	Element Element

	// Position is local to the element in pixels, NPosition in normalized device coordinates
	Position  mgl64.Vec2
	NPosition mgl64.Vec2
	Hover     bool

	handlers Handlers
	registry *Registry
}

// Dispose unregisters the tracker, safe to call more than once
func (t *Tracker) Dispose() {
	if t.registry == nil {
		return
	}
	t.registry.unregister(t)
	t.registry = nil
}

func (t *Tracker) enter() {
	t.Hover = true
	if t.handlers.OnEnter != nil {
		t.handlers.OnEnter(t)
	}
}

func (t *Tracker) move() {
	if t.handlers.OnMove != nil {
		t.handlers.OnMove(t)
	}
}

func (t *Tracker) leave() {
	t.Hover = false
	if t.handlers.OnLeave != nil {
		t.handlers.OnLeave(t)
	}
}
