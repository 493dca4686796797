package pointer

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Registry fans one host pointer subscription out to every registered element
// Not safe for concurrent use; all calls and deliveries happen on the host loop
type Registry struct {
	source      Source
	trackers    []*Tracker
	unsubscribe func()

	// last pointer position in host coordinates
	X, Y float64
}

func NewRegistry(src Source) *Registry {
	return &Registry{source: src}
}

// Register starts tracking el; the first registration subscribes to the source
func (r *Registry) Register(el Element, h Handlers) *Tracker {
	t := &Tracker{Element: el, handlers: h, registry: r}
	r.trackers = append(r.trackers, t)
	if r.unsubscribe == nil {
		r.unsubscribe = r.source.Subscribe(r.handleMove, r.handleLeave)
	}
	return t
}

func (r *Registry) unregister(t *Tracker) {
	r.trackers = slices.DeleteFunc(r.trackers, func(x *Tracker) bool { return x == t })
	if len(r.trackers) == 0 && r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Len returns the number of registered elements
func (r *Registry) Len() int { return len(r.trackers) }

// Listening reports whether the source subscription is held
func (r *Registry) Listening() bool { return r.unsubscribe != nil }

func (r *Registry) handleMove(x, y float64) {
	r.X, r.Y = x, y
	// copy: handlers may dispose trackers during delivery
	for _, t := range slices.Clone(r.trackers) {
		rect := t.Element.Bounds()
		if rect.Contains(x, y) {
			t.Position = mgl64.Vec2{x - rect.Left, y - rect.Top}
			t.NPosition = normalize(t.Position, rect)
			if !t.Hover {
				t.enter()
			}
			t.move()
		} else if t.Hover {
			t.leave()
		}
	}
}

func (r *Registry) handleLeave() {
	for _, t := range slices.Clone(r.trackers) {
		if t.Hover {
			t.leave()
		}
	}
}

// normalize maps local pixels to NDC with +Y up
func normalize(local mgl64.Vec2, rect Rect) mgl64.Vec2 {
	if rect.Width <= 0 || rect.Height <= 0 {
		return mgl64.Vec2{}
	}
	return mgl64.Vec2{
		local.X()/rect.Width*2 - 1,
		-local.Y()/rect.Height*2 + 1,
	}
}
