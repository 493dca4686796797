package pointer

// Feed is a Source driven directly by a host event loop
type Feed struct {
	subs   map[int]subscription
	nextID int
	inside bool
}

type subscription struct {
	onMove  func(x, y float64)
	onLeave func()
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[int]subscription)}
}

func (f *Feed) Subscribe(onMove func(x, y float64), onLeave func()) func() {
	id := f.nextID
	f.nextID++
	f.subs[id] = subscription{onMove: onMove, onLeave: onLeave}
	return func() { delete(f.subs, id) }
}

// Move delivers a pointer position in host pixels
func (f *Feed) Move(x, y float64) {
	f.inside = true
	for _, s := range f.subs {
		s.onMove(x, y)
	}
}

// Leave reports the pointer left the host surface entirely
func (f *Feed) Leave() {
	f.inside = false
	for _, s := range f.subs {
		s.onLeave()
	}
}

// Track feeds one polled cursor sample. Samples inside the host are moves;
// the first sample outside after a move is a single Leave.
func (f *Feed) Track(x, y float64, inside bool) {
	if inside {
		f.Move(x, y)
		return
	}
	if f.inside {
		f.Leave()
	}
}

// Inside reports whether the last delivered event was a move
func (f *Feed) Inside() bool { return f.inside }

// Subscribers returns the number of live subscriptions
func (f *Feed) Subscribers() int { return len(f.subs) }
