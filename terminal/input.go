package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventMouse
	EventFocus
	EventError
	EventClosed
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int   // For EventResize, in cells
	Height int   // For EventResize, in cells
	Err    error // For EventError

	// Mouse position in cells
	MouseX int
	MouseY int

	// Focused reports terminal focus for EventFocus
	Focused bool
}

// translate maps a tcell event; nil means the screen was finalized
func translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: translateKey(ev.Key()), Rune: ev.Rune()}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := ev.Position()
		return Event{Type: EventMouse, MouseX: x, MouseY: y}
	case *tcell.EventFocus:
		return Event{Type: EventFocus, Focused: ev.Focused}
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}
	default:
		return Event{Type: EventNone}
	}
}
