// Package input folds mouse and touch state into one stream of pointer
// events in surface coordinates.
package input

import "slingshot/internal/handle"

type Kind int

const (
	Down Kind = iota
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	}
	return "unknown"
}

// Event is a normalised pointer event.
type Event struct {
	Kind Kind
	Pos  handle.Vec
}

// Touch is one active contact.
type Touch struct {
	ID  int
	Pos handle.Vec
}

// Snapshot is the raw device state for one frame.
type Snapshot struct {
	Mouse       handle.Vec
	MouseInside bool // cursor within the surface bounds
	MouseDown   bool // primary button held
	Touches     []Touch
}

// Source produces one Snapshot per frame.
type Source interface {
	Snapshot() Snapshot
}

// Keys reports text typed during the current frame.
type Keys interface {
	AppendChars(rs []rune) []rune
	Backspace() bool
}

// Router turns consecutive snapshots into events. Only the first touch is
// followed; further fingers are ignored until it lifts.
type Router struct {
	primed    bool
	mouse     handle.Vec
	inside    bool
	mouseDown bool

	touching bool
	touchID  int
	touchPos handle.Vec
}

func NewRouter() *Router { return &Router{} }

// Route returns the events implied by s relative to the previous call.
func (r *Router) Route(s Snapshot) []Event {
	var out []Event
	out = r.routeTouch(s, out)
	out = r.routeMouse(s, out)
	return out
}

func (r *Router) routeMouse(s Snapshot, out []Event) []Event {
	if !r.primed {
		r.primed = true
		r.mouse, r.inside, r.mouseDown = s.Mouse, s.MouseInside, s.MouseDown && s.MouseInside
		if r.mouseDown {
			out = append(out, Event{Kind: Down, Pos: s.Mouse})
		}
		return out
	}

	// Leaving the surface ends whatever the mouse was doing.
	if r.inside && !s.MouseInside {
		r.inside, r.mouseDown, r.mouse = false, s.MouseDown, s.Mouse
		return append(out, Event{Kind: Up, Pos: s.Mouse})
	}
	// A button pressed or held outside is not a press once the cursor
	// comes back.
	if !s.MouseInside {
		r.mouse, r.mouseDown = s.Mouse, s.MouseDown
		return out
	}
	r.inside = true

	pressed := s.MouseDown && !r.mouseDown
	released := !s.MouseDown && r.mouseDown
	moved := s.Mouse != r.mouse

	// The press frame carries only the press; travel onto the handle
	// before the button went down is not drag movement.
	if pressed {
		out = append(out, Event{Kind: Down, Pos: s.Mouse})
	} else if moved {
		out = append(out, Event{Kind: Move, Pos: s.Mouse})
	}
	if released {
		out = append(out, Event{Kind: Up, Pos: s.Mouse})
	}
	r.mouse, r.mouseDown = s.Mouse, s.MouseDown
	return out
}

func (r *Router) routeTouch(s Snapshot, out []Event) []Event {
	if r.touching {
		for _, t := range s.Touches {
			if t.ID != r.touchID {
				continue
			}
			if t.Pos != r.touchPos {
				r.touchPos = t.Pos
				out = append(out, Event{Kind: Move, Pos: t.Pos})
			}
			return out
		}
		r.touching = false
		return append(out, Event{Kind: Up, Pos: r.touchPos})
	}
	if len(s.Touches) == 0 {
		return out
	}
	t := s.Touches[0]
	r.touching, r.touchID, r.touchPos = true, t.ID, t.Pos
	return append(out, Event{Kind: Down, Pos: t.Pos})
}
