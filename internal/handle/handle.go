// Package handle implements the slingshot's drag state machine and the
// per-frame easing of the handle back to its rest position.
//
// Nothing in here knows about ebiten or any other device: callers feed it
// surface coordinates and poll the resulting position.
package handle

import (
	"math"

	"github.com/rs/zerolog/log"
)

// State is the drag state of the handle.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Geometry holds the fixed shape and tuning of the slingshot.
type Geometry struct {
	Rest        Vec
	MaxLength   float64 // drag radius around Rest
	InnerRadius float64 // hit annulus inner bound, also the punched hole
	OuterRadius float64 // hit annulus outer bound, also the disc
	ReturnSpeed float64 // fraction of the remaining distance closed per tick
}

// DefaultGeometry matches the stock 520x590 surface.
func DefaultGeometry() Geometry {
	return Geometry{
		Rest:        Vec{X: 260, Y: 295},
		MaxLength:   200,
		InnerRadius: 5,
		OuterRadius: 20,
		ReturnSpeed: 0.05,
	}
}

// Handle is the draggable control point.
type Handle struct {
	geo   Geometry
	pos   Vec
	state State
	moved bool
}

// New returns a handle resting at geo.Rest.
func New(geo Geometry) *Handle {
	return &Handle{geo: geo, pos: geo.Rest}
}

func (h *Handle) Geometry() Geometry { return h.geo }
func (h *Handle) Pos() Vec           { return h.pos }
func (h *Handle) State() State       { return h.state }
func (h *Handle) Moved() bool        { return h.moved }

// Distance is how far the handle currently is from rest.
func (h *Handle) Distance() float64 {
	return h.pos.Sub(h.geo.Rest).Len()
}

// Hit reports whether p lies on the ring between the inner and outer radius
// around the current handle position. Both bounds are inclusive.
func (h *Handle) Hit(p Vec) bool {
	d := p.Sub(h.pos).Len()
	return d >= h.geo.InnerRadius && d <= h.geo.OuterRadius
}

// PointerDown starts a drag when p hits the ring. A locked handle ignores
// the press entirely.
func (h *Handle) PointerDown(p Vec, locked bool) bool {
	if locked || !h.Hit(p) {
		return false
	}
	h.state = Dragging
	h.moved = false
	log.Debug().Float64("x", p.X).Float64("y", p.Y).Msg("drag started")
	return true
}

// PointerMove drags the handle to p, clamped to MaxLength around rest.
// Moves while idle are ignored.
func (h *Handle) PointerMove(p Vec) {
	if h.state != Dragging {
		return
	}
	h.moved = true
	h.pos = h.clamp(p)
}

func (h *Handle) clamp(p Vec) Vec {
	d := p.Sub(h.geo.Rest)
	if d.Len() <= h.geo.MaxLength {
		return p
	}
	angle := math.Atan2(d.Y, d.X)
	return Vec{
		X: h.geo.Rest.X + h.geo.MaxLength*math.Cos(angle),
		Y: h.geo.Rest.Y + h.geo.MaxLength*math.Sin(angle),
	}
}

// PointerUp ends a drag. It reports true when the drag moved and the handle
// was released, which is the cue to start a reveal. A press that never moved
// goes back to idle without a reveal.
func (h *Handle) PointerUp() bool {
	if h.state != Dragging {
		return false
	}
	h.state = Idle
	if !h.moved {
		log.Debug().Msg("drag cancelled without movement")
		return false
	}
	h.moved = false
	log.Debug().Float64("distance", h.Distance()).Msg("handle released")
	return true
}

// Tick advances one animation frame. While idle the handle closes
// ReturnSpeed of its remaining distance to rest on each axis.
func (h *Handle) Tick() {
	if h.state == Dragging {
		return
	}
	h.pos.X += (h.geo.Rest.X - h.pos.X) * h.geo.ReturnSpeed
	h.pos.Y += (h.geo.Rest.Y - h.pos.Y) * h.geo.ReturnSpeed
}
