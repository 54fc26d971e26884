package handle

import "math"

// Vec is a point or displacement on the drawing surface.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
