package brain

import "math"

// Vec is a point or direction in surface (logical pixel) coordinates.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }
func (v Vec) Angle() float64      { return math.Atan2(v.Y, v.X) }
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// polar returns a vector of length r pointing along angle a.
func polar(a, r float64) Vec {
	return Vec{math.Cos(a) * r, math.Sin(a) * r}
}
