package mathutil

import "math"

// Point is a 2D point or vector. It is a value type; every operation returns a new Point.
type Point struct {
	X, Y float64
}

var Zero = Point{}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul multiplies component-wise.
func (p Point) Mul(o Point) Point {
	return Point{X: p.X * o.X, Y: p.Y * o.Y}
}

// Div divides component-wise.
func (p Point) Div(o Point) Point {
	return Point{X: p.X / o.X, Y: p.Y / o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) DivScalar(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalized returns p scaled to length 1.
// The result is NaN for a zero-length point; callers must check IsZero first.
func (p Point) Normalized() Point {
	return p.DivScalar(p.Length())
}

// Angle returns atan2(y, x), in (-π, π].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}
