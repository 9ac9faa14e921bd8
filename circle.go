package nub

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// UnitCircle is the circle of radius 1 centered on the origin.
var UnitCircle = Circle{Center: Pt(0, 0), Radius: 1}

// circleKnots places one knot pair at each quarter turn, clamped at both ends.
var circleKnots = []float64{0, 0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75, 1, 1, 1}

// Curve returns the circle as a quadratic rational spline of nine control
// points: the four points where the circle meets its axes, with weight 1, and
// between them the corners of the enclosing square, with weight √2/2. The
// curve starts and ends at the rightmost point and runs counterclockwise in
// a y-up coordinate system.
func (c Circle) Curve() Curve {
	const w = math.Sqrt2 / 2
	offsets := [9]ControlPoint{
		{1, 0, 1},
		{1, 1, w},
		{0, 1, 1},
		{-1, 1, w},
		{-1, 0, 1},
		{-1, -1, w},
		{0, -1, 1},
		{1, -1, w},
		{1, 0, 1},
	}

	x, y := c.Center.Splat()
	r := c.Radius
	points := make([]ControlPoint, len(offsets))
	for i, o := range offsets {
		points[i] = Pt(x+r*o.X, y+r*o.Y).Weighted(o.Z)
	}
	// The lengths are fixed, so this can't fail.
	return Curve{points: points, knots: circleKnots}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
