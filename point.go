package nub

import (
	"fmt"
	"math"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// ControlPoint is a spline control point. Z is stored and encoded as given;
// for rational curves it holds the weight.
type ControlPoint struct {
	X float64
	Y float64
	Z float64
}

// CP returns the control point (x, y, z).
func CP(x, y, z float64) ControlPoint {
	return ControlPoint{X: x, Y: y, Z: z}
}

// Weighted returns the control point at pt with z set to w.
func (pt Point) Weighted(w float64) ControlPoint {
	return ControlPoint{X: pt.X, Y: pt.Y, Z: w}
}

// Point drops the z component.
func (cp ControlPoint) Point() Point {
	return Point{X: cp.X, Y: cp.Y}
}

func (cp ControlPoint) String() string {
	return fmt.Sprintf("(%g, %g, %g)", cp.X, cp.Y, cp.Z)
}

// IsInf reports whether at least one of x, y, and z is infinite.
func (cp ControlPoint) IsInf() bool {
	return math.IsInf(cp.X, 0) || math.IsInf(cp.Y, 0) || math.IsInf(cp.Z, 0)
}

// IsNaN reports whether at least one of x, y, and z is NaN.
func (cp ControlPoint) IsNaN() bool {
	return math.IsNaN(cp.X) || math.IsNaN(cp.Y) || math.IsNaN(cp.Z)
}
