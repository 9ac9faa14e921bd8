package nub

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Order is the order of the splines described by a [Curve]. A curve with n
// control points has exactly n+Order knots.
const Order = 3

var (
	// ErrKnotCount is returned, wrapped in a [*KnotCountError], when the knot
	// vector doesn't have exactly Order more entries than there are control
	// points.
	ErrKnotCount = errors.New("nub: knot count must equal point count + 3")
	// ErrTooManyPoints is returned when the number of control points doesn't
	// fit in the format's int32 count field.
	ErrTooManyPoints = errors.New("nub: too many control points")
)

// KnotCountError describes a curve whose knot vector has the wrong length.
type KnotCountError struct {
	Points int
	Knots  int
}

func (err *KnotCountError) Error() string {
	return fmt.Sprintf("nub: %d control points need %d knots, got %d",
		err.Points, err.Points+Order, err.Knots)
}

func (err *KnotCountError) Unwrap() error { return ErrKnotCount }

func checkCounts(points, knots int) error {
	if points > math.MaxInt32 {
		return fmt.Errorf("%w: %d", ErrTooManyPoints, points)
	}
	if knots != points+Order {
		return &KnotCountError{Points: points, Knots: knots}
	}
	return nil
}

// Curve is a spline given by its control points and knot vector. Curves
// returned by [NewCurve] are immutable and always valid. The zero Curve is
// not valid, as even an empty curve needs Order knots.
type Curve struct {
	points []ControlPoint
	knots  []float64
}

// NewCurve returns the curve with the given control points and knots. The
// slices are copied. It returns a [*KnotCountError] if len(knots) !=
// len(points)+Order.
func NewCurve(points []ControlPoint, knots []float64) (Curve, error) {
	if err := checkCounts(len(points), len(knots)); err != nil {
		return Curve{}, err
	}
	return Curve{
		points: slices.Clone(points),
		knots:  slices.Clone(knots),
	}, nil
}

// Validate reports whether the curve satisfies the knot count invariant.
func (c Curve) Validate() error {
	return checkCounts(len(c.points), len(c.knots))
}

// Len returns the number of control points.
func (c Curve) Len() int { return len(c.points) }

// Points returns a copy of the control points.
func (c Curve) Points() []ControlPoint { return slices.Clone(c.points) }

// Knots returns a copy of the knot vector.
func (c Curve) Knots() []float64 { return slices.Clone(c.knots) }

// ControlPoints returns an iterator over the indices and control points of
// the curve.
func (c Curve) ControlPoints() iter.Seq2[int, ControlPoint] {
	return slices.All(c.points)
}

func (c Curve) String() string {
	return fmt.Sprintf("Curve{points: %v, knots: %v}", c.points, c.knots)
}
