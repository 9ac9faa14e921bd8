// Package nub encodes NURBS curves in the "nub" binary format.
//
// A nub file describes a single quadratic spline: a sequence of control
// points followed by its knot vector. Version 3 of the format, the only one
// this package writes, is laid out as follows, with all values little-endian:
//
//	offset    size          field
//	0         4             magic 'n' 'u' 'b' 0x03
//	4         4             int32 point count N
//	8         12*N          N × (float32 x, float32 y, float32 z)
//	8+12N     4*(N+3)       N+3 float32 knots
//
// The knot vector carries no length prefix; readers derive it from the point
// count. See [Curve] for the invariant tying the two together and [Encode]
// and [WriteFile] for producing the bytes.
//
// The third component of a [ControlPoint] is conventionally a rational weight,
// but this package treats it as an opaque float. It does not evaluate curves.
//
// # Circles
//
// [Circle.Curve] produces the standard nine-point rational representation of
// a circle, which is what the nubcircle command writes.
package nub
