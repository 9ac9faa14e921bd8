package nub

import (
	"encoding/binary"
	"io"
	"math"
	"os"
	"slices"
)

// Version is the format version written by this package. It is the last byte
// of [Magic].
const Version = 3

// Magic is the tag every nub file starts with.
var Magic = [4]byte{'n', 'u', 'b', Version}

const (
	headerSize = len(Magic) + 4
	pointSize  = 3 * 4
	knotSize   = 4
)

var _ io.WriterTo = Curve{}

// EncodedLen returns the size in bytes of the encoding of a curve with n
// control points.
func EncodedLen(n int) int {
	return headerSize + n*pointSize + (n+Order)*knotSize
}

// Encode validates points and knots as [NewCurve] does and returns their
// encoding. On error, no bytes are returned.
func Encode(points []ControlPoint, knots []float64) ([]byte, error) {
	c, err := NewCurve(points, knots)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// AppendBinary appends the encoding of c to b. Coordinates and knots are
// narrowed to float32.
func (c Curve) AppendBinary(b []byte) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return b, err
	}
	b = slices.Grow(b, EncodedLen(len(c.points)))
	b = append(b, Magic[:]...)
	b = binary.LittleEndian.AppendUint32(b, uint32(int32(len(c.points))))
	for _, p := range c.points {
		b = appendFloat32(b, p.X)
		b = appendFloat32(b, p.Y)
		b = appendFloat32(b, p.Z)
	}
	for _, k := range c.knots {
		b = appendFloat32(b, k)
	}
	return b, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Curve) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(nil)
}

// WriteTo implements io.WriterTo.
func (c Curve) WriteTo(w io.Writer) (int64, error) {
	b, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// WriteFile writes the encoding of c to the named file, creating it if
// necessary and truncating it otherwise. The file is closed before
// WriteFile returns. Nothing is created if c is invalid.
func WriteFile(name string, c Curve) (err error) {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(f)
	return err
}

func appendFloat32(b []byte, f float64) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(f)))
}
