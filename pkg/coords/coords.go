// Package coords converts between the three coordinate spaces of the
// pixeloid canvas:
//
//   - Pixeloid space: integer world units in which geometry is authored;
//     stable across pan and zoom.
//   - Vertex space: pixeloid coordinates re-anchored to the current
//     viewport offset.
//   - Screen space: vertex coordinates multiplied by the zoom scale;
//     the unit rasterizers draw in.
//
// The invariant is screen = (pixeloid - offset) * scale. Composite
// conversions always go through Vertex space; combining the two steps
// into one formula silently corrupts bounds under nonzero offset.
package coords

import (
	"fmt"
	"math"

	"github.com/kjkrol/gokg/pkg/geom"
)

// DomainError reports a conversion called with arguments outside the
// valid domain, such as a non-positive scale. It is a programming
// error and is never recovered silently.
type DomainError struct {
	Op     string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("coords: %s: %s", e.Op, e.Reason)
}

// ValidateScale returns a DomainError if scale is not strictly positive.
func ValidateScale(op string, scale float64) error {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return &DomainError{Op: op, Reason: fmt.Sprintf("scale must be positive, got %v", scale)}
	}
	return nil
}

// PixeloidToVertex re-anchors a pixeloid point to the viewport offset.
func PixeloidToVertex(p geom.Vec[int], offset geom.Vec[float64]) geom.Vec[float64] {
	return geom.NewVec(float64(p.X)-offset.X, float64(p.Y)-offset.Y)
}

// VertexToScreen scales a vertex point into screen pixels.
func VertexToScreen(v geom.Vec[float64], scale float64) geom.Vec[float64] {
	return geom.NewVec(v.X*scale, v.Y*scale)
}

// ScreenToVertex unscales a screen point back into vertex space.
func ScreenToVertex(s geom.Vec[float64], scale float64) (geom.Vec[float64], error) {
	if err := ValidateScale("screen to vertex", scale); err != nil {
		return geom.Vec[float64]{}, err
	}
	return geom.NewVec(s.X/scale, s.Y/scale), nil
}

// VertexToPixeloid translates a vertex point back into (fractional)
// pixeloid coordinates. Snapping to the integer grid happens only at
// the bounds level, where the rounding direction is fixed per field.
func VertexToPixeloid(v geom.Vec[float64], offset geom.Vec[float64]) geom.Vec[float64] {
	return geom.NewVec(v.X+offset.X, v.Y+offset.Y)
}

// PixeloidToScreen composes PixeloidToVertex and VertexToScreen.
func PixeloidToScreen(p geom.Vec[int], offset geom.Vec[float64], scale float64) geom.Vec[float64] {
	return VertexToScreen(PixeloidToVertex(p, offset), scale)
}

// ScreenToPixeloid composes ScreenToVertex and VertexToPixeloid.
func ScreenToPixeloid(s geom.Vec[float64], offset geom.Vec[float64], scale float64) (geom.Vec[float64], error) {
	v, err := ScreenToVertex(s, scale)
	if err != nil {
		return geom.Vec[float64]{}, err
	}
	return VertexToPixeloid(v, offset), nil
}
