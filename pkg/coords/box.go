package coords

import (
	"math"

	"github.com/kjkrol/gokg/pkg/geom"
)

// BoxToScreen projects integer pixeloid bounds into screen space
// through Vertex space, corner by corner.
func BoxToScreen(b geom.AABB[int], offset geom.Vec[float64], scale float64) geom.AABB[float64] {
	return geom.NewAABB(
		PixeloidToScreen(b.TopLeft, offset, scale),
		PixeloidToScreen(b.BottomRight, offset, scale),
	)
}

// BoxToPixeloid converts screen-space bounds back into integer pixeloid
// bounds. Minima round down and maxima round up, so the result always
// fully covers the fractional screen region it was derived from.
func BoxToPixeloid(b geom.AABB[float64], offset geom.Vec[float64], scale float64) (geom.AABB[int], error) {
	minP, err := ScreenToPixeloid(b.TopLeft, offset, scale)
	if err != nil {
		return geom.AABB[int]{}, err
	}
	maxP, err := ScreenToPixeloid(b.BottomRight, offset, scale)
	if err != nil {
		return geom.AABB[int]{}, err
	}
	return geom.NewAABB(
		geom.NewVec(int(math.Floor(minP.X)), int(math.Floor(minP.Y))),
		geom.NewVec(int(math.Ceil(maxP.X)), int(math.Ceil(maxP.Y))),
	), nil
}

// IntersectBoxF clips two float boxes against each other. The second
// return is false when the intersection has no area.
func IntersectBoxF(a, b geom.AABB[float64]) (geom.AABB[float64], bool) {
	minX := math.Max(a.TopLeft.X, b.TopLeft.X)
	minY := math.Max(a.TopLeft.Y, b.TopLeft.Y)
	maxX := math.Min(a.BottomRight.X, b.BottomRight.X)
	maxY := math.Min(a.BottomRight.Y, b.BottomRight.Y)
	if maxX <= minX || maxY <= minY {
		return geom.AABB[float64]{}, false
	}
	return geom.NewAABB(geom.NewVec(minX, minY), geom.NewVec(maxX, maxY)), true
}

// ContainsBoxF reports whether inner lies entirely within outer,
// boundary included.
func ContainsBoxF(outer, inner geom.AABB[float64]) bool {
	return inner.TopLeft.X >= outer.TopLeft.X &&
		inner.TopLeft.Y >= outer.TopLeft.Y &&
		inner.BottomRight.X <= outer.BottomRight.X &&
		inner.BottomRight.Y <= outer.BottomRight.Y
}

// EmptyBox reports whether integer bounds enclose no pixeloid.
func EmptyBox(b geom.AABB[int]) bool {
	return b.BottomRight.X <= b.TopLeft.X || b.BottomRight.Y <= b.TopLeft.Y
}
