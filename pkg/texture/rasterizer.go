// Package texture owns one extracted render texture per object, decides
// when re-extraction is required and selects the sub-region of the full
// texture to display for the current visibility verdict.
package texture

import (
	"fmt"
	"math"

	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid/pkg/scene"
)

// Handle is an extracted texture owned by the Manager. The concrete
// type belongs to the rasterizer backend; the manager only sizes and
// releases it.
type Handle interface {
	// PixelSize is the texture extent in texture pixels.
	PixelSize() geom.Vec[int]
	// Release frees the backing resource. Called exactly once, by the
	// manager, when the entry is replaced or its object deleted.
	Release()
}

// Rasterizer is the external extraction capability. The returned
// texture must be sized exactly PixelDims(bounds, scale).
type Rasterizer interface {
	Extract(shape scene.Shape, style scene.Style, bounds geom.AABB[int], scale float64) (Handle, error)
}

// PixelDims computes the texture extent for pixeloid bounds extracted
// at a scale. Degenerate bounds still occupy one texel per axis, so a
// point object stays drawable.
func PixelDims(bounds geom.AABB[int], scale float64) geom.Vec[int] {
	w := int(math.Ceil(float64(bounds.BottomRight.X-bounds.TopLeft.X) * scale))
	h := int(math.Ceil(float64(bounds.BottomRight.Y-bounds.TopLeft.Y) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return geom.NewVec(w, h)
}

// TooLargeError reports an extraction rejected by the size guard before
// any allocation was attempted. Recoverable: the renderer skips the
// object for the frame.
type TooLargeError struct {
	ObjectID      uint64
	Width, Height int
	Limit         int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("texture: object %d needs %dx%d texels, limit is %d per side",
		e.ObjectID, e.Width, e.Height, e.Limit)
}
