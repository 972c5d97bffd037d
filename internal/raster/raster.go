// Package raster is the built-in software rasterizer backend. It
// implements the texture extraction capability on plain RGBA buffers:
// shapes are walked cell by cell in pixeloid space and every covered
// cell is painted as a scale-sized block of texture pixels, which keeps
// the 1:1 mapping between pixeloid units and texture area at any zoom.
package raster

import (
	"image"

	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid/pkg/coords"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
	"github.com/pixelcanvas/pixeloid/pkg/texture"
)

// Software rasterizes shapes on the CPU. Stateless; one instance can
// serve any number of extractions.
type Software struct{}

func New() *Software { return &Software{} }

// Extract rasterizes the shape over its full pixeloid bounds into a
// texture of exactly texture.PixelDims(bounds, scale) pixels.
func (*Software) Extract(shape scene.Shape, style scene.Style, bounds geom.AABB[int], scale float64) (texture.Handle, error) {
	if err := coords.ValidateScale("extract", scale); err != nil {
		return nil, err
	}
	dims := texture.PixelDims(bounds, scale)
	surface := NewRGBASurface(dims.X, dims.Y)
	paintShape(surface, shape, style, bounds, scale)
	return &imageTexture{img: surface.RGBA(), size: dims}, nil
}

// imageTexture is the CPU texture handle. The frame compositor reaches
// the pixels through the Image method.
type imageTexture struct {
	img  *image.RGBA
	size geom.Vec[int]
}

func (t *imageTexture) PixelSize() geom.Vec[int] { return t.size }

func (t *imageTexture) Image() *image.RGBA { return t.img }

func (t *imageTexture) Release() { t.img = nil }
