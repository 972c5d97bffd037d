package raster

import (
	"image"
	"image/color"
)

// Surface is a drawable target backed by an RGBA buffer. The interface
// is kept narrow so alternative backends can plug in later.
type Surface interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
	RGBA() *image.RGBA
}

// NewRGBASurface creates a Surface backed by image.RGBA.
func NewRGBASurface(width, height int) Surface {
	return &rgbaSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

type rgbaSurface struct {
	img *image.RGBA
}

func (s *rgbaSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *rgbaSurface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

func (s *rgbaSurface) RGBA() *image.RGBA {
	return s.img
}
