package raster_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/kjkrol/gokg/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelcanvas/pixeloid/internal/raster"
	"github.com/pixelcanvas/pixeloid/pkg/coords"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
	"github.com/pixelcanvas/pixeloid/pkg/texture"
)

var (
	fill   = color.RGBA{255, 0, 0, 255}
	stroke = color.RGBA{0, 0, 255, 255}
	styled = scene.Style{Fill: fill, Stroke: stroke}
)

func extract(t *testing.T, shape scene.Shape, style scene.Style, scale float64) *image.RGBA {
	t.Helper()
	handle, err := raster.New().Extract(shape, style, shape.Bounds(), scale)
	require.NoError(t, err)
	source, ok := handle.(interface{ Image() *image.RGBA })
	require.True(t, ok)
	return source.Image()
}

func TestExtractSizesTextureFromFullBounds(t *testing.T) {
	shape := scene.Rectangle{Min: geom.NewVec(0, 0), Max: geom.NewVec(10, 20)}
	for _, scale := range []float64{0.5, 1, 2, 3} {
		img := extract(t, shape, styled, scale)
		want := texture.PixelDims(shape.Bounds(), scale)
		assert.Equal(t, want.X, img.Bounds().Dx(), "scale %v", scale)
		assert.Equal(t, want.Y, img.Bounds().Dy(), "scale %v", scale)
	}
}

func TestExtractRejectsNonPositiveScale(t *testing.T) {
	shape := scene.Point{At: geom.NewVec(0, 0)}
	_, err := raster.New().Extract(shape, styled, shape.Bounds(), 0)
	var domainErr *coords.DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestRectangleFillAndStroke(t *testing.T) {
	shape := scene.Rectangle{Min: geom.NewVec(0, 0), Max: geom.NewVec(10, 10)}
	img := extract(t, shape, styled, 1)

	assert.Equal(t, stroke, img.RGBAAt(0, 0), "border cell is stroked")
	assert.Equal(t, stroke, img.RGBAAt(9, 9))
	assert.Equal(t, fill, img.RGBAAt(5, 5), "interior cell is filled")
}

func TestCellBlocksScaleWithZoom(t *testing.T) {
	// At scale 4 every covered pixeloid becomes a 4x4 pixel block, so
	// the interior color holds across the whole block.
	shape := scene.Rectangle{Min: geom.NewVec(0, 0), Max: geom.NewVec(4, 4)}
	img := extract(t, shape, styled, 4)

	require.Equal(t, 16, img.Bounds().Dx())
	for py := 4; py < 8; py++ {
		for px := 4; px < 8; px++ {
			assert.Equal(t, fill, img.RGBAAt(px, py), "pixel %d,%d", px, py)
		}
	}
}

func TestCircleCoverage(t *testing.T) {
	shape := scene.Circle{Center: geom.NewVec(5, 5), Radius: 5}
	img := extract(t, shape, styled, 1)

	center := img.RGBAAt(5, 5)
	assert.Equal(t, fill, center)
	corner := img.RGBAAt(0, 0)
	assert.Equal(t, uint8(0), corner.A, "bounding-box corner stays transparent")
}

func TestDiamondCoverage(t *testing.T) {
	shape := scene.Diamond{Center: geom.NewVec(5, 5), RadiusX: 5, RadiusY: 5}
	img := extract(t, shape, styled, 1)

	assert.Equal(t, fill, img.RGBAAt(5, 5))
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.RGBAAt(10, 10).A)
}

func TestLineUsesStroke(t *testing.T) {
	shape := scene.Line{From: geom.NewVec(0, 0), To: geom.NewVec(9, 0)}
	img := extract(t, shape, scene.Style{Stroke: stroke}, 1)

	for x := 0; x < 10; x++ {
		assert.Equal(t, stroke, img.RGBAAt(x, 0), "x=%d", x)
	}
}

func TestPointTexture(t *testing.T) {
	shape := scene.Point{At: geom.NewVec(7, 7)}
	img := extract(t, shape, scene.Style{Stroke: stroke}, 1)

	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 1, img.Bounds().Dy())
	assert.Equal(t, stroke, img.RGBAAt(0, 0))
}

func TestReleaseDropsPixels(t *testing.T) {
	shape := scene.Point{At: geom.NewVec(0, 0)}
	handle, err := raster.New().Extract(shape, styled, shape.Bounds(), 1)
	require.NoError(t, err)

	handle.Release()
	source := handle.(interface{ Image() *image.RGBA })
	assert.Nil(t, source.Image())
}
