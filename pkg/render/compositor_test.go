package render_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/kjkrol/gokg/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelcanvas/pixeloid/internal/raster"
	"github.com/pixelcanvas/pixeloid/pkg/engine"
	"github.com/pixelcanvas/pixeloid/pkg/render"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
	"github.com/pixelcanvas/pixeloid/pkg/texture"
)

var (
	fill       = color.RGBA{200, 40, 40, 255}
	background = color.RGBA{245, 245, 245, 255}
)

func TestFrameComposesVisibleObjects(t *testing.T) {
	eng, err := engine.New(engine.Config{ScreenSize: geom.NewVec(50, 50)}, raster.New())
	require.NoError(t, err)
	t.Cleanup(eng.Close)

	eng.CreateObject(scene.Rectangle{Min: geom.NewVec(10, 10), Max: geom.NewVec(20, 20)}, scene.Style{Fill: fill})
	compositor := render.NewCompositor(eng, background)

	frame, err := compositor.Frame()
	require.NoError(t, err)

	assert.Equal(t, 50, frame.Bounds().Dx())
	assert.Equal(t, fill, frame.RGBAAt(15, 15), "object interior")
	assert.Equal(t, background, frame.RGBAAt(0, 0), "uncovered screen shows the background")
	assert.Equal(t, background, frame.RGBAAt(25, 25))
}

func TestFrameFollowsPan(t *testing.T) {
	eng, err := engine.New(engine.Config{ScreenSize: geom.NewVec(50, 50)}, raster.New())
	require.NoError(t, err)
	t.Cleanup(eng.Close)

	eng.CreateObject(scene.Rectangle{Min: geom.NewVec(10, 10), Max: geom.NewVec(20, 20)}, scene.Style{Fill: fill})
	compositor := render.NewCompositor(eng, background)

	eng.Pan(10, 10)
	frame, err := compositor.Frame()
	require.NoError(t, err)

	assert.Equal(t, fill, frame.RGBAAt(5, 5), "object shifted by the pan")
	assert.Equal(t, background, frame.RGBAAt(15, 15))
}

// failAfterFirst lets one extraction through and fails the rest,
// simulating a rasterizer outage mid-session.
type failAfterFirst struct {
	inner texture.Rasterizer
	calls int
}

func (f *failAfterFirst) Extract(shape scene.Shape, style scene.Style, bounds geom.AABB[int], scale float64) (texture.Handle, error) {
	f.calls++
	if f.calls > 1 {
		return nil, errors.New("rasterizer unavailable")
	}
	return f.inner.Extract(shape, style, bounds, scale)
}

func TestStaleTextureIsPresentedRescaled(t *testing.T) {
	eng, err := engine.New(engine.Config{ScreenSize: geom.NewVec(50, 50)}, &failAfterFirst{inner: raster.New()})
	require.NoError(t, err)
	t.Cleanup(eng.Close)

	eng.CreateObject(scene.Rectangle{Min: geom.NewVec(10, 10), Max: geom.NewVec(20, 20)}, scene.Style{Fill: fill})
	compositor := render.NewCompositor(eng, background)

	_, err = compositor.Frame()
	require.NoError(t, err)

	decision, err := eng.Zoom(2)
	require.NoError(t, err)
	require.True(t, decision.Allowed)

	// Extraction at scale 2 fails, so the scale-1 texture is shown
	// scaled up rather than flashing an empty frame.
	frame, err := compositor.Frame()
	require.NoError(t, err)
	assert.Equal(t, fill, frame.RGBAAt(25, 25), "stale texture drawn at twice the size")
	assert.Equal(t, background, frame.RGBAAt(15, 15), "screen position follows the new scale")
}
