// Package render composes the engine's per-frame draw list onto an
// RGBA frame. It is a thin drawing layer: all visibility and texture
// decisions were already made by the engine.
package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/pixelcanvas/pixeloid"
	"github.com/pixelcanvas/pixeloid/pkg/engine"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
)

// imageSource is satisfied by CPU texture handles that expose their
// pixels. GPU-backed handles would get their own compositor.
type imageSource interface {
	Image() *image.RGBA
}

// Compositor draws frames for one engine.
type Compositor struct {
	engine     *engine.Engine
	background color.Color
}

func NewCompositor(e *engine.Engine, background color.Color) *Compositor {
	if background == nil {
		background = color.White
	}
	return &Compositor{engine: e, background: background}
}

// Frame queries the engine once and composes the visible objects onto
// a fresh RGBA image of the viewport's screen size.
func (c *Compositor) Frame() (*image.RGBA, error) {
	view := c.engine.Viewport().Snapshot()
	commands, err := c.engine.VisibleObjectsAt()
	if err != nil {
		return nil, err
	}

	frame := image.NewRGBA(image.Rect(0, 0, view.ScreenSize.X, view.ScreenSize.Y))
	xdraw.Draw(frame, frame.Bounds(), image.NewUniform(c.background), image.Point{}, xdraw.Src)

	for _, cmd := range commands {
		c.drawCommand(frame, cmd, view)
	}
	return frame, nil
}

func (c *Compositor) drawCommand(frame *image.RGBA, cmd engine.DrawCommand, view scene.ViewportState) {
	source, ok := cmd.Texture.(imageSource)
	if !ok || source.Image() == nil {
		pixeloid.Logger().Warn("texture handle has no CPU pixels", "object", cmd.Object.ID())
		return
	}
	src := source.Image()

	dstX := int(math.Round(cmd.ScreenPos.X))
	dstY := int(math.Round(cmd.ScreenPos.Y))

	if cmd.TextureScale == view.Scale {
		dstRect := image.Rect(dstX, dstY, dstX+cmd.Region.Dx(), dstY+cmd.Region.Dy())
		xdraw.Copy(frame, dstRect.Min, src, cmd.Region, xdraw.Over, nil)
		return
	}

	// Stale texture extracted at a different scale: present it anyway,
	// rescaled, until the engine re-extracts.
	factor := view.Scale / cmd.TextureScale
	dstW := int(math.Round(float64(cmd.Region.Dx()) * factor))
	dstH := int(math.Round(float64(cmd.Region.Dy()) * factor))
	if dstW < 1 || dstH < 1 {
		return
	}
	dstRect := image.Rect(dstX, dstY, dstX+dstW, dstY+dstH)
	xdraw.NearestNeighbor.Scale(frame, dstRect, src, cmd.Region, xdraw.Over, nil)
}
