// Package engine wires the scene, the visibility cache and the texture
// cache behind the renderer-facing query API. All recomputation is
// synchronous and driven by the frame that observes a geometry or
// camera change; version counters make the staleness checks race-free
// on the single logical render thread.
package engine

import (
	"errors"
	"fmt"
	"image"

	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid"
	"github.com/pixelcanvas/pixeloid/pkg/coords"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
	"github.com/pixelcanvas/pixeloid/pkg/texture"
	"github.com/pixelcanvas/pixeloid/pkg/visibility"
)

// Config carries the engine limits. Zero values fall back to the
// package defaults; internal/config loads overrides from the
// environment for the demo binary.
type Config struct {
	ScreenSize      geom.Vec[int]
	MinScale        float64
	MaxTextureSide  int
	SoftTextureSide int
	ScalesPerObject int
}

// Engine is the scale-aware visibility and texture-cache engine.
type Engine struct {
	scene    *scene.Scene
	viewport *scene.Viewport
	vis      *visibility.Cache
	textures *texture.Manager
}

func New(cfg Config, rasterizer texture.Rasterizer) (*Engine, error) {
	if rasterizer == nil {
		return nil, fmt.Errorf("engine: rasterizer is required")
	}
	if cfg.ScreenSize.X <= 0 || cfg.ScreenSize.Y <= 0 {
		return nil, &coords.DomainError{Op: "new engine", Reason: "degenerate screen size"}
	}
	return &Engine{
		scene:    scene.NewScene(),
		viewport: scene.NewViewport(cfg.ScreenSize, cfg.MinScale),
		vis:      visibility.NewCache(cfg.ScalesPerObject),
		textures: texture.NewManager(rasterizer, cfg.MaxTextureSide, cfg.SoftTextureSide),
	}, nil
}

func (e *Engine) Scene() *scene.Scene { return e.scene }

func (e *Engine) Viewport() *scene.Viewport { return e.viewport }

// CreateObject adds an object authored at the current zoom scale.
func (e *Engine) CreateObject(shape scene.Shape, style scene.Style) *scene.Object {
	return e.scene.Add(shape, style, e.viewport.Scale())
}

// DeleteObject removes the object, releases its texture synchronously
// and drops its visibility entries. The scene recomputes the scale
// span over the remaining objects.
func (e *Engine) DeleteObject(id uint64) bool {
	if !e.scene.Remove(id) {
		return false
	}
	e.vis.Remove(id)
	e.textures.Remove(id)
	return true
}

// EditObject applies a mutation to the object. The object's version
// bump makes both caches recompute lazily on the next frame.
func (e *Engine) EditObject(id uint64, mutate func(*scene.Object)) bool {
	obj, ok := e.scene.Get(id)
	if !ok {
		return false
	}
	mutate(obj)
	return true
}

// CanZoomTo reports whether a zoom to target would stay inside both
// the viewport's scale floor and the creation-scale span of live
// objects. Blocked is a rejected action, not a fault.
func (e *Engine) CanZoomTo(target float64) scene.ZoomDecision {
	if target < e.viewport.MinScale() {
		return scene.ZoomDecision{
			Reason: fmt.Sprintf("zoom to %v is below the minimum scale %v", target, e.viewport.MinScale()),
		}
	}
	return e.scene.CanZoomTo(target)
}

// Zoom commits a new scale after consulting CanZoomTo. The returned
// decision carries the reason when the zoom was rejected.
func (e *Engine) Zoom(target float64) (scene.ZoomDecision, error) {
	decision := e.CanZoomTo(target)
	if !decision.Allowed {
		pixeloid.Logger().Info("zoom blocked", "target", target, "reason", decision.Reason)
		return decision, nil
	}
	if err := e.viewport.SetScale(target); err != nil {
		return scene.ZoomDecision{}, err
	}
	return decision, nil
}

// Pan moves the viewport offset by a pixeloid delta.
func (e *Engine) Pan(dx, dy float64) {
	e.viewport.Pan(dx, dy)
}

// DrawCommand tells the drawing layer which texture region to show at
// which screen position for one visible object.
type DrawCommand struct {
	Object *scene.Object
	// Texture is the full-bounds texture; Region selects the part to
	// display in texture pixels.
	Texture texture.Handle
	Region  image.Rectangle
	// ScreenPos is the top-left corner of the region on screen.
	ScreenPos geom.Vec[float64]
	// TextureScale is the scale the texture was extracted at. It lags
	// the viewport scale when the last extraction failed and the
	// previous texture is presented instead; the compositor rescales.
	TextureScale float64
}

// VisibleObjectsAt produces the draw list for the current frame.
// Visibility is refreshed for an object before its texture region is
// selected, always in that order within the same frame. Offscreen
// objects are skipped; objects whose texture exceeds the hard size
// ceiling are skipped for the frame and logged.
func (e *Engine) VisibleObjectsAt() ([]DrawCommand, error) {
	view := e.viewport.Snapshot()
	commands := make([]DrawCommand, 0, e.scene.Len())
	var classifyErr error

	e.scene.Each(func(obj *scene.Object) {
		if classifyErr != nil {
			return
		}
		entry, err := e.vis.Get(obj, view)
		if err != nil {
			classifyErr = err
			return
		}
		if entry.Result.Verdict == visibility.Offscreen {
			return
		}

		tex, err := e.textures.Ensure(obj, view.Scale)
		var tooLarge *texture.TooLargeError
		if errors.As(err, &tooLarge) {
			pixeloid.Logger().Warn("object skipped for frame", "object", obj.ID(), "reason", err.Error())
			return
		}
		if err != nil && tex == nil {
			pixeloid.Logger().Warn("extraction failed with no fallback texture",
				"object", obj.ID(), "error", err.Error())
			return
		}
		if err != nil {
			// Keep presenting the previous texture until a later
			// frame re-extracts successfully.
			pixeloid.Logger().Debug("presenting stale texture",
				"object", obj.ID(), "texture_scale", tex.Scale, "error", err.Error())
		}

		region, ok := texture.RegionFor(tex, entry.Result)
		if !ok {
			return
		}
		anchor := obj.Bounds().TopLeft
		if entry.Result.Verdict == visibility.PartiallyOnscreen {
			anchor = entry.Result.OnScreenBounds.TopLeft
		}
		commands = append(commands, DrawCommand{
			Object:       obj,
			Texture:      tex.Handle,
			Region:       region,
			ScreenPos:    coords.PixeloidToScreen(anchor, view.Offset, view.Scale),
			TextureScale: tex.Scale,
		})
	})

	if classifyErr != nil {
		return nil, classifyErr
	}
	return commands, nil
}

// Close releases every texture held by the engine.
func (e *Engine) Close() {
	e.textures.Close()
}
