package scene

import (
	"sync"

	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid/pkg/coords"
)

// DefaultMinScale is the floor for the zoom factor when none is
// configured.
const DefaultMinScale = 0.125

// Viewport is the camera over the pixeloid plane: a floating offset
// (the Vertex-to-Pixeloid translation), a positive zoom scale and the
// screen size in pixels. Every mutation bumps a version counter;
// caches key position-sensitive results on it.
type Viewport struct {
	mu       sync.RWMutex
	offset   geom.Vec[float64]
	scale    float64
	screen   geom.Vec[int]
	minScale float64
	version  uint64
}

// ViewportState is an immutable snapshot of the viewport, taken once
// per frame and passed through classification and texture selection so
// that one frame observes one consistent camera.
type ViewportState struct {
	Offset     geom.Vec[float64]
	Scale      float64
	ScreenSize geom.Vec[int]
	Version    uint64
}

func NewViewport(screenSize geom.Vec[int], minScale float64) *Viewport {
	if minScale <= 0 {
		minScale = DefaultMinScale
	}
	return &Viewport{
		scale:    1,
		screen:   screenSize,
		minScale: minScale,
		version:  1,
	}
}

// Snapshot captures the current camera state.
func (v *Viewport) Snapshot() ViewportState {
	v.mu.RLock()
	state := ViewportState{
		Offset:     v.offset,
		Scale:      v.scale,
		ScreenSize: v.screen,
		Version:    v.version,
	}
	v.mu.RUnlock()
	return state
}

func (v *Viewport) Offset() geom.Vec[float64] {
	v.mu.RLock()
	offset := v.offset
	v.mu.RUnlock()
	return offset
}

func (v *Viewport) Scale() float64 {
	v.mu.RLock()
	scale := v.scale
	v.mu.RUnlock()
	return scale
}

func (v *Viewport) MinScale() float64 { return v.minScale }

func (v *Viewport) ScreenSize() geom.Vec[int] {
	v.mu.RLock()
	screen := v.screen
	v.mu.RUnlock()
	return screen
}

func (v *Viewport) Version() uint64 {
	v.mu.RLock()
	version := v.version
	v.mu.RUnlock()
	return version
}

// SetOffset moves the pan anchor to an absolute pixeloid position.
func (v *Viewport) SetOffset(x, y float64) {
	v.mu.Lock()
	v.setOffsetLocked(geom.NewVec(x, y))
	v.mu.Unlock()
}

// Pan moves the pan anchor by a pixeloid delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.mu.Lock()
	v.setOffsetLocked(geom.NewVec(v.offset.X+dx, v.offset.Y+dy))
	v.mu.Unlock()
}

// SetScale commits a new zoom factor. Callers are expected to consult
// the scale-span guard first; SetScale itself only enforces the
// positive floor.
func (v *Viewport) SetScale(scale float64) error {
	if err := coords.ValidateScale("set scale", scale); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if scale < v.minScale {
		return &coords.DomainError{Op: "set scale", Reason: "scale below viewport minimum"}
	}
	if scale == v.scale {
		return nil
	}
	v.scale = scale
	v.version++
	return nil
}

// Resize changes the screen size in pixels.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	size := geom.NewVec(width, height)
	if size != v.screen {
		v.screen = size
		v.version++
	}
	v.mu.Unlock()
}

func (v *Viewport) setOffsetLocked(offset geom.Vec[float64]) {
	if offset == v.offset {
		return
	}
	v.offset = offset
	v.version++
}
