package texture

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
	"github.com/pixelcanvas/pixeloid/pkg/visibility"
)

const (
	// DefaultHardLimit is the per-side texel ceiling above which
	// extraction fails rather than allocating.
	DefaultHardLimit = 8192
	// DefaultSoftLimit is the per-side texel target above which
	// extraction still succeeds but logs a warning.
	DefaultSoftLimit = 4096
)

// Entry is the one texture a live object may hold. Keyed by object ID
// only, never by scale: zooming replaces the texture, it does not add
// a second one.
type Entry struct {
	Handle          Handle
	GeometryVersion uint64
	Scale           float64
	PixelSize       geom.Vec[int]
	Bounds          geom.AABB[int]
}

// Manager owns the per-object textures and the external rasterizer.
// Extraction always covers the object's full bounds; clipping to the
// visible portion happens only at display-region selection. Extracting
// a visibility-clipped sub-region instead would break the 1:1 mapping
// between pixeloid units and texture pixels and squash geometry when a
// partially visible object is zoomed.
type Manager struct {
	mu         sync.Mutex
	entries    map[uint64]*Entry
	rasterizer Rasterizer
	hardLimit  int
	softLimit  int
}

func NewManager(r Rasterizer, hardLimit, softLimit int) *Manager {
	if hardLimit <= 0 {
		hardLimit = DefaultHardLimit
	}
	if softLimit <= 0 || softLimit > hardLimit {
		softLimit = minInt(DefaultSoftLimit, hardLimit)
	}
	return &Manager{
		entries:    make(map[uint64]*Entry),
		rasterizer: r,
		hardLimit:  hardLimit,
		softLimit:  softLimit,
	}
}

// Ensure returns a texture for the object at the given scale,
// re-extracting when the entry is absent, the geometry version moved
// on, or the extracted scale differs. On failure the previous entry is
// kept and returned alongside the error, so the renderer can keep
// presenting it instead of flashing an empty frame.
func (m *Manager) Ensure(obj *scene.Object, scale float64) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := m.entries[obj.ID()]
	if entry != nil && entry.GeometryVersion == obj.Version() && entry.Scale == scale {
		return entry, nil
	}

	bounds := obj.Bounds()
	dims := PixelDims(bounds, scale)
	if dims.X > m.hardLimit || dims.Y > m.hardLimit {
		return entry, &TooLargeError{
			ObjectID: obj.ID(),
			Width:    dims.X,
			Height:   dims.Y,
			Limit:    m.hardLimit,
		}
	}
	if dims.X > m.softLimit || dims.Y > m.softLimit {
		pixeloid.Logger().Warn("texture above soft size target",
			"object", obj.ID(), "width", dims.X, "height", dims.Y, "soft_limit", m.softLimit)
	}

	handle, err := m.rasterizer.Extract(obj.Shape(), obj.Style(), bounds, scale)
	if err != nil {
		return entry, fmt.Errorf("texture: extract object %d: %w", obj.ID(), err)
	}
	pixeloid.Logger().Debug("texture extracted",
		"object", obj.ID(), "scale", scale, "width", dims.X, "height", dims.Y)

	// The stale handle stays referenced until the replacement is in
	// place, avoiding a visible flash between frames.
	if entry != nil && entry.Handle != nil {
		entry.Handle.Release()
	}
	fresh := &Entry{
		Handle:          handle,
		GeometryVersion: obj.Version(),
		Scale:           scale,
		PixelSize:       handle.PixelSize(),
		Bounds:          bounds,
	}
	m.entries[obj.ID()] = fresh
	return fresh, nil
}

// Remove releases the object's texture synchronously. Safe to call for
// unknown handles.
func (m *Manager) Remove(objectID uint64) {
	m.mu.Lock()
	entry := m.entries[objectID]
	delete(m.entries, objectID)
	m.mu.Unlock()
	if entry != nil && entry.Handle != nil {
		entry.Handle.Release()
	}
}

// Len returns the number of live textures.
func (m *Manager) Len() int {
	m.mu.Lock()
	n := len(m.entries)
	m.mu.Unlock()
	return n
}

// Close releases every texture. The manager stays usable afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[uint64]*Entry)
	m.mu.Unlock()
	for _, entry := range entries {
		if entry.Handle != nil {
			entry.Handle.Release()
		}
	}
}

// RegionFor selects the sub-rectangle of the full texture to display
// for a visibility result. The offset of the visible sub-rectangle
// within the full bounds is scaled into texture-pixel units at the
// scale the texture was extracted at. The second return is false for
// offscreen objects, which the renderer skips entirely.
func RegionFor(entry *Entry, result visibility.Result) (image.Rectangle, bool) {
	if entry == nil {
		return image.Rectangle{}, false
	}
	switch result.Verdict {
	case visibility.Offscreen:
		return image.Rectangle{}, false
	case visibility.FullyOnscreen:
		return image.Rect(0, 0, entry.PixelSize.X, entry.PixelSize.Y), true
	}

	if result.OnScreenBounds == nil {
		return image.Rectangle{}, false
	}
	visible := *result.OnScreenBounds
	minX := int(math.Floor(float64(visible.TopLeft.X-entry.Bounds.TopLeft.X) * entry.Scale))
	minY := int(math.Floor(float64(visible.TopLeft.Y-entry.Bounds.TopLeft.Y) * entry.Scale))
	maxX := int(math.Ceil(float64(visible.BottomRight.X-entry.Bounds.TopLeft.X) * entry.Scale))
	maxY := int(math.Ceil(float64(visible.BottomRight.Y-entry.Bounds.TopLeft.Y) * entry.Scale))

	region := image.Rect(minX, minY, maxX, maxY).
		Intersect(image.Rect(0, 0, entry.PixelSize.X, entry.PixelSize.Y))
	if region.Empty() {
		return image.Rectangle{}, false
	}
	return region, true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
