package scene

import (
	"image/color"
	"sync/atomic"

	"github.com/kjkrol/gokg/pkg/geom"
)

var objectIDSeq uint64

// NextObjectID returns a globally unique object ID.
func NextObjectID() uint64 {
	return atomic.AddUint64(&objectIDSeq, 1)
}

// Style carries the paint colors of an object. A nil Fill leaves the
// interior transparent; a nil Stroke leaves outlines unpainted.
type Style struct {
	Fill   color.Color
	Stroke color.Color
}

// Object is a user-authored geometric object. Its geometry version
// increases on every shape, position or style edit; caches compare it
// against the version they captured to detect staleness.
type Object struct {
	id             uint64
	shape          Shape
	style          Style
	bounds         geom.AABB[int]
	version        uint64
	createdAtScale float64
}

func newObject(shape Shape, style Style, createdAtScale float64) *Object {
	return &Object{
		id:             NextObjectID(),
		shape:          shape,
		style:          style,
		bounds:         shape.Bounds(),
		version:        1,
		createdAtScale: createdAtScale,
	}
}

func (o *Object) ID() uint64 { return o.id }

func (o *Object) Shape() Shape { return o.shape }

func (o *Object) Style() Style { return o.style }

// Bounds returns the pixeloid bounding box derived from the shape.
// The box is recomputed on edit, never on read.
func (o *Object) Bounds() geom.AABB[int] { return o.bounds }

// Version returns the current geometry version.
func (o *Object) Version() uint64 { return o.version }

// CreatedAtScale returns the viewport scale in effect when the object
// was created. The scale-span guard aggregates it across the scene.
func (o *Object) CreatedAtScale() float64 { return o.createdAtScale }

// SetShape replaces the geometry and bumps the version.
func (o *Object) SetShape(s Shape) {
	o.shape = s
	o.bounds = s.Bounds()
	o.version++
}

// SetStyle replaces the paint style and bumps the version, since the
// extracted texture depends on it.
func (o *Object) SetStyle(st Style) {
	o.style = st
	o.version++
}

// Translate moves the object by d pixeloids and bumps the version.
func (o *Object) Translate(d geom.Vec[int]) {
	o.SetShape(o.shape.Translate(d))
}
