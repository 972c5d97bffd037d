package scene

import "github.com/kjkrol/gokg/pkg/geom"

// ShapeKind identifies a geometry variant.
type ShapeKind uint8

const (
	KindPoint ShapeKind = iota
	KindLine
	KindRectangle
	KindCircle
	KindDiamond
)

func (k ShapeKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindDiamond:
		return "diamond"
	}
	return "unknown"
}

// Shape is a geometry variant authored in pixeloid space.
type Shape interface {
	Kind() ShapeKind
	// Bounds derives the axis-aligned pixeloid bounding box. For a
	// point the box is degenerate (min == max).
	Bounds() geom.AABB[int]
	// Translate returns the shape moved by d pixeloids.
	Translate(d geom.Vec[int]) Shape
}

// Point is a single pixeloid.
type Point struct {
	At geom.Vec[int]
}

func (p Point) Kind() ShapeKind { return KindPoint }

func (p Point) Bounds() geom.AABB[int] {
	return geom.NewAABB(p.At, p.At)
}

func (p Point) Translate(d geom.Vec[int]) Shape {
	return Point{At: p.At.Add(d)}
}

// Line is a straight segment between two pixeloids, endpoints included.
type Line struct {
	From, To geom.Vec[int]
}

func (l Line) Kind() ShapeKind { return KindLine }

// Bounds is half-open past the farthest covered cell, so a horizontal
// or vertical line still encloses area.
func (l Line) Bounds() geom.AABB[int] {
	return geom.NewAABB(
		geom.NewVec(minInt(l.From.X, l.To.X), minInt(l.From.Y, l.To.Y)),
		geom.NewVec(maxInt(l.From.X, l.To.X)+1, maxInt(l.From.Y, l.To.Y)+1),
	)
}

func (l Line) Translate(d geom.Vec[int]) Shape {
	return Line{From: l.From.Add(d), To: l.To.Add(d)}
}

// Rectangle is an axis-aligned filled box covering the pixeloid cells
// in [Min, Max), Max exclusive. Corners authored swapped are
// normalized by Bounds.
type Rectangle struct {
	Min, Max geom.Vec[int]
}

func (r Rectangle) Kind() ShapeKind { return KindRectangle }

func (r Rectangle) Bounds() geom.AABB[int] {
	return geom.NewAABB(
		geom.NewVec(minInt(r.Min.X, r.Max.X), minInt(r.Min.Y, r.Max.Y)),
		geom.NewVec(maxInt(r.Min.X, r.Max.X), maxInt(r.Min.Y, r.Max.Y)),
	)
}

func (r Rectangle) Translate(d geom.Vec[int]) Shape {
	return Rectangle{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Circle is a filled disc with an integer pixeloid radius.
type Circle struct {
	Center geom.Vec[int]
	Radius int
}

func (c Circle) Kind() ShapeKind { return KindCircle }

func (c Circle) Bounds() geom.AABB[int] {
	r := c.Radius
	if r < 0 {
		r = 0
	}
	return geom.NewAABB(
		geom.NewVec(c.Center.X-r, c.Center.Y-r),
		geom.NewVec(c.Center.X+r+1, c.Center.Y+r+1),
	)
}

func (c Circle) Translate(d geom.Vec[int]) Shape {
	return Circle{Center: c.Center.Add(d), Radius: c.Radius}
}

// Diamond is a filled rhombus with axis-aligned diagonals.
type Diamond struct {
	Center           geom.Vec[int]
	RadiusX, RadiusY int
}

func (d Diamond) Kind() ShapeKind { return KindDiamond }

func (d Diamond) Bounds() geom.AABB[int] {
	rx := maxInt(d.RadiusX, 0)
	ry := maxInt(d.RadiusY, 0)
	return geom.NewAABB(
		geom.NewVec(d.Center.X-rx, d.Center.Y-ry),
		geom.NewVec(d.Center.X+rx+1, d.Center.Y+ry+1),
	)
}

func (d Diamond) Translate(delta geom.Vec[int]) Shape {
	return Diamond{Center: d.Center.Add(delta), RadiusX: d.RadiusX, RadiusY: d.RadiusY}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
