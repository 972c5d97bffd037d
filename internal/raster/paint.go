package raster

import (
	"image/color"
	"math"

	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid/pkg/scene"
)

func paintShape(surface Surface, shape scene.Shape, style scene.Style, bounds geom.AABB[int], scale float64) {
	switch s := shape.(type) {
	case scene.Point:
		paintCell(surface, bounds, scale, s.At.X, s.At.Y, strokeOrFill(style))
	case scene.Line:
		col := strokeOrFill(style)
		for _, cell := range bresenhamCells(s.From, s.To) {
			paintCell(surface, bounds, scale, cell.X, cell.Y, col)
		}
	case scene.Rectangle:
		paintFilled(surface, bounds, scale, style, insideRectangle(s))
	case scene.Circle:
		paintFilled(surface, bounds, scale, style, insideCircle(s))
	case scene.Diamond:
		paintFilled(surface, bounds, scale, style, insideDiamond(s))
	}
}

func strokeOrFill(style scene.Style) color.Color {
	if style.Stroke != nil {
		return style.Stroke
	}
	return style.Fill
}

// paintFilled walks every cell of the bounds, fills cells the predicate
// covers and strokes covered cells that touch an uncovered neighbour.
func paintFilled(surface Surface, bounds geom.AABB[int], scale float64, style scene.Style, inside func(x, y int) bool) {
	for y := bounds.TopLeft.Y; y < bounds.BottomRight.Y; y++ {
		for x := bounds.TopLeft.X; x < bounds.BottomRight.X; x++ {
			if !inside(x, y) {
				continue
			}
			col := style.Fill
			if style.Stroke != nil && isEdgeCell(inside, x, y) {
				col = style.Stroke
			}
			paintCell(surface, bounds, scale, x, y, col)
		}
	}
}

func isEdgeCell(inside func(x, y int) bool, x, y int) bool {
	return !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1)
}

func insideRectangle(r scene.Rectangle) func(x, y int) bool {
	b := r.Bounds()
	return func(x, y int) bool {
		return x >= b.TopLeft.X && x < b.BottomRight.X &&
			y >= b.TopLeft.Y && y < b.BottomRight.Y
	}
}

func insideCircle(c scene.Circle) func(x, y int) bool {
	r := c.Radius
	return func(x, y int) bool {
		dx := x - c.Center.X
		dy := y - c.Center.Y
		return dx*dx+dy*dy <= r*r
	}
}

func insideDiamond(d scene.Diamond) func(x, y int) bool {
	rx := d.RadiusX
	ry := d.RadiusY
	return func(x, y int) bool {
		dx := absInt(x - d.Center.X)
		dy := absInt(y - d.Center.Y)
		if rx == 0 || ry == 0 {
			return dx <= rx && dy <= ry
		}
		return dx*ry+dy*rx <= rx*ry
	}
}

// paintCell fills the block of texture pixels that one pixeloid cell
// maps to at the given scale. Below scale 1 several cells land on the
// same pixel; the block still covers at least one.
func paintCell(surface Surface, bounds geom.AABB[int], scale float64, x, y int, col color.Color) {
	if col == nil {
		return
	}
	x0 := int(math.Floor(float64(x-bounds.TopLeft.X) * scale))
	y0 := int(math.Floor(float64(y-bounds.TopLeft.Y) * scale))
	x1 := int(math.Floor(float64(x+1-bounds.TopLeft.X) * scale))
	y1 := int(math.Floor(float64(y+1-bounds.TopLeft.Y) * scale))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	rect := surface.Bounds()
	for py := y0; py < y1; py++ {
		if py < rect.Min.Y || py >= rect.Max.Y {
			continue
		}
		for px := x0; px < x1; px++ {
			if px < rect.Min.X || px >= rect.Max.X {
				continue
			}
			surface.Set(px, py, col)
		}
	}
}

// bresenhamCells lists the pixeloid cells a segment covers.
func bresenhamCells(start, end geom.Vec[int]) []geom.Vec[int] {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	sy := -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	cells := make([]geom.Vec[int], 0, maxInt(dx, dy)+1)
	for {
		cells = append(cells, geom.NewVec(x0, y0))
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
	return cells
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
