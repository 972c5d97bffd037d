// Package visibility classifies objects against the viewport and
// memoizes the result per object and zoom scale.
package visibility

import (
	"github.com/kjkrol/gokg/pkg/geom"

	"github.com/pixelcanvas/pixeloid/pkg/coords"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
)

// Verdict classifies an object against the viewport.
type Verdict uint8

const (
	Offscreen Verdict = iota
	PartiallyOnscreen
	FullyOnscreen
)

func (v Verdict) String() string {
	switch v {
	case Offscreen:
		return "offscreen"
	case PartiallyOnscreen:
		return "partially-onscreen"
	case FullyOnscreen:
		return "fully-onscreen"
	}
	return "unknown"
}

// Result is a classification outcome. OnScreenBounds is set only for
// PartiallyOnscreen; a fully visible object implies its full bounds.
type Result struct {
	Verdict        Verdict
	OnScreenBounds *geom.AABB[int]
}

// Classify projects the object bounds into screen space through Vertex
// space, intersects with the screen rectangle and reports the verdict.
// Projection always uses the viewport's offset and scale, never the
// scale the object was created at.
func Classify(bounds geom.AABB[int], view scene.ViewportState) (Result, error) {
	if err := coords.ValidateScale("classify", view.Scale); err != nil {
		return Result{}, err
	}
	if view.ScreenSize.X <= 0 || view.ScreenSize.Y <= 0 {
		return Result{}, &coords.DomainError{Op: "classify", Reason: "degenerate viewport"}
	}

	projected := coords.BoxToScreen(bounds, view.Offset, view.Scale)
	screen := geom.NewAABB(
		geom.NewVec(0.0, 0.0),
		geom.NewVec(float64(view.ScreenSize.X), float64(view.ScreenSize.Y)),
	)

	// A degenerate box never classifies as partial: on or inside the
	// screen boundary it counts as fully visible, otherwise offscreen.
	if coords.EmptyBox(bounds) {
		if coords.ContainsBoxF(screen, projected) {
			return Result{Verdict: FullyOnscreen}, nil
		}
		return Result{Verdict: Offscreen}, nil
	}

	clipped, ok := coords.IntersectBoxF(projected, screen)
	if !ok {
		return Result{Verdict: Offscreen}, nil
	}
	if clipped == projected {
		return Result{Verdict: FullyOnscreen}, nil
	}

	onScreen, err := coords.BoxToPixeloid(clipped, view.Offset, view.Scale)
	if err != nil {
		return Result{}, err
	}
	return Result{Verdict: PartiallyOnscreen, OnScreenBounds: &onScreen}, nil
}
