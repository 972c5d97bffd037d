package scene

import "fmt"

// SpanLimit is the widest allowed window of zoom scales relative to the
// creation scales of live objects. It exists purely to bound the
// worst-case texture size the texture cache would otherwise have to
// reject outright.
const SpanLimit = 15.0

// ZoomDecision is the answer to a zoom request. A blocked zoom is a
// rejected user action, not a fault.
type ZoomDecision struct {
	Allowed bool
	Reason  string
}

// Allowed is the positive zoom decision.
func allowed() ZoomDecision { return ZoomDecision{Allowed: true} }

func blocked(format string, args ...any) ZoomDecision {
	return ZoomDecision{Reason: fmt.Sprintf(format, args...)}
}

// ScaleSpanGuard tracks the range of creation scales over all live
// objects. Not safe for concurrent use on its own; the Scene serializes
// access under its lock.
type ScaleSpanGuard struct {
	min, max float64
	count    int
}

// Count returns the number of creation scales on record.
func (g *ScaleSpanGuard) Count() int { return g.count }

// Span returns the current [minCreationScale, maxCreationScale] range.
// The second return is false when no objects are live.
func (g *ScaleSpanGuard) Span() (min, max float64, ok bool) {
	if g.count == 0 {
		return 0, 0, false
	}
	return g.min, g.max, true
}

// ObjectCreated widens the tracked range to include scale.
func (g *ScaleSpanGuard) ObjectCreated(scale float64) {
	if g.count == 0 {
		g.min, g.max = scale, scale
	} else {
		if scale < g.min {
			g.min = scale
		}
		if scale > g.max {
			g.max = scale
		}
	}
	g.count++
}

// Recompute rebuilds the range from scratch. A deleted extreme object
// may relax the limit, so deletion cannot be handled incrementally.
func (g *ScaleSpanGuard) Recompute(scales []float64) {
	g.count = 0
	for _, s := range scales {
		g.ObjectCreated(s)
	}
}

// CanZoomTo reports whether target keeps every live object within a
// window of SpanLimit scales. With no objects on record any positive
// target is allowed.
func (g *ScaleSpanGuard) CanZoomTo(target float64) ZoomDecision {
	if g.count == 0 {
		return allowed()
	}
	if target < g.max-SpanLimit {
		return blocked("zoom to %v exceeds the scale span: objects created at scale %v allow zooming out no further than %v", target, g.max, g.max-SpanLimit)
	}
	if target > g.min+SpanLimit {
		return blocked("zoom to %v exceeds the scale span: objects created at scale %v allow zooming in no further than %v", target, g.min, g.min+SpanLimit)
	}
	return allowed()
}
