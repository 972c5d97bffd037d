// Package scene owns the live object collection, the viewport camera
// and the scale-span guard. Geometry is authored in pixeloid space;
// every edit bumps a per-object version counter that the visibility and
// texture caches use for staleness checks.
package scene

import (
	"sync"

	"github.com/pixelcanvas/pixeloid"
)

// Scene is the arena of live objects, addressed by stable uint64
// handles. It also owns the scale-span state, since deletion of an
// extreme object must relax the allowed zoom window.
type Scene struct {
	mu      sync.RWMutex
	objects map[uint64]*Object
	order   []uint64
	span    ScaleSpanGuard
}

func NewScene() *Scene {
	return &Scene{objects: make(map[uint64]*Object)}
}

// Add creates an object from a shape and style, recording the viewport
// scale in effect at creation time.
func (s *Scene) Add(shape Shape, style Style, createdAtScale float64) *Object {
	obj := newObject(shape, style, createdAtScale)
	s.mu.Lock()
	s.objects[obj.id] = obj
	s.order = append(s.order, obj.id)
	s.span.ObjectCreated(createdAtScale)
	s.mu.Unlock()
	pixeloid.Logger().Info("object created",
		"id", obj.id, "kind", shape.Kind().String(), "scale", createdAtScale)
	return obj
}

// Remove deletes an object and recomputes the scale span over the
// remaining objects. Returns false when the handle is unknown.
func (s *Scene) Remove(id uint64) bool {
	s.mu.Lock()
	obj, ok := s.objects[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.objects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	scales := make([]float64, 0, len(s.order))
	for _, oid := range s.order {
		scales = append(scales, s.objects[oid].createdAtScale)
	}
	s.span.Recompute(scales)
	s.mu.Unlock()
	pixeloid.Logger().Info("object deleted", "id", obj.id)
	return true
}

// Get looks up an object by handle.
func (s *Scene) Get(id uint64) (*Object, bool) {
	s.mu.RLock()
	obj, ok := s.objects[id]
	s.mu.RUnlock()
	return obj, ok
}

// Each visits live objects in insertion order.
func (s *Scene) Each(visit func(*Object)) {
	s.mu.RLock()
	snapshot := make([]*Object, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.objects[id])
	}
	s.mu.RUnlock()
	for _, obj := range snapshot {
		visit(obj)
	}
}

func (s *Scene) Len() int {
	s.mu.RLock()
	n := len(s.objects)
	s.mu.RUnlock()
	return n
}

// CanZoomTo consults the scale-span guard.
func (s *Scene) CanZoomTo(target float64) ZoomDecision {
	s.mu.RLock()
	decision := s.span.CanZoomTo(target)
	s.mu.RUnlock()
	return decision
}

// ScaleSpan returns the creation-scale range of live objects.
func (s *Scene) ScaleSpan() (min, max float64, ok bool) {
	s.mu.RLock()
	min, max, ok = s.span.Span()
	s.mu.RUnlock()
	return min, max, ok
}
