package scene_test

import (
	"testing"

	"github.com/kjkrol/gokg/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelcanvas/pixeloid/pkg/scene"
)

func TestCanZoomToWithNoObjects(t *testing.T) {
	var guard scene.ScaleSpanGuard
	for _, target := range []float64{0.125, 1, 10, 100} {
		assert.True(t, guard.CanZoomTo(target).Allowed, "target %v", target)
	}
}

func TestCanZoomToSingleCreationScale(t *testing.T) {
	var guard scene.ScaleSpanGuard
	guard.ObjectCreated(10)

	assert.True(t, guard.CanZoomTo(25).Allowed)

	decision := guard.CanZoomTo(26)
	require.False(t, decision.Allowed)
	assert.Contains(t, decision.Reason, "10", "reason names the violating bound")

	// Zooming out is pinned by the max creation scale.
	assert.True(t, guard.CanZoomTo(10-scene.SpanLimit).Allowed)
	assert.False(t, guard.CanZoomTo(10-scene.SpanLimit-1).Allowed)
}

func TestCanZoomToSpansExistingRange(t *testing.T) {
	var guard scene.ScaleSpanGuard
	guard.ObjectCreated(8)
	guard.ObjectCreated(10)

	// The window must contain [8, 10] and the target: [10-15, 8+15].
	assert.True(t, guard.CanZoomTo(23).Allowed)
	assert.False(t, guard.CanZoomTo(24).Allowed)
	assert.True(t, guard.CanZoomTo(-5).Allowed)
	assert.False(t, guard.CanZoomTo(-6).Allowed)
}

func TestDeletingExtremeObjectRelaxesWindow(t *testing.T) {
	s := scene.NewScene()
	low := s.Add(scene.Point{At: geom.NewVec(0, 0)}, scene.Style{}, 2)
	high := s.Add(scene.Point{At: geom.NewVec(1, 1)}, scene.Style{}, 10)
	_ = low

	assert.False(t, s.CanZoomTo(18).Allowed, "window pinned by creation at 10")

	require.True(t, s.Remove(high.ID()))
	min, max, ok := s.ScaleSpan()
	require.True(t, ok)
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 2.0, max, "max recomputed to the next-highest live scale")
	assert.True(t, s.CanZoomTo(17).Allowed)
}

func TestRemovingLastObjectClearsSpan(t *testing.T) {
	s := scene.NewScene()
	obj := s.Add(scene.Point{At: geom.NewVec(0, 0)}, scene.Style{}, 50)
	require.True(t, s.Remove(obj.ID()))

	_, _, ok := s.ScaleSpan()
	assert.False(t, ok)
	assert.True(t, s.CanZoomTo(1).Allowed)
}
