package visibility

import (
	"math"
	"sync"

	"github.com/pixelcanvas/pixeloid"
	"github.com/pixelcanvas/pixeloid/pkg/scene"
)

// DefaultScalesPerObject caps how many zoom levels keep a memoized
// entry per object. Rapid zoom oscillation between a few levels stays
// warm; scales not revisited fall out by access time.
const DefaultScalesPerObject = 4

// Entry is a memoized classification, valid while both the object
// geometry and the viewport are unchanged.
type Entry struct {
	Result          Result
	GeometryVersion uint64
	ViewportVersion uint64
	Scale           float64
	atime           int64
}

type scaleKey int64

// scaleBucket quantizes a scale for use as a cache key, absorbing
// float jitter from repeated multiplication during zoom.
func scaleBucket(scale float64) scaleKey {
	return scaleKey(math.Round(scale * 1e6))
}

// Cache memoizes classification results per (object, scale bucket).
// A miss is never an error; it is the normal trigger to reclassify.
type Cache struct {
	mu        sync.Mutex
	perObject map[uint64]map[scaleKey]*Entry
	maxScales int
	tick      int64
}

func NewCache(maxScalesPerObject int) *Cache {
	if maxScalesPerObject <= 0 {
		maxScalesPerObject = DefaultScalesPerObject
	}
	return &Cache{
		perObject: make(map[uint64]map[scaleKey]*Entry),
		maxScales: maxScalesPerObject,
	}
}

// Get returns the memoized entry for the object at the snapshot's
// scale, reclassifying when the entry is absent, the geometry version
// moved on, or the viewport changed since computation.
func (c *Cache) Get(obj *scene.Object, view scene.ViewportState) (Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := scaleBucket(view.Scale)
	entries := c.perObject[obj.ID()]
	if entry, ok := entries[key]; ok {
		if entry.GeometryVersion == obj.Version() && entry.ViewportVersion == view.Version {
			c.tick++
			entry.atime = c.tick
			return *entry, nil
		}
	}

	result, err := Classify(obj.Bounds(), view)
	if err != nil {
		return Entry{}, err
	}
	pixeloid.Logger().Debug("visibility recomputed",
		"object", obj.ID(), "scale", view.Scale, "verdict", result.Verdict.String())

	if entries == nil {
		entries = make(map[scaleKey]*Entry, c.maxScales)
		c.perObject[obj.ID()] = entries
	}
	c.tick++
	entries[key] = &Entry{
		Result:          result,
		GeometryVersion: obj.Version(),
		ViewportVersion: view.Version,
		Scale:           view.Scale,
		atime:           c.tick,
	}
	if len(entries) > c.maxScales {
		c.evictOldestLocked(entries)
	}
	return *entries[key], nil
}

// Remove drops all entries of a deleted object.
func (c *Cache) Remove(objectID uint64) {
	c.mu.Lock()
	delete(c.perObject, objectID)
	c.mu.Unlock()
}

// Scales returns how many zoom levels are cached for an object.
func (c *Cache) Scales(objectID uint64) int {
	c.mu.Lock()
	n := len(c.perObject[objectID])
	c.mu.Unlock()
	return n
}

func (c *Cache) evictOldestLocked(entries map[scaleKey]*Entry) {
	var oldestKey scaleKey
	oldest := int64(math.MaxInt64)
	for key, entry := range entries {
		if entry.atime < oldest {
			oldest = entry.atime
			oldestKey = key
		}
	}
	delete(entries, oldestKey)
}
