// Package spatial maintains a registry of everything that occupies the
// warehouse floor. Each entity upserts its (x, z) position once per
// frame; proximity queries (nearest forklift, approach detection) read
// the same map. The engine itself is single-threaded per frame, but the
// dashboard reads concurrently, so the map stays behind an RWMutex.
package spatial

import (
	"math"
	"sync"
	"time"
)

// Entity is one tracked occupant of the floor.
type Entity struct {
	ID       string
	Category string
	X, Z     float64

	// Heading is a unit vector estimated from successive position
	// updates; Speed is in world units per second. Both are smoothed
	// so one noisy frame cannot flip the approach predicate.
	HeadingX float64
	HeadingZ float64
	Speed    float64

	LastSeen time.Time
}

// Registry is a category-indexed spatial map.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]*Entity

	// Weight of a new reading when smoothing heading and speed.
	smoothing float64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities:  make(map[string]*Entity),
		smoothing: 0.7,
	}
}

// Register upserts an entity's position. Heading and speed are
// estimated from the previous position when the time delta is sane.
func (r *Registry) Register(id string, x, z float64, category string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	e, ok := r.entities[id]
	if !ok {
		r.entities[id] = &Entity{
			ID:       id,
			Category: category,
			X:        x,
			Z:        z,
			LastSeen: now,
		}
		return
	}

	dt := now.Sub(e.LastSeen).Seconds()
	if dt > 0 && dt < 1.0 {
		dx := x - e.X
		dz := z - e.Z
		dist := math.Hypot(dx, dz)
		speed := dist / dt

		e.Speed = r.smoothing*speed + (1-r.smoothing)*e.Speed
		if dist > 1e-6 {
			hx := dx / dist
			hz := dz / dist
			e.HeadingX = r.smoothing*hx + (1-r.smoothing)*e.HeadingX
			e.HeadingZ = r.smoothing*hz + (1-r.smoothing)*e.HeadingZ
			// Re-normalize so the predicate sees a unit vector.
			if m := math.Hypot(e.HeadingX, e.HeadingZ); m > 1e-6 {
				e.HeadingX /= m
				e.HeadingZ /= m
			}
		}
	}

	e.Category = category
	e.X = x
	e.Z = z
	e.LastSeen = now
}

// Unregister removes an entity.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entities, id)
}

// NearestForklift returns a snapshot of the closest forklift within
// maxRange of (x, z), or nil when none is in range.
func (r *Registry) NearestForklift(x, z, maxRange float64) *Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *Entity
	bestDist := maxRange
	for _, e := range r.entities {
		if e.Category != "forklift" {
			continue
		}
		d := math.Hypot(e.X-x, e.Z-z)
		if d <= bestDist {
			bestDist = d
			best = e
		}
	}
	if best == nil {
		return nil
	}
	snapshot := *best
	return &snapshot
}

// ForkliftApproaching reports whether the forklift's heading points at
// the position (x, z). A forklift that is slow or past the worker does
// not count as approaching.
func (r *Registry) ForkliftApproaching(x, z float64, e *Entity) bool {
	if e == nil {
		return false
	}
	if e.Speed < 0.2 {
		return false
	}

	dx := x - e.X
	dz := z - e.Z
	dist := math.Hypot(dx, dz)
	if dist < 1e-6 {
		return true
	}

	// Cosine between heading and the forklift-to-worker vector.
	dot := (e.HeadingX*dx + e.HeadingZ*dz) / dist
	return dot > 0.5
}

// Entities returns snapshots of every entity in a category. An empty
// category returns everything.
func (r *Registry) Entities(category string) []Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entity, 0, len(r.entities))
	for _, e := range r.entities {
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// Count returns the number of registered entities.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}
