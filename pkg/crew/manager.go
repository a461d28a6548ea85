package crew

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/nellwatson/go-floorcrew/internal/log"
	"github.com/nellwatson/go-floorcrew/pkg/rig"
	"github.com/nellwatson/go-floorcrew/pkg/spatial"
	"github.com/nellwatson/go-floorcrew/pkg/throttle"
)

// SpatialRegistry is the floor-occupancy collaborator. The Manager
// publishes every worker's (x, z) once per processed frame and queries
// it for nearby forklifts.
type SpatialRegistry interface {
	Register(id string, x, z float64, category string)
	Unregister(id string)
	NearestForklift(x, z, maxRange float64) *spatial.Entity
	ForkliftApproaching(x, z float64, e *spatial.Entity) bool
}

// Manager owns the worker registry and composes behavior, pose and LOD
// inside Update. One Manager per scene; state is fully partitioned per
// worker id, and all of Update runs on the caller's goroutine.
type Manager struct {
	registry SpatialRegistry
	rng      *rand.Rand

	agents  map[string]*agent
	lodSubs map[string]func(LOD)

	settings Settings
	counter  throttle.Counter
	frame    uint64 // processed frames (skipped frames do not count)

	// Schedules, in processed frames. Fields so tests can tighten them.
	lodEvery      int
	forkliftEvery int
}

// NewManager creates a Manager bound to a spatial registry. Pass a
// seeded rng for deterministic behavior in tests; nil gets a time seed.
func NewManager(registry SpatialRegistry, rng *rand.Rand) *Manager {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{
		registry: registry,
		rng:      rng,
		agents:   make(map[string]*agent),
		lodSubs:  make(map[string]func(LOD)),
		settings: Settings{
			TabVisible:  true,
			Quality:     "high",
			LODDistance: defaultLODDistance,
		},
		lodEvery:      lodUpdateFrequency,
		forkliftEvery: forkliftCheckFrequency,
	}
}

// Register adds a worker and applies its initial position to the bound
// root transform. The returned disposer unregisters this worker.
// Registering an id twice replaces the earlier worker.
func (m *Manager) Register(cfg Config, bindings *rig.Bindings) func() {
	a := newAgent(cfg, bindings, m.rng)
	a.lodOffset = m.rng.Intn(m.lodEvery)
	m.agents[cfg.ID] = a
	log.Debug("worker registered", "id", cfg.ID, "role", cfg.Role)

	id := cfg.ID
	return func() { m.Unregister(id) }
}

// Unregister removes a worker and its spatial-registry entry. Unknown
// ids are a no-op.
func (m *Manager) Unregister(id string) {
	if _, ok := m.agents[id]; !ok {
		return
	}
	delete(m.agents, id)
	delete(m.lodSubs, id)
	if m.registry != nil {
		m.registry.Unregister(id)
	}
	log.Debug("worker unregistered", "id", id)
}

// UpdateRefs hot-swaps the bound rig, carrying the current root
// position and yaw onto the new root. The rendering layer calls this
// after mounting a different-detail rig on a LOD change; continuity of
// position across the swap is part of the contract.
func (m *Manager) UpdateRefs(id string, newBindings *rig.Bindings) {
	a := m.agents[id]
	if a == nil {
		return
	}
	if newBindings.Ready() {
		if a.bindings.Ready() {
			newBindings.Root.Position = a.bindings.Root.Position
			newBindings.Root.Rotation.Y = a.bindings.Root.Rotation.Y
		} else {
			newBindings.Root.Position = a.pos
			newBindings.Root.Rotation.Y = a.yaw
		}
	}
	a.bindings = newBindings
}

// OnLODChange registers the callback fired when the worker's detail
// tier changes. One callback per worker; later calls replace earlier.
func (m *Manager) OnLODChange(id string, cb func(LOD)) {
	m.lodSubs[id] = cb
}

// GetLOD returns the worker's current detail tier.
func (m *Manager) GetLOD(id string) (LOD, bool) {
	a := m.agents[id]
	if a == nil {
		return LODHigh, false
	}
	return a.lod, true
}

// UpdateSettings replaces the frame settings. The driver pushes this
// every frame before Update.
func (m *Manager) UpdateSettings(s Settings) {
	if s.LODDistance <= 0 {
		s.LODDistance = defaultLODDistance
	}
	m.settings = s
}

// UpdateWorkerStatus sets the externally driven work status.
func (m *Manager) UpdateWorkerStatus(id string, status Status) {
	if a := m.agents[id]; a != nil {
		a.status = status
	}
}

// ResetEvacuation clears evacuation state on every worker so the next
// drill starts fresh.
func (m *Manager) ResetEvacuation() {
	for _, a := range m.agents {
		a.hasEvacuated = false
		a.evacuationTarget = nil
		a.markedEvacuated = false
	}
}

// Update is the per-frame tick. delta is seconds since the previous
// frame; camera is the viewer position used for LOD distances.
func (m *Manager) Update(delta float64, camera rig.Vec3) {
	// Hidden tab is a hard pause: zero work, not reduced work.
	if !m.settings.TabVisible {
		return
	}

	// Low quality skips whole frames uniformly so every worker pays
	// the same cost.
	level := throttle.LevelForQuality(m.settings.Quality)
	if !m.counter.ShouldRunThisFrame(level) {
		m.counter.IncrementGlobalFrame()
		return
	}

	if delta > maxFrameDelta {
		delta = maxFrameDelta
	}
	if delta < 0 {
		delta = 0
	}

	for _, a := range m.agents {
		if !a.bindings.Ready() {
			// Rig not mounted yet, or unregistered mid-swap. Not an
			// error, just not ready.
			continue
		}

		if (m.frame+uint64(a.lodOffset))%uint64(m.lodEvery) == 0 {
			m.updateLOD(a, camera)
		}

		m.updateBehavior(a, delta)

		if a.lod != LODLow {
			m.updatePose(a, delta)
		}
		m.updateAmbient(a, delta)

		if m.registry != nil {
			m.registry.Register(a.id, a.pos.X, a.pos.Z, "worker")
		}
		m.applyRoot(a)
	}

	m.frame++
	m.counter.IncrementGlobalFrame()
}

// applyRoot writes the worker's position and facing onto the bound
// root, adding the vertical walk bob while moving.
func (m *Manager) applyRoot(a *agent) {
	root := a.bindings.Root
	root.Position = a.pos
	if a.moving() {
		root.Position.Y = a.pos.Y + bobAmplitude*math.Abs(math.Sin(a.walkCycle))
	}
	root.Rotation.Y = a.yaw
}

// Snapshot returns a sorted, copyable view of every worker. Safe to
// hand to the dashboard; it shares nothing with live state.
func (m *Manager) Snapshot() []Snapshot {
	out := make([]Snapshot, 0, len(m.agents))
	for _, a := range m.agents {
		out = append(out, Snapshot{
			ID:           a.id,
			Role:         a.role,
			Status:       a.status,
			State:        a.state,
			LOD:          a.lod.String(),
			X:            a.pos.X,
			Y:            a.pos.Y,
			Z:            a.pos.Z,
			Yaw:          a.yaw,
			Fatigue:      a.fatigue,
			IsEvading:    a.isEvading,
			IsWaving:     a.isWaving,
			HasEvacuated: a.hasEvacuated,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Census returns population counters for status endpoints.
func (m *Manager) Census() Census {
	c := Census{Total: len(m.agents)}
	for _, a := range m.agents {
		switch a.lod {
		case LODHigh:
			c.High++
		case LODMedium:
			c.Medium++
		case LODLow:
			c.Low++
		}
		if a.hasEvacuated {
			c.Evacuated++
		}
		if a.isEvading {
			c.Evading++
		}
	}
	return c
}
