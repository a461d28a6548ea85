package crew

import (
	"math"

	"github.com/nellwatson/go-floorcrew/internal/log"
	"github.com/nellwatson/go-floorcrew/pkg/rig"
)

// updateLOD runs the hysteresis tier machine for one worker. The
// high/medium boundary sits at LODDistance, medium/low at twice that.
// A tier changes only when distance clears the threshold by the
// hysteresis band; crossing the bare threshold does nothing, which is
// what keeps a worker sitting on a boundary from flapping.
func (m *Manager) updateLOD(a *agent, camera rig.Vec3) {
	d := distance3(a.pos, camera)
	a.distanceToCamera = d

	near := m.settings.LODDistance
	far := 2 * near
	band := math.Max(2, 0.1*near)

	next := a.lod
	switch a.lod {
	case LODHigh:
		if d > far+band {
			next = LODLow
		} else if d > near+band {
			next = LODMedium
		}
	case LODMedium:
		if d > far+band {
			next = LODLow
		} else if d < near-band {
			next = LODHigh
		}
	case LODLow:
		if d < near-band {
			next = LODHigh
		} else if d < far-band {
			next = LODMedium
		}
	}

	if next == a.lod {
		return
	}
	a.lod = next
	log.Debug("lod change", "id", a.id, "lod", next.String(), "distance", d)
	if cb := m.lodSubs[a.id]; cb != nil {
		cb(next)
	}
}

func distance3(a, b rig.Vec3) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
