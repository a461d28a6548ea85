package crew

import (
	"math"
	"math/rand"

	"github.com/nellwatson/go-floorcrew/pkg/gait"
)

// updateBehavior runs the priority-ordered decision logic for one
// worker. Exactly one branch governs movement per frame: evacuation
// over evasion over locomotion, never blended.
func (m *Manager) updateBehavior(a *agent, dt float64) {
	a.stateTransition = gait.Clamp(a.stateTransition+dt/stateTransitionTime, 0, 1)

	if m.settings.EvacuationActive {
		if m.updateEvacuation(a, dt) {
			return
		}
	} else if a.hasEvacuated || a.evacuationTarget != nil {
		// Drill over: resume normal behavior.
		a.hasEvacuated = false
		a.evacuationTarget = nil
		a.markedEvacuated = false
	}

	if m.updateEvasion(a, dt) {
		return
	}

	m.updateLocomotion(a, dt)
}

// updateEvacuation steers the worker straight-line to the nearest exit.
// Returns false only when evacuation cannot act this frame (exit lookup
// not wired yet), in which case lower-priority behavior proceeds.
func (m *Manager) updateEvacuation(a *agent, dt float64) bool {
	if a.hasEvacuated {
		// Already out: stand by the exit.
		a.setState(StateIdle)
		a.walkCycle = gait.WrapPhase(a.walkCycle + breathingAdvance*dt)
		return true
	}

	if a.evacuationTarget == nil {
		if m.settings.NearestExit == nil {
			return false
		}
		a.evacuationTarget = m.settings.NearestExit(a.pos.X, a.pos.Z)
		if a.evacuationTarget == nil {
			return false
		}
	}

	dx := a.evacuationTarget.X - a.pos.X
	dz := a.evacuationTarget.Z - a.pos.Z
	dist := math.Hypot(dx, dz)

	if dist < evacuationArrive {
		a.hasEvacuated = true
		a.setState(StateIdle)
		if !a.markedEvacuated && m.settings.MarkEvacuated != nil {
			a.markedEvacuated = true
			m.settings.MarkEvacuated(a.id)
		}
		return true
	}

	step := evacuationSpeed * dt
	if step >= dist {
		a.pos.X = a.evacuationTarget.X
		a.pos.Z = a.evacuationTarget.Z
	} else {
		a.pos.X += dx / dist * step
		a.pos.Z += dz / dist * step
	}
	a.yaw = math.Atan2(dx, dz)
	a.walkCycle = gait.WrapPhase(a.walkCycle + cadence(a.speed)*runFactor*dt)
	a.setState(StateRunning)
	return true
}

// updateEvasion handles forklift avoidance. Detection runs on a
// modulo-frame schedule; movement runs every frame while an episode is
// active. Returns true while evasion governs movement.
func (m *Manager) updateEvasion(a *agent, dt float64) bool {
	if m.frame%uint64(m.forkliftEvery) == 0 {
		m.checkForklift(a)
	}

	if a.isEvading {
		target := a.baseX + a.evadeDirection*evasionDistance
		a.pos.X = gait.MoveToward(a.pos.X, target, evasionSpeed*dt)
		a.walkCycle = gait.WrapPhase(a.walkCycle + cadence(a.speed)*evasionCadence*dt)
		a.setState(StateWalking)
		return true
	}

	if a.evadeCooldown > 0 {
		// Ease back into the lane while normal behavior resumes.
		a.evadeCooldown -= dt
		a.pos.X = gait.MoveToward(a.pos.X, a.baseX, evasionSpeed*0.5*dt)
		if a.evadeCooldown <= 0 {
			a.wasEvading = false
		}
	}
	return false
}

// checkForklift evaluates the proximity threat once per detection
// interval and maintains the episode flags.
func (m *Manager) checkForklift(a *agent) {
	if m.registry == nil {
		return
	}

	fl := m.registry.NearestForklift(a.pos.X, a.pos.Z, forkliftRange)
	approaching := fl != nil && m.registry.ForkliftApproaching(a.pos.X, a.pos.Z, fl)

	if !approaching {
		a.headTarget *= headTargetDecay
		if a.isEvading {
			a.isEvading = false
			a.wasEvading = true
			a.evadeCooldown = evasionCooldown
			a.isStartled = false
			// Hazard gone: sometimes acknowledge the driver.
			if m.rng.Float64() < waveChance {
				a.isWaving = true
				a.waveTimer = waveDuration
				a.wavePhase = 0
			}
		}
		return
	}

	if !a.isEvading {
		// First frame of the episode: lock the side to step toward via
		// the cross product of the forklift heading and the
		// forklift-to-worker vector. Cached for the whole episode so
		// mid-episode geometry changes cannot flip-flop the worker.
		cross := fl.HeadingZ*(a.pos.X-fl.X) - fl.HeadingX*(a.pos.Z-fl.Z)
		if cross >= 0 {
			a.evadeDirection = 1
		} else {
			a.evadeDirection = -1
		}
		a.isEvading = true
		a.wasEvading = false
		a.evadeCooldown = 0
		// A new threat cancels an in-progress wave.
		a.isWaving = false
		a.waveTimer = 0
	}

	if math.Hypot(fl.X-a.pos.X, fl.Z-a.pos.Z) < startleRadius {
		a.isStartled = true
	}

	// Track the hazard with the head, clamped to what a neck can do.
	look := gait.WrapAngle(math.Atan2(fl.X-a.pos.X, fl.Z-a.pos.Z) - a.yaw)
	a.headTarget = gait.Clamp(look, -math.Pi/2, math.Pi/2)
}

// updateLocomotion is the ambient idle/walk cycle.
func (m *Manager) updateLocomotion(a *agent, dt float64) {
	if a.status == StatusBreak {
		// Break overrides the timers entirely.
		a.setState(StateSitting)
		a.walkCycle = gait.WrapPhase(a.walkCycle + breathingAdvance*dt)
		return
	}
	if a.state == StateSitting {
		// Break just ended: stand for a short beat before walking.
		a.setState(StateIdle)
		a.idleDuration = rollRange(m.rng, interruptIdleMin, interruptIdleMax)
		a.idleTimer = a.idleDuration
	}

	switch a.state {
	case StateIdle:
		a.walkCycle = gait.WrapPhase(a.walkCycle + breathingAdvance*dt)
		a.idleTimer -= dt
		if a.idleTimer <= 0 {
			a.setState(StateWalking)
			a.idleDuration = rollRange(m.rng, idleDwellMin, idleDwellMax)
			a.idleTimer = a.idleDuration
		}

	case StateWalking, StateRunning:
		// Elapsed-time hazard rather than a per-call coin flip, so
		// pacing does not depend on the driver's frame rate.
		if m.rng.Float64() < 1-math.Exp(-walkInterruptHazard*dt) {
			a.setState(StateIdle)
			a.idleDuration = rollRange(m.rng, interruptIdleMin, interruptIdleMax)
			a.idleTimer = a.idleDuration
			return
		}

		if a.status == StatusResponding {
			a.setState(StateRunning)
		} else if a.state == StateRunning {
			a.setState(StateWalking)
		}

		speed := a.speed
		cad := cadence(a.speed)
		if a.state == StateRunning {
			speed *= runFactor
			cad *= runFactor
		}

		a.pos.Z += speed * a.direction * dt
		a.walkCycle = gait.WrapPhase(a.walkCycle + cad*dt)

		// Boundary bounce, not pathfinding. Clamping inside the bound
		// guarantees the flip happens once per crossing.
		if a.pos.Z > worldBound {
			a.pos.Z = worldBound
			a.direction = -a.direction
		} else if a.pos.Z < -worldBound {
			a.pos.Z = -worldBound
			a.direction = -a.direction
		}
		a.yaw = facingYaw(a.direction)
	}
}

func rollRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
