package crew

import "math"

// updateAmbient runs the cheap always-on features (tier 2) and, at high
// LOD only, the secondary-motion flourishes (tier 3).
func (m *Manager) updateAmbient(a *agent, dt float64) {
	a.shiftTime += dt

	// Fatigue accrues over the shift and recovers on break, capped to
	// its band either way.
	rate := maxFatigue / fatigueFullShift
	if a.status == StatusBreak {
		a.fatigue -= rate * fatigueRecovery * dt
	} else {
		a.fatigue += rate * dt
	}
	if a.fatigue < 0 {
		a.fatigue = 0
	} else if a.fatigue > maxFatigue {
		a.fatigue = maxFatigue
	}

	// Cycle the idle micro-variation.
	a.variationTimer -= dt
	if a.variationTimer <= 0 {
		a.variation = idleVariation(m.rng.Intn(3))
		a.variationTimer = rollRange(m.rng, variationMin, variationMax)
	}

	// Wave bookkeeping runs at every tier so a wave started near the
	// camera finishes correctly after the worker drops a tier.
	if a.isWaving {
		a.wavePhase += waveRate * dt
		a.waveTimer -= dt
		if a.waveTimer <= 0 {
			a.isWaving = false
		}
	}

	if a.lod == LODHigh {
		m.updateBlink(a, dt)
		applySecondaryMotion(a)
	}
}

// updateBlink drives the eyelid scale through a short closing envelope
// on a randomized interval.
func (m *Manager) updateBlink(a *agent, dt float64) {
	if a.blinkPhase > 0 {
		a.blinkPhase -= dt
		if a.blinkPhase < 0 {
			a.blinkPhase = 0
		}
	} else {
		a.blinkTimer -= dt
		if a.blinkTimer <= 0 {
			a.blinkPhase = blinkDuration
			a.blinkTimer = rollRange(m.rng, blinkMin, blinkMax)
		}
	}

	if !a.bindings.HasDetail() {
		return
	}

	// Triangular envelope: fully closed at the midpoint of the blink.
	openness := 1.0
	if a.blinkPhase > 0 {
		half := blinkDuration / 2
		openness = math.Abs(a.blinkPhase-half) / half
	}
	if lid := a.bindings.Detail.LeftEyelid; lid != nil {
		lid.Scale.Y = openness
	}
	if lid := a.bindings.Detail.RightEyelid; lid != nil {
		lid.Scale.Y = openness
	}
}

// applySecondaryMotion adds the high-LOD head-bob and hip-sway layered
// on the pose while the worker is moving.
func applySecondaryMotion(a *agent) {
	b := a.bindings
	if !a.moving() {
		if b.Head != nil {
			b.Head.Position.Y = 0
		}
		return
	}
	if b.Head != nil {
		b.Head.Position.Y = 0.01 * math.Sin(2*a.walkCycle)
	}
	if b.Pelvis != nil {
		b.Pelvis.Position.X += 0.015 * math.Sin(a.walkCycle)
	}
}
