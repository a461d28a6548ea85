package crew

import (
	"math"

	"github.com/nellwatson/go-floorcrew/pkg/gait"
)

// updatePose computes this frame's joint targets and damps the worker's
// pose toward them. Skipped entirely at low LOD.
func (m *Manager) updatePose(a *agent, dt float64) {
	target := m.targetPose(a, a.state)
	if a.stateTransition < 1 {
		prev := m.targetPose(a, a.prevState)
		target = gait.LerpPose(prev, target, a.stateTransition)
	}

	// Idle micro-variation biases ride on top of the base targets and
	// reach the rig through the same damping as everything else.
	if a.state == StateIdle {
		switch a.variation {
		case variationBreathing:
			target.TorsoPitch += 0.02 * math.Sin(a.shiftTime*1.6)
		case variationLooking:
			target.HeadYaw += 0.35 * math.Sin(a.shiftTime*0.7)
		case variationShifting:
			target.PelvisOffset += 0.03 * math.Sin(a.shiftTime*1.2)
		}
	}

	if a.isStartled {
		// Defensive pose replaces the gait targets wholesale; the head
		// keeps tracking the hazard.
		target = gait.Startled()
		target.HeadYaw = a.headTarget
	} else {
		target.HeadYaw += a.headTarget
	}

	if a.isWaving {
		// The wave replaces only the right arm; the rest of the gait
		// carries on underneath it.
		target.RightShoulder = waveBase + waveAmp*math.Sin(a.wavePhase)
	}

	tau := walkTimeConstant
	if a.state == StateRunning {
		tau = runTimeConstant
	}
	a.pose = gait.Approach(a.pose, target, tau, dt)

	applyPose(a)
}

// targetPose is the raw target for one behavior state at the worker's
// current cycle phase, with the gait blended toward the tired preset in
// proportion to accrued fatigue.
func (m *Manager) targetPose(a *agent, s State) gait.Pose {
	if s == StateSitting {
		return gait.Sitting()
	}
	var base gait.Params
	switch s {
	case StateWalking:
		base = gait.Walk
	case StateRunning:
		base = gait.Run
	default:
		base = gait.Idle
	}
	eff := gait.Lerp(base, gait.Tired, a.fatigue/maxFatigue)
	return gait.Compute(a.walkCycle, eff)
}

// applyPose writes the damped pose onto whatever joints the current rig
// actually has. Reduced rigs simply have fewer handles to write.
func applyPose(a *agent) {
	b := a.bindings
	p := a.pose

	if b.LeftHip != nil {
		b.LeftHip.Rotation.X = p.LeftHip
	}
	if b.LeftKnee != nil {
		b.LeftKnee.Rotation.X = p.LeftKnee
	}
	if b.RightHip != nil {
		b.RightHip.Rotation.X = p.RightHip
	}
	if b.RightKnee != nil {
		b.RightKnee.Rotation.X = p.RightKnee
	}
	if b.LeftShoulder != nil {
		b.LeftShoulder.Rotation.X = p.LeftShoulder
	}
	if b.RightShoulder != nil {
		b.RightShoulder.Rotation.X = p.RightShoulder
	}
	if b.Torso != nil {
		b.Torso.Rotation.X = p.TorsoPitch
		b.Torso.Rotation.Y = p.TorsoYaw
		b.Torso.Rotation.Z = p.TorsoRoll
	}
	if b.Pelvis != nil {
		b.Pelvis.Rotation.Y = p.PelvisYaw
		b.Pelvis.Position.X = p.PelvisOffset
	}
	if b.Head != nil {
		b.Head.Rotation.X = p.HeadPitch
		b.Head.Rotation.Y = p.HeadYaw
	}
}
