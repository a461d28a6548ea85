// Package gait computes full-body joint target poses from a cycle phase
// and a set of gait parameters, and provides the damped-approach
// primitive used to apply those targets to bound transforms.
package gait

import "math"

// Pose is a full-body set of joint targets. Angles are radians;
// PelvisOffset is a lateral offset in world units.
type Pose struct {
	LeftHip   float64
	LeftKnee  float64
	RightHip  float64
	RightKnee float64

	LeftShoulder  float64
	RightShoulder float64

	TorsoPitch float64
	TorsoYaw   float64
	TorsoRoll  float64

	PelvisYaw    float64
	PelvisOffset float64

	HeadPitch float64
	HeadYaw   float64
}

// Compute returns the target pose at the given cycle phase (radians)
// for one parameter set. Pure: no state, no randomness.
//
// The two legs run half a cycle apart; arms counter-swing against their
// same-side leg; the torso counter-rotates against the pelvis.
func Compute(phase float64, p Params) Pose {
	s := math.Sin(phase)
	sOpp := math.Sin(phase + math.Pi)

	pelvisYaw := p.PelvisYaw * s

	return Pose{
		LeftHip:   p.HipSwing * s,
		LeftKnee:  p.KneeBend * bendProfile(phase),
		RightHip:  p.HipSwing * sOpp,
		RightKnee: p.KneeBend * bendProfile(phase+math.Pi),

		LeftShoulder:  p.ArmSwing * sOpp,
		RightShoulder: p.ArmSwing * s,

		TorsoPitch: p.TorsoPitch,
		TorsoYaw:   -p.TorsoTwist * s,
		TorsoRoll:  p.TorsoSway * math.Sin(phase*0.5),

		PelvisYaw:    pelvisYaw,
		PelvisOffset: p.PelvisSway * s,

		HeadPitch: p.HeadPitch,
	}
}

// bendProfile shapes knee flexion over the cycle: the knee bends only
// while its leg swings forward, staying near straight in stance.
func bendProfile(phase float64) float64 {
	v := math.Sin(phase)
	if v < 0 {
		return 0
	}
	return v
}

// Sitting is the static pose used while a worker is on break. It is a
// target like any other and gets there through the same damping.
func Sitting() Pose {
	return Pose{
		LeftHip:   -1.40,
		LeftKnee:  1.50,
		RightHip:  -1.40,
		RightKnee: 1.50,

		LeftShoulder:  0.15,
		RightShoulder: 0.15,

		TorsoPitch: 0.10,
		HeadPitch:  0.05,
	}
}

// Startled is the fixed defensive pose applied while a forklift passes
// too close: weight dropped, arms raised, head tracking the hazard.
func Startled() Pose {
	return Pose{
		LeftHip:   -0.35,
		LeftKnee:  0.55,
		RightHip:  -0.35,
		RightKnee: 0.55,

		LeftShoulder:  -1.10,
		RightShoulder: -1.10,

		TorsoPitch: -0.12,
		HeadPitch:  -0.10,
	}
}

// LerpPose interpolates two poses; t clamped to [0, 1]. Used for the
// state-transition blend between the previous and current behavior
// state's targets.
func LerpPose(a, b Pose, t float64) Pose {
	t = Clamp(t, 0, 1)
	return Pose{
		LeftHip:   lerp(a.LeftHip, b.LeftHip, t),
		LeftKnee:  lerp(a.LeftKnee, b.LeftKnee, t),
		RightHip:  lerp(a.RightHip, b.RightHip, t),
		RightKnee: lerp(a.RightKnee, b.RightKnee, t),

		LeftShoulder:  lerp(a.LeftShoulder, b.LeftShoulder, t),
		RightShoulder: lerp(a.RightShoulder, b.RightShoulder, t),

		TorsoPitch: lerp(a.TorsoPitch, b.TorsoPitch, t),
		TorsoYaw:   lerp(a.TorsoYaw, b.TorsoYaw, t),
		TorsoRoll:  lerp(a.TorsoRoll, b.TorsoRoll, t),

		PelvisYaw:    lerp(a.PelvisYaw, b.PelvisYaw, t),
		PelvisOffset: lerp(a.PelvisOffset, b.PelvisOffset, t),

		HeadPitch: lerp(a.HeadPitch, b.HeadPitch, t),
		HeadYaw:   lerp(a.HeadYaw, b.HeadYaw, t),
	}
}

// Approach damps every joint of current toward target with one shared
// time constant.
func Approach(current, target Pose, timeConstant, dt float64) Pose {
	d := func(c, t float64) float64 { return Damp(c, t, timeConstant, dt) }
	return Pose{
		LeftHip:   d(current.LeftHip, target.LeftHip),
		LeftKnee:  d(current.LeftKnee, target.LeftKnee),
		RightHip:  d(current.RightHip, target.RightHip),
		RightKnee: d(current.RightKnee, target.RightKnee),

		LeftShoulder:  d(current.LeftShoulder, target.LeftShoulder),
		RightShoulder: d(current.RightShoulder, target.RightShoulder),

		TorsoPitch: d(current.TorsoPitch, target.TorsoPitch),
		TorsoYaw:   d(current.TorsoYaw, target.TorsoYaw),
		TorsoRoll:  d(current.TorsoRoll, target.TorsoRoll),

		PelvisYaw:    d(current.PelvisYaw, target.PelvisYaw),
		PelvisOffset: d(current.PelvisOffset, target.PelvisOffset),

		HeadPitch: d(current.HeadPitch, target.HeadPitch),
		HeadYaw:   d(current.HeadYaw, target.HeadYaw),
	}
}
