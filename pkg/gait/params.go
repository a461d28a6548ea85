package gait

// Params describes one locomotion cycle numerically: joint-angle
// amplitudes and constant offsets, all in radians (PelvisSway in world
// units). A Params value plus a cycle phase fully determines a target
// pose, so the calculator stays a pure function.
type Params struct {
	HipSwing  float64 // leg swing amplitude
	KneeBend  float64 // knee flexion amplitude on the trailing leg
	ArmSwing  float64 // counter-swing amplitude at the shoulders

	TorsoPitch float64 // constant forward lean
	TorsoSway  float64 // side-to-side roll amplitude
	TorsoTwist float64 // counter-rotation against the pelvis

	PelvisYaw  float64 // pelvis rotation amplitude
	PelvisSway float64 // lateral pelvis offset amplitude, world units

	HeadPitch float64 // constant head drop
}

// Locomotion presets. Values were tuned by eye against the reference
// warehouse scene; they are amplitudes, not poses.
var (
	// Idle is a near-still stance with just enough torso movement to
	// read as breathing.
	Idle = Params{
		KneeBend:   0.04,
		ArmSwing:   0.02,
		TorsoPitch: 0.02,
		TorsoSway:  0.01,
		HeadPitch:  0.02,
	}

	// Walk is the default working gait.
	Walk = Params{
		HipSwing:   0.50,
		KneeBend:   0.70,
		ArmSwing:   0.40,
		TorsoPitch: 0.05,
		TorsoSway:  0.04,
		TorsoTwist: 0.06,
		PelvisYaw:  0.12,
		PelvisSway: 0.04,
		HeadPitch:  0.02,
	}

	// Run is the evacuation gait: longer stride, heavy arm drive,
	// pronounced forward lean.
	Run = Params{
		HipSwing:   0.85,
		KneeBend:   1.10,
		ArmSwing:   0.90,
		TorsoPitch: 0.28,
		TorsoSway:  0.05,
		TorsoTwist: 0.10,
		PelvisYaw:  0.16,
		PelvisSway: 0.05,
		HeadPitch:  0.04,
	}

	// Tired is the end-of-shift preset the active gait is blended
	// toward as fatigue accrues: shorter shuffling steps, slumped
	// torso, dropped head.
	Tired = Params{
		HipSwing:   0.32,
		KneeBend:   0.45,
		ArmSwing:   0.18,
		TorsoPitch: 0.20,
		TorsoSway:  0.06,
		TorsoTwist: 0.04,
		PelvisYaw:  0.08,
		PelvisSway: 0.06,
		HeadPitch:  0.22,
	}
)

// Lerp interpolates every field of two parameter sets. t is clamped to
// [0, 1].
func Lerp(a, b Params, t float64) Params {
	t = Clamp(t, 0, 1)
	return Params{
		HipSwing:   lerp(a.HipSwing, b.HipSwing, t),
		KneeBend:   lerp(a.KneeBend, b.KneeBend, t),
		ArmSwing:   lerp(a.ArmSwing, b.ArmSwing, t),
		TorsoPitch: lerp(a.TorsoPitch, b.TorsoPitch, t),
		TorsoSway:  lerp(a.TorsoSway, b.TorsoSway, t),
		TorsoTwist: lerp(a.TorsoTwist, b.TorsoTwist, t),
		PelvisYaw:  lerp(a.PelvisYaw, b.PelvisYaw, t),
		PelvisSway: lerp(a.PelvisSway, b.PelvisSway, t),
		HeadPitch:  lerp(a.HeadPitch, b.HeadPitch, t),
	}
}
