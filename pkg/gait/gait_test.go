package gait

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamp_ConvergesWithoutOvershoot(t *testing.T) {
	current := 0.0
	target := 1.0

	for i := 0; i < 200; i++ {
		next := Damp(current, target, 0.2, 0.016)
		require.GreaterOrEqual(t, next, current, "damped approach went backward")
		require.LessOrEqual(t, next, target, "damped approach overshot")
		current = next
	}
	assert.InDelta(t, target, current, 0.01)
}

func TestDamp_ZeroTimeConstantSnaps(t *testing.T) {
	assert.Equal(t, 5.0, Damp(1.0, 5.0, 0, 0.016))
}

func TestDamp_ShorterTauIsFaster(t *testing.T) {
	slow := Damp(0, 1, 0.2, 0.016)
	fast := Damp(0, 1, 0.12, 0.016)
	assert.Greater(t, fast, slow)
}

func TestDampAngle_TakesShortestPath(t *testing.T) {
	// From just below +pi toward just above -pi: the short way crosses
	// the wrap, so the value should move further positive, not swing
	// all the way around.
	next := DampAngle(3.0, -3.0, 0.1, 0.05)
	assert.Greater(t, math.Abs(next), 3.0)
}

func TestWrapPhase(t *testing.T) {
	assert.InDelta(t, 1.0, WrapPhase(1.0+2*math.Pi), 1e-9)
	assert.InDelta(t, 2*math.Pi-1, WrapPhase(-1.0), 1e-9)
	assert.GreaterOrEqual(t, WrapPhase(-0.001), 0.0)
}

func TestMoveToward_NoOvershoot(t *testing.T) {
	assert.Equal(t, 1.0, MoveToward(0, 1, 5))
	assert.Equal(t, 0.5, MoveToward(0, 1, 0.5))
	assert.Equal(t, -0.5, MoveToward(0, -1, 0.5))
}

func TestCompute_LegsRunInAntiphase(t *testing.T) {
	pose := Compute(0.7, Walk)
	assert.InDelta(t, pose.LeftHip, -pose.RightHip, 1e-9)
}

func TestCompute_KneesNeverHyperextend(t *testing.T) {
	for phase := 0.0; phase < 2*math.Pi; phase += 0.1 {
		pose := Compute(phase, Run)
		assert.GreaterOrEqual(t, pose.LeftKnee, 0.0)
		assert.GreaterOrEqual(t, pose.RightKnee, 0.0)
	}
}

func TestCompute_IsPure(t *testing.T) {
	a := Compute(1.3, Walk)
	b := Compute(1.3, Walk)
	assert.Equal(t, a, b)
}

func TestLerp_Endpoints(t *testing.T) {
	assert.Equal(t, Walk, Lerp(Walk, Tired, 0))
	assert.InDelta(t, Tired.HipSwing, Lerp(Walk, Tired, 1).HipSwing, 1e-12)
	assert.InDelta(t, Tired.HipSwing, Lerp(Walk, Tired, 2).HipSwing, 1e-12, "t is clamped")
}

func TestLerp_TiredBlendShortensStride(t *testing.T) {
	half := Lerp(Walk, Tired, 0.5)
	assert.Less(t, half.HipSwing, Walk.HipSwing)
	assert.Greater(t, half.HeadPitch, Walk.HeadPitch)
}

func TestLerpPose_Endpoints(t *testing.T) {
	a := Compute(0.5, Walk)
	b := Compute(0.5, Run)
	assert.Equal(t, a, LerpPose(a, b, 0))
	assert.InDelta(t, b.LeftHip, LerpPose(a, b, 1).LeftHip, 1e-12)
	assert.InDelta(t, b.TorsoPitch, LerpPose(a, b, 1).TorsoPitch, 1e-12)
}

func TestApproach_MovesEveryJointTowardTarget(t *testing.T) {
	var current Pose
	target := Compute(1.0, Run)

	for i := 0; i < 400; i++ {
		current = Approach(current, target, 0.12, 0.016)
	}

	assert.InDelta(t, target.LeftHip, current.LeftHip, 0.01)
	assert.InDelta(t, target.RightShoulder, current.RightShoulder, 0.01)
	assert.InDelta(t, target.TorsoPitch, current.TorsoPitch, 0.01)
	assert.InDelta(t, target.PelvisOffset, current.PelvisOffset, 0.01)
}

func TestStartled_RaisesBothArms(t *testing.T) {
	p := Startled()
	assert.Less(t, p.LeftShoulder, -1.0)
	assert.Less(t, p.RightShoulder, -1.0)
}

func TestSitting_BendsKnees(t *testing.T) {
	p := Sitting()
	assert.Greater(t, p.LeftKnee, 1.0)
	assert.Less(t, p.LeftHip, -1.0)
}
