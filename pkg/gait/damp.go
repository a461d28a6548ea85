package gait

import "math"

// Damp moves current toward target with an exponential approach over the
// given time constant. Joint targets are never assigned directly; every
// animated value goes through this so motion stays continuous even though
// targets update discretely per frame.
//
// A time constant of zero (or less) snaps to the target.
func Damp(current, target, timeConstant, dt float64) float64 {
	if timeConstant <= 0 {
		return target
	}
	return target + (current-target)*math.Exp(-dt/timeConstant)
}

// DampAngle is Damp over the shortest angular path, for yaw-like values
// that wrap at ±pi.
func DampAngle(current, target, timeConstant, dt float64) float64 {
	diff := WrapAngle(target - current)
	return WrapAngle(current + (diff - diff*math.Exp(-dt/timeConstantOr(timeConstant))))
}

func timeConstantOr(tau float64) float64 {
	if tau <= 0 {
		return 1e-9
	}
	return tau
}

// WrapAngle normalizes an angle to (-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// WrapPhase wraps a cycle phase accumulator to [0, 2*pi).
func WrapPhase(p float64) float64 {
	p = math.Mod(p, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MoveToward steps current toward target by at most maxDelta, without
// overshooting. Used for straight-line steering (evacuation, evasion).
func MoveToward(current, target, maxDelta float64) float64 {
	diff := target - current
	if math.Abs(diff) <= maxDelta {
		return target
	}
	if diff > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

// lerp performs linear interpolation between two values.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
