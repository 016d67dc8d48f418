// Package ease provides easing curves, interpolation helpers, and a
// critically damped spring smoother used by the breathing animation.
package ease

import "math"

// InOutSine eases with a smooth start and end.
func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// InOutCubic eases with smooth acceleration and deceleration.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutCubic eases with a fast start and slow end.
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// OutElastic overshoots past the target and settles back.
func OutElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	c4 := (2 * math.Pi) / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

// InQuad eases with a slow start.
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad eases with a slow end.
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Breath is the organic breathing curve: mostly sine with a slight cubic
// influence, which feels more natural than pure sine.
func Breath(t float64) float64 {
	return InOutSine(t)*0.7 + InOutCubic(t)*0.3
}

// Lerp linearly interpolates between a and b, clamping t to [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp(t, 0, 1)
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothDamp moves current toward target like a critically damped spring
// and returns the new value with the updated velocity. smoothTime is the
// approximate time to reach the target (lower is faster) and is floored to
// avoid division blow-up. Based on the Game Programming Gems 4 formulation.
// If the step would overshoot the target, the value snaps to the target and
// the velocity is zeroed.
func SmoothDamp(current, target, velocity, smoothTime, dt float64) (float64, float64) {
	smoothTime = math.Max(smoothTime, 0.0001)
	omega := 2.0 / smoothTime

	x := omega * dt
	exp := 1.0 / (1.0 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (velocity + omega*change) * dt

	velocity = (velocity - omega*temp) * exp
	result := target + (change+temp)*exp

	// Overshoot: the result crossed to the far side of the target.
	if (target-current > 0) == (result > target) {
		return target, 0
	}
	return result, velocity
}

// SmoothDampAngle is SmoothDamp over an angle in radians, taking the
// shortest path around the circle.
func SmoothDampAngle(current, target, velocity, smoothTime, dt float64) (float64, float64) {
	twoPi := 2 * math.Pi
	delta := math.Mod(target-current, twoPi)
	if delta > math.Pi {
		delta -= twoPi
	} else if delta < -math.Pi {
		delta += twoPi
	}
	return SmoothDamp(current, current+delta, velocity, smoothTime, dt)
}

// PulseSine is a sine wave pulse in [0,1] at the given frequency.
func PulseSine(time, frequency float64) float64 {
	return (math.Sin(time*frequency*2*math.Pi) + 1) / 2
}

// PulseTriangle is a triangle wave in [0,1] at the given frequency.
func PulseTriangle(time, frequency float64) float64 {
	t := math.Mod(time*frequency, 1)
	if t < 0.5 {
		return t * 2
	}
	return 2 - t*2
}

// PulseBreath combines three sine harmonics for an organic pulsing effect,
// normalized back into [0,1].
func PulseBreath(time, baseFreq float64) float64 {
	primary := math.Sin(time * baseFreq * 2 * math.Pi)
	secondary := math.Sin(time*baseFreq*0.5*2*math.Pi) * 0.3
	tertiary := math.Sin(time*baseFreq*2.3*2*math.Pi) * 0.1
	return ((primary+secondary+tertiary)/1.4 + 1) / 2
}
