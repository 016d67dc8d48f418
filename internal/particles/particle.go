// Package particles implements the bounded particle field that surrounds
// the breathing circle, with per-phase emitter profiles and per-kind
// motion rules.
package particles

import "math"

// MaxTrailLength bounds the position history kept per particle.
const MaxTrailLength = 8

// Kind selects a particle's motion rule.
type Kind int

const (
	// Standard drifts freely with light damping.
	Standard Kind = iota
	// Inward rushes toward the shared center (inhale).
	Inward
	// Outward disperses from the center like mist (exhale).
	Outward
	// Orbital circles the center at a fixed tangential speed (hold).
	Orbital
	// Ambient is a slow background drifter (rest).
	Ambient
	// Celebration falls under gravity (completion burst).
	Celebration
)

// Point is a 2D position in visualization coordinates.
type Point struct {
	X, Y float64
}

// Particle is a single moving point with a bounded trail.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Trail   []Point
	Kind    Kind
}

// NewParticle creates a particle at (x, y) moving along angle at speed.
func NewParticle(x, y, angle, speed, life, size float64, kind Kind) Particle {
	return Particle{
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Life:    life,
		MaxLife: life,
		Size:    size,
		Trail:   make([]Point, 0, MaxTrailLength),
		Kind:    kind,
	}
}

// Update advances the particle by dt. Center-relative kinds (Inward,
// Orbital) steer against the given center point.
func (p *Particle) Update(dt, centerX, centerY float64) {
	if len(p.Trail) >= MaxTrailLength {
		p.Trail = p.Trail[1:]
	}
	p.Trail = append(p.Trail, Point{p.X, p.Y})

	switch p.Kind {
	case Inward:
		// Constant-force pull toward the center; stronger with distance.
		// The 1.0 floor avoids the singularity at the center. Kept as-is
		// for visual parity with the tuned original behavior.
		dx := centerX - p.X
		dy := centerY - p.Y
		dist := math.Max(math.Hypot(dx, dy), 1.0)
		accel := 15.0 / dist
		p.VX += dx / dist * accel * dt
		p.VY += dy / dist * accel * dt
	case Outward:
		// Slight deceleration for a mist effect.
		p.VX *= 0.98
		p.VY *= 0.98
	case Orbital:
		// Velocity is overwritten, not integrated: exactly tangential at a
		// fixed speed, so the orbit stays circular no matter what happened
		// to the particle before this tick.
		dx := p.X - centerX
		dy := p.Y - centerY
		dist := math.Max(math.Hypot(dx, dy), 1.0)
		const orbitalSpeed = 2.0
		p.VX = -dy / dist * orbitalSpeed
		p.VY = dx / dist * orbitalSpeed
	case Celebration:
		p.VY -= 5.0 * dt
		p.VX *= 0.99
	case Standard, Ambient:
		// Gentle drift with slight slowdown.
		p.VX *= 0.995
		p.VY *= 0.995
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Life -= dt
}

// Opacity is the render opacity derived from remaining life: a linear fade.
func (p *Particle) Opacity() float64 {
	o := p.Life / p.MaxLife
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}

// Alive reports whether the particle should remain in the simulation.
func (p *Particle) Alive() bool {
	return p.Life > 0
}
