package particles

import (
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/breathe/internal/technique"
)

// System is the capacity-bounded particle field. Once the capacity is
// reached, excess spawns are dropped, never queued.
type System struct {
	particles []Particle
	max       int
	emitters  []Emitter
	centerX   float64
	centerY   float64
	rng       *rand.Rand
}

// NewSystem creates a particle system holding at most max particles.
func NewSystem(max int) *System {
	return &System{
		particles: make([]Particle, 0, max),
		max:       max,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetCenter moves the reference point used by center-relative behaviors.
// Takes effect on the next Update.
func (s *System) SetCenter(x, y float64) {
	s.centerX = x
	s.centerY = y
}

// AddEmitter appends an emitter to the active set.
func (s *System) AddEmitter(e Emitter) {
	s.emitters = append(s.emitters, e)
}

// ClearEmitters removes all active emitters.
func (s *System) ClearEmitters() {
	s.emitters = s.emitters[:0]
}

// ConfigureForPhase replaces the emitter set with the profile for a
// breathing phase. The emitter geometry follows the current breath scale so
// the field grows and shrinks with the breath.
func (s *System) ConfigureForPhase(kind technique.PhaseKind, scale float64) {
	s.ClearEmitters()

	switch kind {
	case technique.Inhale:
		// Particles stream inward from an outer ring.
		outer := 25.0 + scale*10.0
		s.AddEmitter(NewEmitter(
			RingShape{CX: s.centerX, CY: s.centerY, Radius: outer},
			30, Inward,
		).WithSpeed(8, 15).WithLife(1.5, 2.5).WithSize(0.8, 1.2))

	case technique.Exhale:
		// Particles disperse outward from the center.
		s.AddEmitter(NewEmitter(
			PointShape{X: s.centerX, Y: s.centerY},
			25, Outward,
		).WithSpeed(5, 12).WithLife(2, 3.5).WithSize(0.6, 1))

	case technique.Hold:
		// Orbiting ring around the full circle.
		orbit := 12.0 + scale*5.0
		s.AddEmitter(NewEmitter(
			RingShape{CX: s.centerX, CY: s.centerY, Radius: orbit},
			15, Orbital,
		).WithSpeed(1, 2).WithLife(3, 5).WithSize(0.5, 0.8))

	case technique.RestAfterExhale:
		// Very subtle ambient drift.
		s.AddEmitter(NewEmitter(
			RingShape{CX: s.centerX, CY: s.centerY, Radius: 15},
			5, Ambient,
		).WithSpeed(0.5, 1.5).WithLife(2, 4).WithSize(0.3, 0.6))
	}
}

// Update advances all particles, culls the dead, and runs the emitters.
// Culling happens every tick even when no emitters are installed.
func (s *System) Update(dt float64) {
	alive := s.particles[:0]
	for i := range s.particles {
		p := &s.particles[i]
		p.Update(dt, s.centerX, s.centerY)
		if p.Alive() {
			alive = append(alive, *p)
		}
	}
	s.particles = alive

	for i := range s.emitters {
		if len(s.particles) >= s.max {
			break
		}
		spawned := s.emitters[i].Emit(dt, s.rng)
		room := s.max - len(s.particles)
		if len(spawned) > room {
			spawned = spawned[:room]
		}
		s.particles = append(s.particles, spawned...)
	}
}

// SpawnBurst immediately spawns up to count particles radiating from a
// point in uniformly random directions, subject to capacity.
func (s *System) SpawnBurst(x, y float64, count int, kind Kind) {
	for i := 0; i < count; i++ {
		if len(s.particles) >= s.max {
			break
		}
		angle := s.rng.Float64() * 2 * math.Pi
		speed := 10 + s.rng.Float64()*20
		life := 1.5 + s.rng.Float64()*2
		size := 0.8 + s.rng.Float64()*0.8
		s.particles = append(s.particles, NewParticle(x, y, angle, speed, life, size, kind))
	}
}

// Clear removes all particles.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Particles returns the live particle slice for rendering. Callers must
// not mutate it.
func (s *System) Particles() []Particle {
	return s.particles
}

// Count reports the number of live particles.
func (s *System) Count() int {
	return len(s.particles)
}

// EmitterCount reports the number of active emitters.
func (s *System) EmitterCount() int {
	return len(s.emitters)
}
