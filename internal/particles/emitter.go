package particles

import (
	"math"
	"math/rand"
)

// Shape describes where and in which direction an emitter spawns particles.
// The three shapes form a closed set; every consumer switches exhaustively.
type Shape interface {
	spawnAt(rng *rand.Rand, kind Kind) (x, y, angle float64)
}

// PointShape spawns at a fixed point with a uniformly random direction.
type PointShape struct {
	X, Y float64
}

func (s PointShape) spawnAt(rng *rand.Rand, _ Kind) (float64, float64, float64) {
	return s.X, s.Y, rng.Float64() * 2 * math.Pi
}

// RingShape spawns on a circle. Inward particles aim at the center,
// everything else points away along the ring normal.
type RingShape struct {
	CX, CY float64
	Radius float64
}

func (s RingShape) spawnAt(rng *rand.Rand, kind Kind) (float64, float64, float64) {
	angle := rng.Float64() * 2 * math.Pi
	x := s.CX + math.Cos(angle)*s.Radius
	y := s.CY + math.Sin(angle)*s.Radius
	dir := angle
	if kind == Inward {
		dir = angle + math.Pi
	}
	return x, y, dir
}

// ConeShape spawns at a point within a direction spread.
type ConeShape struct {
	X, Y      float64
	Direction float64
	Spread    float64
}

func (s ConeShape) spawnAt(rng *rand.Rand, _ Kind) (float64, float64, float64) {
	return s.X, s.Y, s.Direction + (rng.Float64()-0.5)*s.Spread
}

// Emitter spawns particles from a shape at a fixed rate. The fractional
// remainder of each tick carries over in the accumulator, so emission counts
// depend only on total elapsed time, not on how it is split across ticks.
type Emitter struct {
	Shape    Shape
	Rate     float64 // particles per second
	SpeedMin float64
	SpeedMax float64
	LifeMin  float64
	LifeMax  float64
	SizeMin  float64
	SizeMax  float64
	Kind     Kind

	accumulator float64
}

// NewEmitter creates an emitter with default parameter ranges.
func NewEmitter(shape Shape, rate float64, kind Kind) Emitter {
	return Emitter{
		Shape:    shape,
		Rate:     rate,
		SpeedMin: 2,
		SpeedMax: 5,
		LifeMin:  1,
		LifeMax:  3,
		SizeMin:  0.5,
		SizeMax:  1.5,
		Kind:     kind,
	}
}

// WithSpeed sets the spawn speed range.
func (e Emitter) WithSpeed(min, max float64) Emitter {
	e.SpeedMin, e.SpeedMax = min, max
	return e
}

// WithLife sets the spawn lifetime range in seconds.
func (e Emitter) WithLife(min, max float64) Emitter {
	e.LifeMin, e.LifeMax = min, max
	return e
}

// WithSize sets the spawn size range.
func (e Emitter) WithSize(min, max float64) Emitter {
	e.SizeMin, e.SizeMax = min, max
	return e
}

// Emit advances the emitter by dt and returns the particles due this tick.
func (e *Emitter) Emit(dt float64, rng *rand.Rand) []Particle {
	e.accumulator += dt
	interval := 1.0 / e.Rate

	var out []Particle
	for e.accumulator >= interval {
		e.accumulator -= interval
		out = append(out, e.spawn(rng))
	}
	return out
}

func (e *Emitter) spawn(rng *rand.Rand) Particle {
	x, y, angle := e.Shape.spawnAt(rng, e.Kind)
	speed := randRange(rng, e.SpeedMin, e.SpeedMax)
	life := randRange(rng, e.LifeMin, e.LifeMax)
	size := randRange(rng, e.SizeMin, e.SizeMax)
	return NewParticle(x, y, angle, speed, life, size, e.Kind)
}

func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
