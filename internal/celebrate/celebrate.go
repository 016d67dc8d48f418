// Package celebrate implements the one-shot particle burst shown when a
// breathing session completes.
package celebrate

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/breathe/internal/ease"
)

const (
	// Duration is the total animation length in seconds.
	Duration = 4.0

	burstCount   = 80
	sparkleCount = 20
	trailLength  = 6
)

// palette is the firework spectrum plus gold and white sparkle.
var palette = []lipgloss.Color{
	lipgloss.Color("#ffd700"), // gold
	lipgloss.Color("#22c55e"), // green
	lipgloss.Color("#4a90d9"), // blue
	lipgloss.Color("#8b5cf6"), // purple
	lipgloss.Color("#f43f5e"), // rose
	lipgloss.Color("#fb923c"), // orange
	lipgloss.Color("#ffffff"), // white sparkle
}

// Particle is a ballistic celebration particle.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   lipgloss.Color
	Size    float64
	Trail   [][2]float64
}

func newParticle(rng *rand.Rand, x, y, angle, speed float64, color lipgloss.Color) Particle {
	life := 2.0 + rng.Float64()*1.5
	return Particle{
		X:       x,
		Y:       y,
		VX:      math.Cos(angle) * speed,
		VY:      math.Sin(angle) * speed,
		Life:    life,
		MaxLife: life,
		Color:   color,
		Size:    1.0 + rng.Float64()*0.5,
		Trail:   make([][2]float64, 0, trailLength),
	}
}

func (p *Particle) update(dt float64) {
	if len(p.Trail) >= trailLength {
		p.Trail = p.Trail[1:]
	}
	p.Trail = append(p.Trail, [2]float64{p.X, p.Y})

	// Gravity plus air resistance.
	p.VY -= 15.0 * dt
	p.VX *= 0.98
	p.VY *= 0.99

	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Life -= dt
}

// Opacity fades out with an eased tail rather than linearly.
func (p *Particle) Opacity() float64 {
	return ease.OutCubic(ease.Clamp(p.Life/p.MaxLife, 0, 1))
}

// Alive reports whether the particle is still visible.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Animation is the completion burst: a single firework from the center,
// alive for a fixed window.
type Animation struct {
	particles  []Particle
	progress   float64
	centerX    float64
	centerY    float64
	burstFired bool
	rng        *rand.Rand
}

// New creates an idle animation; call SpawnBurst (or Tick) to fire it.
func New() *Animation {
	return &Animation{
		particles: make([]Particle, 0, burstCount+sparkleCount),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetCenter positions the burst origin.
func (a *Animation) SetCenter(x, y float64) {
	a.centerX = x
	a.centerY = y
}

// SpawnBurst fires the firework once. Subsequent calls are no-ops.
func (a *Animation) SpawnBurst() {
	if a.burstFired {
		return
	}

	for i := 0; i < burstCount; i++ {
		// Evenly spaced directions with a little jitter.
		base := float64(i) / burstCount * 2 * math.Pi
		angle := base + (a.rng.Float64()-0.5)*0.3
		speed := 15 + a.rng.Float64()*25
		color := palette[i%len(palette)]
		a.particles = append(a.particles, newParticle(a.rng, a.centerX, a.centerY, angle, speed, color))
	}

	// Extra white sparkles.
	for i := 0; i < sparkleCount; i++ {
		angle := a.rng.Float64() * 2 * math.Pi
		speed := 20 + a.rng.Float64()*15
		a.particles = append(a.particles, newParticle(a.rng, a.centerX, a.centerY, angle, speed, lipgloss.Color("#ffffff")))
	}

	a.burstFired = true
}

// Tick advances the animation by dt, firing the burst on the first call if
// it has not been fired explicitly.
func (a *Animation) Tick(dt float64) {
	a.progress += dt

	if !a.burstFired {
		a.SpawnBurst()
	}

	alive := a.particles[:0]
	for i := range a.particles {
		p := &a.particles[i]
		p.update(dt)
		if p.Alive() {
			alive = append(alive, *p)
		}
	}
	a.particles = alive
}

// Complete reports whether the animation has run its course: either the
// fixed duration elapsed or every burst particle died, whichever is first.
func (a *Animation) Complete() bool {
	return a.progress >= Duration || (a.burstFired && len(a.particles) == 0)
}

// Particles returns the live particles for rendering.
func (a *Animation) Particles() []Particle {
	return a.particles
}
