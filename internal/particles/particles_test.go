package particles

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/breathe/internal/technique"
)

func TestParticle_LifeDecreasesByDt(t *testing.T) {
	p := NewParticle(0, 0, 0, 1, 2.0, 1, Standard)
	p.Update(0.25, 0, 0)
	if math.Abs(p.Life-1.75) > 1e-9 {
		t.Errorf("life = %v, want 1.75", p.Life)
	}
	p.Update(0.25, 0, 0)
	if math.Abs(p.Life-1.5) > 1e-9 {
		t.Errorf("life = %v, want 1.5", p.Life)
	}
}

func TestParticle_TrailBounded(t *testing.T) {
	p := NewParticle(0, 0, 0, 1, 100, 1, Standard)
	for i := 0; i < MaxTrailLength*3; i++ {
		p.Update(0.016, 0, 0)
	}
	if len(p.Trail) != MaxTrailLength {
		t.Errorf("trail length = %d, want %d", len(p.Trail), MaxTrailLength)
	}
	// Newest entry is the position just before the last move.
	last := p.Trail[len(p.Trail)-1]
	if last.X >= p.X {
		t.Errorf("newest trail entry %v should be behind the particle at x=%v", last, p.X)
	}
	// Oldest entries get evicted: the head must be newer than the
	// particle's birth position once the bound is exceeded.
	if p.Trail[0].X == 0 {
		t.Error("oldest trail entry was never evicted")
	}
}

func TestParticle_OrbitalVelocityOverwritten(t *testing.T) {
	p := NewParticle(10, 0, 0, 50, 10, 1, Orbital)
	p.VX, p.VY = 99, 99 // external perturbation
	p.Update(0.001, 0, 0)

	// Tangential at (10, 0) relative to origin is (0, orbitalSpeed).
	speed := math.Hypot(p.VX, p.VY)
	if math.Abs(speed-2.0) > 1e-9 {
		t.Errorf("orbital speed = %v, want 2.0", speed)
	}
	if math.Abs(p.VX) > 1e-6 || math.Abs(p.VY-2.0) > 1e-6 {
		t.Errorf("velocity (%v, %v) not tangential", p.VX, p.VY)
	}
}

func TestParticle_InwardAccelerates(t *testing.T) {
	p := NewParticle(20, 0, 0, 0, 10, 1, Inward)
	p.Update(0.1, 0, 0)
	if p.VX >= 0 {
		t.Errorf("inward particle should accelerate toward center, vx = %v", p.VX)
	}
	// accel = 15/dist toward the center, so vx = -(15/20)*0.1
	want := -(15.0 / 20.0) * 0.1
	if math.Abs(p.VX-want) > 1e-9 {
		t.Errorf("vx = %v, want %v", p.VX, want)
	}
}

func TestParticle_InwardDistanceFloor(t *testing.T) {
	// At the center the 1.0 floor must prevent a blow-up.
	p := NewParticle(0.001, 0, 0, 0, 10, 1, Inward)
	p.Update(0.016, 0, 0)
	if math.IsNaN(p.VX) || math.Abs(p.VX) > 1 {
		t.Errorf("acceleration near center not clamped: vx = %v", p.VX)
	}
}

func TestParticle_Opacity(t *testing.T) {
	p := NewParticle(0, 0, 0, 0, 4, 1, Standard)
	p.Life = 1
	if got := p.Opacity(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("opacity = %v, want 0.25", got)
	}
	p.Life = -1
	if got := p.Opacity(); got != 0 {
		t.Errorf("opacity = %v, want 0", got)
	}
}

func TestEmitter_AccumulatorExactness(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Same total time split differently must yield the same count ±1.
	counts := make([]int, 0, 3)
	splits := [][]float64{
		{2.0},
		{0.5, 0.5, 0.5, 0.5},
		{0.013, 1.987},
	}
	for _, split := range splits {
		e := NewEmitter(PointShape{}, 7, Standard)
		n := 0
		for _, dt := range split {
			n += len(e.Emit(dt, rng))
		}
		counts = append(counts, n)
	}

	want := int(math.Floor(7 * 2.0)) // rate * total elapsed
	for i, n := range counts {
		if n < want-1 || n > want {
			t.Errorf("split %d: spawned %d, want %d (within 1)", i, n, want)
		}
	}
}

func TestEmitter_ManySmallTicks(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	e := NewEmitter(PointShape{}, 30, Standard)
	n := 0
	for i := 0; i < 625; i++ { // 625 * 0.016 = 10s
		n += len(e.Emit(0.016, rng))
	}
	if n < 299 || n > 300 {
		t.Errorf("spawned %d over 10s at rate 30, want 300 within 1", n)
	}
}

func TestEmitter_RangesRespected(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := NewEmitter(PointShape{}, 100, Standard).
		WithSpeed(3, 4).WithLife(1, 2).WithSize(0.5, 0.6)

	for _, p := range e.Emit(1.0, rng) {
		speed := math.Hypot(p.VX, p.VY)
		if speed < 3-1e-9 || speed > 4+1e-9 {
			t.Errorf("speed %v outside [3,4]", speed)
		}
		if p.Life < 1 || p.Life > 2 {
			t.Errorf("life %v outside [1,2]", p.Life)
		}
		if p.Size < 0.5 || p.Size > 0.6 {
			t.Errorf("size %v outside [0.5,0.6]", p.Size)
		}
		if p.MaxLife != p.Life {
			t.Errorf("max life %v != life %v at spawn", p.MaxLife, p.Life)
		}
	}
}

func TestRingShape_InwardAimsAtCenter(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	shape := RingShape{CX: 0, CY: 0, Radius: 10}

	for i := 0; i < 50; i++ {
		x, y, dir := shape.spawnAt(rng, Inward)
		// Velocity direction should point back toward the center.
		toCenter := math.Atan2(-y, -x)
		diff := math.Abs(math.Mod(dir-toCenter+3*math.Pi, 2*math.Pi) - math.Pi)
		if diff > 1e-6 {
			t.Fatalf("spawn at (%v,%v): direction %v not toward center (%v)", x, y, dir, toCenter)
		}
	}
}

func TestSystem_CapacityNeverExceeded(t *testing.T) {
	s := NewSystem(20)
	s.AddEmitter(NewEmitter(PointShape{}, 1000, Standard).WithLife(50, 60))

	for i := 0; i < 100; i++ {
		s.Update(0.016)
		s.SpawnBurst(0, 0, 15, Celebration)
		if s.Count() > 20 {
			t.Fatalf("tick %d: %d particles exceeds capacity 20", i, s.Count())
		}
	}
	if s.Count() != 20 {
		t.Errorf("expected a saturated system, got %d", s.Count())
	}
}

func TestSystem_DeadParticlesCulledWithoutEmitters(t *testing.T) {
	s := NewSystem(10)
	s.SpawnBurst(0, 0, 5, Standard)
	if s.Count() != 5 {
		t.Fatalf("burst spawned %d, want 5", s.Count())
	}

	// Burst lifetimes are at most 3.5s; run past that with no emitters.
	for i := 0; i < 250; i++ {
		s.Update(0.016)
	}
	if s.Count() != 0 {
		t.Errorf("%d particles survived past max lifetime", s.Count())
	}
}

func TestSystem_ConfigureForPhaseReplacesEmitters(t *testing.T) {
	s := NewSystem(100)
	kinds := []technique.PhaseKind{
		technique.Inhale, technique.Hold, technique.Exhale, technique.RestAfterExhale,
	}
	for _, k := range kinds {
		s.ConfigureForPhase(k, 0.5)
		if s.EmitterCount() != 1 {
			t.Errorf("phase %v: %d emitters, want exactly 1", k, s.EmitterCount())
		}
	}
}

func TestSystem_PhaseProfilesSpawnMatchingKinds(t *testing.T) {
	profiles := []struct {
		phase technique.PhaseKind
		kind  Kind
	}{
		{technique.Inhale, Inward},
		{technique.Hold, Orbital},
		{technique.Exhale, Outward},
		{technique.RestAfterExhale, Ambient},
	}

	for _, tt := range profiles {
		s := NewSystem(500)
		s.ConfigureForPhase(tt.phase, 1.0)
		for i := 0; i < 60; i++ {
			s.Update(0.016)
		}
		if s.Count() == 0 {
			t.Errorf("phase %v spawned nothing", tt.phase)
			continue
		}
		for _, p := range s.Particles() {
			if p.Kind != tt.kind {
				t.Errorf("phase %v spawned kind %v, want %v", tt.phase, p.Kind, tt.kind)
				break
			}
		}
	}
}

func TestSystem_SetCenterMovesEmitterTarget(t *testing.T) {
	s := NewSystem(50)
	s.SetCenter(100, 100)
	s.ConfigureForPhase(technique.Exhale, 0)
	s.Update(0.2)

	if s.Count() == 0 {
		t.Fatal("no particles spawned")
	}
	for _, p := range s.Particles() {
		// Point emitter sits at the center; after one short tick particles
		// must still be near (100, 100).
		if math.Hypot(p.X-100, p.Y-100) > 5 {
			t.Errorf("particle at (%v, %v), expected near (100, 100)", p.X, p.Y)
		}
	}
}
