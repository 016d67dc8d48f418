package audio

import (
	"math"
	"testing"

	"github.com/san-kum/breathe/internal/technique"
)

func TestDisabledPlayerIsInert(t *testing.T) {
	p := NewPlayer()
	if p.Enabled() {
		t.Fatal("player enabled before Start")
	}
	p.Play(CueInhale) // must not panic or queue
	if len(p.queue) != 0 {
		t.Errorf("disabled player queued %d tones", len(p.queue))
	}
	p.Stop() // must not panic
}

func TestNilPlayerEnabled(t *testing.T) {
	var p *Player
	if p.Enabled() {
		t.Error("nil player reported enabled")
	}
}

func TestCueTonesComplete(t *testing.T) {
	cues := []Cue{CueStart, CueInhale, CueHold, CueExhale, CueRest, CueComplete}
	for _, c := range cues {
		ct, ok := cueTones[c]
		if !ok {
			t.Fatalf("cue %d has no tone", c)
		}
		if ct.freq <= 0 || ct.dur <= 0 {
			t.Errorf("cue %d tone %+v", c, ct)
		}
	}
}

func TestPhaseCue(t *testing.T) {
	tests := []struct {
		kind technique.PhaseKind
		want Cue
	}{
		{technique.Inhale, CueInhale},
		{technique.Hold, CueHold},
		{technique.Exhale, CueExhale},
		{technique.RestAfterExhale, CueRest},
	}
	for _, tt := range tests {
		if got := PhaseCue(tt.kind); got != tt.want {
			t.Errorf("PhaseCue(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	total := SampleRate / 10 // 100ms
	if got := envelope(0, total); got != 0 {
		t.Errorf("envelope at 0 = %v, want 0", got)
	}
	if got := envelope(total-1, total); got > 0.01 {
		t.Errorf("envelope near end = %v, want ~0", got)
	}
	peak := envelope(SampleRate/200, total)
	if peak < 0.9 {
		t.Errorf("envelope after attack = %v, want near 1", peak)
	}
	for pos := 0; pos < total; pos++ {
		v := envelope(pos, total)
		if v < 0 || v > 1 {
			t.Fatalf("envelope(%d) = %v outside [0,1]", pos, v)
		}
	}
}

func TestTriangleRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		v := triangle(float64(i) / 100)
		if v < -1 || v > 1 {
			t.Fatalf("triangle(%d/100) = %v outside [-1,1]", i, v)
		}
	}
	if math.Abs(triangle(0.5)-(-1)) > 1e-9 {
		t.Errorf("triangle(0.5) = %v, want -1", triangle(0.5))
	}
	if math.Abs(triangle(0.0)-1) > 1e-9 {
		t.Errorf("triangle(0) = %v, want 1", triangle(0.0))
	}
}

func TestProcessSilentWhenIdle(t *testing.T) {
	p := NewPlayer()
	out := [][]float32{make([]float32, 64), make([]float32, 64)}
	p.process(out)
	for ch := range out {
		for i, v := range out[ch] {
			if math.Abs(float64(v)) > 1e-6 {
				t.Fatalf("channel %d sample %d = %v, want silence", ch, i, v)
			}
		}
	}
}

func TestProcessDrainsQueue(t *testing.T) {
	p := NewPlayer()
	p.queue = append(p.queue, tone{freq: 440, samples: 32})

	out := [][]float32{make([]float32, 64), make([]float32, 64)}
	p.process(out)

	if len(p.queue) != 0 {
		t.Errorf("queue still holds %d tones", len(p.queue))
	}
	if p.playing {
		t.Error("tone still playing past its length")
	}
	nonzero := false
	for _, v := range out[0][:32] {
		if v != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		t.Error("queued tone produced no samples")
	}
}

func TestEnvelopeAtPeakOfTriangle(t *testing.T) {
	// envelope(attack, total) transitions from the linear attack to the
	// cosine release without a discontinuity jump beyond the attack slope.
	total := SampleRate / 5
	attack := SampleRate / 200
	before := envelope(attack-1, total)
	after := envelope(attack, total)
	if math.Abs(before-after) > 0.05 {
		t.Errorf("envelope jump at attack boundary: %v -> %v", before, after)
	}
}
