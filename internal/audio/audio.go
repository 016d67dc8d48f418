// Package audio plays short guidance tones on phase transitions. Sound is
// best-effort: if no output device is available the player stays silent
// and every call is a no-op.
package audio

import (
	"fmt"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/breathe/internal/technique"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Cue identifies a session event with an associated tone.
type Cue int

const (
	CueStart Cue = iota
	CueInhale
	CueHold
	CueExhale
	CueRest
	CueComplete
)

// cueTones maps each cue to a pitch and length. The pitches walk a major
// triad so consecutive phases sound related rather than alarming.
var cueTones = map[Cue]struct {
	freq float64 // Hz
	dur  float64 // seconds
}{
	CueStart:    {523.25, 0.200}, // C5
	CueInhale:   {440.00, 0.150}, // A4
	CueHold:     {523.25, 0.100}, // C5
	CueExhale:   {349.23, 0.150}, // F4
	CueRest:     {293.66, 0.100}, // D4
	CueComplete: {659.25, 0.300}, // E5
}

type tone struct {
	freq    float64
	samples int
}

// Player owns the output stream and a queue of pending tones. Play is
// safe to call from the UI goroutine while the portaudio callback drains
// the queue.
type Player struct {
	stream *portaudio.Stream

	mu    sync.Mutex
	queue []tone

	// Synthesis state, touched only by the callback.
	current     tone
	pos         int
	playing     bool
	phase       float64
	filterState float64

	enabled bool
}

func NewPlayer() *Player {
	return &Player{}
}

// Start opens the default output device. On failure the player is left
// disabled and the error is returned for logging; callers keep running
// without sound.
func (p *Player) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}

	// Output only. Duplex streams often fail on Linux when the default
	// input and output devices differ.
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio open: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio start: %w", err)
	}

	p.stream = stream
	p.enabled = true
	return nil
}

// Stop tears the stream down. Safe to call on a player that never started.
func (p *Player) Stop() {
	if !p.enabled {
		return
	}
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
	}
	portaudio.Terminate()
	p.enabled = false
}

// Enabled reports whether the output stream is running.
func (p *Player) Enabled() bool { return p != nil && p.enabled }

// Play queues the tone for a cue. Non-blocking; unknown cues and disabled
// players are ignored.
func (p *Player) Play(cue Cue) {
	if !p.Enabled() {
		return
	}
	ct, ok := cueTones[cue]
	if !ok {
		return
	}
	p.mu.Lock()
	p.queue = append(p.queue, tone{
		freq:    ct.freq,
		samples: int(ct.dur * SampleRate),
	})
	p.mu.Unlock()
}

// PhaseCue returns the cue for a phase-start event.
func PhaseCue(kind technique.PhaseKind) Cue {
	switch kind {
	case technique.Inhale:
		return CueInhale
	case technique.Hold:
		return CueHold
	case technique.Exhale:
		return CueExhale
	case technique.RestAfterExhale:
		return CueRest
	}
	return CueRest
}

// Triangle wave: smooth, flute-like, no harsh buzz.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One pole low pass filter.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// envelope shapes a tone with a fast attack and a cosine release so cues
// start and end without clicks.
func envelope(pos, total int) float64 {
	attack := SampleRate / 200 // 5ms
	if pos < attack {
		return float64(pos) / float64(attack)
	}
	t := float64(pos) / float64(total)
	return 0.5 * (1 + math.Cos(math.Pi*t))
}

func (p *Player) process(out [][]float32) {
	dt := 1.0 / float64(SampleRate)
	const vol = 0.25
	const cutoff = 2000.0

	for i := 0; i < len(out[0]); i++ {
		if !p.playing {
			p.mu.Lock()
			if len(p.queue) > 0 {
				p.current = p.queue[0]
				p.queue = p.queue[1:]
				p.pos = 0
				p.phase = 0
				p.playing = true
			}
			p.mu.Unlock()
		}

		sample := 0.0
		if p.playing {
			osc := triangle(p.phase)
			sample = osc * envelope(p.pos, p.current.samples)

			p.phase += p.current.freq * dt
			p.pos++
			if p.pos >= p.current.samples {
				p.playing = false
			}
		}

		// Filter smoothes the triangle into a near-sine tone.
		sample, p.filterState = lpf(sample, cutoff, dt, p.filterState)

		out[0][i] = float32(sample * vol)
		out[1][i] = float32(sample * vol)
	}
}
