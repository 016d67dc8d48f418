// Package technique defines the static catalog of breathing techniques.
// The catalog is built once at startup, validated, and never mutated.
package technique

import "fmt"

// PhaseKind identifies one segment of a breathing cycle.
type PhaseKind int

const (
	Inhale PhaseKind = iota
	Hold
	Exhale
	RestAfterExhale
)

// Display returns the large label shown during the phase.
func (k PhaseKind) Display() string {
	switch k {
	case Inhale:
		return "INHALE"
	case Hold:
		return "HOLD"
	case Exhale:
		return "EXHALE"
	case RestAfterExhale:
		return "REST"
	}
	return "?"
}

// DefaultInstruction returns the guidance text for a phase kind when a
// technique does not provide its own.
func (k PhaseKind) DefaultInstruction() string {
	switch k {
	case Inhale:
		return "Breathe in slowly through your nose"
	case Hold:
		return "Hold your breath gently"
	case Exhale:
		return "Release slowly through your mouth"
	case RestAfterExhale:
		return "Rest in the stillness"
	}
	return ""
}

// Phase is one timed segment of a technique. Immutable after construction.
type Phase struct {
	Kind        PhaseKind
	Duration    float64 // seconds
	Instruction string
}

// Category groups techniques by intent.
type Category int

const (
	Focus Category = iota
	Calm
	Sleep
	Energy
	Recovery
)

func (c Category) Display() string {
	switch c {
	case Focus:
		return "Focus & Performance"
	case Calm:
		return "Stress & Calm"
	case Sleep:
		return "Sleep & Relaxation"
	case Energy:
		return "Energy & Activation"
	case Recovery:
		return "Recovery & Healing"
	}
	return "?"
}

func (c Category) Icon() string {
	switch c {
	case Focus:
		return "◎"
	case Calm:
		return "○"
	case Sleep:
		return "◐"
	case Energy:
		return "◈"
	case Recovery:
		return "◇"
	}
	return "·"
}

// Difficulty rates how demanding a technique is for a newcomer.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

func (d Difficulty) Display() string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	}
	return "?"
}

// Color is the display color of a technique as a true RGB triple.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as a lipgloss-compatible hex string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colors matching the companion web app.
var (
	arctic  = Color{74, 144, 217}
	gold    = Color{201, 162, 39}
	slate   = Color{100, 116, 139}
	purple  = Color{139, 92, 246}
	orange  = Color{251, 146, 60}
	emerald = Color{34, 197, 94}
	rose    = Color{244, 63, 94}
)

// Technique is an ordered sequence of phases plus display metadata.
type Technique struct {
	ID            string
	Name          string
	Tagline       string
	Description   string
	Pattern       string
	Phases        []Phase
	Purpose       string
	UseCase       string
	Source        string
	Color         Color
	DefaultCycles int
	Category      Category
	Difficulty    Difficulty
}

// CycleDuration is the total length of one cycle in seconds.
func (t *Technique) CycleDuration() float64 {
	var sum float64
	for _, p := range t.Phases {
		sum += p.Duration
	}
	return sum
}
