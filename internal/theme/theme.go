// Package theme holds the color system for the breathing visualizer.
// A Theme is built once at startup and passed to whatever needs it.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/breathe/internal/technique"
)

// Theme is the full color configuration.
type Theme struct {
	Background     lipgloss.Color
	BackgroundDark lipgloss.Color
	Phases         PhaseScheme
	UI             UIColors
}

// UIColors are the chrome colors around the visualization.
type UIColors struct {
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	Accent        lipgloss.Color
	Border        lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
}

// PhaseScheme maps each breathing phase to its color set.
type PhaseScheme struct {
	Inhale    PhaseColors
	Hold      PhaseColors
	Exhale    PhaseColors
	RestEmpty PhaseColors
}

// PhaseColors is the color set for a single phase.
type PhaseColors struct {
	Primary  lipgloss.Color // main color for the phase
	Glow     lipgloss.Color // outer halo
	Text     lipgloss.Color // label color
	Particle lipgloss.Color // particle color
	Core     lipgloss.Color // inner core glow
	Ambient  lipgloss.Color // background tint
}

// Default is the dark theme, the main visual style.
func Default() *Theme {
	return &Theme{
		Background:     lipgloss.Color("#0a1628"),
		BackgroundDark: lipgloss.Color("#050b14"),
		Phases: PhaseScheme{
			// Inhale: cool blue tones. Fresh air, expansion.
			Inhale: PhaseColors{
				Primary:  lipgloss.Color("#4a90d9"),
				Glow:     lipgloss.Color("#64b4ff"),
				Text:     lipgloss.Color("#4a90d9"),
				Particle: lipgloss.Color("#96c8ff"),
				Core:     lipgloss.Color("#b4dcff"),
				Ambient:  lipgloss.Color("#1e3c64"),
			},
			// Hold (full): golden amber. Energy, warmth.
			Hold: PhaseColors{
				Primary:  lipgloss.Color("#c9a227"),
				Glow:     lipgloss.Color("#ffc850"),
				Text:     lipgloss.Color("#c9a227"),
				Particle: lipgloss.Color("#ffdc78"),
				Core:     lipgloss.Color("#fff0b4"),
				Ambient:  lipgloss.Color("#503c14"),
			},
			// Exhale: purple. Release, letting go.
			Exhale: PhaseColors{
				Primary:  lipgloss.Color("#8b5cf6"),
				Glow:     lipgloss.Color("#b48cff"),
				Text:     lipgloss.Color("#8b5cf6"),
				Particle: lipgloss.Color("#c8aaff"),
				Core:     lipgloss.Color("#dcc8ff"),
				Ambient:  lipgloss.Color("#321e50"),
			},
			// Rest (empty): slate. Stillness, anticipation.
			RestEmpty: PhaseColors{
				Primary:  lipgloss.Color("#64748b"),
				Glow:     lipgloss.Color("#8ca0b4"),
				Text:     lipgloss.Color("#64748b"),
				Particle: lipgloss.Color("#a0b4c8"),
				Core:     lipgloss.Color("#b4c8dc"),
				Ambient:  lipgloss.Color("#1e2832"),
			},
		},
		UI: UIColors{
			TextPrimary:   lipgloss.Color("#ffffff"),
			TextSecondary: lipgloss.Color("#94a3b8"),
			TextMuted:     lipgloss.Color("#64748b"),
			Accent:        lipgloss.Color("#4a90d9"),
			Border:        lipgloss.Color("#1e293b"),
			Success:       lipgloss.Color("#22c55e"),
			Warning:       lipgloss.Color("#c9a227"),
		},
	}
}

// PhaseColorsFor returns the color set for a breathing phase.
func (t *Theme) PhaseColorsFor(kind technique.PhaseKind) PhaseColors {
	switch kind {
	case technique.Inhale:
		return t.Phases.Inhale
	case technique.Hold:
		return t.Phases.Hold
	case technique.Exhale:
		return t.Phases.Exhale
	case technique.RestAfterExhale:
		return t.Phases.RestEmpty
	}
	return t.Phases.Inhale
}

// BlendPhaseColors interpolates every color of two phase sets at parameter t.
func BlendPhaseColors(from, to PhaseColors, t float64) PhaseColors {
	return PhaseColors{
		Primary:  BlendColor(from.Primary, to.Primary, t),
		Glow:     BlendColor(from.Glow, to.Glow, t),
		Text:     BlendColor(from.Text, to.Text, t),
		Particle: BlendColor(from.Particle, to.Particle, t),
		Core:     BlendColor(from.Core, to.Core, t),
		Ambient:  BlendColor(from.Ambient, to.Ambient, t),
	}
}
