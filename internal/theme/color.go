package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/breathe/internal/ease"
	"github.com/san-kum/breathe/internal/technique"
)

// BlendColor linearly interpolates two colors per RGB channel. Blending is
// only defined for hex RGB colors; if either side is something else (an ANSI
// palette index, for example) the source wins below the midpoint and the
// target at or above it.
func BlendColor(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, errA := colorful.Hex(string(from))
	b, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		if t < 0.5 {
			return from
		}
		return to
	}

	t = ease.Clamp(t, 0, 1)
	blended := colorful.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
	return lipgloss.Color(blended.Hex())
}

// WithOpacity darkens a color toward black by an opacity factor in [0,1].
// Terminal cells have no alpha channel, so fading is done by scaling the
// channels against the dark background.
func WithOpacity(c lipgloss.Color, opacity float64) lipgloss.Color {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	opacity = ease.Clamp(opacity, 0, 1)
	faded := colorful.Color{
		R: parsed.R * opacity,
		G: parsed.G * opacity,
		B: parsed.B * opacity,
	}
	return lipgloss.Color(faded.Hex())
}

// Brighten scales a color's channels by factor, clamping at white.
// A factor of 1.0 is a no-op.
func Brighten(c lipgloss.Color, factor float64) lipgloss.Color {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bright := colorful.Color{
		R: ease.Clamp(parsed.R*factor, 0, 1),
		G: ease.Clamp(parsed.G*factor, 0, 1),
		B: ease.Clamp(parsed.B*factor, 0, 1),
	}
	return lipgloss.Color(bright.Hex())
}

// FromTechnique derives a full phase color set from a technique's display
// color, used on screens that are not tied to a specific breathing phase.
func FromTechnique(c technique.Color) PhaseColors {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	base := lipgloss.Color(c.Hex())
	return PhaseColors{
		Primary:  base,
		Glow:     rgb(r*1.3, g*1.3, b*1.3),
		Text:     base,
		Particle: rgb(r*0.8+50, g*0.8+70, b*0.8+100),
		Core:     rgb(r*0.5+128, g*0.5+128, b*0.5+128),
		Ambient:  rgb(r*0.3, g*0.3, b*0.3),
	}
}

func rgb(r, g, b float64) lipgloss.Color {
	c := colorful.Color{
		R: ease.Clamp(r/255, 0, 1),
		G: ease.Clamp(g/255, 0, 1),
		B: ease.Clamp(b/255, 0, 1),
	}
	return lipgloss.Color(c.Hex())
}
