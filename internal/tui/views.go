package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/breathe/internal/canvas"
	"github.com/san-kum/breathe/internal/session"
	"github.com/san-kum/breathe/internal/theme"
)

func (m model) viewSelector() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + m.styles.accent.Render("b r e a t h e") + "\n")
	b.WriteString(m.styles.muted.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	cat := m.sess.Catalog()
	for i := 0; i < cat.Len(); i++ {
		t := cat.At(i)
		icon := t.Category.Icon()
		name := fmt.Sprintf("%-22s", t.Name)
		pattern := fmt.Sprintf("%-12s", t.Pattern)
		colors := theme.FromTechnique(t.Color)
		if i == m.sess.SelectedIndex() {
			b.WriteString("    " + lipgloss.NewStyle().Foreground(colors.Glow).Render("▸ ") +
				lipgloss.NewStyle().Foreground(colors.Primary).Render(icon) + " " +
				m.styles.primary.Render(name) + m.styles.secondary.Render(pattern) +
				m.styles.secondary.Render(t.Tagline) + "\n")
		} else {
			b.WriteString("      " + m.styles.muted.Render(icon) + " " +
				m.styles.secondary.Render(name) + m.styles.muted.Render(pattern) +
				m.styles.muted.Render(t.Tagline) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("    ↑↓ select   enter choose   ? help   q quit") + "\n")
	return b.String()
}

func (m model) viewReady() string {
	t, err := m.sess.Technique()
	if err != nil {
		return ""
	}
	colors := theme.FromTechnique(t.Color)
	title := lipgloss.NewStyle().Foreground(colors.Primary).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("    " + title.Render(t.Category.Icon()+" "+t.Name) + "  " +
		m.styles.muted.Render(t.Pattern) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colors.Ambient).Render("    "+strings.Repeat("─", 40)) + "\n\n")

	b.WriteString("    " + m.styles.secondary.Render(t.Tagline) + "\n\n")

	b.WriteString("    " + m.styles.muted.Render("purpose     ") + m.styles.primary.Render(t.Purpose) + "\n")
	b.WriteString("    " + m.styles.muted.Render("difficulty  ") + m.styles.primary.Render(t.Difficulty.Display()) + "\n")
	b.WriteString("    " + m.styles.muted.Render("category    ") + m.styles.primary.Render(t.Category.Display()) + "\n")

	b.WriteString("\n    " + m.styles.muted.Render("phases      "))
	for i, p := range t.Phases {
		if i > 0 {
			b.WriteString(m.styles.muted.Render(" → "))
		}
		b.WriteString(m.styles.secondary.Render(fmt.Sprintf("%s %.0fs", p.Kind.Display(), p.Duration)))
	}
	b.WriteString("\n")

	cycles := m.sess.CyclesTarget()
	total := time.Duration(t.CycleDuration()*float64(cycles)) * time.Second
	b.WriteString("\n    " + m.styles.muted.Render("cycles      ") +
		m.styles.accent.Render(fmt.Sprintf("◂ %d ▸", cycles)) +
		m.styles.muted.Render(fmt.Sprintf("   ~%s total", session.FormatDuration(total))) + "\n")

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("    ←→ cycles   space begin   g guide   b back   q quit") + "\n")
	return b.String()
}

func (m model) viewSession() string {
	phase, err := m.sess.CurrentPhase()
	if err != nil {
		return ""
	}
	colors, _ := m.sess.Colors()
	scale, _ := m.sess.BreathScale()
	remaining, _ := m.sess.PhaseRemaining()
	progress, _ := m.sess.PhaseProgress()

	cw := m.width - 4
	ch := m.height - 9
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}
	c := canvas.New(cw, ch)
	m.drawScene(c, colors, scale)

	phaseStyle := lipgloss.NewStyle().Foreground(colors.Text).Bold(true)
	instruction := phase.Instruction
	if instruction == "" {
		instruction = phase.Kind.DefaultInstruction()
	}

	var b strings.Builder
	b.WriteString("\n  " + phaseStyle.Render(phase.Kind.Display()) + "  " +
		m.styles.secondary.Render(instruction) + "\n")

	barWidth := 36
	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := lipgloss.NewStyle().Foreground(colors.Primary).Render(strings.Repeat("━", filled)) +
		m.styles.muted.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("  %s %s\n", bar, m.styles.muted.Render(fmt.Sprintf("%.0fs", math.Ceil(remaining)))))

	b.WriteString(c.Render() + "\n")

	b.WriteString("  " + m.cycleDots(colors) + "   " +
		m.styles.muted.Render(session.FormatDuration(m.sess.SessionElapsed())) + "\n")

	if m.sess.State() == session.StatePaused {
		b.WriteString("\n  " + m.styles.warning.Render("⏸ paused") + m.styles.muted.Render("   space resume   r reset   b back   q quit") + "\n")
	} else {
		b.WriteString("\n" + m.styles.muted.Render("  space pause   r reset   a audio   g guide   b back   q quit") + "\n")
	}
	return b.String()
}

func (m model) cycleDots(colors theme.PhaseColors) string {
	done := m.sess.CyclesCompleted()
	target := m.sess.CyclesTarget()
	doneStyle := lipgloss.NewStyle().Foreground(colors.Primary)

	// Wide sessions collapse to a counter.
	if target > 12 {
		return doneStyle.Render(fmt.Sprintf("cycle %d/%d", done+1, target))
	}
	var b strings.Builder
	for i := 0; i < target; i++ {
		switch {
		case i < done:
			b.WriteString(doneStyle.Render("●"))
		case i == done:
			b.WriteString(doneStyle.Render("◉"))
		default:
			b.WriteString(m.styles.muted.Render("○"))
		}
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// drawScene renders the breathing circle, particle field, and celebration
// into the canvas. World coordinates are centered on the circle with y up;
// the visible extent is about 80 world units across the smaller axis.
func (m model) drawScene(c *canvas.Canvas, colors theme.PhaseColors, scale float64) {
	dw, dh := c.DotWidth(), c.DotHeight()
	cx, cy := dw/2, dh/2
	s := math.Min(float64(dw), float64(dh)) / 80.0

	toDots := func(x, y float64) (int, int) {
		return cx + int(x*s), cy - int(y*s)
	}

	// Breathing circle with a soft core while the lungs are full.
	radius := int((6.0 + scale*16.0) * s)
	c.Circle(cx, cy, radius, colors.Primary)
	if radius > 2 {
		c.Circle(cx, cy, radius-1, colors.Glow)
	}
	if scale > 0.3 {
		c.FillCircle(cx, cy, radius/3, colors.Core)
	}

	for _, p := range m.sess.Field().Particles() {
		col := theme.WithOpacity(colors.Particle, p.Opacity())
		for _, tp := range p.Trail {
			tx, ty := toDots(tp.X, tp.Y)
			c.Set(tx, ty, theme.WithOpacity(colors.Particle, p.Opacity()*0.4))
		}
		px, py := toDots(p.X, p.Y)
		c.Set(px, py, col)
		if p.Size > 1.0 {
			c.Set(px+1, py, col)
		}
	}

	if anim := m.sess.Celebration(); anim != nil {
		for _, p := range anim.Particles() {
			col := theme.WithOpacity(p.Color, p.Opacity())
			if len(p.Trail) > 1 {
				x0, y0 := toDots(p.Trail[0][0], p.Trail[0][1])
				x1, y1 := toDots(p.X, p.Y)
				c.Line(x0, y0, x1, y1, theme.WithOpacity(p.Color, p.Opacity()*0.4))
			}
			px, py := toDots(p.X, p.Y)
			c.Set(px, py, col)
		}
	}
}

func (m model) viewComplete() string {
	t, err := m.sess.Technique()
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("    " + m.styles.success.Render("✦ session complete") + "\n\n")
	b.WriteString("    " + m.styles.muted.Render("technique  ") + m.styles.primary.Render(t.Name) + "\n")
	b.WriteString("    " + m.styles.muted.Render("cycles     ") +
		m.styles.primary.Render(fmt.Sprintf("%d", m.sess.CyclesCompleted())) + "\n")
	b.WriteString("    " + m.styles.muted.Render("duration   ") +
		m.styles.primary.Render(session.FormatDuration(m.sess.SessionElapsed())) + "\n")

	if history := m.sess.History(); len(history) > 1 {
		width := m.width - 16
		if width > 60 {
			width = 60
		}
		if width > 10 {
			plot := asciigraph.Plot(history,
				asciigraph.Height(6),
				asciigraph.Width(width),
				asciigraph.Caption("breath depth"))
			b.WriteString("\n" + indent(m.styles.secondary.Render(plot), "    ") + "\n")
		}
	}

	if anim := m.sess.Celebration(); anim != nil {
		b.WriteString("\n    " + m.styles.warning.Render("✺ "+strings.Repeat("· ", 12)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("    r again   enter back to techniques   q quit") + "\n")
	return b.String()
}

func (m model) viewHelp() string {
	rows := [][2]string{
		{"↑↓ / jk", "navigate techniques"},
		{"enter", "choose / confirm"},
		{"←→ / hl", "adjust cycle count"},
		{"space", "begin, pause, resume"},
		{"r", "reset session"},
		{"b / esc", "back"},
		{"a", "toggle audio cues"},
		{"g", "technique guide"},
		{"?", "this help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString("\n    " + m.styles.title.Render("keys") + "\n\n")
	for _, r := range rows {
		b.WriteString("    " + m.styles.accent.Render(fmt.Sprintf("%-10s", r[0])) +
			m.styles.secondary.Render(r[1]) + "\n")
	}
	b.WriteString("\n" + m.styles.muted.Render("    any key to close") + "\n")
	return b.String()
}

func (m model) viewGuide() string {
	t, err := m.sess.Technique()
	if err != nil {
		return ""
	}
	colors := theme.FromTechnique(t.Color)
	title := lipgloss.NewStyle().Foreground(colors.Primary).Bold(true)

	var b strings.Builder
	b.WriteString("\n    " + title.Render(t.Category.Icon()+" "+t.Name) + "  " +
		m.styles.muted.Render(t.Pattern) + "\n\n")
	b.WriteString(indent(wrap(t.Description, 56), "    ") + "\n\n")
	b.WriteString("    " + m.styles.muted.Render("when to use  ") + m.styles.secondary.Render(t.UseCase) + "\n")
	if t.Source != "" {
		b.WriteString("    " + m.styles.muted.Render("origin       ") + m.styles.secondary.Render(t.Source) + "\n")
	}
	b.WriteString("\n" + m.styles.muted.Render("    any key to close") + "\n")
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

func wrap(s string, width int) string {
	words := strings.Fields(s)
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if lineLen+len(w)+1 > width && lineLen > 0 {
			b.WriteByte('\n')
			lineLen = 0
		} else if i > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
