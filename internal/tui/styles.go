package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/breathe/internal/theme"
)

type styles struct {
	title     lipgloss.Style
	primary   lipgloss.Style
	secondary lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
}

func newStyles(th *theme.Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Foreground(th.UI.TextPrimary).Bold(true),
		primary:   lipgloss.NewStyle().Foreground(th.UI.TextPrimary),
		secondary: lipgloss.NewStyle().Foreground(th.UI.TextSecondary),
		muted:     lipgloss.NewStyle().Foreground(th.UI.TextMuted),
		accent:    lipgloss.NewStyle().Foreground(th.UI.Accent),
		success:   lipgloss.NewStyle().Foreground(th.UI.Success),
		warning:   lipgloss.NewStyle().Foreground(th.UI.Warning),
	}
}
