// Package tui is the Bubble Tea front end: a fixed-rate tick loop that
// drives the session core and renders the breathing visualization.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/breathe/internal/audio"
	"github.com/san-kum/breathe/internal/session"
)

type model struct {
	sess   *session.Session
	player *audio.Player
	styles styles

	fps       int
	lastFrame time.Time

	audioOn   bool
	showHelp  bool
	showGuide bool

	width  int
	height int
}

func newModel(sess *session.Session, player *audio.Player, fps int) model {
	return model{
		sess:    sess,
		player:  player,
		styles:  newStyles(sess.Theme()),
		fps:     fps,
		audioOn: player.Enabled(),
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return m.tick() }

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Now()
		dt := 0.0
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame).Seconds()
		}
		m.lastFrame = now
		// A stalled terminal should not fast-forward the breathing pattern.
		if dt > 0.1 {
			dt = 0.1
		}

		stateBefore := m.sess.State()
		phaseBefore := m.sess.PhaseIndex()
		cycleBefore := m.sess.CyclesCompleted()

		m.sess.Tick(dt)

		if stateBefore == session.StateBreathing {
			if m.sess.State() == session.StateComplete {
				m.cue(audio.CueComplete)
			} else if m.sess.PhaseIndex() != phaseBefore || m.sess.CyclesCompleted() != cycleBefore {
				if phase, err := m.sess.CurrentPhase(); err == nil {
					m.cue(audio.PhaseCue(phase.Kind))
				}
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) cue(c audio.Cue) {
	if m.audioOn {
		m.player.Play(c)
	}
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Overlays swallow keys until dismissed.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.showGuide {
		m.showGuide = false
		return m, nil
	}
	switch key {
	case "?":
		m.showHelp = true
		return m, nil
	case "g":
		if _, err := m.sess.Technique(); err == nil {
			m.showGuide = true
		}
		return m, nil
	case "a":
		m.audioOn = !m.audioOn && m.player.Enabled()
		return m, nil
	}

	switch m.sess.State() {
	case session.StateSelecting:
		return m.selectingKey(key)
	case session.StateReady:
		return m.readyKey(key)
	case session.StateBreathing, session.StatePaused:
		return m.breathingKey(key)
	case session.StateComplete:
		return m.completeKey(key)
	}
	return m, nil
}

func (m model) selectingKey(key string) (model, tea.Cmd) {
	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "down", "j":
		m.sess.SelectNext()
	case "up", "k":
		m.sess.SelectPrev()
	case "enter", " ":
		m.sess.ConfirmSelection()
	}
	return m, nil
}

func (m model) readyKey(key string) (model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "b", "esc":
		m.sess.BackToSelection()
	case "left", "h":
		m.sess.AdjustCycles(-1)
	case "right", "l":
		m.sess.AdjustCycles(1)
	case "enter", " ":
		if err := m.sess.Start(); err == nil {
			m.cue(audio.CueStart)
			m.lastFrame = time.Time{}
			return m, tea.ClearScreen
		}
	}
	return m, nil
}

func (m model) breathingKey(key string) (model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case " ", "p":
		m.sess.TogglePause()
		m.lastFrame = time.Time{}
	case "r":
		m.sess.Reset()
		return m, tea.ClearScreen
	case "b", "esc":
		m.sess.BackToSelection()
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) completeKey(key string) (model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "r":
		m.sess.Reset()
		return m, tea.ClearScreen
	case "enter", "b", "esc", " ":
		m.sess.BackToSelection()
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) View() string {
	if m.showHelp {
		return m.viewHelp()
	}
	if m.showGuide {
		return m.viewGuide()
	}
	switch m.sess.State() {
	case session.StateSelecting:
		return m.viewSelector()
	case session.StateReady:
		return m.viewReady()
	case session.StateBreathing, session.StatePaused:
		return m.viewSession()
	case session.StateComplete:
		return m.viewComplete()
	}
	return ""
}

// Run starts the interactive app and blocks until the user quits.
func Run(sess *session.Session, player *audio.Player, fps int) error {
	p := tea.NewProgram(newModel(sess, player, fps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
