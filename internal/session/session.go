// Package session owns the breathing session state machine: phase and
// cycle progression, pause-correct elapsed time, breath-scale computation,
// and the color transition blend. The host render loop drives it with a
// fixed-rate Tick and reads the resulting state every frame.
package session

import (
	"fmt"
	"time"

	"github.com/san-kum/breathe/internal/celebrate"
	"github.com/san-kum/breathe/internal/ease"
	"github.com/san-kum/breathe/internal/particles"
	"github.com/san-kum/breathe/internal/technique"
	"github.com/san-kum/breathe/internal/theme"
)

const (
	// transitionSmoothTime drives the color blend after a phase change.
	transitionSmoothTime = 0.15

	maxParticles = 150

	minCycles = 1
	maxCycles = 99

	// historyRate is how often the breath depth is sampled for the
	// completion graph, in samples per second.
	historyRate = 15.0
)

// State is the run state of a session.
type State int

const (
	StateSelecting State = iota // choosing a technique
	StateReady                  // technique selected, waiting to start
	StateBreathing              // active session
	StatePaused                 // session paused
	StateComplete               // session finished
)

func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateReady:
		return "ready"
	case StateBreathing:
		return "breathing"
	case StatePaused:
		return "paused"
	case StateComplete:
		return "complete"
	}
	return "unknown"
}

// Session is the mutable root of the simulation core. It is exclusively
// owned by the single render-loop goroutine; no locking.
type Session struct {
	catalog *technique.Catalog
	theme   *theme.Theme

	selectedIndex int
	tech          *technique.Technique
	state         State

	cyclesTarget    int
	cyclesCompleted int
	phaseIndex      int
	phaseStart      time.Time
	sessionStart    time.Time

	field *particles.System

	transitionProgress float64
	transitionVelocity float64
	prevPhase          technique.PhaseKind
	hasPrevPhase       bool

	celebration *celebrate.Animation

	phaseElapsedAtPause   float64
	sessionElapsedAtPause time.Duration

	history       []float64
	historyCredit float64

	// now is the wall clock; injectable for tests.
	now func() time.Time
}

// New creates a session in technique-selection mode.
func New(catalog *technique.Catalog, th *theme.Theme) *Session {
	return &Session{
		catalog:            catalog,
		theme:              th,
		state:              StateSelecting,
		cyclesTarget:       4,
		field:              particles.NewSystem(maxParticles),
		transitionProgress: 1.0,
		now:                time.Now,
	}
}

// NewWithTechnique creates a session pre-armed with a technique, ready to
// start. cycles <= 0 falls back to the technique's default.
func NewWithTechnique(catalog *technique.Catalog, th *theme.Theme, tech *technique.Technique, cycles int) *Session {
	s := New(catalog, th)
	s.tech = tech
	s.state = StateReady
	if cycles > 0 {
		s.cyclesTarget = clampCycles(cycles)
	} else {
		s.cyclesTarget = tech.DefaultCycles
	}
	return s
}

func clampCycles(n int) int {
	if n < minCycles {
		return minCycles
	}
	if n > maxCycles {
		return maxCycles
	}
	return n
}

// State returns the current run state.
func (s *Session) State() State { return s.state }

// Catalog returns the technique catalog the session selects from.
func (s *Session) Catalog() *technique.Catalog { return s.catalog }

// Theme returns the session's color theme.
func (s *Session) Theme() *theme.Theme { return s.theme }

// SelectedIndex returns the cursor position in the selector.
func (s *Session) SelectedIndex() int { return s.selectedIndex }

// Selected returns the technique under the selector cursor.
func (s *Session) Selected() *technique.Technique {
	return s.catalog.At(s.selectedIndex)
}

// Technique returns the active technique, or ErrNoTechnique.
func (s *Session) Technique() (*technique.Technique, error) {
	if s.tech == nil {
		return nil, ErrNoTechnique
	}
	return s.tech, nil
}

// CyclesTarget returns the configured cycle count for the run.
func (s *Session) CyclesTarget() int { return s.cyclesTarget }

// CyclesCompleted returns the number of full cycles finished so far.
func (s *Session) CyclesCompleted() int { return s.cyclesCompleted }

// PhaseIndex returns the current phase position within the technique.
func (s *Session) PhaseIndex() int { return s.phaseIndex }

// Field returns the main particle simulation.
func (s *Session) Field() *particles.System { return s.field }

// Celebration returns the completion animation, or nil if none is playing.
func (s *Session) Celebration() *celebrate.Animation { return s.celebration }

// History returns the recorded breath-depth samples for the session.
func (s *Session) History() []float64 { return s.history }

// SelectNext moves the selector cursor down, wrapping. Selecting only.
func (s *Session) SelectNext() {
	if s.state != StateSelecting {
		return
	}
	s.selectedIndex = (s.selectedIndex + 1) % s.catalog.Len()
}

// SelectPrev moves the selector cursor up, wrapping. Selecting only.
func (s *Session) SelectPrev() {
	if s.state != StateSelecting {
		return
	}
	if s.selectedIndex == 0 {
		s.selectedIndex = s.catalog.Len() - 1
	} else {
		s.selectedIndex--
	}
}

// ConfirmSelection adopts the technique under the cursor and its default
// cycle count, moving to Ready. Selecting only.
func (s *Session) ConfirmSelection() {
	if s.state != StateSelecting {
		return
	}
	s.tech = s.catalog.At(s.selectedIndex)
	s.cyclesTarget = s.tech.DefaultCycles
	s.state = StateReady
}

// AdjustCycles changes the cycle target by delta, clamped to [1, 99].
// Ready only.
func (s *Session) AdjustCycles(delta int) {
	if s.state != StateReady {
		return
	}
	s.cyclesTarget = clampCycles(s.cyclesTarget + delta)
}

// BackToSelection tears the session down to the technique selector.
func (s *Session) BackToSelection() {
	s.state = StateSelecting
	s.tech = nil
	s.phaseIndex = 0
	s.cyclesCompleted = 0
	s.field.Clear()
	s.field.ClearEmitters()
	s.celebration = nil
	s.phaseElapsedAtPause = 0
	s.sessionElapsedAtPause = 0
	s.transitionProgress = 1.0
	s.hasPrevPhase = false
	s.history = nil
}

// Reset returns a finished or paused session to Ready, keeping the
// technique and cycle target.
func (s *Session) Reset() {
	s.state = StateReady
	s.phaseIndex = 0
	s.cyclesCompleted = 0
	s.field.Clear()
	s.field.ClearEmitters()
	s.celebration = nil
	s.phaseElapsedAtPause = 0
	s.sessionElapsedAtPause = 0
	s.transitionProgress = 1.0
	s.hasPrevPhase = false
	s.history = nil
}

// Start begins the breathing run. Only valid from Ready; returns
// ErrNoTechnique if no technique is armed.
func (s *Session) Start() error {
	if s.tech == nil {
		return ErrNoTechnique
	}
	if s.state != StateReady {
		return nil
	}

	now := s.now()
	s.state = StateBreathing
	s.sessionStart = now
	s.phaseStart = now
	s.phaseIndex = 0
	s.cyclesCompleted = 0
	s.phaseElapsedAtPause = 0
	s.sessionElapsedAtPause = 0
	s.transitionProgress = 1.0
	s.transitionVelocity = 0
	s.prevPhase = s.tech.Phases[0].Kind
	s.hasPrevPhase = true
	s.celebration = nil
	s.history = s.history[:0]
	s.historyCredit = 0

	scale, _ := s.BreathScale()
	s.field.ConfigureForPhase(s.tech.Phases[0].Kind, scale)
	return nil
}

// TogglePause flips between Breathing and Paused. Pausing captures the
// elapsed durations; resuming rebases the start instants so elapsed-time
// queries are pause-agnostic.
func (s *Session) TogglePause() {
	switch s.state {
	case StateBreathing:
		now := s.now()
		s.phaseElapsedAtPause = now.Sub(s.phaseStart).Seconds()
		s.sessionElapsedAtPause = now.Sub(s.sessionStart)
		s.state = StatePaused
	case StatePaused:
		now := s.now()
		s.phaseStart = now.Add(-time.Duration(s.phaseElapsedAtPause * float64(time.Second)))
		s.sessionStart = now.Add(-s.sessionElapsedAtPause)
		s.state = StateBreathing
	}
}

// CurrentPhase returns the active phase, or ErrNoTechnique.
func (s *Session) CurrentPhase() (technique.Phase, error) {
	if s.tech == nil {
		return technique.Phase{}, ErrNoTechnique
	}
	return s.tech.Phases[s.phaseIndex], nil
}

// PhaseElapsed returns seconds spent in the current phase, pause-correct.
func (s *Session) PhaseElapsed() float64 {
	if s.state == StatePaused {
		return s.phaseElapsedAtPause
	}
	return s.now().Sub(s.phaseStart).Seconds()
}

// PhaseProgress returns the current phase progress in [0, 1]. A
// zero-duration phase is treated as already finished.
func (s *Session) PhaseProgress() (float64, error) {
	phase, err := s.CurrentPhase()
	if err != nil {
		return 0, err
	}
	if phase.Duration <= 0 {
		return 1, nil
	}
	return ease.Clamp(s.PhaseElapsed()/phase.Duration, 0, 1), nil
}

// PhaseRemaining returns seconds left in the current phase, floored at 0.
func (s *Session) PhaseRemaining() (float64, error) {
	phase, err := s.CurrentPhase()
	if err != nil {
		return 0, err
	}
	remaining := phase.Duration - s.PhaseElapsed()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// SessionElapsed returns the pause-correct total session duration.
func (s *Session) SessionElapsed() time.Duration {
	if s.state == StatePaused || s.state == StateComplete {
		return s.sessionElapsedAtPause
	}
	return s.now().Sub(s.sessionStart)
}

// BreathScale returns the visual fullness of the breathing circle in
// [0, 1]: growing through Inhale, full through Hold, shrinking through
// Exhale, empty through the rest phase.
func (s *Session) BreathScale() (float64, error) {
	phase, err := s.CurrentPhase()
	if err != nil {
		return 0, err
	}
	progress, _ := s.PhaseProgress()
	eased := ease.Breath(progress)

	switch phase.Kind {
	case technique.Inhale:
		return eased, nil
	case technique.Hold:
		return 1, nil
	case technique.Exhale:
		return 1 - eased, nil
	case technique.RestAfterExhale:
		return 0, nil
	}
	return 0, nil
}

// Colors returns the phase color set to display, blended with the
// previous phase's set while a transition is in progress.
func (s *Session) Colors() (theme.PhaseColors, error) {
	phase, err := s.CurrentPhase()
	if err != nil {
		return theme.PhaseColors{}, err
	}
	current := s.theme.PhaseColorsFor(phase.Kind)

	if s.hasPrevPhase && s.transitionProgress < 1 {
		prev := s.theme.PhaseColorsFor(s.prevPhase)
		return theme.BlendPhaseColors(prev, current, s.transitionProgress), nil
	}
	return current, nil
}

// Tick advances the session by dt seconds. The celebration animation, if
// present, always advances; everything else only while Breathing.
func (s *Session) Tick(dt float64) {
	if s.celebration != nil {
		s.celebration.Tick(dt)
		if s.celebration.Complete() {
			s.celebration = nil
		}
	}

	if s.state != StateBreathing {
		return
	}

	if s.transitionProgress < 1 {
		s.transitionProgress, s.transitionVelocity = ease.SmoothDamp(
			s.transitionProgress, 1.0, s.transitionVelocity, transitionSmoothTime, dt)
	}

	s.field.Update(dt)
	s.recordHistory(dt)

	phase, err := s.CurrentPhase()
	if err != nil {
		return
	}
	if s.PhaseElapsed() >= phase.Duration {
		s.advancePhase()
	}
}

func (s *Session) recordHistory(dt float64) {
	s.historyCredit += dt
	interval := 1.0 / historyRate
	for s.historyCredit >= interval {
		s.historyCredit -= interval
		if scale, err := s.BreathScale(); err == nil {
			s.history = append(s.history, scale)
		}
	}
}

func (s *Session) advancePhase() {
	s.prevPhase = s.tech.Phases[s.phaseIndex].Kind
	s.hasPrevPhase = true

	s.phaseIndex++
	if s.phaseIndex >= len(s.tech.Phases) {
		s.phaseIndex = 0
		s.cyclesCompleted++

		if s.cyclesCompleted >= s.cyclesTarget {
			// Capture the final duration before leaving Breathing.
			s.sessionElapsedAtPause = s.now().Sub(s.sessionStart)
			s.state = StateComplete

			c := celebrate.New()
			c.SetCenter(0, 0)
			c.SpawnBurst()
			s.celebration = c
			return
		}
	}

	s.phaseStart = s.now()

	// Begin a fresh color blend into the new phase.
	s.transitionProgress = 0
	s.transitionVelocity = 0

	scale, _ := s.BreathScale()
	s.field.ConfigureForPhase(s.tech.Phases[s.phaseIndex].Kind, scale)
}

// FormatDuration renders a duration as mm:ss for display.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
