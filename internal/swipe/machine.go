// Package swipe implements the card-deck state machine behind the swipe
// screen. It is driven entirely by discrete events (drag updates, a
// release, an explicit decision, clock ticks), so the animation timing
// backend lives with the caller and the machine stays unit-testable.
package swipe

import (
	"time"

	"github.com/kaelif/QuickLink/internal/models"
)

const (
	// Threshold is the horizontal offset beyond which a release counts
	// as a decision rather than a snap-back.
	Threshold = 70.0

	// VerticalDamping scales vertical drag relative to horizontal.
	VerticalDamping = 0.3

	// ExitDuration is the fixed length of the exit animation.
	ExitDuration = 180 * time.Millisecond

	// ExitOvershoot places the exit target past the viewport edge.
	ExitOvershoot = 1.2

	springDamping   = 28.0
	springStiffness = 120.0

	// settleEpsilon ends the snap-back once both the offset and the
	// spring velocity are visually at rest.
	settleEpsilon = 0.5

	maxSpringStep = time.Second / 60
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSnapBack
	PhaseExiting
)

type Decision int

const (
	DecisionNone Decision = iota
	DecisionPass
	DecisionLike
)

// Machine owns the ordered deck and the position of the head card. The
// head card is the one displayed; popping it promotes the next card.
// A "like" exit invokes the match callback exactly once per decision.
type Machine struct {
	deck          []models.ClimberProfile
	phase         Phase
	offsetX       float64
	offsetY       float64
	viewportWidth float64
	onLike        func(models.ClimberProfile)

	decision  Decision
	animStart time.Time
	fromX     float64
	fromY     float64
	targetX   float64
	targetY   float64

	velX     float64
	velY     float64
	lastStep time.Time
}

func NewMachine(deck []models.ClimberProfile, viewportWidth float64, onLike func(models.ClimberProfile)) *Machine {
	return &Machine{
		deck:          append([]models.ClimberProfile(nil), deck...),
		viewportWidth: viewportWidth,
		onLike:        onLike,
	}
}

func (m *Machine) Phase() Phase {
	return m.phase
}

func (m *Machine) Offset() (x, y float64) {
	return m.offsetX, m.offsetY
}

// Top returns the currently displayed card, if any.
func (m *Machine) Top() (models.ClimberProfile, bool) {
	if len(m.deck) == 0 {
		return models.ClimberProfile{}, false
	}
	return m.deck[0], true
}

func (m *Machine) Deck() []models.ClimberProfile {
	return append([]models.ClimberProfile(nil), m.deck...)
}

func (m *Machine) Empty() bool {
	return len(m.deck) == 0
}

// Replace swaps in a freshly built deck and resets all transient state.
// The machine never merges new candidates into a running deck.
func (m *Machine) Replace(deck []models.ClimberProfile) {
	m.deck = append([]models.ClimberProfile(nil), deck...)
	m.phase = PhaseIdle
	m.offsetX, m.offsetY = 0, 0
	m.velX, m.velY = 0, 0
	m.decision = DecisionNone
}

// Drag tracks pointer motion on the head card. Ignored while an exit or
// snap-back animation is running, and when the deck is empty.
func (m *Machine) Drag(dx, dy float64) {
	if len(m.deck) == 0 || (m.phase != PhaseIdle && m.phase != PhaseDragging) {
		return
	}
	m.phase = PhaseDragging
	m.offsetX = dx
	m.offsetY = dy * VerticalDamping
}

// Release classifies the gesture by the horizontal offset at release:
// past -Threshold is a pass, past +Threshold a like, anything in between
// snaps back to center.
func (m *Machine) Release(now time.Time) {
	if len(m.deck) == 0 || (m.phase != PhaseIdle && m.phase != PhaseDragging) {
		return
	}

	switch {
	case m.offsetX < -Threshold:
		m.startExit(DecisionPass, now)
	case m.offsetX > Threshold:
		m.startExit(DecisionLike, now)
	default:
		m.phase = PhaseSnapBack
		m.velX, m.velY = 0, 0
		m.lastStep = now
	}
}

// Decide drives a button-triggered decision through the same animated
// exit as a drag release.
func (m *Machine) Decide(d Decision, now time.Time) {
	if d == DecisionNone {
		return
	}
	if len(m.deck) == 0 || (m.phase != PhaseIdle && m.phase != PhaseDragging) {
		return
	}
	m.startExit(d, now)
}

func (m *Machine) startExit(d Decision, now time.Time) {
	m.decision = d
	m.fromX = m.offsetX
	m.fromY = m.offsetY
	m.targetY = m.offsetY
	if d == DecisionPass {
		m.targetX = -m.viewportWidth * ExitOvershoot
	} else {
		m.targetX = m.viewportWidth * ExitOvershoot
	}
	m.animStart = now
	m.phase = PhaseExiting
}

// Advance steps the running animation to the given instant. The caller
// decides the tick cadence; calling with a time past the end of an exit
// completes it in one step.
func (m *Machine) Advance(now time.Time) {
	switch m.phase {
	case PhaseExiting:
		m.advanceExit(now)
	case PhaseSnapBack:
		m.advanceSnapBack(now)
	}
}

func (m *Machine) advanceExit(now time.Time) {
	elapsed := now.Sub(m.animStart)
	if elapsed >= ExitDuration {
		m.completeExit()
		return
	}
	p := easeInOut(float64(elapsed) / float64(ExitDuration))
	m.offsetX = m.fromX + (m.targetX-m.fromX)*p
	m.offsetY = m.fromY + (m.targetY-m.fromY)*p
}

func (m *Machine) completeExit() {
	head := m.deck[0]
	m.deck = m.deck[1:]
	decision := m.decision

	m.offsetX, m.offsetY = 0, 0
	m.velX, m.velY = 0, 0
	m.decision = DecisionNone
	m.phase = PhaseIdle

	if decision == DecisionLike && m.onLike != nil {
		m.onLike(head)
	}
}

func (m *Machine) advanceSnapBack(now time.Time) {
	remaining := now.Sub(m.lastStep)
	if remaining <= 0 {
		return
	}
	m.lastStep = now

	// Semi-implicit Euler on a damped spring toward the origin, stepped
	// at most a frame at a time so large gaps stay stable.
	for remaining > 0 {
		step := remaining
		if step > maxSpringStep {
			step = maxSpringStep
		}
		remaining -= step
		dt := step.Seconds()

		m.velX += (-springStiffness*m.offsetX - springDamping*m.velX) * dt
		m.velY += (-springStiffness*m.offsetY - springDamping*m.velY) * dt
		m.offsetX += m.velX * dt
		m.offsetY += m.velY * dt

		if m.settled() {
			m.offsetX, m.offsetY = 0, 0
			m.velX, m.velY = 0, 0
			m.phase = PhaseIdle
			return
		}
	}
}

func (m *Machine) settled() bool {
	return abs(m.offsetX) < settleEpsilon &&
		abs(m.offsetY) < settleEpsilon &&
		abs(m.velX) < settleEpsilon &&
		abs(m.velY) < settleEpsilon
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
