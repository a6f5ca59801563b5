// Package flow sequences the named phases of the experience. Timed phases
// advance on their own; event-triggered phases wait for Trigger.
package flow

import (
	"errors"
	"fmt"
	"time"
)

// Phase names one stage of the experience
type Phase string

const (
	Intro   Phase = "intro"
	Title   Phase = "title"
	Hexagon Phase = "hexagon"
	Pillow  Phase = "pillow"
	Crown   Phase = "crown"
	Jewel   Phase = "jewel"
	Form    Phase = "form"
)

// ErrNoSteps is returned for an empty sequence
var ErrNoSteps = errors.New("sequence has no steps")

// Step is a phase and how long it lasts. A zero Duration means the phase
// only ends through Trigger.
type Step struct {
	Phase    Phase
	Duration time.Duration
}

// Timed reports whether the step advances on its own
func (s Step) Timed() bool {
	return s.Duration > 0
}

// Sequence holds the timing state of an ordered list of steps. It does not
// know what a phase shows; the host reacts to Advance and Trigger.
type Sequence struct {
	steps   []Step
	index   int
	started time.Time
	held    bool
}

// DefaultSteps is the full experience: intro, title, hexagon drag, the crown
// reveal chain and the lead form.
func DefaultSteps() []Step {
	return []Step{
		{Phase: Intro, Duration: 6 * time.Second},
		{Phase: Title, Duration: 3 * time.Second},
		{Phase: Hexagon},
		{Phase: Pillow, Duration: 2 * time.Second},
		{Phase: Crown, Duration: 2 * time.Second},
		{Phase: Jewel},
		{Phase: Form},
	}
}

// NewSequence validates and copies steps
func NewSequence(steps []Step) (*Sequence, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	seen := make(map[Phase]bool, len(steps))
	for i, step := range steps {
		if step.Phase == "" {
			return nil, fmt.Errorf("step %d: empty phase name", i)
		}
		if seen[step.Phase] {
			return nil, fmt.Errorf("step %d: duplicate phase %q", i, step.Phase)
		}
		if step.Duration < 0 {
			return nil, fmt.Errorf("step %d (%s): negative duration %s", i, step.Phase, step.Duration)
		}
		seen[step.Phase] = true
	}

	return &Sequence{steps: append([]Step(nil), steps...)}, nil
}

// Start enters the first step at now
func (s *Sequence) Start(now time.Time) {
	s.index = 0
	s.started = now
	s.held = false
}

// Started reports whether Start has been called
func (s *Sequence) Started() bool {
	return !s.started.IsZero()
}

// Current returns the active phase
func (s *Sequence) Current() Phase {
	return s.steps[s.index].Phase
}

// Index returns the position of the active step
func (s *Sequence) Index() int {
	return s.index
}

// Steps returns a copy of the steps
func (s *Sequence) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Finished reports whether the last step has been reached
func (s *Sequence) Finished() bool {
	return s.index == len(s.steps)-1
}

// Hold defers timed advances, for example while a drag is in progress.
func (s *Sequence) Hold() {
	s.held = true
}

// Release lifts a Hold. An overdue step advances on the next Advance.
func (s *Sequence) Release() {
	s.held = false
}

// Held reports whether timed advances are deferred
func (s *Sequence) Held() bool {
	return s.held
}

// NextWake returns when the active step is due to end. It returns false
// when nothing is scheduled: not started, held, event-triggered or final.
func (s *Sequence) NextWake(now time.Time) (time.Time, bool) {
	if !s.Started() || s.held || s.Finished() {
		return time.Time{}, false
	}

	step := s.steps[s.index]
	if !step.Timed() {
		return time.Time{}, false
	}

	due := s.started.Add(step.Duration)
	if now.After(due) {
		return now, true
	}
	return due, true
}

// Advance moves past the active step if it is timed and due. At most one
// step is passed per call. finished is true once the last step is active.
func (s *Sequence) Advance(now time.Time) (advanced bool, finished bool) {
	due, ok := s.NextWake(now)
	if !ok || now.Before(due) {
		return false, s.Finished()
	}

	s.next(now)
	return true, s.Finished()
}

// Trigger ends the active step if it is the given phase. Any step may be
// triggered early, and a Hold does not block it.
func (s *Sequence) Trigger(phase Phase, now time.Time) bool {
	if !s.Started() || s.Finished() || s.Current() != phase {
		return false
	}

	s.next(now)
	return true
}

func (s *Sequence) next(now time.Time) {
	s.index++
	s.started = now
}
