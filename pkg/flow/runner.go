package flow

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Runner drives a Sequence with timers. Phase changes are reported through
// the dispatch function so a GUI host can run them on its main goroutine.
type Runner struct {
	mu       sync.Mutex
	seq      *Sequence
	onPhase  func(Phase)
	dispatch func(func())
	now      func() time.Time
	timer    *time.Timer
	stopped  bool
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithDispatch sets how timer callbacks are delivered, e.g. fyne.Do.
// The default calls them on the timer goroutine.
func WithDispatch(dispatch func(func())) RunnerOption {
	return func(r *Runner) {
		if dispatch != nil {
			r.dispatch = dispatch
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner creates a runner; onPhase is called with every phase entered,
// including the first.
func NewRunner(seq *Sequence, onPhase func(Phase), opts ...RunnerOption) *Runner {
	r := &Runner{
		seq:      seq,
		onPhase:  onPhase,
		dispatch: func(fn func()) { fn() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start enters the first phase and schedules the rest. Cancelling ctx stops
// the runner.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	r.stopped = false
	r.seq.Start(r.now())
	phase := r.seq.Current()
	r.scheduleLocked()
	r.mu.Unlock()

	if ctx != nil {
		go func() {
			<-ctx.Done()
			r.Stop()
		}()
	}

	r.enter(phase)
}

// Current returns the active phase
func (r *Runner) Current() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq.Current()
}

// Trigger ends the active phase if it matches
func (r *Runner) Trigger(phase Phase) bool {
	r.mu.Lock()
	if r.stopped || !r.seq.Trigger(phase, r.now()) {
		r.mu.Unlock()
		return false
	}
	next := r.seq.Current()
	r.scheduleLocked()
	r.mu.Unlock()

	r.enter(next)
	return true
}

// Hold defers timed advances until Release
func (r *Runner) Hold() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq.Hold()
	r.stopTimerLocked()
}

// Release resumes timed advances
func (r *Runner) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq.Release()
	r.scheduleLocked()
}

// Stop cancels any pending timer; later triggers are ignored
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true
	r.stopTimerLocked()
}

func (r *Runner) tick() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}

	advanced, _ := r.seq.Advance(r.now())
	next := r.seq.Current()
	r.scheduleLocked()
	r.mu.Unlock()

	if advanced {
		r.enter(next)
	}
}

func (r *Runner) enter(phase Phase) {
	log.Debug().Str("phase", string(phase)).Msg("flow: entered phase")
	if r.onPhase != nil {
		r.onPhase(phase)
	}
}

func (r *Runner) scheduleLocked() {
	r.stopTimerLocked()
	if r.stopped {
		return
	}

	now := r.now()
	wake, ok := r.seq.NextWake(now)
	if !ok {
		return
	}

	r.timer = time.AfterFunc(wake.Sub(now), func() {
		r.dispatch(r.tick)
	})
}

func (r *Runner) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
