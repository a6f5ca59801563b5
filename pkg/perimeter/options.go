package perimeter

// Default tracking parameters
const (
	DefaultHopBudget    = 10
	DefaultEndTolerance = 0.05
)

// Option configures a Tracker
type Option func(*Tracker)

// WithHopBudget sets how many adjacent-edge hops a single sample may take
// before it is discarded. Values below 1 are ignored.
func WithHopBudget(hops int) Option {
	return func(t *Tracker) {
		if hops >= 1 {
			t.hopBudget = hops
		}
	}
}

// WithEndTolerance sets the tolerance used to decide that a committed
// position has reached the end of the boundary.
func WithEndTolerance(tolerance float64) Option {
	return func(t *Tracker) {
		if tolerance >= 0 && tolerance <= 1 {
			t.endTolerance = tolerance
		}
	}
}

// WithStart sets the initial resting position. Out-of-range values are
// clamped onto the boundary.
func WithStart(p Position) Option {
	return func(t *Tracker) {
		t.resting = p
	}
}

// WithOnComplete registers a callback fired once, when a drag ends at the
// end of the boundary.
func WithOnComplete(fn func(Position)) Option {
	return func(t *Tracker) {
		t.onComplete = fn
	}
}
