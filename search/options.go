package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Defaults for run configuration. These are per-call values applied by
// DefaultOptions, never module-level state.
const (
	// DefaultWeight is the Weighted A* heuristic multiplier.
	DefaultWeight = 1.5
	// DefaultMaxIterations caps IDA* deepening rounds.
	DefaultMaxIterations = 64
	// DefaultThresholdGrowthLimit aborts IDA* when the next threshold
	// exceeds this multiple of the previous one.
	DefaultThresholdGrowthLimit = 10.0
)

// Option configures a run via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing one search run.
type Options struct {
	// Heuristic estimates remaining cost to the target.
	// Defaults to Manhattan; ignored by the uninformed searches.
	Heuristic Heuristic

	// Weight multiplies the heuristic for WeightedAStar. Must be ≥ 1.
	Weight float64

	// MaxIterations bounds IDA* deepening rounds. Must be > 0.
	MaxIterations int

	// ThresholdGrowthLimit aborts IDA* when the next threshold grows beyond
	// this multiple of the previous one. Must be > 1.
	ThresholdGrowthLimit float64

	// OnExpand is called when a cell is finalized (appended to the trace),
	// with the priority it was dequeued at. BFS and DFS report depth;
	// IDA* reports f at first expansion.
	OnExpand func(c grid.Cell, priority float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: Manhattan heuristic,
// Weight 1.5, MaxIterations 64, ThresholdGrowthLimit 10, no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Heuristic:            Manhattan,
		Weight:               DefaultWeight,
		MaxIterations:        DefaultMaxIterations,
		ThresholdGrowthLimit: DefaultThresholdGrowthLimit,
		OnExpand:             func(grid.Cell, float64) {},
		err:                  nil,
	}
}

// WithHeuristic selects the distance estimator (Manhattan, Euclidean, or a
// caller-supplied function). A nil heuristic is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithWeight sets the Weighted A* multiplier. Values below 1 would make the
// weighted search behave worse than plain A* and are rejected.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: weight %g < 1", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// WithMaxIterations bounds the number of IDA* deepening rounds.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIterations %d ≤ 0", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithThresholdGrowthLimit sets the IDA* threshold growth cap.
func WithThresholdGrowthLimit(m float64) Option {
	return func(o *Options) {
		if m <= 1 {
			o.err = fmt.Errorf("%w: ThresholdGrowthLimit %g ≤ 1", ErrOptionViolation, m)
			return
		}
		o.ThresholdGrowthLimit = m
	}
}

// WithOnExpand registers a callback observing each finalized cell. The
// callback must not be nil; leave the option out to keep the no-op default.
func WithOnExpand(fn func(c grid.Cell, priority float64)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnExpand callback", ErrOptionViolation)
			return
		}
		o.OnExpand = fn
	}
}
