package motif

import (
	"fmt"

	"go.uber.org/zap"
)

// Option configures detection behavior via functional arguments.
// If an Option is invalid (e.g. negative slack), it is recorded
// internally and surfaced as ErrOptionViolation when detection runs.
type Option func(*Options)

// Options holds parameters customizing a detection run.
type Options struct {
	// Logger receives suppress/keep decision logs at Debug level.
	Logger *zap.Logger

	// Parallel runs the per-pattern searches concurrently. Output is
	// byte-identical to the sequential path: pattern results are merged
	// in pattern order through the single run-scoped registry.
	Parallel bool

	// WidenFactor multiplies orbs during the approximate fallback pass.
	WidenFactor float64

	// DiagonalSlack is the extra tolerance for composite diagonals.
	DiagonalSlack float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no-op logger
//   - sequential search
//   - WidenFactor = DefaultWidenFactor
//   - DiagonalSlack = DefaultDiagonalSlack
func DefaultOptions() Options {
	return Options{
		Logger:        zap.NewNop(),
		Parallel:      false,
		WidenFactor:   DefaultWidenFactor,
		DiagonalSlack: DefaultDiagonalSlack,
		err:           nil,
	}
}

// WithLogger routes detection decision logs to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// WithParallel enables concurrent per-pattern search.
func WithParallel() Option {
	return func(o *Options) { o.Parallel = true }
}

// WithWidenFactor overrides the approximate-pass orb multiplier.
//
//	f >= 1: widened orb = orb × f
//	f < 1:  invalid option → ErrOptionViolation
func WithWidenFactor(f float64) Option {
	return func(o *Options) {
		if f < 1 {
			o.err = fmt.Errorf("%w: WidenFactor must be >= 1 (%v)", ErrOptionViolation, f)

			return
		}
		o.WidenFactor = f
	}
}

// WithDiagonalSlack overrides the composite-diagonal tolerance bonus.
//
//	s >= 0: diagonals accept angle within (orb + s)
//	s < 0:  invalid option → ErrOptionViolation
func WithDiagonalSlack(s float64) Option {
	return func(o *Options) {
		if s < 0 {
			o.err = fmt.Errorf("%w: DiagonalSlack cannot be negative (%v)", ErrOptionViolation, s)

			return
		}
		o.DiagonalSlack = s
	}
}
