package solve

import (
	"context"

	"github.com/katalvlaran/slant/board"
)

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable parameters for Solve.
type Options struct {
	// Ctx allows cooperative cancellation; defaults to
	// context.Background(). Checked only at the outer worklist boundary.
	Ctx context.Context

	// TrialChainInitiator enables R6, the diagonal trial-by-elimination
	// fallback at clued vertices. The original source references a flag
	// guarding this rule but never sets it; it is treated here as opt-in
	// and defaults to off.
	TrialChainInitiator bool

	// OnAssign, if non-nil, is called once per diagonal committed during
	// this Solve call, in move-log order, including moves committed by
	// a refuted trial hypothesis. It is presentation/telemetry only: it
	// cannot influence propagation and must not call back into the
	// puzzle.
	OnAssign func(board.EdgeID, board.State)

	// OnContradiction, if non-nil, is called whenever a speculative
	// hypothesis raised by R6 or the edge-level trial loop (C7) is
	// refuted, with the error that refuted it, before the opposite
	// diagonal is committed.
	OnContradiction func(error)
}

// DefaultOptions returns an Options with:
//   - Background context
//   - TrialChainInitiator disabled
//   - no instrumentation hooks
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		TrialChainInitiator: false,
	}
}

// WithContext returns an Option that sets the Context Solve observes for
// cancellation. Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTrialChainInitiator returns an Option that enables R6.
func WithTrialChainInitiator() Option {
	return func(o *Options) {
		o.TrialChainInitiator = true
	}
}

// WithOnAssign returns an Option that registers a hook fired once per
// committed diagonal, in move-log order.
func WithOnAssign(fn func(board.EdgeID, board.State)) Option {
	return func(o *Options) {
		o.OnAssign = fn
	}
}

// WithOnContradiction returns an Option that registers a hook fired
// whenever a trial hypothesis (R6 or C7) is refuted, before the opposite
// diagonal is committed.
func WithOnContradiction(fn func(error)) Option {
	return func(o *Options) {
		o.OnContradiction = fn
	}
}
