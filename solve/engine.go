package solve

import (
	"github.com/katalvlaran/slant/board"
	"github.com/katalvlaran/slant/rules"
)

// engine bundles the mutable state a run of Solve threads through the
// worklist: the puzzle itself, the resolved options, and the two trial
// guards (R6's chain initiator and C7's edge-level trial) that suppress
// repeating an unchanged hypothesis.
type engine struct {
	p          *board.Puzzle
	opts       Options
	r6Guard    board.TrialGuard
	trialGuard board.TrialGuard
	notified   int // move-log length already reported to OnAssign
}

func newEngine(p *board.Puzzle, opts Options) *engine {
	return &engine{
		p:          p,
		opts:       opts,
		r6Guard:    board.NewTrialGuard(),
		trialGuard: board.NewTrialGuard(),
		notified:   len(p.Log()), // pre-applied moves predate this Solve call
	}
}

// solveVertex applies rules R1-R5, and, if nothing changed and the
// option is enabled, the R6 chain-initiator trial.
func (eng *engine) solveVertex(v board.VertexID) ([]NodeRef, error) {
	changes, err := rules.SolveVertex(eng.p, v)
	if err != nil {
		return affectedVertices(eng.p, changes...), err
	}
	if len(changes) == 0 && eng.opts.TrialChainInitiator {
		changes, err = rules.TrySolveChainInitiator(eng.p, v, eng.r6Guard, eng.opts.OnContradiction)
		if err != nil {
			return affectedVertices(eng.p, changes...), err
		}
	}
	return affectedVertices(eng.p, changes...), nil
}

// flushAssigns fires the OnAssign hook, if configured, once for every
// move-log entry committed since the last flush. It is called only at
// the outer worklist boundary (solve.go), where any speculative
// assignment made and rolled back inside a trial has already resolved
// one way or the other, so every entry seen here is permanently
// committed.
func (eng *engine) flushAssigns() {
	if eng.opts.OnAssign == nil {
		return
	}
	log := eng.p.Log()
	for _, e := range log[eng.notified:] {
		eng.opts.OnAssign(e, eng.p.EdgeState(e))
	}
	eng.notified = len(log)
}
