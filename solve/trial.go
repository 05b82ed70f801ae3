package solve

import (
	"fmt"

	"github.com/katalvlaran/slant/board"
)

// candidateStates is tried in a fixed order so that runs on identical
// input are reproducible move-for-move.
var candidateStates = [2]board.State{board.Forward, board.Back}

// solveEdgeTrial is the edge-level trial-and-undo loop (C7): for each
// candidate diagonal, assign it and, once the guard has seen this edge
// stall at least once unchanged, recurse the inner solve loop into every
// unsolved incident vertex. A state that survives is rolled back and
// proves nothing; a state that contradicts is rolled back and its
// opposite is committed for real.
func (eng *engine) solveEdgeTrial(e board.EdgeID) ([]NodeRef, error) {
	if eng.p.IsEdgeSolved(e) {
		return nil, nil
	}

	expanded := eng.trialGuard.Expanded(eng.p, e)
	eng.trialGuard.Remember(eng.p, e)

	for _, s := range candidateStates {
		mark := eng.p.Mark()

		assignErr := eng.p.Assign(e, s)
		var innerErr error
		if assignErr == nil && expanded {
			for role := 0; role < 4; role++ {
				v := eng.p.EdgeVertex(e, role)
				if eng.p.VertexSolved(v) {
					continue
				}
				if _, err := eng.innerSolve(vertexRef(v)); err != nil {
					innerErr = err
					break
				}
			}
		}

		if assignErr == nil && innerErr == nil {
			eng.p.RollbackTo(mark)
			continue
		}

		cause := assignErr
		if cause == nil {
			cause = innerErr
		}
		eng.p.RollbackTo(mark)
		if eng.opts.OnContradiction != nil {
			eng.opts.OnContradiction(cause)
		}
		opposite := board.Invert(s)
		if err := eng.p.Assign(e, opposite); err != nil {
			return nil, fmt.Errorf("solve: edge %d: both diagonal states are inconsistent: first %v, then %w", e, cause, err)
		}
		return affectedVertices(eng.p, e), nil
	}

	return nil, nil
}
