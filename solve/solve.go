package solve

import "github.com/katalvlaran/slant/board"

// Solve drives p to quiescence: it seeds the outer worklist with every
// unsolved vertex and cell, then repeatedly pops the front, invokes its
// inner solve loop, and either discards it (solved) or recycles it to
// the back (no progress yet). It stops when the queue empties (Solved),
// when a full double pass produces no progress (Stalled), when the
// caller's context is done (Cancelled), or when a contradiction reaches
// the top level unrecovered (Stalled, with Err set).
//
// Solve mutates p directly; callers that want to keep the original state
// should clone beforehand.
func Solve(p *board.Puzzle, opts ...Option) Result {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}

	eng := newEngine(p, options)
	queue := seedQueue(p)
	progressless := 0

	for len(queue) > 0 {
		select {
		case <-options.Ctx.Done():
			return Result{Status: StatusCancelled, Moves: p.Log()}
		default:
		}

		ref := queue[0]
		queue = queue[1:]

		if ref.solved(p) {
			progressless = 0
			continue
		}

		solved, err := eng.innerSolve(ref)
		eng.flushAssigns()
		if err != nil {
			return Result{Status: StatusStalled, Moves: p.Log(), Err: err}
		}

		if solved {
			progressless = 0
			continue
		}

		queue = append(queue, ref)
		progressless++
		if progressless == 2*len(queue) {
			break
		}
	}

	status := StatusStalled
	if len(queue) == 0 {
		status = StatusSolved
	}
	return Result{Status: status, Moves: p.Log()}
}
