package rules

import (
	"fmt"

	"github.com/katalvlaran/slant/board"
)

// diagonalDirections lists the four strictly-diagonal step directions in
// the fixed scan order the outer rule loop uses: dy outer, dx inner.
var diagonalDirections = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// TrySolveChainInitiator is the opt-in last resort at a strictly-interior
// clued vertex v once R1-R5 found nothing to do: for each diagonal
// neighbor that also needs exactly one more connection, it tentatively
// draws the connecting diagonal and re-saturates both endpoints. If
// nothing goes wrong, the hypothesis proves nothing and is rolled back.
// If it contradicts, the opposite diagonal is forced. guard lets the
// trial at an edge run only when the move log is unchanged since the
// previous visit to that edge; a visit after the log changed only
// records the new log.
// onContradiction, if non-nil, is called with the refuting error
// whenever a hypothesis this rule raises is refuted, before the opposite
// diagonal is committed. It is presentation/telemetry only.
func TrySolveChainInitiator(p *board.Puzzle, v board.VertexID, guard board.TrialGuard, onContradiction func(error)) ([]board.EdgeID, error) {
	if !p.Interior(v) {
		return nil, nil
	}
	clue, hasClue := p.Clue(v)
	if !hasClue {
		return nil, nil
	}

	var changes []board.EdgeID
	for _, dir := range diagonalDirections {
		dx, dy := dir[0], dir[1]

		ov, ok := p.AdjacentVertex(v, dx, dy)
		if !ok || !p.Interior(ov) {
			continue
		}
		ovClue, ovOK := p.Clue(ov)
		if !ovOK {
			continue
		}

		role := board.DiagonalRole(dx, dy)
		e := p.VertexEdge(v, role)
		if p.IsEdgeSolved(e) {
			continue
		}
		if clue-p.Degree(v) != 1 || ovClue-p.Degree(ov) != 1 {
			continue
		}

		expanded := guard.Expanded(p, e)
		guard.Remember(p, e)
		if !expanded {
			continue
		}

		committed, err := tryDiagonal(p, v, ov, e, role, onContradiction)
		if err != nil {
			return changes, err
		}
		if committed {
			changes = append(changes, e)
		}
	}
	return changes, nil
}

// tryDiagonal tentatively connects e and re-saturates both endpoints. It
// reports whether it ended up committing the opposite diagonal instead
// of rolling back.
func tryDiagonal(p *board.Puzzle, v, ov board.VertexID, e board.EdgeID, role int, onContradiction func(error)) (bool, error) {
	mark := p.Mark()

	assignErr := p.Assign(e, board.ConnectingState(role))
	var satErr error
	if assignErr == nil {
		if _, err := Saturate(p, v); err != nil {
			satErr = err
		} else if _, err := Saturate(p, ov); err != nil {
			satErr = err
		}
	}

	if assignErr == nil && satErr == nil {
		p.RollbackTo(mark)
		return false, nil
	}

	cause := assignErr
	if cause == nil {
		cause = satErr
	}
	p.RollbackTo(mark)
	if onContradiction != nil {
		onContradiction(cause)
	}
	if err := p.Assign(e, board.Invert(board.ConnectingState(role))); err != nil {
		return false, fmt.Errorf("rules: chain initiator at edge %d: both diagonals are inconsistent (%v, then %v)", e, cause, err)
	}
	return true, nil
}
