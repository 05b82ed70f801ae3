package rules

import "github.com/katalvlaran/slant/board"

// Saturate assigns every unsolved edge touching a clued vertex v once
// that clue is either already met or already exhausted: if v's degree
// already equals its clue, every remaining edge must NOT connect to v;
// if v's antidegree already accounts for every non-connecting slot
// (4-clue of them), every remaining edge MUST connect to v. Otherwise it
// makes no change.
func Saturate(p *board.Puzzle, v board.VertexID) ([]board.EdgeID, error) {
	clue, ok := p.Clue(v)
	if !ok {
		return nil, nil
	}

	var target func(slot int) board.State
	switch {
	case p.Degree(v) == clue:
		target = func(slot int) board.State { return board.Invert(board.ConnectingState(slot)) }
	case p.Antidegree(v) == 4-clue:
		target = board.ConnectingState
	default:
		return nil, nil
	}

	var changed []board.EdgeID
	for slot := 0; slot < 4; slot++ {
		e := p.VertexEdge(v, slot)
		if p.IsEdgeSolved(e) {
			continue
		}
		if err := p.Assign(e, target(slot)); err != nil {
			return changed, err
		}
		changed = append(changed, e)
	}
	return changed, nil
}

// isParallel reports whether the two edges straddling v's cardinal
// direction (dx, dy) are both solved and already carry the relationship
// v's clue demands: anti-parallel (different diagonals) for clue 1 or 3,
// parallel (the same diagonal) for clue 2.
func isParallel(p *board.Puzzle, v board.VertexID, dx, dy int) bool {
	clue, ok := p.Clue(v)
	if !ok {
		return false
	}
	r1, r2 := board.CardinalRoles(dx, dy)
	e1, e2 := p.VertexEdge(v, r1), p.VertexEdge(v, r2)
	if !p.IsEdgeSolved(e1) || !p.IsEdgeSolved(e2) {
		return false
	}
	s1, s2 := p.EdgeState(e1), p.EdgeState(e2)
	switch clue {
	case 1, 3:
		return s1 != s2
	case 2:
		return s1 == s2
	default:
		return false
	}
}

// parallelAt enforces the parallel relationship a clued vertex v's
// cardinal direction (dx, dy) demands between the two edges straddling
// it. For clue 1 or 3 it forces both straight away (they must differ).
// For clue 2 it forces the unsolved one of the pair to match its solved
// sibling, if exactly one is solved, then carries the same check forward
// to the next vertex in direction (dx, dy) — propagating a run of
// parallel diagonals down a row or column of clue-2 points.
func parallelAt(p *board.Puzzle, v board.VertexID, dx, dy int) ([]board.EdgeID, error) {
	clue, ok := p.Clue(v)
	if !ok {
		return nil, nil
	}
	r1, r2 := board.CardinalRoles(dx, dy)
	e1, e2 := p.VertexEdge(v, r1), p.VertexEdge(v, r2)

	var changed []board.EdgeID
	switch clue {
	case 1, 3:
		target := board.ConnectingState
		if clue == 1 {
			target = func(slot int) board.State { return board.Invert(board.ConnectingState(slot)) }
		}
		for _, pair := range [2]struct {
			role int
			e    board.EdgeID
		}{{r1, e1}, {r2, e2}} {
			if p.IsEdgeSolved(pair.e) {
				continue
			}
			if err := p.Assign(pair.e, target(pair.role)); err != nil {
				return changed, err
			}
			changed = append(changed, pair.e)
		}
	case 2:
		s1, s2 := p.IsEdgeSolved(e1), p.IsEdgeSolved(e2)
		if s1 != s2 {
			src, dst := e1, e2
			if !s1 {
				src, dst = e2, e1
			}
			if err := p.Assign(dst, p.EdgeState(src)); err != nil {
				return changed, err
			}
			changed = append(changed, dst)
		}
		if next, ok := p.AdjacentVertex(v, dx, dy); ok {
			more, err := parallelAt(p, next, dx, dy)
			changed = append(changed, more...)
			if err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}

type chainAction int

const (
	actionNone chainAction = iota
	actionParallelSelf
	actionParallelBoth
)

// interestingNode decides what, if anything, breaks a clue-2 chain walk
// at candidate vertex w, from the perspective of the originating vertex
// v with clue d, walking in direction (dx, dy).
func interestingNode(p *board.Puzzle, v, w board.VertexID, dx, dy int) chainAction {
	if isParallel(p, w, dx, dy) {
		return actionParallelSelf
	}

	clue, ok := p.Clue(v)
	if !ok {
		return actionNone
	}
	wClue, wOK := p.Clue(w)
	if !wOK {
		return actionNone
	}

	switch clue {
	case 1, 3:
		if wClue == clue {
			return actionParallelBoth
		}
		if wClue == 2 {
			wr1, wr2 := board.CardinalRoles(dx, dy)
			we1, we2 := p.VertexEdge(w, wr1), p.VertexEdge(w, wr2)
			want := board.ConnectingState
			if clue == 3 {
				want = func(slot int) board.State { return board.Invert(board.ConnectingState(slot)) }
			}
			if (p.IsEdgeSolved(we1) && p.EdgeState(we1) == want(wr1)) ||
				(p.IsEdgeSolved(we2) && p.EdgeState(we2) == want(wr2)) {
				return actionParallelBoth
			}
		}
	case 2:
		if wClue != 2 {
			return actionNone
		}
		r1, r2 := board.CardinalRoles(-dx, -dy)
		e1, e2 := p.VertexEdge(v, r1), p.VertexEdge(v, r2)
		wr1, wr2 := board.CardinalRoles(dx, dy)
		we1, we2 := p.VertexEdge(w, wr1), p.VertexEdge(w, wr2)

		s1, s2 := p.IsEdgeSolved(e1), p.IsEdgeSolved(e2)
		if s1 == s2 {
			return actionNone
		}
		a1, a2 := p.EdgeState(e1), p.EdgeState(e2)
		b1, b2 := p.EdgeState(we1), p.EdgeState(we2)
		if (a1 == b2 && a2 == b1) || (a1 == board.Invert(b1) && a2 == board.Invert(b2)) {
			return actionParallelBoth
		}
	}
	return actionNone
}

// lookAcross walks the clue-2 chain starting at ov (the neighbor of v in
// direction (dx, dy)) until it finds a vertex that is not clue-2, or one
// that interestingNode judges worth acting on, and applies that action.
func lookAcross(p *board.Puzzle, v, ov board.VertexID, dx, dy int) ([]board.EdgeID, error) {
	w := ov
	for {
		wClue, wOK := p.Clue(w)
		if !(wOK && wClue == 2) {
			break
		}
		if interestingNode(p, v, w, dx, dy) != actionNone {
			break
		}
		next, ok := p.AdjacentVertex(w, dx, dy)
		if !ok {
			break
		}
		w = next
	}

	switch interestingNode(p, v, w, dx, dy) {
	case actionParallelSelf:
		return parallelAt(p, v, -dx, -dy)
	case actionParallelBoth:
		changed, err := parallelAt(p, w, dx, dy)
		if err != nil {
			return changed, err
		}
		more, err := parallelAt(p, v, -dx, -dy)
		return append(changed, more...), err
	default:
		return nil, nil
	}
}

// SolveVertex runs the full local deduction pass at v: saturation first,
// then, if that made no change, the eight-direction scan that applies
// diagonal exclusion, parallel transport, and clue-2 chain walking.
func SolveVertex(p *board.Puzzle, v board.VertexID) ([]board.EdgeID, error) {
	if p.VertexSolved(v) {
		return nil, nil
	}

	changes, err := Saturate(p, v)
	if err != nil || len(changes) > 0 {
		return changes, err
	}

	vx, vy := p.VertexXY(v)
	clue, hasClue := p.Clue(v)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if (vx == 0 || vx == p.Width) && dx == 0 {
				continue
			}
			if (vy == 0 || vy == p.Height) && dy == 0 {
				continue
			}

			ov, ok := p.AdjacentVertex(v, dx, dy)
			if !ok {
				if dx != 0 && dy != 0 {
					continue
				}
				// a cardinal step ran off the board; for clue-1 vertices
				// the same exclusion applies from one step inward.
				if hasClue && clue == 1 {
					if inward, ok2 := p.AdjacentVertex(v, -dx, -dy); ok2 {
						more, perr := parallelAt(p, inward, -dx, -dy)
						changes = append(changes, more...)
						if perr != nil {
							return changes, perr
						}
					}
				}
				continue
			}

			switch {
			case dx != 0 && dy != 0:
				if hasClue && clue == 1 && p.Interior(v) && p.Interior(ov) {
					if ovClue, ovOK := p.Clue(ov); ovOK && ovClue == 1 {
						role := board.DiagonalRole(dx, dy)
						e := p.VertexEdge(v, role)
						if !p.IsEdgeSolved(e) {
							if err := p.Assign(e, board.Invert(board.ConnectingState(role))); err != nil {
								return changes, err
							}
							changes = append(changes, e)
						}
					}
				}
			case isParallel(p, v, -dx, -dy):
				more, perr := parallelAt(p, ov, dx, dy)
				changes = append(changes, more...)
				if perr != nil {
					return changes, perr
				}
			default:
				more, perr := lookAcross(p, v, ov, dx, dy)
				changes = append(changes, more...)
				if perr != nil {
					return changes, perr
				}
			}
		}
	}

	return changes, nil
}
