package board

import "fmt"

// connects reports whether the edge, if drawn as s, touches the corner
// identified by role. A sentinel edge never connects to anything.
func connects(ed *edge, s State, role int) bool {
	switch s {
	case Back:
		return role == roleTL || role == roleBR
	case Forward:
		return role == roleTR || role == roleBL
	default:
		return false
	}
}

// connectedPair returns the two corner vertices that state s would join
// in edge ed.
func connectedPair(ed *edge, s State) (VertexID, VertexID) {
	if s == Back {
		return ed.vertex[roleTL], ed.vertex[roleBR]
	}
	return ed.vertex[roleTR], ed.vertex[roleBL]
}

// Assign draws diagonal s into edge e.
//
// Assigning the same state an edge already carries is a no-op. Assigning
// the opposite state of one already carried, assigning into the boundary
// sentinel, or assigning a diagonal that would connect two lattice points
// already joined by the existing drawn diagonals (closing a loop) are all
// reported as errors and leave the puzzle unchanged.
func (p *Puzzle) Assign(e EdgeID, s State) error {
	if s != Forward && s != Back {
		return fmt.Errorf("board: Assign(%d, %v): %w", e, s, ErrInvalidState)
	}
	ed := &p.edges[e]
	if ed.sentinel {
		return fmt.Errorf("board: Assign(%d, %v): %w", e, s, ErrSentinelEdge)
	}
	if ed.state != Unset {
		if ed.state == s {
			return nil
		}
		return fmt.Errorf("board: Assign(%d, %v): edge already holds %v: %w", e, s, ed.state, ErrContradiction)
	}

	a, b := connectedPair(ed, s)
	if p.Connected(a, b) {
		return fmt.Errorf("board: Assign(%d, %v): vertices %d and %d are already connected: %w", e, s, a, b, ErrCycle)
	}

	ed.state = s
	for role := 0; role < 4; role++ {
		v := ed.vertex[role]
		clue := p.vertices[v].clue
		if clue == noClue {
			continue
		}
		if p.Degree(v) > int(clue) || p.Antidegree(v) > 4-int(clue) {
			ed.state = Unset
			return fmt.Errorf("board: Assign(%d, %v): vertex %d clue %d violated: %w", e, s, v, clue, ErrClueExceeded)
		}
	}

	p.log = append(p.log, e)
	return nil
}

// Mark returns a checkpoint identifying the current length of the move
// log, for later use with RollbackTo.
func (p *Puzzle) Mark() int { return len(p.log) }

// RollbackTo undoes every Assign performed since mark, restoring those
// edges to Unset and truncating the move log. Passing a mark from a
// different Puzzle, or one larger than the current log, is a programmer
// error and left unchecked.
func (p *Puzzle) RollbackTo(mark int) {
	for i := len(p.log) - 1; i >= mark; i-- {
		p.edges[p.log[i]].state = Unset
	}
	p.log = p.log[:mark]
}

// Log returns a copy of the move log: every edge Assign has committed, in
// the order it was committed.
func (p *Puzzle) Log() []EdgeID {
	cp := make([]EdgeID, len(p.log))
	copy(cp, p.log)
	return cp
}
