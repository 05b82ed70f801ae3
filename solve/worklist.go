package solve

import "github.com/katalvlaran/slant/board"

// workSet is the inner loop's ordered work set: insertion-ordered with
// dedup-on-insert, popped LIFO (most recently inserted first).
type workSet struct {
	items []NodeRef
	seen  map[NodeRef]bool
}

func newWorkSet(seed NodeRef) *workSet {
	return &workSet{
		items: []NodeRef{seed},
		seen:  map[NodeRef]bool{seed: true},
	}
}

func (ws *workSet) push(ref NodeRef) {
	if ws.seen[ref] {
		return
	}
	ws.seen[ref] = true
	ws.items = append(ws.items, ref)
}

func (ws *workSet) pop() (NodeRef, bool) {
	n := len(ws.items)
	if n == 0 {
		return NodeRef{}, false
	}
	ref := ws.items[n-1]
	ws.items = ws.items[:n-1]
	delete(ws.seen, ref)
	return ref, true
}

// innerSolve drives the ordered work set seeded at ref to exhaustion: a
// cache-friendly local closure around ref rather than a global fixed
// point. It reports whether ref itself ended up solved.
func (eng *engine) innerSolve(ref NodeRef) (bool, error) {
	ws := newWorkSet(ref)
	for {
		cur, ok := ws.pop()
		if !ok {
			break
		}
		if cur.solved(eng.p) {
			continue
		}
		affected, err := eng.solveNode(cur)
		if err != nil {
			return false, err
		}
		for _, a := range affected {
			ws.push(a)
		}
	}
	return ref.solved(eng.p), nil
}

// solveNode dispatches a single worklist node to its rule set, returning
// the unsolved vertices newly affected by whatever it assigned.
func (eng *engine) solveNode(ref NodeRef) ([]NodeRef, error) {
	if ref.Kind == EdgeKind {
		return eng.solveEdgeTrial(board.EdgeID(ref.ID))
	}
	return eng.solveVertex(board.VertexID(ref.ID))
}

func affectedVertices(p *board.Puzzle, edges ...board.EdgeID) []NodeRef {
	var refs []NodeRef
	for _, e := range edges {
		for role := 0; role < 4; role++ {
			v := p.EdgeVertex(e, role)
			if !p.VertexSolved(v) {
				refs = append(refs, vertexRef(v))
			}
		}
	}
	return refs
}

// seedQueue builds the outer FIFO: every unsolved vertex in row-major
// order, followed by every unsolved cell in row-major order.
func seedQueue(p *board.Puzzle) []NodeRef {
	var q []NodeRef
	for y := 0; y <= p.Height; y++ {
		for x := 0; x <= p.Width; x++ {
			v := p.VertexAt(x, y)
			if !p.VertexSolved(v) {
				q = append(q, vertexRef(v))
			}
		}
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			e := p.EdgeAt(x, y)
			if !p.IsEdgeSolved(e) {
				q = append(q, edgeRef(e))
			}
		}
	}
	return q
}
