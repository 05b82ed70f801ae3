package board

// ConnectedEdges returns the EdgeIDs of v's corner cells whose diagonal is
// drawn so that it touches v. The boundary sentinel never appears here.
func (p *Puzzle) ConnectedEdges(v VertexID) []EdgeID {
	vv := &p.vertices[v]
	out := make([]EdgeID, 0, 4)
	for slot, role := range vertexSlotRole {
		e := vv.edge[slot]
		ed := &p.edges[e]
		if connects(ed, ed.state, role) {
			out = append(out, e)
		}
	}
	return out
}

// Traverse returns the other endpoint of e as seen from vertex from, and
// whether e currently connects to from at all. It is the single-step
// primitive the connection-graph walk in Connected is built from.
func (p *Puzzle) Traverse(e EdgeID, from VertexID) (VertexID, bool) {
	ed := &p.edges[e]
	if !connects(ed, ed.state, roleTL) && !connects(ed, ed.state, roleTR) &&
		!connects(ed, ed.state, roleBL) && !connects(ed, ed.state, roleBR) {
		return 0, false
	}
	a, b := connectedPair(ed, ed.state)
	switch from {
	case a:
		return b, true
	case b:
		return a, true
	default:
		return 0, false
	}
}

// Connected reports whether a and b are joined by a path of already-drawn
// diagonals: the induced connection graph over solved, connecting edges.
// It is the invariant Assign enforces before committing a new diagonal,
// and the property the solver guarantees holds at completion.
//
// Complexity: O(V+E) over the connection graph induced by solved edges.
func (p *Puzzle) Connected(a, b VertexID) bool {
	if a == b {
		return true
	}
	visited := map[VertexID]bool{a: true}
	stack := []VertexID{a}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range p.ConnectedEdges(v) {
			next, ok := p.Traverse(e, v)
			if !ok || visited[next] {
				continue
			}
			if next == b {
				return true
			}
			visited[next] = true
			stack = append(stack, next)
		}
	}
	return false
}

// FindCycle reports whether the connection graph reachable from start
// contains a cycle, returning the closed sequence of edges that forms it.
// It exists as an independent diagnostic: Assign already refuses any
// single edge that would close a loop, so a correctly driven Puzzle
// should never have one; FindCycle is what a verifier or test calls to
// confirm that invariant actually held.
func (p *Puzzle) FindCycle(start VertexID) ([]EdgeID, bool) {
	type frame struct {
		v    VertexID
		via  EdgeID
		path []EdgeID
	}
	visited := map[VertexID]bool{start: true}
	paths := map[VertexID][]EdgeID{start: nil}
	stack := []frame{{v: start, via: 0, path: nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range p.ConnectedEdges(f.v) {
			if e == f.via {
				continue
			}
			next, ok := p.Traverse(e, f.v)
			if !ok {
				continue
			}
			path := append(append([]EdgeID(nil), f.path...), e)
			if visited[next] {
				// splice the two tree paths into next where they diverge
				other := paths[next]
				k := 0
				for k < len(path) && k < len(other) && path[k] == other[k] {
					k++
				}
				cycle := append([]EdgeID(nil), path[k:]...)
				for i := len(other) - 1; i >= k; i-- {
					cycle = append(cycle, other[i])
				}
				return cycle, true
			}
			visited[next] = true
			paths[next] = path
			stack = append(stack, frame{v: next, via: e, path: path})
		}
	}
	return nil, false
}
