package solve

import "github.com/katalvlaran/slant/board"

// NodeKind tags a NodeRef as addressing a vertex or a cell edge. The
// original has a class hierarchy (Node -> DegreeNode -> {EdgeNode,
// VertexNode}) for this; here it is a plain tag the worklist dispatches
// on directly, with no shared mutable base state.
type NodeKind int8

const (
	VertexKind NodeKind = iota
	EdgeKind
)

// NodeRef addresses one node of the propagation worklist: either a
// board.VertexID or a board.EdgeID, distinguished by Kind.
type NodeRef struct {
	Kind NodeKind
	ID   int32
}

func vertexRef(v board.VertexID) NodeRef { return NodeRef{Kind: VertexKind, ID: int32(v)} }
func edgeRef(e board.EdgeID) NodeRef     { return NodeRef{Kind: EdgeKind, ID: int32(e)} }

func (r NodeRef) solved(p *board.Puzzle) bool {
	if r.Kind == VertexKind {
		return p.VertexSolved(board.VertexID(r.ID))
	}
	return p.IsEdgeSolved(board.EdgeID(r.ID))
}

// Status is the outcome of a Solve call.
type Status int

const (
	// StatusSolved means every clued vertex reached its clue and the
	// outer worklist drained completely.
	StatusSolved Status = iota
	// StatusStalled means the outer worklist reached quiescence (no
	// progress for a full double pass) with unsolved nodes remaining, or
	// an unrecovered contradiction reached the top level.
	StatusStalled
	// StatusCancelled means the caller's context was done when the outer
	// loop checked it.
	StatusCancelled
)

// Result is what Solve returns.
type Result struct {
	Status Status
	// Moves is the puzzle's full move log at the point Solve returned:
	// every diagonal assignment committed so far, in commit order,
	// including any pre-applied moves made before Solve was called.
	Moves []board.EdgeID
	// Err is set when Status is StatusStalled because of an unrecovered
	// contradiction; it is nil when the stall was ordinary quiescence.
	Err error
}
