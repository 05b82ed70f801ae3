package board

// State is the content of a single cell's diagonal edge.
type State int8

const (
	// Unset means no diagonal has been drawn in this cell yet.
	Unset State = iota
	// Forward is the "/" diagonal: it joins a cell's top-right and
	// bottom-left corners.
	Forward
	// Back is the "\" diagonal: it joins a cell's top-left and
	// bottom-right corners.
	Back
)

// String renders a State using the conventional puzzle glyphs.
func (s State) String() string {
	switch s {
	case Forward:
		return "/"
	case Back:
		return "\\"
	default:
		return "."
	}
}

// Invert returns the opposite diagonal of s. Invert(Unset) returns Unset.
func Invert(s State) State {
	switch s {
	case Forward:
		return Back
	case Back:
		return Forward
	default:
		return Unset
	}
}

// Corner roles identify which of a cell's four corners a vertex plays,
// and correspondingly which diagonal state connects to that corner. They
// also double as a vertex's own corner-role slot index (VertexEdge's
// slot argument): slot i is "the cell in which this vertex is role i".
const (
	RoleTL = iota
	RoleTR
	RoleBL
	RoleBR
)

const (
	roleTL = RoleTL
	roleTR = RoleTR
	roleBL = RoleBL
	roleBR = RoleBR
)

// VertexID addresses a lattice point in a Puzzle's vertex arena.
// The zero VertexID is the reserved sentinel.
type VertexID int32

// EdgeID addresses a cell's diagonal in a Puzzle's edge arena.
// The zero EdgeID is the reserved sentinel.
type EdgeID int32

// noClue marks a vertex that carries no numeric constraint.
const noClue = -1

// vertex is a lattice point: its grid coordinates, its optional clue, and
// the four cell-edges that touch it, one per corner role it plays in its
// neighboring cells (slot i is "the cell in which this vertex is role_i").
type vertex struct {
	x, y int
	clue int8
	edge [4]EdgeID
}

// edge is a single cell's diagonal: its grid coordinates, its current
// state, and the four corner vertices of the cell it occupies, indexed by
// corner role (roleTL, roleTR, roleBL, roleBR).
type edge struct {
	x, y     int
	state    State
	sentinel bool
	vertex   [4]VertexID
}

// Puzzle is a Width x Height Slant grid together with every diagonal
// assignment made on it so far. The zero value is not usable; construct
// one with New.
type Puzzle struct {
	Width, Height int

	vertices []vertex
	edges    []edge

	log []EdgeID // append-only order of Assign calls, for replay and rollback
}

// Clue reports the clue carried by vertex v, if any.
func (p *Puzzle) Clue(v VertexID) (int, bool) {
	c := p.vertices[v].clue
	if c == noClue {
		return 0, false
	}
	return int(c), true
}

// VertexXY returns the grid coordinates of vertex v.
func (p *Puzzle) VertexXY(v VertexID) (x, y int) {
	vv := &p.vertices[v]
	return vv.x, vv.y
}

// EdgeXY returns the grid coordinates of the cell edge e occupies.
func (p *Puzzle) EdgeXY(e EdgeID) (x, y int) {
	ee := &p.edges[e]
	return ee.x, ee.y
}

// EdgeState returns the current diagonal state of edge e.
func (p *Puzzle) EdgeState(e EdgeID) State {
	return p.edges[e].state
}

// IsEdgeSolved reports whether e carries a fixed diagonal: either it has
// been assigned, or it is the boundary sentinel, which is permanently
// settled.
func (p *Puzzle) IsEdgeSolved(e EdgeID) bool {
	ee := &p.edges[e]
	return ee.sentinel || ee.state != Unset
}

// VertexEdge returns the EdgeID occupying vertex v's corner-role slot
// (0..3, see roleTL..roleBR). Boundary slots return the sentinel EdgeID.
func (p *Puzzle) VertexEdge(v VertexID, slot int) EdgeID {
	return p.vertices[v].edge[slot]
}

// EdgeVertex returns the VertexID at edge e's corner role (roleTL..roleBR).
func (p *Puzzle) EdgeVertex(e EdgeID, role int) VertexID {
	return p.edges[e].vertex[role]
}
