package board

import "fmt"

// New constructs an empty Puzzle of the given size: width x height cells,
// (width+1) x (height+1) vertices, none of them clued and none of the
// cells assigned.
//
// Complexity: O(width*height).
func New(width, height int) (*Puzzle, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board: New(%d, %d): %w", width, height, ErrInvalidSize)
	}

	p := &Puzzle{Width: width, Height: height}

	nv := (width+1)*(height+1) + 1 // +1 for the sentinel at index 0
	ne := width*height + 1
	p.vertices = make([]vertex, nv)
	p.edges = make([]edge, ne)

	p.vertices[0] = vertex{x: -1, y: -1, clue: noClue}
	p.edges[0] = edge{x: -1, y: -1, sentinel: true}

	for vy := 0; vy <= height; vy++ {
		for vx := 0; vx <= width; vx++ {
			p.vertices[p.vertexIndex(vx, vy)] = vertex{x: vx, y: vy, clue: noClue}
		}
	}
	for ey := 0; ey < height; ey++ {
		for ex := 0; ex < width; ex++ {
			id := p.edgeIndex(ex, ey)
			p.edges[id] = edge{
				x: ex, y: ey,
				vertex: [4]VertexID{
					roleTL: p.VertexAt(ex, ey),
					roleTR: p.VertexAt(ex+1, ey),
					roleBL: p.VertexAt(ex, ey+1),
					roleBR: p.VertexAt(ex+1, ey+1),
				},
			}
		}
	}

	// wire each vertex's four corner-role slots to the cell it borders,
	// falling back to the sentinel edge when that cell is off-grid.
	for vy := 0; vy <= height; vy++ {
		for vx := 0; vx <= width; vx++ {
			v := &p.vertices[p.vertexIndex(vx, vy)]
			v.edge[roleTL] = p.edgeAtOrSentinel(vx, vy)
			v.edge[roleTR] = p.edgeAtOrSentinel(vx-1, vy)
			v.edge[roleBL] = p.edgeAtOrSentinel(vx, vy-1)
			v.edge[roleBR] = p.edgeAtOrSentinel(vx-1, vy-1)
		}
	}

	return p, nil
}

func (p *Puzzle) vertexIndex(x, y int) int { return 1 + y*(p.Width+1) + x }
func (p *Puzzle) edgeIndex(x, y int) int   { return 1 + y*p.Width + x }

// VertexAt returns the VertexID at lattice coordinate (x, y).
// Coordinates outside [0, Width] x [0, Height] return the sentinel VertexID.
func (p *Puzzle) VertexAt(x, y int) VertexID {
	if x < 0 || y < 0 || x > p.Width || y > p.Height {
		return 0
	}
	return VertexID(p.vertexIndex(x, y))
}

// EdgeAt returns the EdgeID of the cell at (x, y).
// Coordinates outside [0, Width) x [0, Height) return the sentinel EdgeID.
func (p *Puzzle) EdgeAt(x, y int) EdgeID {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return EdgeID(p.edgeIndex(x, y))
}

func (p *Puzzle) edgeAtOrSentinel(x, y int) EdgeID {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return EdgeID(p.edgeIndex(x, y))
}

// AdjacentVertex returns the vertex one step (dx, dy) away from v, where
// dx and dy are each -1, 0 or 1. It reports false if that step would land
// outside the grid.
func (p *Puzzle) AdjacentVertex(v VertexID, dx, dy int) (VertexID, bool) {
	x, y := p.VertexXY(v)
	x += dx
	y += dy
	if x < 0 || y < 0 || x > p.Width || y > p.Height {
		return 0, false
	}
	return p.VertexAt(x, y), true
}

// CardinalRoles returns the pair of corner roles of the two cells that
// straddle the cardinal line from a vertex in direction (dx, dy), where
// exactly one of dx, dy is zero.
func CardinalRoles(dx, dy int) (int, int) {
	switch {
	case dx == 1 && dy == 0:
		return roleBL, roleTL
	case dx == -1 && dy == 0:
		return roleBR, roleTR
	case dx == 0 && dy == 1:
		return roleTL, roleTR
	case dx == 0 && dy == -1:
		return roleBL, roleBR
	default:
		return -1, -1
	}
}

// DiagonalRole returns the corner role of the single cell shared between
// a vertex and its diagonal neighbor in direction (dx, dy), where dx and
// dy are both nonzero.
func DiagonalRole(dx, dy int) int {
	switch {
	case dx == 1 && dy == 1:
		return roleTL
	case dx == -1 && dy == 1:
		return roleTR
	case dx == 1 && dy == -1:
		return roleBL
	case dx == -1 && dy == -1:
		return roleBR
	default:
		return -1
	}
}

// Interior reports whether vertex v lies strictly inside the grid
// boundary, i.e. all four of its corner-role cells exist.
func (p *Puzzle) Interior(v VertexID) bool {
	vv := &p.vertices[v]
	return vv.x > 0 && vv.y > 0 && vv.x < p.Width && vv.y < p.Height
}

// SetClue fixes the clue at lattice coordinate (x, y). A clue must be in
// 0..4. A clue cannot be cleared once set; to leave a vertex unclued,
// simply never call SetClue for it.
func (p *Puzzle) SetClue(x, y int, clue int) error {
	v := p.VertexAt(x, y)
	if v == 0 {
		return fmt.Errorf("board: SetClue(%d, %d): %w", x, y, ErrVertexNotFound)
	}
	if clue < 0 || clue > 4 {
		return fmt.Errorf("board: SetClue(%d, %d, %d): %w", x, y, clue, ErrInvalidClue)
	}
	p.vertices[v].clue = int8(clue)
	return nil
}

// NumVertices returns the number of real (non-sentinel) vertices.
func (p *Puzzle) NumVertices() int { return (p.Width + 1) * (p.Height + 1) }

// NumEdges returns the number of real (non-sentinel) edges.
func (p *Puzzle) NumEdges() int { return p.Width * p.Height }
