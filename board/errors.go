package board

import "errors"

// Sentinel errors for board operations.
var (
	// ErrInvalidSize indicates a grid was requested with a non-positive
	// width or height.
	ErrInvalidSize = errors.New("board: width and height must be positive")

	// ErrInvalidClue indicates a clue outside the 0..4 range. SetClue does
	// not check whether the vertex has enough real cells to reach the clue.
	ErrInvalidClue = errors.New("board: clue out of range")

	// ErrVertexNotFound indicates an out-of-range vertex coordinate or ID.
	ErrVertexNotFound = errors.New("board: vertex not found")

	// ErrEdgeNotFound indicates an out-of-range edge coordinate or ID.
	ErrEdgeNotFound = errors.New("board: edge not found")

	// ErrInvalidState indicates an attempt to Assign something other than
	// Forward or Back (Unset is not an assignable state).
	ErrInvalidState = errors.New("board: state is not assignable")

	// ErrSentinelEdge indicates an attempt to assign the off-board sentinel
	// edge, which has no geometric existence.
	ErrSentinelEdge = errors.New("board: edge is a boundary sentinel")

	// ErrContradiction indicates an edge was already assigned to the
	// opposite diagonal of the one now being requested.
	ErrContradiction = errors.New("board: edge already assigned the opposite diagonal")

	// ErrCycle indicates the requested assignment would close a loop in
	// the induced connection graph, which is never permitted.
	ErrCycle = errors.New("board: assignment would close a loop")

	// ErrClueExceeded indicates the requested assignment would push a
	// clued vertex's degree above its clue, or its antidegree above
	// 4 minus its clue.
	ErrClueExceeded = errors.New("board: assignment exceeds a vertex clue")
)
