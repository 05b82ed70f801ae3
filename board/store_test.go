package board_test

import (
	"testing"

	"github.com/katalvlaran/slant/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign_RejectsInvalidState(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	e := p.EdgeAt(0, 0)
	assert.ErrorIs(t, p.Assign(e, board.Unset), board.ErrInvalidState)
}

func TestAssign_RejectsSentinel(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, p.Assign(0, board.Forward), board.ErrSentinelEdge)
}

func TestAssign_SameStateIsNoop(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	e := p.EdgeAt(0, 0)
	require.NoError(t, p.Assign(e, board.Forward))
	mark := p.Mark()
	assert.NoError(t, p.Assign(e, board.Forward))
	assert.Equal(t, mark, p.Mark())
}

func TestAssign_OppositeStateIsContradiction(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	e := p.EdgeAt(0, 0)
	require.NoError(t, p.Assign(e, board.Forward))
	assert.ErrorIs(t, p.Assign(e, board.Back), board.ErrContradiction)
}

// TestAssign_ClueExceeded is the "corner-0 forcing" scenario (spec §8.1):
// a clue of 0 means the one real edge touching that corner can never be
// drawn to connect to it.
func TestAssign_ClueExceeded(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, p.SetClue(0, 0, 0))

	corner := p.VertexAt(0, 0)
	e := p.EdgeAt(0, 0) // the only real edge touching the corner, via its TL role

	err = p.Assign(e, board.Back) // Back connects at TL: would raise degree to 1 > 0
	require.ErrorIs(t, err, board.ErrClueExceeded)
	assert.Equal(t, board.Unset, p.EdgeState(e), "a refused assignment must roll back to Unset")
	assert.Equal(t, 0, p.Mark(), "a refused assignment must not reach the move log")

	require.NoError(t, p.Assign(e, board.Forward)) // Forward does not connect at TL
	assert.Equal(t, 0, p.Degree(corner))
}

// TestAssign_AntidegreeExceeded checks the antidegree side of I1: a clue
// of 4 at an interior vertex means every incident edge must connect, so
// a non-connecting assignment is refused once 4-clue=0 slack is used up.
func TestAssign_AntidegreeExceeded(t *testing.T) {
	p, err := board.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, p.SetClue(1, 1, 4))

	v := p.VertexAt(1, 1)
	// TL role of vertex (1,1) is cell (1,1) in board's role wiring
	// (v.edge[roleTL] = edgeAtOrSentinel(vx, vy)).
	e := p.EdgeAt(1, 1)
	err = p.Assign(e, board.Forward) // Forward does not connect at TL role
	require.ErrorIs(t, err, board.ErrClueExceeded)
	assert.Equal(t, board.Unset, p.EdgeState(e))

	require.NoError(t, p.Assign(e, board.Back)) // Back connects at TL role
	assert.Equal(t, 1, p.Degree(v))
}

// TestAssign_RejectsCycle reproduces the minimal 4-cycle in a 2x2 grid:
// cells (0,0)/(1,0)/(0,1) connect (2,1)-(1,0)-(0,1)-(1,2) in sequence,
// and drawing the fourth cell's Forward diagonal would join (1,2) back
// to (2,1), closing the loop.
func TestAssign_RejectsCycle(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, p.Assign(p.EdgeAt(0, 0), board.Forward)) // (1,0)-(0,1)
	require.NoError(t, p.Assign(p.EdgeAt(1, 0), board.Back))    // (1,0)-(2,1)
	require.NoError(t, p.Assign(p.EdgeAt(0, 1), board.Back))    // (0,1)-(1,2)

	err = p.Assign(p.EdgeAt(1, 1), board.Forward) // would connect (2,1)-(1,2), closing the loop
	assert.ErrorIs(t, err, board.ErrCycle)
	assert.Equal(t, board.Unset, p.EdgeState(p.EdgeAt(1, 1)))
}

func TestMarkAndRollbackTo(t *testing.T) {
	p, err := board.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, p.Assign(p.EdgeAt(0, 0), board.Forward))
	mark := p.Mark()
	require.Equal(t, 1, mark)

	require.NoError(t, p.Assign(p.EdgeAt(1, 0), board.Back))
	require.NoError(t, p.Assign(p.EdgeAt(2, 0), board.Forward))
	assert.Equal(t, 3, p.Mark())

	p.RollbackTo(mark)
	assert.Equal(t, mark, p.Mark())
	assert.Equal(t, board.Forward, p.EdgeState(p.EdgeAt(0, 0)))
	assert.Equal(t, board.Unset, p.EdgeState(p.EdgeAt(1, 0)))
	assert.Equal(t, board.Unset, p.EdgeState(p.EdgeAt(2, 0)))
}

func TestLog_IsACopy(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, p.Assign(p.EdgeAt(0, 0), board.Forward))

	log := p.Log()
	log[0] = 999
	assert.NotEqual(t, board.EdgeID(999), p.Log()[0])
}
