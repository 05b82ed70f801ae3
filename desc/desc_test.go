package desc_test

import (
	"testing"

	"github.com/katalvlaran/slant/board"
	"github.com/katalvlaran/slant/desc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDescription_PlacesCluesAtCorrectVertices covers the run-length
// skip-then-place encoding: a letter skips (n) vertices, a digit places
// a clue and advances one.
func TestParseDescription_PlacesCluesAtCorrectVertices(t *testing.T) {
	// 2x2 grid has 3x3 = 9 vertices, scanned column-first row-wrapped.
	// "a2b1" -> skip 1 (vertex (0,0)), clue 2 at (1,0), skip 2 (vertices
	// (2,0) and wraps to (0,1)), clue 1 at (1,1).
	p, err := desc.ParseDescription(2, 2, "a2b1")
	require.NoError(t, err)

	clue, ok := p.Clue(p.VertexAt(1, 0))
	require.True(t, ok)
	assert.Equal(t, 2, clue)

	clue, ok = p.Clue(p.VertexAt(1, 1))
	require.True(t, ok)
	assert.Equal(t, 1, clue)

	_, ok = p.Clue(p.VertexAt(0, 0))
	assert.False(t, ok)
	_, ok = p.Clue(p.VertexAt(2, 0))
	assert.False(t, ok)
	_, ok = p.Clue(p.VertexAt(0, 1))
	assert.False(t, ok)
}

func TestParseDescription_InvalidCharacter(t *testing.T) {
	_, err := desc.ParseDescription(2, 2, "2#2")
	assert.ErrorIs(t, err, desc.ErrInvalidCharacter)
}

func TestParseDescription_OverflowsGrid(t *testing.T) {
	// 1x1 has 4 vertices; "zzzzz" skips 26*5 = 130 vertices, running well
	// past height before the string is exhausted.
	_, err := desc.ParseDescription(1, 1, "zzzzz")
	assert.ErrorIs(t, err, desc.ErrDescriptionOverflow)
}

func TestParseDescription_InvalidClueRejected(t *testing.T) {
	// clue 9 is out of range for any vertex (max degree is 4).
	_, err := desc.ParseDescription(1, 1, "9")
	assert.Error(t, err)
}

// TestDescriptionRoundTrip confirms FormatDescription(ParseDescription(d))
// reproduces the original clue layout, per spec.md's round-trip property.
// It does not assert byte-for-byte equality with the input, since distinct
// descriptions can encode the same clue layout (e.g. "aa" and "b"); instead
// it checks the parsed and re-parsed puzzles agree on every vertex's clue.
func TestDescriptionRoundTrip(t *testing.T) {
	original := "2a1b0a3"
	p1, err := desc.ParseDescription(3, 3, original)
	require.NoError(t, err)

	out := desc.FormatDescription(p1)
	p2, err := desc.ParseDescription(3, 3, out)
	require.NoError(t, err)

	for y := 0; y <= p1.Height; y++ {
		for x := 0; x <= p1.Width; x++ {
			c1, ok1 := p1.Clue(p1.VertexAt(x, y))
			c2, ok2 := p2.Clue(p2.VertexAt(x, y))
			require.Equal(t, ok1, ok2)
			assert.Equal(t, c1, c2)
		}
	}
}

func TestFormatDescription_NoClues(t *testing.T) {
	p, err := board.New(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "d", desc.FormatDescription(p))
}

func TestFormatDescription_SkipRunsOver26UseMultipleLetters(t *testing.T) {
	// A 6x6 grid has 7x7 = 49 vertices; one clue at the very last vertex
	// leaves 48 unclued vertices ahead of it, which needs two skip letters
	// ('z' for 26, 'v' for the remaining 22) before the digit.
	p, err := board.New(6, 6)
	require.NoError(t, err)
	require.NoError(t, p.SetClue(6, 6, 0))

	out := desc.FormatDescription(p)
	assert.Equal(t, "zv0", out)
}

func TestParseMove_ForwardAndBack(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, desc.ParseMove(p, "/0,0"))
	assert.Equal(t, board.Forward, p.EdgeState(p.EdgeAt(0, 0)))

	require.NoError(t, desc.ParseMove(p, "\\1,1"))
	assert.Equal(t, board.Back, p.EdgeState(p.EdgeAt(1, 1)))
}

func TestParseMove_InvalidSyntax(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	for _, m := range []string{"", "/", "/0", "/0-0", "x0,0", "/a,0"} {
		err := desc.ParseMove(p, m)
		assert.ErrorIs(t, err, desc.ErrInvalidMove, "move %q", m)
	}
}

func TestParseMove_OutOfRangeEdge(t *testing.T) {
	p, err := board.New(1, 1)
	require.NoError(t, err)
	err = desc.ParseMove(p, "/5,5")
	assert.ErrorIs(t, err, board.ErrEdgeNotFound)
}

func TestApplyMoves_StopsAtFirstError(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	err = desc.ApplyMoves(p, []string{"/0,0", "bogus", "/1,1"})
	assert.ErrorIs(t, err, desc.ErrInvalidMove)
	assert.Equal(t, board.Forward, p.EdgeState(p.EdgeAt(0, 0)), "first move still committed")
	assert.False(t, p.IsEdgeSolved(p.EdgeAt(1, 1)), "move after the error never applied")
}

// TestFormatMoves_OrderMatchesCommitOrder covers the move-log rendering
// used for the replay contract in SPEC_FULL.md §4.
func TestFormatMoves_OrderMatchesCommitOrder(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)

	require.NoError(t, desc.ApplyMoves(p, []string{"/0,0", "\\1,0", "/1,1"}))

	out := desc.FormatMoves(p)
	require.Equal(t, []string{"/0,0", "\\1,0", "/1,1"}, out)
}

// TestMovesRoundTrip confirms FormatMoves output replays through
// ParseMove/ApplyMoves to reach the identical board state.
func TestMovesRoundTrip(t *testing.T) {
	p1, err := board.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, desc.ApplyMoves(p1, []string{"/0,0", "\\1,0", "/0,1"}))

	moves := desc.FormatMoves(p1)

	p2, err := board.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, desc.ApplyMoves(p2, moves))

	for y := 0; y < p1.Height; y++ {
		for x := 0; x < p1.Width; x++ {
			e1, e2 := p1.EdgeAt(x, y), p2.EdgeAt(x, y)
			assert.Equal(t, p1.EdgeState(e1), p2.EdgeState(e2))
		}
	}
}
