package board_test

import (
	"testing"

	"github.com/katalvlaran/slant/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrialGuard_FirstAttemptNeverExpanded(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)
	g := board.NewTrialGuard()

	e := p.EdgeAt(0, 0)
	assert.False(t, g.Expanded(p, e))
}

func TestTrialGuard_ExpandedOnlyWhileLogUnchanged(t *testing.T) {
	p, err := board.New(3, 3)
	require.NoError(t, err)
	g := board.NewTrialGuard()

	e1 := p.EdgeAt(0, 0)
	e2 := p.EdgeAt(1, 1)

	g.Remember(p, e1)
	assert.True(t, g.Expanded(p, e1), "log unchanged since Remember")

	require.NoError(t, p.Assign(e2, board.Forward))
	assert.False(t, g.Expanded(p, e1), "log grew since Remember")

	g.Remember(p, e1)
	assert.True(t, g.Expanded(p, e1))
}

func TestTrialGuard_PerEdgeIndependent(t *testing.T) {
	p, err := board.New(2, 2)
	require.NoError(t, err)
	g := board.NewTrialGuard()

	e1 := p.EdgeAt(0, 0)
	e2 := p.EdgeAt(1, 1)

	g.Remember(p, e1)
	assert.False(t, g.Expanded(p, e2), "e2 was never remembered")
}
