package desc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/slant/board"
)

// FormatMoves renders p's move log as a slice of "<slash><x>,<y>"
// strings, one per committed assignment, in commit order.
func FormatMoves(p *board.Puzzle) []string {
	log := p.Log()
	out := make([]string, len(log))
	for i, e := range log {
		x, y := p.EdgeXY(e)
		out[i] = fmt.Sprintf("%s%d,%d", p.EdgeState(e), x, y)
	}
	return out
}

// ParseMove applies a single "<slash><x>,<y>" move string to p via the
// ordinary assignment path.
func ParseMove(p *board.Puzzle, move string) error {
	if len(move) < 2 {
		return fmt.Errorf("desc: move %q: %w", move, ErrInvalidMove)
	}

	var state board.State
	switch move[0] {
	case '/':
		state = board.Forward
	case '\\':
		state = board.Back
	default:
		return fmt.Errorf("desc: move %q: %w", move, ErrInvalidMove)
	}

	comma := strings.IndexByte(move[1:], ',')
	if comma < 0 {
		return fmt.Errorf("desc: move %q: %w", move, ErrInvalidMove)
	}
	xs, ys := move[1:1+comma], move[2+comma:]
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return fmt.Errorf("desc: move %q: %w", move, ErrInvalidMove)
	}

	e := p.EdgeAt(x, y)
	if e == 0 {
		return fmt.Errorf("desc: move %q: %w", move, board.ErrEdgeNotFound)
	}
	return p.Assign(e, state)
}

// ApplyMoves parses and assigns each move in order, stopping at the
// first error.
func ApplyMoves(p *board.Puzzle, moves []string) error {
	for _, m := range moves {
		if err := ParseMove(p, m); err != nil {
			return err
		}
	}
	return nil
}
