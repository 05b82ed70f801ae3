package desc

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/slant/board"
)

// ParseDescription builds a new width x height Puzzle and applies the
// clues encoded in desc.
func ParseDescription(width, height int, description string) (*board.Puzzle, error) {
	p, err := board.New(width, height)
	if err != nil {
		return nil, err
	}

	x, y := 0, 0
	for _, c := range description {
		if y > height {
			return nil, fmt.Errorf("desc: description overflows %dx%d grid: %w", width, height, ErrDescriptionOverflow)
		}
		switch {
		case c >= 'a' && c <= 'z':
			x, y = advance(x, y, int(c-'a')+1, width)
		case c >= '0' && c <= '9':
			if err := p.SetClue(x, y, int(c-'0')); err != nil {
				return nil, fmt.Errorf("desc: clue at (%d, %d): %w", x, y, err)
			}
			x, y = advance(x, y, 1, width)
		default:
			return nil, fmt.Errorf("desc: invalid description character %q: %w", c, ErrInvalidCharacter)
		}
	}
	return p, nil
}

// advance steps the column-first cursor forward by n vertex slots,
// wrapping to the next row whenever x exceeds width.
func advance(x, y, n, width int) (int, int) {
	x += n
	for x > width {
		x -= width + 1
		y++
	}
	return x, y
}

// FormatDescription renders p's current clue layout back into the same
// run-length encoding ParseDescription reads, column-first and row
// wrapped. Edge assignments are not part of this encoding.
func FormatDescription(p *board.Puzzle) string {
	var sb strings.Builder
	skip := 0
	flush := func() {
		for skip > 0 {
			n := skip
			if n > 26 {
				n = 26
			}
			sb.WriteByte(byte('a' + n - 1))
			skip -= n
		}
	}

	for y := 0; y <= p.Height; y++ {
		for x := 0; x <= p.Width; x++ {
			v := p.VertexAt(x, y)
			if clue, ok := p.Clue(v); ok {
				flush()
				sb.WriteByte(byte('0' + clue))
			} else {
				skip++
			}
		}
	}
	flush()
	return sb.String()
}
