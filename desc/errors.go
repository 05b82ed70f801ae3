package desc

import "errors"

var (
	// ErrDescriptionOverflow indicates a description string describes
	// more vertices than the target grid has.
	ErrDescriptionOverflow = errors.New("desc: description overflows grid")

	// ErrInvalidCharacter indicates a description byte that is neither a
	// lowercase letter nor a decimal digit.
	ErrInvalidCharacter = errors.New("desc: invalid description character")

	// ErrInvalidMove indicates a pre-applied move string that is not of
	// the form '/' or '\' followed by "x,y".
	ErrInvalidMove = errors.New("desc: invalid move syntax")
)
