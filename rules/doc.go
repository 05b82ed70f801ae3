// Package rules implements the local deduction rules a human Slant
// solver applies by hand: forcing a vertex's remaining edges once its
// clue is already satisfied or already exhausted, propagating parallel
// or anti-parallel diagonal pairs across a cardinal direction, excluding
// the diagonal between two interior clue-1 neighbors, walking chains of
// clue-2 vertices until something interesting breaks the chain, and — as
// a last resort, opt-in measure — tentatively committing a diagonal
// between two "needs exactly one more" neighbors to see whether the
// opposite is forced.
//
// Every entry point here takes a *board.Puzzle and a board.VertexID and
// returns the edges it newly assigned, so that its caller (package
// solve) can schedule their incident vertices for further solving.
package rules
