// Package desc (de)serializes the puzzle description and move-log text
// formats a Slant-solving frontend is expected to speak: a run-length
// clue description, and a plain-text rendering of individual moves.
//
// A description is a string over lowercase letters and decimal digits,
// read left to right, column-first, wrapping to the next row once x
// exceeds the grid width. A letter skips (c - 'a' + 1) vertices without a
// clue; a digit places that clue on the current vertex and advances one.
// This format, and the move syntax ('/' or '\' followed by "x,y"), are
// preserved exactly because they are the contract the parsing and
// emission collaborators outside this module rely on.
package desc
