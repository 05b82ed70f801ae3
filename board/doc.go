// Package board models the Slant grid: an arena of lattice-point vertices
// and diagonal-cell edges, the degree bookkeeping clues are checked
// against, and the cycle queries that keep the drawn diagonals loop-free.
//
// A puzzle of Width x Height cells has (Width+1) x (Height+1) vertices.
// Every cell holds exactly one Edge, which is either Unset, or assigned
// Forward ("/", joining its top-right and bottom-left corners) or Back
// ("\", joining its top-left and bottom-right corners). Vertices and edges
// are addressed by small integer IDs (VertexID, EdgeID) into flat slices
// rather than by pointer, so the whole board is a handful of contiguous
// arrays instead of a web of cyclic references.
//
// Index 0 of both arenas is reserved for a sentinel: a permanently
// unassignable, permanently "solved but non-connecting" placeholder used
// in place of the cells and corners that fall off the edge of the grid.
// This lets Degree, Antidegree and friends treat every vertex uniformly,
// boundary or interior, without special-casing missing neighbors.
//
// Package solve builds on top of board for propagation and search;
// package desc builds on top of board for textual (de)serialization.
package board
